package cpu

import (
	"fmt"
	"strings"
)

type opcodeFunc func(c *CPU)

// Add with Carry
// A = A + M
//
// Flags affected: C, V, Z, N
//
// The incoming carry is not added and V mirrors C: both report
// unsigned overflow of the 8-bit sum.
func (c *CPU) adc() {
	r16 := uint16(c.a) + uint16(c.operandValue)
	r8 := uint8(r16)
	overflow := r16 > 0xff
	c.status.SetCarry(overflow)
	c.status.SetOverflow(overflow)
	c.setFlagsZN(r8)
	c.a = r8
}

// Logical AND
// A = A & M
//
// Flags affected: Z, N
func (c *CPU) and() {
	c.a &= c.operandValue
	c.setFlagsZN(c.a)
}

// Arithmetic Shift Left
// C <- (A or M)7, (A or M) << 1
//
// Flags affected: C, Z, N
func (c *CPU) asl() {
	c.status.SetCarry(c.operandValue&0x80 > 0)
	c.storeShifted(c.operandValue << 1)
}

// storeShifted writes a shift or rotate result back to A or memory.
func (c *CPU) storeShifted(r uint8) {
	c.setFlagsZN(r)
	if c.addrMode == AddrModeACC {
		c.a = r
		return
	}
	c.WriteByte(c.operandAddr, r)
}

func (c *CPU) jmpIf(condition bool) {
	if condition {
		c.pc = c.operandAddr
	}
}

func (c *CPU) bcc() { c.jmpIf(!c.status.Carry()) }
func (c *CPU) bcs() { c.jmpIf(c.status.Carry()) }
func (c *CPU) beq() { c.jmpIf(c.status.Zero()) }
func (c *CPU) bmi() { c.jmpIf(c.status.Negative()) }
func (c *CPU) bne() { c.jmpIf(!c.status.Zero()) }
func (c *CPU) bpl() { c.jmpIf(!c.status.Negative()) }
func (c *CPU) bvc() { c.jmpIf(!c.status.Overflow()) }
func (c *CPU) bvs() { c.jmpIf(c.status.Overflow()) }

// Bit Test
// Z = A & M == 0, N = M7, V = M6
func (c *CPU) bit() {
	c.status.SetZero(c.a&c.operandValue == 0)
	c.status.SetNegative(c.operandValue&flagN > 0)
	c.status.SetOverflow(c.operandValue&flagV > 0)
}

// Force Interrupt
//
// Interrupt vectors are not modelled, BRK changes nothing.
func (c *CPU) brk() {}

func (c *CPU) clc() { c.status.SetCarry(false) }
func (c *CPU) cld() { c.status.SetDecimal(false) }
func (c *CPU) cli() { c.status.SetInterruptDisable(false) }
func (c *CPU) clv() { c.status.SetOverflow(false) }

func (c *CPU) compare(reg uint8) {
	c.status.SetCarry(reg >= c.operandValue)
	c.setFlagsZN(reg - c.operandValue)
}

func (c *CPU) cmp() { c.compare(c.a) }
func (c *CPU) cpx() { c.compare(c.x) }
func (c *CPU) cpy() { c.compare(c.y) }

func (c *CPU) dec() {
	r := c.operandValue - 1
	c.setFlagsZN(r)
	c.WriteByte(c.operandAddr, r)
}

func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

func (c *CPU) eor() {
	c.a ^= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) inc() {
	r := c.operandValue + 1
	c.setFlagsZN(r)
	c.WriteByte(c.operandAddr, r)
}

func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

// Jump to Subroutine
//
// pc already points past the 3-byte instruction,
// the return address pushed is the last byte of JSR.
func (c *CPU) jsr() {
	c.PushWord(c.pc - 1)
	c.pc = c.operandAddr
}

func (c *CPU) lda() {
	c.a = c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) ldx() {
	c.x = c.operandValue
	c.setFlagsZN(c.x)
}

func (c *CPU) ldy() {
	c.y = c.operandValue
	c.setFlagsZN(c.y)
}

// Logical Shift Right
// C <- (A or M)0, (A or M) >> 1
func (c *CPU) lsr() {
	c.status.SetCarry(c.operandValue&0x1 > 0)
	c.storeShifted(c.operandValue >> 1)
}

func (c *CPU) nop() {}

func (c *CPU) ora() {
	c.a |= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) pha() {
	c.PushByte(c.a)
}

func (c *CPU) php() {
	c.PushByte(c.status.Byte() | flagB)
}

func (c *CPU) pla() {
	c.a = c.PopByte()
	c.setFlagsZN(c.a)
}

func (c *CPU) plp() {
	c.status = StatusFromByte(c.PopByte()).WithBreak(false)
}

func (c *CPU) rol() {
	r := c.operandValue << 1
	if c.status.Carry() {
		r |= 0x1
	}
	c.status.SetCarry(c.operandValue&0x80 > 0)
	c.storeShifted(r)
}

func (c *CPU) ror() {
	r := c.operandValue >> 1
	if c.status.Carry() {
		r |= 0x80
	}
	c.status.SetCarry(c.operandValue&0x1 > 0)
	c.storeShifted(r)
}

func (c *CPU) rti() {
	c.status = StatusFromByte(c.PopByte()).WithBreak(false)
	c.pc = c.PopWord()
}

func (c *CPU) rts() {
	c.pc = c.PopWord()
	c.pc++
}

// Subtract with Carry
// A = A - M - (1 - C)
//
// Flags affected: C, Z, V, N
//
// Binary only, the decimal flag is ignored.
func (c *CPU) sbc() {
	r16 := uint16(c.a) - uint16(c.operandValue)
	if !c.status.Carry() {
		r16--
	}
	r8 := uint8(r16)
	c.status.SetCarry(r16 <= 0xff)
	c.status.SetOverflow((c.a^c.operandValue)&(c.a^r8)&0x80 != 0)
	c.setFlagsZN(r8)
	c.a = r8
}

func (c *CPU) sec() { c.status.SetCarry(true) }
func (c *CPU) sed() { c.status.SetDecimal(true) }
func (c *CPU) sei() { c.status.SetInterruptDisable(true) }

func (c *CPU) sta() { c.WriteByte(c.operandAddr, c.a) }
func (c *CPU) stx() { c.WriteByte(c.operandAddr, c.x) }
func (c *CPU) sty() { c.WriteByte(c.operandAddr, c.y) }

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) tsx() {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) txs() {
	c.sp = c.x
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

func opcodeFuncFromMnemonic(mnemonic string) (opcodeFunc, error) {
	mnemonic = strings.ToUpper(mnemonic)
	switch mnemonic {
	case "ADC":
		return (*CPU).adc, nil
	case "AND":
		return (*CPU).and, nil
	case "ASL":
		return (*CPU).asl, nil
	case "BCC":
		return (*CPU).bcc, nil
	case "BCS":
		return (*CPU).bcs, nil
	case "BEQ":
		return (*CPU).beq, nil
	case "BIT":
		return (*CPU).bit, nil
	case "BMI":
		return (*CPU).bmi, nil
	case "BNE":
		return (*CPU).bne, nil
	case "BPL":
		return (*CPU).bpl, nil
	case "BRK":
		return (*CPU).brk, nil
	case "BVC":
		return (*CPU).bvc, nil
	case "BVS":
		return (*CPU).bvs, nil
	case "CLC":
		return (*CPU).clc, nil
	case "CLD":
		return (*CPU).cld, nil
	case "CLI":
		return (*CPU).cli, nil
	case "CLV":
		return (*CPU).clv, nil
	case "CMP":
		return (*CPU).cmp, nil
	case "CPX":
		return (*CPU).cpx, nil
	case "CPY":
		return (*CPU).cpy, nil
	case "DEC":
		return (*CPU).dec, nil
	case "DEX":
		return (*CPU).dex, nil
	case "DEY":
		return (*CPU).dey, nil
	case "EOR":
		return (*CPU).eor, nil
	case "INC":
		return (*CPU).inc, nil
	case "INX":
		return (*CPU).inx, nil
	case "INY":
		return (*CPU).iny, nil
	case "JMP":
		return (*CPU).jmp, nil
	case "JSR":
		return (*CPU).jsr, nil
	case "LDA":
		return (*CPU).lda, nil
	case "LDX":
		return (*CPU).ldx, nil
	case "LDY":
		return (*CPU).ldy, nil
	case "LSR":
		return (*CPU).lsr, nil
	case "NOP":
		return (*CPU).nop, nil
	case "ORA":
		return (*CPU).ora, nil
	case "PHA":
		return (*CPU).pha, nil
	case "PHP":
		return (*CPU).php, nil
	case "PLA":
		return (*CPU).pla, nil
	case "PLP":
		return (*CPU).plp, nil
	case "ROL":
		return (*CPU).rol, nil
	case "ROR":
		return (*CPU).ror, nil
	case "RTI":
		return (*CPU).rti, nil
	case "RTS":
		return (*CPU).rts, nil
	case "SBC":
		return (*CPU).sbc, nil
	case "SEC":
		return (*CPU).sec, nil
	case "SED":
		return (*CPU).sed, nil
	case "SEI":
		return (*CPU).sei, nil
	case "STA":
		return (*CPU).sta, nil
	case "STX":
		return (*CPU).stx, nil
	case "STY":
		return (*CPU).sty, nil
	case "TAX":
		return (*CPU).tax, nil
	case "TAY":
		return (*CPU).tay, nil
	case "TSX":
		return (*CPU).tsx, nil
	case "TXA":
		return (*CPU).txa, nil
	case "TXS":
		return (*CPU).txs, nil
	case "TYA":
		return (*CPU).tya, nil
	default:
		return nil, fmt.Errorf("unknown mnemonic: %s", mnemonic)
	}
}
