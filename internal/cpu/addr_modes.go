package cpu

import "fmt"

// AddrMode tells an instruction where its operand lives.
type AddrMode string

const (
	// Implied: IMP
	//
	// The instruction carries no operand, e.g. CLC or RTS.
	AddrModeIMP AddrMode = "IMP"

	// Accumulator: ACC
	//
	// The operand is register A and the result is written back to A.
	// Format: ASL A
	AddrModeACC AddrMode = "ACC"

	// Immediate: IMM
	//
	// The operand is the byte following the opcode.
	// Format: #$nn, e.g. LDA #$10 loads A with $10.
	AddrModeIMM AddrMode = "IMM"

	// Zero Page: ZP
	//
	// The operand byte is an address within the first 256 bytes of memory.
	// Format: $nn
	AddrModeZP AddrMode = "ZP"

	// Zero Page Indexed with X: ZPX
	//
	// Like ZP, with X added. The sum wraps inside the zero page,
	// so $F0,X with X = $20 reads $0010.
	// Format: $nn,X
	AddrModeZPX AddrMode = "ZPX"

	// Zero Page Indexed with Y: ZPY
	//
	// Like ZPX, indexed by Y. Only LDX and STX use it.
	// Format: $nn,Y
	AddrModeZPY AddrMode = "ZPY"

	// Absolute: ABS
	//
	// The two bytes following the opcode are a little-endian address.
	// Format: $nnnn
	AddrModeABS AddrMode = "ABS"

	// Absolute Indexed with X: ABSX
	//
	// Absolute address plus X, wrapping at $FFFF.
	// Format: $nnnn,X
	AddrModeABSX AddrMode = "ABSX"

	// Absolute Indexed with Y: ABSY
	//
	// Absolute address plus Y, wrapping at $FFFF.
	// Format: $nnnn,Y
	AddrModeABSY AddrMode = "ABSY"

	// Indirect: IND
	//
	// The absolute operand points at a little-endian word holding the
	// effective address. Only JMP uses it. The pointer is read as a plain
	// 16-bit word, the NMOS page wrap bug is not reproduced.
	// Format: ($nnnn)
	AddrModeIND AddrMode = "IND"

	// Indexed Indirect: INDX
	//
	// Operand plus X (wrapping in the zero page) locates a zero page pointer
	// holding the effective address.
	// Format: ($nn,X)
	AddrModeINDX AddrMode = "INDX"

	// Indirect Indexed: INDY
	//
	// The operand locates a zero page pointer; Y is added to the pointer
	// value with 16-bit wraparound.
	// Format: ($nn),Y
	AddrModeINDY AddrMode = "INDY"

	// Relative: REL
	//
	// Used by branches. The operand is a signed offset from the address of
	// the next instruction.
	// Format: $nn
	AddrModeREL AddrMode = "REL"
)

func addrModeFromString(s string) (AddrMode, error) {
	switch mode := AddrMode(s); mode {
	case AddrModeIMP, AddrModeACC, AddrModeIMM,
		AddrModeZP, AddrModeZPX, AddrModeZPY,
		AddrModeABS, AddrModeABSX, AddrModeABSY,
		AddrModeIND, AddrModeINDX, AddrModeINDY,
		AddrModeREL:
		return mode, nil
	}
	return AddrMode("UNKNOWN"), fmt.Errorf("address mode couldn't be parsed from %s", s)
}

// Len returns the encoded instruction length in bytes, opcode included.
func (m AddrMode) Len() uint16 {
	switch m {
	case AddrModeIMP, AddrModeACC:
		return 1
	case AddrModeABS, AddrModeABSX, AddrModeABSY, AddrModeIND:
		return 3
	}
	return 2
}

func (m AddrMode) String() string {
	return string(m)
}

// fetch resolves the operand of the instruction whose opcode is at c.pc.
// It fills operandAddr for memory modes and operandValue for every mode
// that has a value to read.
func (c *CPU) fetch(mode AddrMode) {
	c.addrMode = mode
	c.operandAddr = 0
	c.operandValue = 0

	arg := c.pc + 1

	switch mode {
	case AddrModeIMP:
		return

	case AddrModeACC:
		c.operandValue = c.a
		return

	case AddrModeIMM:
		c.operandAddr = arg

	case AddrModeZP:
		c.operandAddr = uint16(c.ReadByte(arg))

	case AddrModeZPX:
		c.operandAddr = uint16(c.ReadByte(arg) + c.x)

	case AddrModeZPY:
		c.operandAddr = uint16(c.ReadByte(arg) + c.y)

	case AddrModeABS:
		c.operandAddr = c.ReadWord(arg)

	case AddrModeABSX:
		c.operandAddr = c.ReadWord(arg) + uint16(c.x)

	case AddrModeABSY:
		c.operandAddr = c.ReadWord(arg) + uint16(c.y)

	case AddrModeIND:
		c.operandAddr = c.ReadWord(c.ReadWord(arg))

	case AddrModeINDX:
		c.operandAddr = c.readZeroPageWord(c.ReadByte(arg) + c.x)

	case AddrModeINDY:
		c.operandAddr = c.readZeroPageWord(c.ReadByte(arg)) + uint16(c.y)

	case AddrModeREL:
		offset := int8(c.ReadByte(arg))
		c.operandAddr = c.pc + mode.Len() + uint16(offset)
		return
	}

	c.operandValue = c.ReadByte(c.operandAddr)
}

// readZeroPageWord reads a pointer stored in the zero page.
// The high byte wraps to $00 when ptr is $FF.
func (c *CPU) readZeroPageWord(ptr uint8) uint16 {
	lo := uint16(c.ReadByte(uint16(ptr)))
	hi := uint16(c.ReadByte(uint16(ptr + 1)))
	return lo | hi<<8
}
