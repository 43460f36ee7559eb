package cpu

import "fmt"

// Format renders the instruction at pc and returns its length in bytes.
// Bytes that do not decode render as "???" with length 1.
func (c *CPU) Format(pc uint16) (string, uint16) {
	instr, err := Decode(c.ReadByte(pc))
	if err != nil {
		return fmt.Sprintf("$%04X: ???", pc), 1
	}

	arg := pc + 1
	var operand string
	switch instr.Mode {
	case AddrModeIMM:
		operand = fmt.Sprintf(" #$%02X", c.ReadByte(arg))
	case AddrModeZP:
		operand = fmt.Sprintf(" $%02X", c.ReadByte(arg))
	case AddrModeZPX:
		operand = fmt.Sprintf(" $%02X,X", c.ReadByte(arg))
	case AddrModeZPY:
		operand = fmt.Sprintf(" $%02X,Y", c.ReadByte(arg))
	case AddrModeABS:
		operand = fmt.Sprintf(" $%04X", c.ReadWord(arg))
	case AddrModeABSX:
		operand = fmt.Sprintf(" $%04X,X", c.ReadWord(arg))
	case AddrModeABSY:
		operand = fmt.Sprintf(" $%04X,Y", c.ReadWord(arg))
	case AddrModeIND:
		operand = fmt.Sprintf(" ($%04X)", c.ReadWord(arg))
	case AddrModeINDX:
		operand = fmt.Sprintf(" ($%02X,X)", c.ReadByte(arg))
	case AddrModeINDY:
		operand = fmt.Sprintf(" ($%02X),Y", c.ReadByte(arg))
	case AddrModeREL:
		offset := int8(c.ReadByte(arg))
		operand = fmt.Sprintf(" $%04X", pc+instr.Mode.Len()+uint16(offset))
	case AddrModeACC:
		operand = " A"
	}

	return fmt.Sprintf("$%04X: %s%s {%s}", pc, instr.Name, operand, instr.Mode), instr.Mode.Len()
}

// Disassemble returns a map of addresses and their corresponding instructions
// from 0x0000 to the end of memory. Only addresses where an instruction starts
// are present.
func (c *CPU) Disassemble() map[uint16]string {
	disasm := make(map[uint16]string, memSizeBytes)

	addr := uint32(0)
	for addr < memSizeBytes {
		line, n := c.Format(uint16(addr))
		disasm[uint16(addr)] = line
		addr += uint32(n)
	}

	return disasm
}
