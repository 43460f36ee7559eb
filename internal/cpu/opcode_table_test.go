package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonical 6502 instruction lengths, opcode byte included
var referenceLengths = map[uint8]uint16{
	// 1 byte
	0x00: 1, 0x08: 1, 0x0a: 1, 0x18: 1, 0x28: 1, 0x2a: 1, 0x38: 1, 0x40: 1,
	0x48: 1, 0x4a: 1, 0x58: 1, 0x60: 1, 0x68: 1, 0x6a: 1, 0x78: 1, 0x88: 1,
	0x8a: 1, 0x98: 1, 0x9a: 1, 0xa8: 1, 0xaa: 1, 0xb8: 1, 0xba: 1, 0xc8: 1,
	0xca: 1, 0xd8: 1, 0xe8: 1, 0xea: 1, 0xf8: 1,
	// 2 bytes
	0x01: 2, 0x05: 2, 0x06: 2, 0x09: 2, 0x10: 2, 0x11: 2, 0x15: 2, 0x16: 2,
	0x21: 2, 0x24: 2, 0x25: 2, 0x26: 2, 0x29: 2, 0x30: 2, 0x31: 2, 0x35: 2,
	0x36: 2, 0x41: 2, 0x45: 2, 0x46: 2, 0x49: 2, 0x50: 2, 0x51: 2, 0x55: 2,
	0x56: 2, 0x61: 2, 0x65: 2, 0x66: 2, 0x69: 2, 0x70: 2, 0x71: 2, 0x75: 2,
	0x76: 2, 0x81: 2, 0x84: 2, 0x85: 2, 0x86: 2, 0x90: 2, 0x91: 2, 0x94: 2,
	0x95: 2, 0x96: 2, 0xa0: 2, 0xa1: 2, 0xa2: 2, 0xa4: 2, 0xa5: 2, 0xa6: 2,
	0xa9: 2, 0xb0: 2, 0xb1: 2, 0xb4: 2, 0xb5: 2, 0xb6: 2, 0xc0: 2, 0xc1: 2,
	0xc4: 2, 0xc5: 2, 0xc6: 2, 0xc9: 2, 0xd0: 2, 0xd1: 2, 0xd5: 2, 0xd6: 2,
	0xe0: 2, 0xe1: 2, 0xe4: 2, 0xe5: 2, 0xe6: 2, 0xe9: 2, 0xf0: 2, 0xf1: 2,
	0xf5: 2, 0xf6: 2,
	// 3 bytes
	0x0d: 3, 0x0e: 3, 0x19: 3, 0x1d: 3, 0x1e: 3, 0x20: 3, 0x2c: 3, 0x2d: 3,
	0x2e: 3, 0x39: 3, 0x3d: 3, 0x3e: 3, 0x4c: 3, 0x4d: 3, 0x4e: 3, 0x59: 3,
	0x5d: 3, 0x5e: 3, 0x6c: 3, 0x6d: 3, 0x6e: 3, 0x79: 3, 0x7d: 3, 0x7e: 3,
	0x8c: 3, 0x8d: 3, 0x8e: 3, 0x99: 3, 0x9d: 3, 0xac: 3, 0xad: 3, 0xae: 3,
	0xb9: 3, 0xbc: 3, 0xbd: 3, 0xbe: 3, 0xcc: 3, 0xcd: 3, 0xce: 3, 0xd9: 3,
	0xdd: 3, 0xde: 3, 0xec: 3, 0xed: 3, 0xee: 3, 0xf9: 3, 0xfd: 3, 0xfe: 3,
}

func TestDecode_Lengths(t *testing.T) {
	for opcode, n := range referenceLengths {
		instr, err := Decode(opcode)
		if !assert.NoError(t, err, "opcode $%02X", opcode) {
			continue
		}
		assert.Equal(t, n, instr.Mode.Len(), "opcode $%02X %s {%s}", opcode, instr.Name, instr.Mode)
	}
}

func TestDecode_TableIsOfficialSet(t *testing.T) {
	mapped := 0
	for op := 0; op < 0x100; op++ {
		_, err := Decode(uint8(op))
		if err == nil {
			mapped++
			continue
		}
		_, official := referenceLengths[uint8(op)]
		assert.False(t, official, "official opcode $%02X fails to decode", op)
	}
	assert.Equal(t, len(referenceLengths), mapped)
}

func TestDecode_Entries(t *testing.T) {
	tests := []struct {
		opcode uint8
		name   string
		mode   AddrMode
		cycles uint8
	}{
		{0xea, "NOP", AddrModeIMP, 2},
		{0x00, "BRK", AddrModeIMP, 7},
		{0x29, "AND", AddrModeIMM, 2},
		{0x18, "CLC", AddrModeIMP, 2},
		{0x38, "SEC", AddrModeIMP, 2},
		{0x4c, "JMP", AddrModeABS, 3},
		{0x6c, "JMP", AddrModeIND, 5},
		{0x20, "JSR", AddrModeABS, 6},
		{0x60, "RTS", AddrModeIMP, 6},
		{0x69, "ADC", AddrModeIMM, 2},
		{0x71, "ADC", AddrModeINDY, 5},
		{0x81, "STA", AddrModeINDX, 6},
		{0x99, "STA", AddrModeABSY, 5},
		{0xa2, "LDX", AddrModeIMM, 2},
		{0xb6, "LDX", AddrModeZPY, 4},
		{0xbe, "LDX", AddrModeABSY, 4},
		{0xa9, "LDA", AddrModeIMM, 2},
		{0xbd, "LDA", AddrModeABSX, 4},
		{0xa8, "TAY", AddrModeIMP, 2},
		{0x0a, "ASL", AddrModeACC, 2},
		{0xd0, "BNE", AddrModeREL, 2},
	}

	for _, tt := range tests {
		instr, err := Decode(tt.opcode)
		require.NoError(t, err)
		assert.Equal(t, tt.name, instr.Name, "opcode $%02X", tt.opcode)
		assert.Equal(t, tt.mode, instr.Mode, "opcode $%02X", tt.opcode)
		assert.Equal(t, tt.cycles, instr.Cycles, "opcode $%02X", tt.opcode)
	}
}

func TestDecode_Unknown(t *testing.T) {
	for _, opcode := range []uint8{0xff, 0x02, 0x1a, 0x80, 0xeb} {
		_, err := Decode(opcode)

		assert.ErrorIs(t, err, ErrUnknownOpcode)
		var opErr UnknownOpcodeError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, opcode, opErr.Opcode())
	}
}

func TestParseOpcodeMatrix(t *testing.T) {
	header := "opcode,mnemonic,mode,cycles\n"

	t.Run("valid", func(t *testing.T) {
		var table [0x100]Instruction
		err := parseOpcodeMatrix([]byte(header+"# comment\n0xA9,lda,IMM,2\n"), &table)

		require.NoError(t, err)
		assert.Equal(t, "LDA", table[0xa9].Name)
		assert.Equal(t, AddrModeIMM, table[0xa9].Mode)
		assert.NotNil(t, table[0xa9].operate)
	})

	t.Run("duplicated opcode", func(t *testing.T) {
		var table [0x100]Instruction
		err := parseOpcodeMatrix([]byte(header+"0xA9,LDA,IMM,2\n0xA9,LDX,IMM,2\n"), &table)

		assert.ErrorIs(t, err, errDuplicatedOpcode)
	})

	t.Run("unknown mnemonic", func(t *testing.T) {
		var table [0x100]Instruction
		err := parseOpcodeMatrix([]byte(header+"0x02,KIL,IMP,0\n"), &table)

		assert.ErrorContains(t, err, "unknown mnemonic")
	})

	t.Run("unknown mode", func(t *testing.T) {
		var table [0x100]Instruction
		err := parseOpcodeMatrix([]byte(header+"0xA9,LDA,IMX,2\n"), &table)

		assert.ErrorContains(t, err, "address mode")
	})

	t.Run("opcode out of range", func(t *testing.T) {
		var table [0x100]Instruction
		err := parseOpcodeMatrix([]byte(header+"0x100,LDA,IMM,2\n"), &table)

		assert.Error(t, err)
	})
}
