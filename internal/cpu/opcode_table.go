package cpu

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed opcode_matrix.csv
var opcodeMatrixFileData []byte

// Instruction describes one opcode: its mnemonic, how its operand is
// addressed and its base cycle count.
type Instruction struct {
	Name    string
	Mode    AddrMode
	Cycles  uint8
	operate opcodeFunc
}

// opcodeTable is filled once at init and never written afterwards.
var opcodeTable [0x100]Instruction

func init() {
	if err := parseOpcodeMatrix(opcodeMatrixFileData, &opcodeTable); err != nil {
		panic(fmt.Sprintf("cpu: %s", err))
	}
}

// Decode returns the instruction for opcode, or an UnknownOpcodeError
// when the opcode has no entry.
func Decode(opcode uint8) (Instruction, error) {
	instr := opcodeTable[opcode]
	if instr.operate == nil {
		return Instruction{}, UnknownOpcodeError(opcode)
	}
	return instr, nil
}

func parseOpcodeMatrix(data []byte, table *[0x100]Instruction) error {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.ReuseRecord = true
	_, _ = r.Read() // skip header

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("couldn't read data from csv: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		if len(record) != 4 {
			return fmt.Errorf("%w: record %s: must be 4 parts", errMalformedMatrix, strings.Join(record, string(r.Comma)))
		}

		opcodeByte, err := strconv.ParseUint(record[0], 0, 8)
		if err != nil {
			return fmt.Errorf("invalid format for opcode byte: %w", err)
		}

		fn, err := opcodeFuncFromMnemonic(record[1])
		if err != nil {
			return fmt.Errorf("invalid format for mnemonic: %w", err)
		}

		mode, err := addrModeFromString(record[2])
		if err != nil {
			return fmt.Errorf("invalid format for address mode: %w", err)
		}

		cycles, err := strconv.ParseUint(record[3], 0, 8)
		if err != nil {
			return fmt.Errorf("invalid format for opcode cycles: %w", err)
		}

		if table[opcodeByte].operate != nil {
			return fmt.Errorf("%w: $%02X", errDuplicatedOpcode, opcodeByte)
		}

		table[opcodeByte] = Instruction{
			Name:    strings.ToUpper(record[1]),
			Mode:    mode,
			Cycles:  uint8(cycles),
			operate: fn,
		}
	}

	return nil
}
