package cpu

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOpcode    = errors.New("unknown opcode")
	ErrProgramTooLarge  = errors.New("program does not fit in memory")
	errMalformedMatrix  = errors.New("malformed opcode matrix")
	errDuplicatedOpcode = errors.New("opcode defined twice")
)

// UnknownOpcodeError reports an opcode with no decode table entry.
type UnknownOpcodeError uint8

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%02X", uint8(e))
}

func (e UnknownOpcodeError) Is(err error) bool {
	return err == ErrUnknownOpcode
}

// Opcode returns the byte that failed to decode.
func (e UnknownOpcodeError) Opcode() uint8 {
	return uint8(e)
}
