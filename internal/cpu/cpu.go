// Package cpu implements a cycle-approximate 6502 interpreter.
//
// A CPU owns its registers, status flags and a flat memory buffer.
// The driver loads a raw program with Load and calls Tick once per
// instruction; Tick fails only when the opcode at PC has no decode entry.
package cpu

import "fmt"

const (
	// memSizeBytes is the size of the flat address space.
	// Every address is taken modulo this size, so $FFFF aliases $0000.
	memSizeBytes = 0xffff

	// LoadAddr is where Load copies the program and where execution starts.
	LoadAddr = uint16(0x0600)

	// The stack is located in the fixed memory page $0100 to $01FF.
	stackStartAddr = uint16(0x100)

	initialSP = uint8(0xfd)

	// Reset walks the stack pointer down by three without writing,
	// as the 6502 reset sequence does.
	resetSPOffset = uint8(3)
)

// Registers is a snapshot of the programmer visible CPU state.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  Status
}

type CPU struct {
	a      uint8               // used to perform arithmetic and logical operations
	x      uint8               // used primarily for indexing and temporary storage
	y      uint8               // used mainly for indexing and temporary storage
	sp     uint8               // stack pointer, offset into page one
	pc     uint16              // program counter
	status Status              // processor flags
	mem    [memSizeBytes]uint8 // owned address space
	cycles uint64              // approximate number of cycles executed so far

	addrMode     AddrMode // address mode of the current instruction
	operandAddr  uint16   // effective address of the operand
	operandValue uint8    // value of the operand
}

// New returns a CPU ready to run a program loaded at LoadAddr.
func New() *CPU {
	return &CPU{
		pc:     LoadAddr,
		sp:     initialSP,
		status: Status(0).WithInterruptDisable(true).WithCarry(true),
	}
}

// Reset clears A, X and Y and moves the stack pointer down by three.
// Memory, flags and the program counter are left alone.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp -= resetSPOffset
}

// Load copies program into memory at LoadAddr.
func (c *CPU) Load(program []uint8) error {
	if len(program) > memSizeBytes-int(LoadAddr) {
		return fmt.Errorf("%w: %d bytes at $%04X", ErrProgramTooLarge, len(program), LoadAddr)
	}
	copy(c.mem[LoadAddr:], program)
	return nil
}

// Tick runs one fetch-decode-execute cycle.
// On a decode failure nothing is changed and the error wraps
// an UnknownOpcodeError.
func (c *CPU) Tick() error {
	opcode := c.ReadByte(c.pc)
	instr, err := Decode(opcode)
	if err != nil {
		return fmt.Errorf("pc $%04X: %w", c.pc, err)
	}

	c.fetch(instr.Mode)
	// control transfer instructions overwrite pc after this advance
	c.pc += instr.Mode.Len()
	instr.operate(c)
	c.cycles += uint64(instr.Cycles)

	c.addrMode = ""
	c.operandAddr = 0
	c.operandValue = 0
	return nil
}

// Registers returns a copy of the registers and flags.
func (c *CPU) Registers() Registers {
	return Registers{
		A:  c.a,
		X:  c.x,
		Y:  c.y,
		SP: c.sp,
		PC: c.pc,
		P:  c.status,
	}
}

// Cycles returns the approximate number of cycles executed since New.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

func memIndex(addr uint16) int {
	return int(addr) % memSizeBytes
}

func (c *CPU) ReadByte(addr uint16) uint8 {
	return c.mem[memIndex(addr)]
}

// ReadWord reads a little-endian word: low byte at addr, high at addr+1.
func (c *CPU) ReadWord(addr uint16) uint16 {
	return uint16(c.ReadByte(addr)) | uint16(c.ReadByte(addr+1))<<8
}

func (c *CPU) WriteByte(addr uint16, data uint8) {
	c.mem[memIndex(addr)] = data
}

func (c *CPU) PushByte(data uint8) {
	c.WriteByte(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) PopByte() uint8 {
	c.sp++
	return c.ReadByte(stackStartAddr | uint16(c.sp))
}

// PushWord pushes the high byte first so PopWord reads it back little-endian.
func (c *CPU) PushWord(data uint16) {
	c.PushByte(uint8(data >> 8))
	c.PushByte(uint8(data & 0xff))
}

func (c *CPU) PopWord() uint16 {
	lo := uint16(c.PopByte())
	hi := uint16(c.PopByte())
	return lo | hi<<8
}

func (c *CPU) setFlagsZN(value uint8) {
	c.status.SetZero(value == 0)
	c.status.SetNegative(value&flagN > 0)
}
