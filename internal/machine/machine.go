package machine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nevisdale/mos6502/internal/cpu"
)

const opcodeBRK = uint8(0x00)

// ErrHalted is returned by Tic once the machine has stopped on BRK
// or on an earlier error.
var ErrHalted = errors.New("machine halted")

type Machine struct {
	cpu    *cpu.CPU
	tracer Tracer

	stopOnBRK bool
	paused    bool
	oneStep   bool
	halted    bool
	err       error

	ticCounter uint64
}

type Option func(m *Machine)

// WithTracer reports every executed instruction to t.
func WithTracer(t Tracer) Option {
	return func(m *Machine) {
		m.tracer = t
	}
}

// WithStopOnBRK halts the machine when PC reaches a BRK opcode.
// Enabled by default.
func WithStopOnBRK(v bool) Option {
	return func(m *Machine) {
		m.stopOnBRK = v
	}
}

func New(opts ...Option) *Machine {
	m := &Machine{
		cpu:       cpu.New(),
		tracer:    nopTracer{},
		stopOnBRK: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) Load(program []uint8) error {
	if err := m.cpu.Load(program); err != nil {
		return fmt.Errorf("couldn't load program: %w", err)
	}
	return nil
}

// LoadFile loads a raw program image. The file is copied byte for byte,
// no header is expected.
func (m *Machine) LoadFile(path string) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("couldn't read the program: %w", err)
	}
	return m.Load(program)
}

func (m *Machine) Reset() {
	m.cpu.Reset()
	m.halted = false
	m.err = nil
	m.ticCounter = 0
}

// Tic executes one instruction unless the machine is paused.
// A pending single step runs once and pauses again.
func (m *Machine) Tic() error {
	if m.halted {
		if m.err != nil {
			return m.err
		}
		return ErrHalted
	}

	if m.paused {
		if !m.oneStep {
			return nil
		}
		m.oneStep = false
	}

	regs := m.cpu.Registers()
	opcode := m.cpu.ReadByte(regs.PC)
	if m.stopOnBRK && opcode == opcodeBRK {
		m.halted = true
		return ErrHalted
	}

	instr, err := cpu.Decode(opcode)
	if err == nil {
		m.tracer.Trace(Trace{
			PC:        regs.PC,
			Opcode:    opcode,
			Name:      instr.Name,
			Mode:      instr.Mode,
			Registers: regs,
			Cycles:    m.cpu.Cycles(),
		})
	}

	if err := m.cpu.Tick(); err != nil {
		m.halted = true
		m.err = err
		return err
	}
	m.ticCounter++
	return nil
}

// Run executes instructions until the machine halts, ctx is done or
// maxSteps instructions ran. maxSteps of 0 means no limit.
// Halting on BRK is not an error.
func (m *Machine) Run(ctx context.Context, maxSteps uint64) error {
	for steps := uint64(0); maxSteps == 0 || steps < maxSteps; steps++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Tic(); err != nil {
			if errors.Is(err, ErrHalted) && m.err == nil {
				return nil
			}
			return err
		}
	}
	return nil
}

func (m *Machine) TogglePause() {
	m.paused = !m.paused
	m.oneStep = false
}

// OneStepAndStop pauses the machine after the next instruction.
func (m *Machine) OneStepAndStop() {
	m.paused = true
	m.oneStep = true
}

func (m *Machine) Paused() bool {
	return m.paused
}

func (m *Machine) Halted() bool {
	return m.halted
}

// Steps returns the number of instructions executed since the last reset.
func (m *Machine) Steps() uint64 {
	return m.ticCounter
}

func (m *Machine) ReadByte(addr uint16) uint8 {
	return m.cpu.ReadByte(addr)
}

func (m *Machine) Disassemble() map[uint16]string {
	return m.cpu.Disassemble()
}
