package machine

import (
	"github.com/nevisdale/mos6502/internal/cpu"
	"github.com/sirupsen/logrus"
)

// Trace describes an instruction about to execute, with the registers
// as they were before it ran.
type Trace struct {
	PC        uint16
	Opcode    uint8
	Name      string
	Mode      cpu.AddrMode
	Registers cpu.Registers
	Cycles    uint64
}

type Tracer interface {
	Trace(t Trace)
}

type nopTracer struct{}

func (nopTracer) Trace(Trace) {}

// LogTracer writes one debug entry per instruction.
type LogTracer struct {
	Logger logrus.FieldLogger
}

func NewLogTracer(logger logrus.FieldLogger) *LogTracer {
	return &LogTracer{Logger: logger}
}

func (l *LogTracer) Trace(t Trace) {
	l.Logger.WithFields(logrus.Fields{
		"pc":     hex16(t.PC),
		"opcode": hex8(t.Opcode),
		"a":      hex8(t.Registers.A),
		"x":      hex8(t.Registers.X),
		"y":      hex8(t.Registers.Y),
		"sp":     hex8(t.Registers.SP),
		"p":      t.Registers.P.String(),
		"cyc":    t.Cycles,
	}).Debugf("%s {%s}", t.Name, t.Mode)
}
