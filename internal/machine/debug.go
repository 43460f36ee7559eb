package machine

import "fmt"

// DebugInfo is what a front-end needs to draw the CPU state.
type DebugInfo struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	P      uint8
	Cycles uint64
	Steps  uint64
	Paused bool
	Halted bool
}

func (m *Machine) DebugInfo() DebugInfo {
	regs := m.cpu.Registers()
	return DebugInfo{
		PC:     regs.PC,
		A:      regs.A,
		X:      regs.X,
		Y:      regs.Y,
		SP:     regs.SP,
		P:      regs.P.Byte(),
		Cycles: m.cpu.Cycles(),
		Steps:  m.ticCounter,
		Paused: m.paused,
		Halted: m.halted,
	}
}

// StatusString renders P as NV-BDIZC, upper case when set.
func (d DebugInfo) StatusString() string {
	const names = "NV-BDIZC"
	out := []byte(names)
	for i := range out {
		bit := uint8(0x80) >> i
		if out[i] != '-' && d.P&bit == 0 {
			out[i] += 'a' - 'A'
		}
	}
	return string(out)
}

// State is a one word summary for status lines.
func (d DebugInfo) State() string {
	switch {
	case d.Halted:
		return "HALTED"
	case d.Paused:
		return "PAUSED"
	}
	return "RUNNING"
}

func hex8(v uint8) string {
	return fmt.Sprintf("$%02X", v)
}

func hex16(v uint16) string {
	return fmt.Sprintf("$%04X", v)
}
