package cpu

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused, always reads as 1
	flagV                    // Overflow
	flagN                    // Negative
)

// Status is the processor status register packed in the 6502 P layout.
// The zero value has every flag cleared.
type Status uint8

// StatusFromByte unpacks a P byte as pushed by PHP.
func StatusFromByte(p uint8) Status {
	return Status(p &^ flagU)
}

// Byte returns the packed P value. Bit 5 is always set.
func (s Status) Byte() uint8 {
	return uint8(s) | flagU
}

func (s Status) get(flag uint8) bool {
	return uint8(s)&flag > 0
}

func (s *Status) set(flag uint8, v bool) {
	if v {
		*s |= Status(flag)
		return
	}
	*s &= ^Status(flag)
}

func (s Status) with(flag uint8, v bool) Status {
	s.set(flag, v)
	return s
}

func (s Status) Carry() bool            { return s.get(flagC) }
func (s Status) Zero() bool             { return s.get(flagZ) }
func (s Status) InterruptDisable() bool { return s.get(flagI) }
func (s Status) Decimal() bool          { return s.get(flagD) }
func (s Status) Break() bool            { return s.get(flagB) }
func (s Status) Overflow() bool         { return s.get(flagV) }
func (s Status) Negative() bool         { return s.get(flagN) }

func (s *Status) SetCarry(v bool)            { s.set(flagC, v) }
func (s *Status) SetZero(v bool)             { s.set(flagZ, v) }
func (s *Status) SetInterruptDisable(v bool) { s.set(flagI, v) }
func (s *Status) SetDecimal(v bool)          { s.set(flagD, v) }
func (s *Status) SetBreak(v bool)            { s.set(flagB, v) }
func (s *Status) SetOverflow(v bool)         { s.set(flagV, v) }
func (s *Status) SetNegative(v bool)         { s.set(flagN, v) }

// The With* builders return a copy with one flag changed:
//
//	Status{}.WithInterruptDisable(true).WithCarry(true)
func (s Status) WithCarry(v bool) Status            { return s.with(flagC, v) }
func (s Status) WithZero(v bool) Status             { return s.with(flagZ, v) }
func (s Status) WithInterruptDisable(v bool) Status { return s.with(flagI, v) }
func (s Status) WithDecimal(v bool) Status          { return s.with(flagD, v) }
func (s Status) WithBreak(v bool) Status            { return s.with(flagB, v) }
func (s Status) WithOverflow(v bool) Status         { return s.with(flagV, v) }
func (s Status) WithNegative(v bool) Status         { return s.with(flagN, v) }

// String renders the flags as NV-BDIZC, upper case when set.
func (s Status) String() string {
	const names = "CZIDB-VN"
	out := make([]byte, 8)
	for bit := 0; bit < 8; bit++ {
		c := names[bit]
		if c != '-' && !s.get(1<<bit) {
			c += 'a' - 'A'
		}
		out[7-bit] = c
	}
	return string(out)
}
