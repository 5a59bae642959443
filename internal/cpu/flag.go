package cpu

// Flag identifies one of the four meaningful bits of the F register. The
// low nibble of F is unused on the SM83 and is always masked to zero.
type Flag = uint8

const (
	FlagZero      Flag = 1 << 7
	FlagSubtract  Flag = 1 << 6
	FlagHalfCarry Flag = 1 << 5
	FlagCarry     Flag = 1 << 4
)

// Flags is the mutable flag quartet that every ALU primitive in alu.go and
// rotate.go updates. It is kept separate from the CPU's F register so the
// primitives stay pure functions of their operands: callers fold a Flags
// value into F themselves (see CPU.setFlags).
type Flags struct {
	Zero, Subtract, HalfCarry, Carry bool
}

// Byte packs the quartet into an F-register value with the low nibble
// clear, per spec.md's "F's low nibble is always zero" invariant.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b |= FlagZero
	}
	if f.Subtract {
		b |= FlagSubtract
	}
	if f.HalfCarry {
		b |= FlagHalfCarry
	}
	if f.Carry {
		b |= FlagCarry
	}
	return b
}

// flagsFromByte reads a quartet out of an F-register value, ignoring the
// (always-zero) low nibble.
func flagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      b&FlagZero != 0,
		Subtract:  b&FlagSubtract != 0,
		HalfCarry: b&FlagHalfCarry != 0,
		Carry:     b&FlagCarry != 0,
	}
}

// flags returns the current flag quartet.
func (c *CPU) flags() Flags {
	return flagsFromByte(c.F)
}

// setFlags writes a flag quartet back into F, masking the low nibble.
func (c *CPU) setFlags(f Flags) {
	c.F = f.Byte()
}

func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}
