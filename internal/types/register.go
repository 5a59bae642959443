package types

// Register holds one 8-bit SM83 register (A, B, C, D, E, F, H or L).
type Register = uint8

// RegisterPair composes two Registers into the 16-bit view the CPU uses
// for BC, DE, HL and AF. High holds the letter that comes first in the
// pair's name (e.g. B in BC), matching the big-endian-within-the-pair
// layout spec.md §3 requires.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair's current value.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 writes both halves of the pair.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers is the SM83 register file: eight 8-bit registers, addressable
// individually or, via the pair pointers below, as BC/DE/HL/AF.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// NewRegisters returns a Registers with its pair pointers wired to its own
// fields. The pairs alias the individual registers; writing through a pair
// is visible through the single-register fields and vice versa.
func NewRegisters() *Registers {
	r := &Registers{}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	r.AF = &RegisterPair{&r.A, &r.F}
	return r
}
