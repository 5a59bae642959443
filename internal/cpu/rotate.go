package cpu

// Rotate, shift and swap primitives from spec.md §4.1. Pulled into pure
// functions the same way alu.go pulls the arithmetic ops out of the
// teacher's CPU-method style (internal/cpu/rotate.go in the teacher
// mutates c.F as a side effect of each call; here the flag quartet is
// returned instead). zeroFlag lets the CB-prefixed forms compute Z from
// the result while the unprefixed accumulator forms (RLCA/RLA/RRCA/RRA)
// force Z to zero per spec.md §4.1.

// Rlc rotates value left by one bit; bit 7 moves into both the carry flag
// and bit 0.
func Rlc(value uint8, zeroFlag bool) (uint8, Flags) {
	carry := value&0x80 != 0
	result := value<<1 | boolBit(carry)
	return result, Flags{Zero: zeroFlag && result == 0, Carry: carry}
}

// Rl rotates value left through the carry flag.
func Rl(value uint8, carryIn, zeroFlag bool) (uint8, Flags) {
	carryOut := value&0x80 != 0
	result := value<<1 | boolBit(carryIn)
	return result, Flags{Zero: zeroFlag && result == 0, Carry: carryOut}
}

// Rrc rotates value right by one bit; bit 0 moves into both the carry flag
// and bit 7.
func Rrc(value uint8, zeroFlag bool) (uint8, Flags) {
	carry := value&0x01 != 0
	result := value>>1 | boolBit(carry)<<7
	return result, Flags{Zero: zeroFlag && result == 0, Carry: carry}
}

// Rr rotates value right through the carry flag.
func Rr(value uint8, carryIn, zeroFlag bool) (uint8, Flags) {
	carryOut := value&0x01 != 0
	result := value>>1 | boolBit(carryIn)<<7
	return result, Flags{Zero: zeroFlag && result == 0, Carry: carryOut}
}

// Sla shifts value left by one bit; bit 7 moves into the carry flag, bit 0
// is cleared.
func Sla(value uint8) (uint8, Flags) {
	carry := value&0x80 != 0
	result := value << 1
	return result, Flags{Zero: result == 0, Carry: carry}
}

// Sra shifts value right arithmetically: bit 0 moves into the carry flag,
// bit 7 is preserved.
func Sra(value uint8) (uint8, Flags) {
	carry := value&0x01 != 0
	result := value>>1 | value&0x80
	return result, Flags{Zero: result == 0, Carry: carry}
}

// Srl shifts value right logically: bit 0 moves into the carry flag, bit 7
// is cleared.
func Srl(value uint8) (uint8, Flags) {
	carry := value&0x01 != 0
	result := value >> 1
	return result, Flags{Zero: result == 0, Carry: carry}
}

// Swap exchanges the high and low nibbles of value. It is its own inverse:
// Swap(Swap(x)) == x (spec.md §8).
func Swap(value uint8) (uint8, Flags) {
	result := value<<4 | value>>4
	return result, Flags{Zero: result == 0}
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
