package cpu

// This file implements the pure 8/16-bit ALU primitives from spec.md §4.1.
// Each function takes its operands and returns the result alongside the
// flag quartet the operation produces; nothing here reaches into CPU
// state, so every primitive is independently testable (spec.md §8's
// add8/sub8 properties are exercised directly against these functions in
// alu_test.go). The teacher (internal/cpu/arithmetic.go) computes the
// same results but folds flag assignment into CPU.setFlag/clearFlag
// side effects — this is that logic pulled out into the value-returning
// shape spec.md §4.1 and §9 (no pointer-returning reads, no hidden state)
// require.

// Add8 computes x+y mod 256 (ADD A,n and 16-bit-pair-adjacent uses).
func Add8(x, y uint8) (uint8, Flags) {
	result := x + y
	return result, Flags{
		Zero:      result == 0,
		HalfCarry: (x&0xF)+(y&0xF) > 0xF,
		Carry:     uint16(x)+uint16(y) > 0xFF,
	}
}

// Adc8 computes x+y+carry mod 256.
func Adc8(x, y uint8, carryIn bool) (uint8, Flags) {
	var c uint8
	if carryIn {
		c = 1
	}
	result := x + y + c
	return result, Flags{
		Zero:      result == 0,
		HalfCarry: (x&0xF)+(y&0xF)+c > 0xF,
		Carry:     uint16(x)+uint16(y)+uint16(c) > 0xFF,
	}
}

// Sub8 computes x-y mod 256.
func Sub8(x, y uint8) (uint8, Flags) {
	result := x - y
	return result, Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: x&0xF < y&0xF,
		Carry:     x < y,
	}
}

// Sbc8 computes x-y-carry mod 256.
func Sbc8(x, y uint8, carryIn bool) (uint8, Flags) {
	var c uint8
	if carryIn {
		c = 1
	}
	result := x - y - c
	return result, Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: x&0xF < (y&0xF)+c,
		Carry:     uint16(x) < uint16(y)+uint16(c),
	}
}

// And8 computes x&y.
func And8(x, y uint8) (uint8, Flags) {
	result := x & y
	return result, Flags{Zero: result == 0, HalfCarry: true}
}

// Or8 computes x|y.
func Or8(x, y uint8) (uint8, Flags) {
	result := x | y
	return result, Flags{Zero: result == 0}
}

// Xor8 computes x^y.
func Xor8(x, y uint8) (uint8, Flags) {
	result := x ^ y
	return result, Flags{Zero: result == 0}
}

// Cp8 compares x against y without returning a result value.
func Cp8(x, y uint8) Flags {
	return Flags{
		Zero:      x == y,
		Subtract:  true,
		HalfCarry: x&0xF < y&0xF,
		Carry:     x < y,
	}
}

// Inc8 computes x+1 mod 256. The carry flag is the caller's responsibility
// to preserve (spec.md §4.1: "C - unchanged").
func Inc8(x uint8) (uint8, Flags) {
	result := x + 1
	return result, Flags{
		Zero:      result == 0,
		HalfCarry: x&0xF == 0xF,
	}
}

// Dec8 computes x-1 mod 256. Carry is again left to the caller.
func Dec8(x uint8) (uint8, Flags) {
	result := x - 1
	return result, Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: x&0xF == 0,
	}
}

// Add16 computes x+y mod 65536 for 16-bit register-pair addition (ADD
// HL,rr). Zero is left to the caller: the instruction never touches it.
func Add16(x, y uint16) (uint16, Flags) {
	result := x + y
	return result, Flags{
		HalfCarry: (x&0xFFF)+(y&0xFFF) > 0xFFF,
		Carry:     uint32(x)+uint32(y) > 0xFFFF,
	}
}
