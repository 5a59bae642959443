package cpu

import "testing"

func TestSwapIsSelfInverse(t *testing.T) {
	for x := 0; x < 256; x++ {
		v := uint8(x)
		once, _ := Swap(v)
		twice, _ := Swap(once)
		if twice != v {
			t.Fatalf("Swap(Swap(0x%02X)) = 0x%02X, want 0x%02X", v, twice, v)
		}
	}
}

func TestRlcWrapsBit7IntoCarryAndBit0(t *testing.T) {
	result, flags := Rlc(0x80, true)
	if result != 0x01 {
		t.Fatalf("Rlc(0x80) = 0x%02X, want 0x01", result)
	}
	if !flags.Carry {
		t.Fatalf("Rlc(0x80) should set carry")
	}
}

func TestRlThreadsCarryIn(t *testing.T) {
	result, flags := Rl(0x80, true, true)
	if result != 0x01 {
		t.Fatalf("Rl(0x80, carryIn=true) = 0x%02X, want 0x01", result)
	}
	if !flags.Carry {
		t.Fatalf("Rl(0x80,...) should set carry out")
	}

	result, flags = Rl(0x00, false, true)
	if result != 0x00 || !flags.Zero {
		t.Fatalf("Rl(0x00, carryIn=false) = 0x%02X flags=%+v, want 0x00 and Zero set", result, flags)
	}
}

func TestAccumulatorFormsIgnoreZeroFlag(t *testing.T) {
	_, flags := Rlc(0x00, false)
	if flags.Zero {
		t.Fatalf("RLCA-style call (zeroFlag=false) must force Zero clear even for a zero result")
	}
}

func TestSraPreservesSignBit(t *testing.T) {
	result, flags := Sra(0x81)
	if result != 0xC0 {
		t.Fatalf("Sra(0x81) = 0x%02X, want 0xC0", result)
	}
	if !flags.Carry {
		t.Fatalf("Sra(0x81) should set carry from bit 0")
	}
}

func TestSrlClearsBit7(t *testing.T) {
	result, flags := Srl(0x81)
	if result != 0x40 {
		t.Fatalf("Srl(0x81) = 0x%02X, want 0x40", result)
	}
	if !flags.Carry {
		t.Fatalf("Srl(0x81) should set carry from bit 0")
	}
}
