package cpu

import "testing"

func TestAdd8Carry(t *testing.T) {
	result, flags := Add8(0xFF, 0x01)
	if result != 0x00 {
		t.Fatalf("result = 0x%02X, want 0x00", result)
	}
	if !flags.Zero || !flags.Carry || !flags.HalfCarry {
		t.Fatalf("flags = %+v, want Z,H,C all set", flags)
	}
	if flags.Subtract {
		t.Fatalf("Subtract should be clear for ADD")
	}
}

func TestAdd8NoFlags(t *testing.T) {
	result, flags := Add8(0x01, 0x01)
	if result != 0x02 {
		t.Fatalf("result = 0x%02X, want 0x02", result)
	}
	if flags.Zero || flags.Carry || flags.HalfCarry || flags.Subtract {
		t.Fatalf("flags = %+v, want all clear", flags)
	}
}

func TestSub8Borrow(t *testing.T) {
	result, flags := Sub8(0x00, 0x01)
	if result != 0xFF {
		t.Fatalf("result = 0x%02X, want 0xFF", result)
	}
	if !flags.Carry || !flags.HalfCarry || !flags.Subtract {
		t.Fatalf("flags = %+v, want N,H,C set", flags)
	}
}

func TestIncDecAreInverse(t *testing.T) {
	for x := 0; x < 256; x++ {
		v := uint8(x)
		inc, _ := Inc8(v)
		dec, _ := Dec8(inc)
		if dec != v {
			t.Fatalf("Dec8(Inc8(0x%02X)) = 0x%02X, want 0x%02X", v, dec, v)
		}
	}
}

func TestInc8HalfCarry(t *testing.T) {
	_, flags := Inc8(0x0F)
	if !flags.HalfCarry {
		t.Fatalf("Inc8(0x0F) should set half carry")
	}
	_, flags = Inc8(0xFF)
	if !flags.Zero {
		t.Fatalf("Inc8(0xFF) should wrap to zero")
	}
}

func TestCp8DoesNotReturnResult(t *testing.T) {
	flags := Cp8(0x05, 0x05)
	if !flags.Zero {
		t.Fatalf("Cp8(5,5) should set Zero")
	}
	flags = Cp8(0x03, 0x05)
	if !flags.Carry {
		t.Fatalf("Cp8(3,5) should set Carry (borrow)")
	}
}

func TestAnd8AlwaysSetsHalfCarry(t *testing.T) {
	_, flags := And8(0xFF, 0x00)
	if !flags.HalfCarry {
		t.Fatalf("And8 must always set half carry")
	}
	if !flags.Zero {
		t.Fatalf("And8(0xFF,0) should be zero")
	}
}

func TestOrXorNeverSetHalfCarryOrCarry(t *testing.T) {
	_, orFlags := Or8(0xF0, 0x0F)
	_, xorFlags := Xor8(0xFF, 0xFF)
	if orFlags.HalfCarry || orFlags.Carry {
		t.Fatalf("Or8 flags = %+v, want H,C clear", orFlags)
	}
	if !xorFlags.Zero || xorFlags.HalfCarry || xorFlags.Carry {
		t.Fatalf("Xor8(x,x) flags = %+v, want only Z set", xorFlags)
	}
}

func TestAdd16HalfCarryAndCarryOnBit11AndBit15(t *testing.T) {
	_, flags := Add16(0x0FFF, 0x0001)
	if !flags.HalfCarry {
		t.Fatalf("Add16 should set half carry across bit 11")
	}
	_, flags = Add16(0xFFFF, 0x0001)
	if !flags.Carry {
		t.Fatalf("Add16 should set carry across bit 15")
	}
}
