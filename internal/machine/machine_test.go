package machine

import "testing"

func buildMinimalROM() []byte {
	rom := make([]byte, 32*1024)
	copy(rom[0x104:], []byte{
		0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
		0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
		0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
	})
	rom[0x100] = 0x00 // NOP at the CPU's entry point
	rom[0x101] = 0xC3 // JP 0x0101 (spin forever so the loop has something to run)
	rom[0x102] = 0x01
	rom[0x103] = 0x01
	return rom
}

func TestNewRejectsUndersizedROM(t *testing.T) {
	_, err := New(make([]byte, 100), Options{})
	if err == nil {
		t.Fatalf("expected an error for a 100-byte ROM")
	}
}

func TestNewRejectsNonPowerOfTwoSize(t *testing.T) {
	_, err := New(make([]byte, 40*1024), Options{})
	if err == nil {
		t.Fatalf("expected an error for a non-power-of-two ROM size")
	}
}

func TestNewAcceptsMinimalValidROM(t *testing.T) {
	m, err := New(buildMinimalROM(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.CPU.PC != 0x0100 {
		t.Fatalf("PC = 0x%04X, want 0x0100", m.CPU.PC)
	}
}

func TestRunStopsOnIllegalOpcode(t *testing.T) {
	rom := buildMinimalROM()
	rom[0x100] = 0xD3 // illegal opcode
	m, err := New(rom, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = m.Run(nil)
	if err == nil {
		t.Fatalf("expected Run to report the illegal opcode")
	}
	var execErr *ExecutionError
	if e, ok := err.(*ExecutionError); ok {
		execErr = e
	}
	if execErr == nil {
		t.Fatalf("err = %v, want *ExecutionError", err)
	}
}

func TestRunStopsWhenToldTo(t *testing.T) {
	m, err := New(buildMinimalROM(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	calls := 0
	err = m.Run(func() bool {
		calls++
		return calls > 10
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Clock != 10 {
		t.Fatalf("Clock = %d, want 10", m.Clock)
	}
}
