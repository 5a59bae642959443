package mbc

import "testing"

func newMBC1Cart(romBanks, ramBanks int) (*Cartridge, *MBC1) {
	cart := &Cartridge{
		ROM:          make([]byte, romBanks*romBankSize),
		RAM:          make([]byte, ramBanks*ramBankSize),
		ROMBankCount: romBanks,
		RAMBankCount: ramBanks,
	}
	return cart, NewMBC1(cart)
}

// TestBankSelectScenario is spec.md §8 concrete scenario 4.
func TestBankSelectScenario(t *testing.T) {
	cart, m := newMBC1Cart(128, 0)
	cart.ROM[romBankSize*5] = 0x99 // marker byte at the start of bank 5

	m.WriteROM(0x2000, 0x00)
	if m.romBank != 1 {
		t.Fatalf("after writing 0 to 0x2000, romBank = %d, want 1", m.romBank)
	}

	m.WriteROM(0x2000, 0x20) // 0x20 & 0x1F == 0 -> normalizes to 1
	if m.romBank != 1 {
		t.Fatalf("after writing 0x20 (masked to 0), romBank = %d, want 1", m.romBank)
	}

	m.WriteROM(0x2000, 0x05)
	if m.romBank != 5 {
		t.Fatalf("after writing 5, romBank = %d, want 5", m.romBank)
	}

	if got := m.ReadROM(0x4000); got != 0x99 {
		t.Fatalf("ReadROM(0x4000) = 0x%02X, want 0x99 (bank 5 offset 0)", got)
	}
}

// TestRAMEnableScenario is spec.md §8 concrete scenario 5.
func TestRAMEnableScenario(t *testing.T) {
	cart, m := newMBC1Cart(2, 1)
	_ = cart

	if got := m.ReadRAM(0xA000); got != 0xFF {
		t.Fatalf("ReadRAM before enable = 0x%02X, want 0xFF", got)
	}

	m.WriteROM(0x1FFF, 0x0A)
	if !m.ramEnabled {
		t.Fatalf("expected ramEnabled after writing 0x0A to 0x1FFF")
	}

	m.WriteRAM(0xA000, 0x42)
	if got := m.ReadRAM(0xA000); got != 0x42 {
		t.Fatalf("ReadRAM after write = 0x%02X, want 0x42", got)
	}

	m.WriteROM(0x1FFF, 0x00)
	if m.ramEnabled {
		t.Fatalf("expected ramEnabled cleared after writing 0x00 to 0x1FFF")
	}
	if got := m.ReadRAM(0xA000); got != 0xFF {
		t.Fatalf("ReadRAM after disable = 0x%02X, want 0xFF", got)
	}
}

func TestZeroBankNumberThresholds(t *testing.T) {
	cart, m := newMBC1Cart(128, 1)
	cart.RAMBankCount = 1
	m.ramBank = 3

	cart.ROMBankCount = 32
	if got := m.zeroBankNumber(); got != 0 {
		t.Fatalf("zeroBankNumber() with count<=32 = %d, want 0", got)
	}
	cart.ROMBankCount = 64
	if got := m.zeroBankNumber(); got != 3<<4 {
		t.Fatalf("zeroBankNumber() with count<=64 = %d, want %d", got, 3<<4)
	}
	cart.ROMBankCount = 128
	if got := m.zeroBankNumber(); got != 3<<5 {
		t.Fatalf("zeroBankNumber() with count<=128 = %d, want %d", got, 3<<5)
	}
}

func TestHighBankNumberUsesORNotAND(t *testing.T) {
	cart, m := newMBC1Cart(128, 1)
	m.romBank = 0x01
	cart.RAMBankCount = 1
	m.ramBank = 1

	// With the (fixed) OR combination, bit 5 must be set even though
	// romBank's bit 5 is 0 — an AND would zero it out, reproducing the
	// source bug spec.md §4.3/§9 says not to mirror.
	got := m.highBankNumber()
	want := 0x01 | 1<<5
	if got != want {
		t.Fatalf("highBankNumber() = 0x%02X, want 0x%02X (OR combination)", got, want)
	}
}

func TestWritesToROMWindowNeverMutateImage(t *testing.T) {
	cart, m := newMBC1Cart(4, 1)
	before := make([]byte, len(cart.ROM))
	copy(before, cart.ROM)

	m.WriteROM(0x2000, 0x03)
	m.WriteROM(0x0000, 0x0A)

	for i := range cart.ROM {
		if cart.ROM[i] != before[i] {
			t.Fatalf("ROM image mutated at offset %d", i)
		}
	}
}

func TestRAMBankCountOneWrapsModuloEightKiB(t *testing.T) {
	cart, m := newMBC1Cart(2, 1)
	m.ramEnabled = true
	m.mode = 1
	m.ramBank = 1 // irrelevant when RAMBankCount <= 1

	m.WriteRAM(0xA000, 0x7A)
	if got := m.ReadRAM(0xA000); got != 0x7A {
		t.Fatalf("ReadRAM(0xA000) = 0x%02X, want 0x7A", got)
	}
	if got := cart.RAM[0]; got != 0x7A {
		t.Fatalf("expected the single RAM bank's backing slice to hold 0x7A, got 0x%02X", got)
	}
}
