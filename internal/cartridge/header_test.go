package cartridge

import "testing"

func buildTestROM(size int) []byte {
	rom := make([]byte, size)
	copy(rom[HeaderOffset+4:], nintendoLogo[:])
	copy(rom[HeaderOffset+52:], []byte("TESTGAME"))
	rom[HeaderOffset+71] = 0x13 // MBC3+RAM+BATTERY
	rom[HeaderOffset+72] = 2    // 128KiB, 8 banks
	rom[HeaderOffset+73] = 3    // 4 RAM banks
	return rom
}

func TestParseDerivesBankCounts(t *testing.T) {
	rom := buildTestROM(0x20000)
	hdr, err := Parse(rom)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if hdr.ROMBankCount != 8 {
		t.Fatalf("ROMBankCount = %d, want 8", hdr.ROMBankCount)
	}
	if hdr.RAMBankCount != 4 {
		t.Fatalf("RAMBankCount = %d, want 4", hdr.RAMBankCount)
	}
	if !hdr.LogoOK {
		t.Fatalf("expected LogoOK true for a correctly-copied logo")
	}
	if hdr.TitleOld != "TESTGAME" {
		t.Fatalf("TitleOld = %q, want %q", hdr.TitleOld, "TESTGAME")
	}
}

func TestParseFlagsCorruptLogoAsWarningNotError(t *testing.T) {
	rom := buildTestROM(0x20000)
	rom[HeaderOffset+4] ^= 0xFF // corrupt one logo byte
	hdr, err := Parse(rom)
	if err != nil {
		t.Fatalf("Parse should not fail on a bad logo: %v", err)
	}
	if hdr.LogoOK {
		t.Fatalf("expected LogoOK false for a corrupted logo")
	}
}

func TestParseRejectsTruncatedROM(t *testing.T) {
	if _, err := Parse(make([]byte, 0x50)); err == nil {
		t.Fatalf("expected an error for a ROM too short to hold a header")
	}
}

func TestRAMBankCountTable(t *testing.T) {
	cases := map[uint8]int{0: 0, 1: 0, 2: 1, 3: 4, 4: 16, 5: 8}
	for byteValue, want := range cases {
		rom := buildTestROM(0x20000)
		rom[HeaderOffset+73] = byteValue
		hdr, err := Parse(rom)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if hdr.RAMBankCount != want {
			t.Fatalf("ram_size=%d -> RAMBankCount = %d, want %d", byteValue, hdr.RAMBankCount, want)
		}
	}
}
