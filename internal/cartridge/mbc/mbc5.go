package mbc

// MBC5 widens the ROM bank register to 9 bits, split across two write
// windows, and is the one controller family where bank 0 is a legal,
// un-normalized selection (SPEC_FULL.md §4.3a) — unlike MBC1/MBC2/MBC3,
// where writing 0 always aliases to bank 1.
type MBC5 struct {
	cart *Cartridge

	romBank    uint16 // 9 bits
	ramBank    uint8  // 4 bits
	ramEnabled bool
}

func NewMBC5(cart *Cartridge) *MBC5 {
	return &MBC5{cart: cart}
}

func (m *MBC5) ReadROM(addr uint16) uint8 {
	if addr <= 0x3FFF {
		return m.cart.romAt(0, addr)
	}
	return m.cart.romAt(int(m.romBank), addr-0x4000)
}

func (m *MBC5) WriteROM(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case addr <= 0x2FFF:
		m.romBank = m.romBank&0x100 | uint16(value)
	case addr <= 0x3FFF:
		m.romBank = m.romBank&0x0FF | uint16(value&0x01)<<8
	case addr <= 0x5FFF:
		m.ramBank = value & 0x0F
	default: // 0x6000-0x7FFF is unused by MBC5.
	}
}

func (m *MBC5) ReadRAM(addr uint16) uint8 {
	if !m.ramEnabled {
		return 0xFF
	}
	value, ok := m.cart.ramAt(int(m.ramBank), addr-0xA000)
	if !ok {
		return 0xFF
	}
	return value
}

func (m *MBC5) WriteRAM(addr uint16, value uint8) {
	if !m.ramEnabled {
		return
	}
	m.cart.setRAMAt(int(m.ramBank), addr-0xA000, value)
}
