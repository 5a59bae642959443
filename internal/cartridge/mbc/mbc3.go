package mbc

// MBC3 widens the ROM bank register to 7 bits and adds RTC register
// selection alongside RAM banking. RTC is a Non-goal (spec.md §1): its
// register range is recognized so ROM/RAM banking keeps working, but reads
// return 0 and writes are dropped (SPEC_FULL.md §4.3a).
type MBC3 struct {
	cart *Cartridge

	romBank    uint8
	ramBank    uint8 // 0-3 selects a RAM bank; 0x08-0x0C selects an RTC register
	ramEnabled bool
}

func NewMBC3(cart *Cartridge) *MBC3 {
	return &MBC3{cart: cart, romBank: 1}
}

func (m *MBC3) ReadROM(addr uint16) uint8 {
	if addr <= 0x3FFF {
		return m.cart.romAt(0, addr)
	}
	return m.cart.romAt(int(m.romBank), addr-0x4000)
}

func (m *MBC3) WriteROM(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case addr <= 0x3FFF:
		m.romBank = value & 0x7F
		if m.romBank == 0 {
			m.romBank = 1
		}
	case addr <= 0x5FFF:
		m.ramBank = value
	default: // 0x6000-0x7FFF: RTC latch clock data, a Non-goal no-op here.
	}
}

func (m *MBC3) ReadRAM(addr uint16) uint8 {
	if !m.ramEnabled {
		return 0xFF
	}
	if m.ramBank >= 0x08 {
		return 0 // RTC register read, unimplemented
	}
	value, ok := m.cart.ramAt(int(m.ramBank), addr-0xA000)
	if !ok {
		return 0xFF
	}
	return value
}

func (m *MBC3) WriteRAM(addr uint16, value uint8) {
	if !m.ramEnabled || m.ramBank >= 0x08 {
		return // RTC register write, unimplemented
	}
	m.cart.setRAMAt(int(m.ramBank), addr-0xA000, value)
}
