package mbc

// MBC1 is the fully-specified controller (spec.md §4.3). State is exactly
// the four fields spec.md §3 names: a 5-bit ROM bank register (zero
// normalizes to 1), a 2-bit RAM bank register, a mode flag, and a RAM
// enable latch.
type MBC1 struct {
	cart *Cartridge

	romBank    uint8
	ramBank    uint8
	mode       uint8
	ramEnabled bool
}

func NewMBC1(cart *Cartridge) *MBC1 {
	return &MBC1{cart: cart, romBank: 1}
}

// zeroBankNumber computes the bank substituted for the fixed 0x0000-0x3FFF
// window in mode 1, for large-ROM cartridges that need ram_bank's bits to
// select which "zero" bank is visible (spec.md §4.3, read translation).
func (m *MBC1) zeroBankNumber() int {
	n := m.cart.ROMBankCount
	switch {
	case n <= 32:
		return 0
	case n <= 64:
		return int(m.ramBank) << 4
	default: // <= 128
		return int(m.ramBank) << 5
	}
}

// highBankNumber computes the bank visible through 0x4000-0x7FFF. Ported
// from original_source/src/memory_controllers.c's high_bank_number, with
// the AND replaced by OR per spec.md §4.3/§9 ("source uses a bit-AND
// where the intended op is a bit-OR... specification above uses OR, which
// is correct" — do not mirror the bug).
func (m *MBC1) highBankNumber() int {
	base := int(m.romBank)
	count := m.cart.ROMBankCount
	if base > count {
		base = count
	}
	switch {
	case count <= 32:
		return base
	case count <= 64:
		return base | int(m.ramBank&0x01)<<5
	default: // <= 128
		return base | int(m.ramBank&0x03)<<5
	}
}

func (m *MBC1) ReadROM(addr uint16) uint8 {
	if addr <= 0x3FFF {
		if m.mode == 1 {
			return m.cart.romAt(m.zeroBankNumber(), addr)
		}
		return m.cart.romAt(0, addr)
	}
	return m.cart.romAt(m.highBankNumber(), addr-0x4000)
}

func (m *MBC1) WriteROM(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case addr <= 0x3FFF:
		mask := uint8(m.cart.ROMBankCount-1) & 0x1F
		m.romBank = value & mask
		if m.romBank == 0 {
			m.romBank = 1
		}
	case addr <= 0x5FFF:
		m.ramBank = value & 0x03
	default: // <= 0x7FFF
		m.mode = value & 0x01
	}
}

func (m *MBC1) ReadRAM(addr uint16) uint8 {
	if !m.ramEnabled || m.cart.RAMBankCount == 0 {
		return 0xFF
	}
	offset := addr - 0xA000
	if m.cart.RAMBankCount <= 1 {
		value, ok := m.cart.ramAt(0, offset%ramBankSize)
		if !ok {
			return 0xFF
		}
		return value
	}
	bank := 0
	if m.mode == 1 {
		bank = int(m.ramBank)
	}
	value, ok := m.cart.ramAt(bank, offset)
	if !ok {
		return 0xFF
	}
	return value
}

func (m *MBC1) WriteRAM(addr uint16, value uint8) {
	if !m.ramEnabled || m.cart.RAMBankCount == 0 {
		return
	}
	offset := addr - 0xA000
	if m.cart.RAMBankCount <= 1 {
		m.cart.setRAMAt(0, offset%ramBankSize, value)
		return
	}
	bank := 0
	if m.mode == 1 {
		bank = int(m.ramBank)
	}
	m.cart.setRAMAt(bank, offset, value)
}
