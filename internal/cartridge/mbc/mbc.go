// Package mbc implements the cartridge memory bank controllers spec.md
// §4.3 describes: MBC1 at full fidelity, MBC2/3/5 well enough to run
// ROM-bank-switching titles without their timer/RTC/rumble peripherals,
// and MBC6/7 recognized but served by the non-banking None controller
// (SPEC_FULL.md §4.3a).
//
// Grounded on original_source/src/memory_controllers.c's controller_read/
// controller_write_8_bit (the authoritative bank-offset arithmetic,
// including the zero_bank_number/high_bank_number split) and the teacher's
// internal/cartridge/mbc.go MemoryBankedCartridge (the offset-computing,
// non-pointer-returning shape this package follows per spec.md §9).
package mbc

import "fmt"

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// Controller is the bus.Controller implementation every MBC in this
// package satisfies: ROM/RAM reads and writes expressed as pure offset
// computations against the owning Cartridge's byte slices, never as
// pointers handed back to the caller (spec.md §9).
type Controller interface {
	ReadROM(addr uint16) uint8
	WriteROM(addr uint16, value uint8)
	ReadRAM(addr uint16) uint8
	WriteRAM(addr uint16, value uint8)
}

// Cartridge is the backing store every controller bank-switches over: the
// full ROM image (never written) and the allocated external RAM (written
// through the RAM window). Controllers never resize or reallocate either
// slice (spec.md §3's "bus borrows
// pointers... never reallocates", re-expressed here as "never resizes the
// slices it was given").
type Cartridge struct {
	ROM          []byte
	RAM          []byte
	ROMBankCount int
	RAMBankCount int
}

// romAt returns the byte at offsetInBank within ROM bank bank, or 0xFF if
// that position lies outside c.ROM. Bank numbers are not clamped here;
// each controller applies its own clamping rule before calling it.
func (c *Cartridge) romAt(bank int, offsetInBank uint16) uint8 {
	idx := bank*romBankSize + int(offsetInBank)
	if idx < 0 || idx >= len(c.ROM) {
		return 0xFF
	}
	return c.ROM[idx]
}

func (c *Cartridge) ramAt(bank int, offsetInBank uint16) (uint8, bool) {
	idx := bank*ramBankSize + int(offsetInBank)
	if idx < 0 || idx >= len(c.RAM) {
		return 0xFF, false
	}
	return c.RAM[idx], true
}

func (c *Cartridge) setRAMAt(bank int, offsetInBank uint16, value uint8) {
	idx := bank*ramBankSize + int(offsetInBank)
	if idx < 0 || idx >= len(c.RAM) {
		return
	}
	c.RAM[idx] = value
}

// New selects the controller implementation for kind. It returns an error
// for a kind no concrete state machine exists for, matching spec.md §4.6's
// "refuse to enter the tick loop" contract.
func New(kind string, cart *Cartridge) (Controller, error) {
	switch kind {
	case "NONE":
		return &None{cart: cart}, nil
	case "MBC1":
		return NewMBC1(cart), nil
	case "MBC2":
		return NewMBC2(cart), nil
	case "MBC3":
		return NewMBC3(cart), nil
	case "MBC5":
		return NewMBC5(cart), nil
	case "MBC6", "MBC7":
		// Recognized (SPEC_FULL.md §4.3a) but not behaviorally specified:
		// MBC6's flash/multi-bank RAM and MBC7's accelerometer/EEPROM have
		// no bank-switch model here, so they fall back to the same
		// passthrough behavior as an unrecognized controller.
		return &None{cart: cart}, nil
	default:
		return nil, fmt.Errorf("mbc: unimplemented controller kind %q", kind)
	}
}
