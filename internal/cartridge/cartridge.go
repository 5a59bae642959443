package cartridge

import (
	"fmt"

	"github.com/torphedo-core/dmgcore/internal/cartridge/mbc"
)

// Cartridge bundles the parsed header, the raw ROM image, the allocated
// external RAM, and the bank controller selected for it.
type Cartridge struct {
	Header     Header
	Kind       ControllerKind
	Caps       Capabilities
	Controller mbc.Controller

	backing *mbc.Cartridge
}

// builtinRAMSizeMBC2 is MBC2's fixed 512x4-bit internal RAM, allocated
// regardless of what the header's ram_size byte says (it is always 0 for
// MBC2 titles, per SPEC_FULL.md §4.3a).
const builtinRAMSizeMBC2 = 512

// Load parses rom's header, selects its controller and wires external RAM.
// It returns an error only for a ROM too short to hold a header or for a
// controller kind this core has no state machine for (spec.md §4.6:
// "refuse to enter the tick loop"); a failed Nintendo logo check, a failed
// header checksum or an unrecognized cart_hardware byte are reported
// through warn, never as an error.
func Load(rom []byte, warn func(format string, args ...interface{})) (*Cartridge, error) {
	hdr, err := Parse(rom)
	if err != nil {
		return nil, err
	}
	if !hdr.LogoOK {
		warn("cartridge %q failed the Nintendo logo check, proceeding anyway", hdr.TitleOld)
	}
	if computed, ok := VerifyChecksum(rom); !ok {
		warn("cartridge %q failed the header checksum (computed 0x%02X, want 0x%02X), proceeding anyway", hdr.TitleOld, computed, hdr.HeaderChecksum)
	}

	kind, caps, known := Hardware(hdr.CartHardware)
	if !known {
		warn("unrecognized cart_hardware byte 0x%02X, defaulting to NONE", hdr.CartHardware)
	}

	ramBankCount := hdr.RAMBankCount
	ramSize := ramBankCount * 0x2000
	if kind == ControllerMBC2 {
		ramSize = builtinRAMSizeMBC2
	}

	backing := &mbc.Cartridge{
		ROM:          rom,
		RAM:          make([]byte, ramSize),
		ROMBankCount: hdr.ROMBankCount,
		RAMBankCount: ramBankCount,
	}

	controller, err := mbc.New(kind.String(), backing)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	return &Cartridge{
		Header:     hdr,
		Kind:       kind,
		Caps:       caps,
		Controller: controller,
		backing:    backing,
	}, nil
}

// String summarizes the cartridge for the machine driver's startup log,
// grounded on original_source/src/rom.c's print_rom_info.
func (c *Cartridge) String() string {
	name := c.Header.TitleNew
	if len(c.Header.TitleOld) >= 11 {
		name = c.Header.TitleOld
	}
	region := "World"
	if c.Header.Region != 0 {
		region = "Overseas only"
	}
	return fmt.Sprintf(
		"%q controller=%s rom_banks=%d ram_banks=%d region=%s version=%d",
		name, c.Kind, c.Header.ROMBankCount, c.Header.RAMBankCount, region, c.Header.GameVersion,
	)
}
