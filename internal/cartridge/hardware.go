package cartridge

// ControllerKind identifies which bank-switching logic a cartridge needs.
type ControllerKind int

const (
	ControllerNone ControllerKind = iota
	ControllerMBC1
	ControllerMBC2
	ControllerMBC3
	ControllerMBC5
	ControllerMBC6
	ControllerMBC7
	ControllerMMM01
	ControllerBandaiTama5
	ControllerHuC3
)

func (k ControllerKind) String() string {
	switch k {
	case ControllerNone:
		return "NONE"
	case ControllerMBC1:
		return "MBC1"
	case ControllerMBC2:
		return "MBC2"
	case ControllerMBC3:
		return "MBC3"
	case ControllerMBC5:
		return "MBC5"
	case ControllerMBC6:
		return "MBC6"
	case ControllerMBC7:
		return "MBC7"
	case ControllerMMM01:
		return "MMM01"
	case ControllerBandaiTama5:
		return "BANDAI_TAMA5"
	case ControllerHuC3:
		return "HuC3"
	default:
		return "UNKNOWN"
	}
}

// Capabilities is the fixed set of independent boolean capabilities a
// cart_hardware byte can add (spec.md §3/§6).
type Capabilities struct {
	HasRAM     bool
	HasBattery bool
	HasTimer   bool
	HasRumble  bool
	HasCamera  bool
	HasSensor  bool
}

// hardwareEntry is one row of the cart_hardware → (controller, capability
// set) table.
type hardwareEntry struct {
	kind ControllerKind
	caps Capabilities
}

// hardwareTable is the exact byte → (controller, capabilities) mapping
// from spec.md §6, stored as a map keyed by the literal byte rather than a
// switch, so there is no possibility of inheriting the unintentional
// fall-through original_source/src/rom.c's get_cart_hardware exhibits
// (spec.md §9: "treat each case as distinct").
var hardwareTable = map[uint8]hardwareEntry{
	0x00: {ControllerNone, Capabilities{}},
	0x01: {ControllerMBC1, Capabilities{}},
	0x02: {ControllerMBC1, Capabilities{HasRAM: true}},
	0x03: {ControllerMBC1, Capabilities{HasRAM: true, HasBattery: true}},
	0x05: {ControllerMBC2, Capabilities{}},
	0x06: {ControllerMBC2, Capabilities{HasBattery: true}},
	0x08: {ControllerNone, Capabilities{HasRAM: true}},
	0x09: {ControllerNone, Capabilities{HasRAM: true, HasBattery: true}},
	0x0B: {ControllerMMM01, Capabilities{}},
	0x0C: {ControllerMMM01, Capabilities{HasRAM: true}},
	0x0D: {ControllerMMM01, Capabilities{HasRAM: true, HasBattery: true}},
	0x0F: {ControllerMBC3, Capabilities{HasTimer: true, HasBattery: true}},
	0x10: {ControllerMBC3, Capabilities{HasRAM: true, HasTimer: true, HasBattery: true}},
	0x11: {ControllerMBC3, Capabilities{}},
	0x12: {ControllerMBC3, Capabilities{HasRAM: true}},
	0x13: {ControllerMBC3, Capabilities{HasRAM: true, HasBattery: true}},
	0x19: {ControllerMBC5, Capabilities{}},
	0x1A: {ControllerMBC5, Capabilities{HasRAM: true}},
	0x1B: {ControllerMBC5, Capabilities{HasRAM: true, HasBattery: true}},
	0x1C: {ControllerMBC5, Capabilities{HasRumble: true}},
	0x1D: {ControllerMBC5, Capabilities{HasRumble: true, HasRAM: true}},
	0x1E: {ControllerMBC5, Capabilities{HasRumble: true, HasRAM: true, HasBattery: true}},
	0x20: {ControllerMBC6, Capabilities{}},
	0x22: {ControllerMBC7, Capabilities{HasSensor: true, HasRumble: true, HasRAM: true, HasBattery: true}},
	0xFC: {ControllerNone, Capabilities{HasCamera: true}},
	0xFD: {ControllerBandaiTama5, Capabilities{}},
	0xFE: {ControllerHuC3, Capabilities{}},
	0xFF: {ControllerHuC3, Capabilities{HasRAM: true, HasBattery: true}},
}

// Hardware returns the controller kind and capability set for a
// cart_hardware byte. An unrecognized byte defaults to NONE with no
// capabilities and is the caller's cue to log a WARNING data anomaly
// (spec.md §7) — it is never an error by itself.
func Hardware(cartHardware uint8) (ControllerKind, Capabilities, bool) {
	entry, ok := hardwareTable[cartHardware]
	if !ok {
		return ControllerNone, Capabilities{}, false
	}
	return entry.kind, entry.caps, true
}
