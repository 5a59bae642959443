package cpu

import "testing"

// fakeBus is a flat 64KiB array satisfying MemoryBus, used so CPU tests
// don't need a real cartridge/bus wiring.
type fakeBus struct {
	mem [0x10000]uint8
}

func (b *fakeBus) Read(addr uint16) uint8         { return b.mem[addr] }
func (b *fakeBus) Write(addr uint16, value uint8) { b.mem[addr] = value }

func newTestCPU(program ...uint8) (*CPU, *fakeBus) {
	bus := &fakeBus{}
	copy(bus.mem[0x0100:], program)
	c := New(bus)
	return c, bus
}

// runOne ticks the CPU until the currently-fetched instruction fires,
// returning how many ticks that took.
func runOne(t *testing.T, c *CPU) int {
	t.Helper()
	ticks := 0
	for {
		if err := c.Tick(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ticks++
		if !c.executing {
			return ticks
		}
		if ticks > 32 {
			t.Fatalf("instruction did not retire within 32 ticks")
		}
	}
}

func TestNopTakesOneCycleAndAdvancesPC(t *testing.T) {
	c, _ := newTestCPU(0x00)
	ticks := runOne(t, c)
	if ticks != 1 {
		t.Fatalf("NOP took %d ticks, want 1", ticks)
	}
	if c.PC != 0x0101 {
		t.Fatalf("PC = 0x%04X, want 0x0101", c.PC)
	}
}

func TestLdBImmediate(t *testing.T) {
	c, _ := newTestCPU(0x06, 0x42) // LD B,d8
	runOne(t, c)
	if c.B != 0x42 {
		t.Fatalf("B = 0x%02X, want 0x42", c.B)
	}
	if c.PC != 0x0102 {
		t.Fatalf("PC = 0x%04X, want 0x0102", c.PC)
	}
}

func TestAddAB(t *testing.T) {
	c, _ := newTestCPU(0x80) // ADD A,B
	c.A = 0x3A
	c.B = 0xC6
	runOne(t, c)
	if c.A != 0x00 {
		t.Fatalf("A = 0x%02X, want 0x00", c.A)
	}
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagHalfCarry) {
		t.Fatalf("F = 0x%02X, want Z,H,C set", c.F)
	}
}

func TestIncBHalfCarryPreservesCarry(t *testing.T) {
	c, _ := newTestCPU(0x04) // INC B
	c.B = 0x0F
	c.setFlags(Flags{Carry: true})
	runOne(t, c)
	if c.B != 0x10 {
		t.Fatalf("B = 0x%02X, want 0x10", c.B)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Fatalf("expected half carry set")
	}
	if !c.isFlagSet(FlagCarry) {
		t.Fatalf("INC must not clear a carry flag that was already set")
	}
}

func TestJrConditionalNotTakenCostsTwoCycles(t *testing.T) {
	c, _ := newTestCPU(0x20, 0x05) // JR NZ,+5
	c.setFlags(Flags{Zero: true})  // condition false: NZ fails
	ticks := runOne(t, c)
	if ticks != 2 {
		t.Fatalf("JR NZ (not taken) took %d ticks, want 2", ticks)
	}
	if c.PC != 0x0102 {
		t.Fatalf("PC = 0x%04X, want 0x0102 (fallthrough)", c.PC)
	}
}

func TestJrConditionalTakenCostsThreeCyclesAndJumps(t *testing.T) {
	c, _ := newTestCPU(0x20, 0x05) // JR NZ,+5
	c.setFlags(Flags{Zero: false})
	ticks := runOne(t, c)
	if ticks != 3 {
		t.Fatalf("JR NZ (taken) took %d ticks, want 3", ticks)
	}
	if c.PC != 0x0107 {
		t.Fatalf("PC = 0x%04X, want 0x0107", c.PC)
	}
}

func TestCallAndRetRoundTrip(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x0100] = 0xCD // CALL a16
	bus.mem[0x0101] = 0x50
	bus.mem[0x0102] = 0x00
	bus.mem[0x0050] = 0xC9 // RET
	c := New(bus)

	runOne(t, c) // CALL
	if c.PC != 0x0050 {
		t.Fatalf("PC after CALL = 0x%04X, want 0x0050", c.PC)
	}
	if c.SP != 0xFFFC {
		t.Fatalf("SP after CALL = 0x%04X, want 0xFFFC", c.SP)
	}

	runOne(t, c) // RET
	if c.PC != 0x0103 {
		t.Fatalf("PC after RET = 0x%04X, want 0x0103 (return address)", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Fatalf("SP after RET = 0x%04X, want 0xFFFE", c.SP)
	}
}

func TestPushPopAFMasksLowNibble(t *testing.T) {
	c, _ := newTestCPU(0xF5, 0xF1) // PUSH AF ; POP AF
	c.A = 0x12
	c.F = 0xFF // low nibble should never survive a round trip
	runOne(t, c)
	runOne(t, c)
	if c.A != 0x12 {
		t.Fatalf("A = 0x%02X, want 0x12", c.A)
	}
	if c.F&0x0F != 0 {
		t.Fatalf("F = 0x%02X, want low nibble clear", c.F)
	}
}

func TestIllegalOpcodeReturnsError(t *testing.T) {
	c, _ := newTestCPU(0xD3)
	err := c.Tick()
	if err == nil {
		t.Fatalf("expected error for illegal opcode 0xD3")
	}
	var illegal *ErrIllegalOpcode
	if e, ok := err.(*ErrIllegalOpcode); ok {
		illegal = e
	}
	if illegal == nil || illegal.Opcode != 0xD3 {
		t.Fatalf("err = %v, want ErrIllegalOpcode{Opcode: 0xD3}", err)
	}
}

func TestHaltStopsTicking(t *testing.T) {
	c, _ := newTestCPU(0x76, 0x00) // HALT ; NOP
	runOne(t, c)
	if !c.Halted {
		t.Fatalf("expected Halted after HALT")
	}
	before := c.PC
	if err := c.Tick(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.PC != before {
		t.Fatalf("PC advanced while halted: 0x%04X -> 0x%04X", before, c.PC)
	}
}

func TestDaaAfterBCDAddition(t *testing.T) {
	c, _ := newTestCPU(0x27) // DAA
	c.A = 0x09 + 0x08        // raw binary sum of BCD 09 + 08 = 0x11, half-carry set
	c.setFlags(Flags{HalfCarry: true})
	runOne(t, c)
	if c.A != 0x17 {
		t.Fatalf("A after DAA = 0x%02X, want 0x17 (BCD for 9+8=17)", c.A)
	}
}

func TestCbBitInstructionOnRegister(t *testing.T) {
	c, _ := newTestCPU(0xCB, 0x7F) // BIT 7,A
	c.A = 0x80
	ticks := runOne(t, c)
	if ticks != 3 {
		t.Fatalf("BIT 7,A took %d ticks, want 3", ticks)
	}
	if c.isFlagSet(FlagZero) {
		t.Fatalf("BIT 7,A with A=0x80 should clear Zero")
	}
}

func TestCbBitOnHLCostsFourCycles(t *testing.T) {
	c, bus := newTestCPU(0xCB, 0x46) // BIT 0,(HL)
	c.HL.SetUint16(0xC000)
	bus.mem[0xC000] = 0x01
	ticks := runOne(t, c)
	if ticks != 4 {
		t.Fatalf("BIT 0,(HL) took %d ticks, want 4", ticks)
	}
	if c.isFlagSet(FlagZero) {
		t.Fatalf("BIT 0,(HL) with bit set should clear Zero")
	}
}

func TestCbSwapRegister(t *testing.T) {
	c, _ := newTestCPU(0xCB, 0x37) // SWAP A
	c.A = 0x12
	runOne(t, c)
	if c.A != 0x21 {
		t.Fatalf("A after SWAP = 0x%02X, want 0x21", c.A)
	}
}
