// Package cpu implements the SM83 interpreter: opcode fetch/decode/execute
// for the unprefixed and 0xCB-prefixed instruction sets, flag semantics,
// PC/SP management and the per-instruction machine-cycle pacer.
//
// Dispatch is table-driven, grounded on the teacher's
// internal/cpu/instruction.go ([0x100]Instruction array keyed by opcode,
// each entry carrying a name, length and a closure) generalized with the
// registration loops the teacher sketches for the regular LD/ALU/CB
// families (internal/cpu/decode.go's xxyyyzzz-style grouping, and the
// DefineInstruction helper used by internal/cpu/rotate.go for RLCA/RLA/
// RRCA/RRA).
package cpu

import (
	"fmt"

	"github.com/torphedo-core/dmgcore/internal/types"
)

// MemoryBus is the narrow surface the CPU needs from the bus (spec.md
// §4.4): two 8-bit primitives. 16-bit access is composed from these in
// read16/write16 below, never exposed as a bus method the CPU could bypass.
type MemoryBus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// addrIE is the interrupt-enable register's address; the CPU mirrors IME
// to it on every non-firing tick (spec.md §4.5).
const addrIE = 0xFFFF

// CPU is the SM83 interpreter. It owns the register file and the pacer
// state; it borrows the bus for the duration of a tick and never retains
// the pointer beyond it.
type CPU struct {
	*types.Registers

	SP uint16
	PC uint16

	// IME is the interrupt master enable flag. The reduced core tracks
	// only this bit; full interrupt vectoring is a collaborator's
	// responsibility (spec.md §4.5).
	IME bool

	bus MemoryBus

	// pacer state (spec.md §4.5)
	executing bool
	remaining uint8

	pending pendingInstruction

	// Halted suspends ticking until an external caller clears it (e.g.
	// because a peripheral reported a pending interrupt). The HALT
	// instruction sets it; nothing in the hard core clears it (spec.md
	// §4.5).
	Halted bool

	trace trace
}

// pendingInstruction is the decoded-but-not-yet-applied instruction the
// pacer is counting down to. Decoding (including reading any immediate
// operand bytes and advancing PC past them) happens once, when the opcode
// is first fetched; the instruction's effect is applied once, atomically,
// when remaining reaches zero.
type pendingInstruction struct {
	instr    Instruction
	operands [2]uint8
	opcode   uint8
	pc       uint16 // PC of the opcode byte, for trace/error reporting
	branch   bool   // precomputed condition result, for conditional forms
}

// New returns a CPU wired to the given bus, with the registers in their
// post-boot-ROM state (PC=0x100, SP=0xFFFE) a cartridge expects to start
// executing from.
func New(bus MemoryBus) *CPU {
	c := &CPU{bus: bus, Registers: types.NewRegisters()}
	c.PC = 0x0100
	c.SP = 0xFFFE
	return c
}

// ErrIllegalOpcode is returned (wrapped) when the CPU fetches a byte with
// no defined instruction.
type ErrIllegalOpcode struct {
	Opcode uint8
	PC     uint16
}

func (e *ErrIllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// Tick advances the CPU by one machine cycle (spec.md §4.5). It returns an
// error, non-nil only once the tick that fetched an illegal opcode has been
// consumed, at which point the caller (the machine driver) should stop the
// loop.
func (c *CPU) Tick() error {
	if c.Halted {
		return nil
	}

	if !c.executing {
		if err := c.fetch(); err != nil {
			return err
		}
	}

	c.remaining--
	if c.remaining == 0 {
		c.fire()
		c.executing = false
	} else {
		c.bus.Write(addrIE, imeByte(c.IME))
	}
	return nil
}

func imeByte(ime bool) uint8 {
	if ime {
		return 1
	}
	return 0
}

// fetch reads the opcode (and 0xCB prefix, if present) at PC, decodes its
// operand bytes, advances PC past the whole instruction, and sets up the
// pacer's remaining-cycle countdown. Instructions that unconditionally
// redirect PC (JP/CALL/RST/RET/taken JR) overwrite it again in fire.
func (c *CPU) fetch() error {
	startPC := c.PC
	opcode := c.bus.Read(c.PC)
	c.PC++

	var instr Instruction
	cb := opcode == 0xCB
	if cb {
		opcode = c.bus.Read(c.PC)
		c.PC++
		instr = cbInstructionSet[opcode]
	} else {
		instr = instructionSet[opcode]
	}

	if instr.Execute == nil {
		return &ErrIllegalOpcode{Opcode: opcode, PC: startPC}
	}

	var operands [2]uint8
	immediateBytes := instr.Length - 1
	if cb {
		immediateBytes = 0 // the CB sub-opcode byte is not an "immediate"
	}
	for i := uint8(0); i < immediateBytes; i++ {
		operands[i] = c.bus.Read(c.PC)
		c.PC++
	}

	branch := instr.Conditional && instr.Condition(c)

	c.pending = pendingInstruction{
		instr:    instr,
		operands: operands,
		opcode:   opcode,
		pc:       startPC,
		branch:   branch,
	}
	c.trace.record(startPC, opcode, cb, instr.Name)

	c.remaining = instr.cost(branch)
	c.executing = true
	return nil
}

// fire applies the pending instruction's effect and, for conditional forms,
// its precomputed branch decision.
func (c *CPU) fire() {
	p := c.pending
	p.instr.Execute(c, p.operands[:], p.branch)
}

// read16 / write16 compose little-endian 16-bit access from the bus's
// 8-bit primitives (spec.md §4.4).
func (c *CPU) read16(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) write16(addr uint16, value uint16) {
	c.bus.Write(addr, uint8(value))
	c.bus.Write(addr+1, uint8(value>>8))
}

func (c *CPU) push16(value uint16) {
	c.SP -= 2
	c.write16(c.SP, value)
}

func (c *CPU) pop16() uint16 {
	value := c.read16(c.SP)
	c.SP += 2
	return value
}
