package cpu

// Instruction describes one opcode: its mnemonic, its encoded length in
// bytes (including the opcode byte, and for CB-prefixed forms the 0xCB
// byte itself), its machine-cycle cost, and the closure that applies its
// effect. This mirrors the teacher's internal/cpu/instruction.go Instruction
// struct (Name/Length/Cycles/Execute) with two additions spec.md's pacer
// needs: a taken/not-taken cost split for the sixteen conditional forms
// (JR/JP/CALL/RET cc), and
// a branch flag threaded into Execute so the same closure that decided
// whether to branch (at fetch time) is the one applying the decision (at
// fire time), without re-reading flags that might theoretically have
// changed in between.
type Instruction struct {
	Name   string
	Length uint8

	// Cycles is the fixed total machine-cycle cost for unconditional
	// instructions.
	Cycles uint8

	// Conditional instructions (JR/JP/CALL/RET cc) use CyclesTaken/
	// CyclesNotTaken instead of Cycles, and Condition to evaluate cc
	// against the current flags.
	Conditional    bool
	CyclesTaken    uint8
	CyclesNotTaken uint8
	Condition      func(c *CPU) bool

	// Execute applies the instruction's effect. ops holds the immediate
	// operand bytes (0, 1 or 2 of them, per Length); branch carries the
	// fetch-time condition result for conditional forms and is unused
	// otherwise.
	Execute func(c *CPU, ops []uint8, branch bool)
}

// cost returns the machine-cycle count to charge for this instruction,
// resolving the conditional split when applicable.
func (i Instruction) cost(branch bool) uint8 {
	if !i.Conditional {
		return i.Cycles
	}
	if branch {
		return i.CyclesTaken
	}
	return i.CyclesNotTaken
}

// instructionSet and cbInstructionSet are populated by init() functions in
// opcodes.go and opcodes_cb.go. A zero-value Instruction (nil Execute)
// marks an opcode as illegal.
var instructionSet [0x100]Instruction
var cbInstructionSet [0x100]Instruction

// define installs an instruction into the unprefixed table. Grounded on the
// teacher's DefineInstruction helper (internal/cpu/rotate.go), which the
// teacher itself uses to register the handful of instructions that don't
// fit its big table literal.
func define(opcode uint8, instr Instruction) {
	instructionSet[opcode] = instr
}

func defineCB(opcode uint8, instr Instruction) {
	cbInstructionSet[opcode] = instr
}
