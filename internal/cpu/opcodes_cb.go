package cpu

import (
	"fmt"

	"github.com/torphedo-core/dmgcore/internal/types"
)

// bitAt maps a BIT/RES/SET instruction's y field (0-7) to the named bit
// constant types.Bit0..Bit7, the way the teacher's internal/cpu/bit.go
// drives its own CB group through pkg/bits rather than a raw shift.
var bitAt = [8]types.Bit{
	types.Bit0, types.Bit1, types.Bit2, types.Bit3,
	types.Bit4, types.Bit5, types.Bit6, types.Bit7,
}

// 0xCB-prefixed instruction table: rotate/shift/swap (x=0), BIT (x=1), RES
// (x=2) and SET (x=3), each over the eight r8 operands. Cycle counts here
// are the total cost of the two-byte encoding: 1 cycle for the 0xCB prefix
// byte plus the body cost (spec.md §4.5) — 2 for register forms, 3 for
// (HL) forms including BIT (HL), 4 for RES/SET (HL) — giving totals of 3,
// 4 and 5 respectively. fetch() in cpu.go reads both bytes before
// consulting this table, so Length is always 2 and there is no separate
// prefix-cost bookkeeping at the call site.

func init() {
	rotateOps := []struct {
		name string
		fn   func(v uint8, carryIn bool) (uint8, Flags)
	}{
		{"RLC", func(v uint8, _ bool) (uint8, Flags) { return Rlc(v, true) }},
		{"RRC", func(v uint8, _ bool) (uint8, Flags) { return Rrc(v, true) }},
		{"RL", func(v uint8, cin bool) (uint8, Flags) { return Rl(v, cin, true) }},
		{"RR", func(v uint8, cin bool) (uint8, Flags) { return Rr(v, cin, true) }},
		{"SLA", func(v uint8, _ bool) (uint8, Flags) { return Sla(v) }},
		{"SRA", func(v uint8, _ bool) (uint8, Flags) { return Sra(v) }},
		{"SWAP", func(v uint8, _ bool) (uint8, Flags) { return Swap(v) }},
		{"SRL", func(v uint8, _ bool) (uint8, Flags) { return Srl(v) }},
	}

	for y := uint8(0); y < 8; y++ {
		op := rotateOps[y]
		for z := uint8(0); z < 8; z++ {
			y, z, op := y, z, op
			cycles := uint8(3)
			if z == 6 {
				cycles = 4
			}
			defineCB(y<<3+z, Instruction{
				Name: fmt.Sprintf("%s %s", op.name, reg8Name[z]), Length: 2, Cycles: cycles,
				Execute: func(c *CPU, ops []uint8, branch bool) {
					result, flags := op.fn(c.reg8(z), c.isFlagSet(FlagCarry))
					c.setReg8(z, result)
					c.setFlags(flags)
				},
			})
		}
	}

	for y := uint8(0); y < 8; y++ {
		for z := uint8(0); z < 8; z++ {
			y, z := y, z
			cycles := uint8(3)
			if z == 6 {
				cycles = 4
			}
			defineCB(0x40+y<<3+z, Instruction{
				Name: fmt.Sprintf("BIT %d,%s", y, reg8Name[z]), Length: 2, Cycles: cycles,
				Execute: func(c *CPU, ops []uint8, branch bool) {
					value := c.reg8(z)
					f := c.flags()
					f.Zero = !types.TestBit(value, bitAt[y])
					f.Subtract = false
					f.HalfCarry = true
					c.setFlags(f)
				},
			})

			cycles = 3
			if z == 6 {
				cycles = 5
			}
			defineCB(0x80+y<<3+z, Instruction{
				Name: fmt.Sprintf("RES %d,%s", y, reg8Name[z]), Length: 2, Cycles: cycles,
				Execute: func(c *CPU, ops []uint8, branch bool) {
					c.setReg8(z, types.ResetBit(c.reg8(z), bitAt[y]))
				},
			})
			defineCB(0xC0+y<<3+z, Instruction{
				Name: fmt.Sprintf("SET %d,%s", y, reg8Name[z]), Length: 2, Cycles: cycles,
				Execute: func(c *CPU, ops []uint8, branch bool) {
					c.setReg8(z, types.SetBit(c.reg8(z), bitAt[y]))
				},
			})
		}
	}
}
