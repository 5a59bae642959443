package cpu

import "fmt"

// Unprefixed instruction table. Grounded on the teacher's
// internal/cpu/instruction.go [0x100]Instruction literal, but built here by
// registering each of the z80-style opcode families (the xxyyyzzz bit
// grouping Pan Docs and the teacher's own decode.go comments describe) in
// a loop, rather than spelling out 256 near-identical closures by hand.
// Irregular single-opcode forms (control flow, DAA, the accumulator
// rotates, DI/EI, ...) are registered individually at the bottom.
//
// Cycle counts are machine cycles (4 clock cycles each), matching spec.md
// §4.5 and the widely published SM83 timing tables.

func init() {
	define(0x00, Instruction{Name: "NOP", Length: 1, Cycles: 1, Execute: func(c *CPU, ops []uint8, branch bool) {}})

	registerLoadImmediate16()
	registerIndirectAccumulator()
	registerIncDec16()
	registerIncDec8()
	registerLoadImmediate8()
	registerLoadRegisterToRegister()
	registerALURegister()
	registerALUImmediate()
	registerStackOps()
	registerJumpsAndCalls()
	registerMiscX0Z7()
	registerControl()
}

// --- z=1: LD rp,d16 / ADD HL,rp ---

func registerLoadImmediate16() {
	for p := uint8(0); p < 4; p++ {
		p := p
		opcode := 0x01 + p<<4
		define(opcode, Instruction{
			Name: fmt.Sprintf("LD %s,d16", rp16Name[p]), Length: 3, Cycles: 3,
			Execute: func(c *CPU, ops []uint8, branch bool) {
				c.setRP16(p, u16(ops[0], ops[1]))
			},
		})

		opcode = 0x09 + p<<4
		define(opcode, Instruction{
			Name: fmt.Sprintf("ADD HL,%s", rp16Name[p]), Length: 1, Cycles: 2,
			Execute: func(c *CPU, ops []uint8, branch bool) {
				result, flags := Add16(c.HL.Uint16(), c.rp16(p))
				flags.Zero = c.isFlagSet(FlagZero)
				c.HL.SetUint16(result)
				c.setFlags(flags)
			},
		})
	}
}

// --- z=2: LD (BC/DE/HL+/HL-),A and the reverse ---

func registerIndirectAccumulator() {
	addrFor := func(c *CPU, p uint8) uint16 {
		switch p {
		case 0:
			return c.BC.Uint16()
		case 1:
			return c.DE.Uint16()
		case 2:
			addr := c.HL.Uint16()
			c.HL.SetUint16(addr + 1)
			return addr
		default:
			addr := c.HL.Uint16()
			c.HL.SetUint16(addr - 1)
			return addr
		}
	}
	names := [4]string{"BC", "DE", "HL+", "HL-"}

	for p := uint8(0); p < 4; p++ {
		p := p
		define(0x02+p<<4, Instruction{
			Name: fmt.Sprintf("LD (%s),A", names[p]), Length: 1, Cycles: 2,
			Execute: func(c *CPU, ops []uint8, branch bool) {
				c.bus.Write(addrFor(c, p), c.A)
			},
		})
		define(0x0A+p<<4, Instruction{
			Name: fmt.Sprintf("LD A,(%s)", names[p]), Length: 1, Cycles: 2,
			Execute: func(c *CPU, ops []uint8, branch bool) {
				c.A = c.bus.Read(addrFor(c, p))
			},
		})
	}
}

// --- z=3: INC rp / DEC rp ---

func registerIncDec16() {
	for p := uint8(0); p < 4; p++ {
		p := p
		define(0x03+p<<4, Instruction{
			Name: fmt.Sprintf("INC %s", rp16Name[p]), Length: 1, Cycles: 2,
			Execute: func(c *CPU, ops []uint8, branch bool) { c.setRP16(p, c.rp16(p)+1) },
		})
		define(0x0B+p<<4, Instruction{
			Name: fmt.Sprintf("DEC %s", rp16Name[p]), Length: 1, Cycles: 2,
			Execute: func(c *CPU, ops []uint8, branch bool) { c.setRP16(p, c.rp16(p)-1) },
		})
	}
}

// --- z=4/5: INC r8 / DEC r8 ---

func registerIncDec8() {
	for y := uint8(0); y < 8; y++ {
		y := y
		cycles := uint8(1)
		if y == 6 {
			cycles = 3
		}
		define(0x04+y<<3, Instruction{
			Name: fmt.Sprintf("INC %s", reg8Name[y]), Length: 1, Cycles: cycles,
			Execute: func(c *CPU, ops []uint8, branch bool) {
				carry := c.isFlagSet(FlagCarry)
				result, flags := Inc8(c.reg8(y))
				flags.Carry = carry
				c.setReg8(y, result)
				c.setFlags(flags)
			},
		})
		define(0x05+y<<3, Instruction{
			Name: fmt.Sprintf("DEC %s", reg8Name[y]), Length: 1, Cycles: cycles,
			Execute: func(c *CPU, ops []uint8, branch bool) {
				carry := c.isFlagSet(FlagCarry)
				result, flags := Dec8(c.reg8(y))
				flags.Carry = carry
				c.setReg8(y, result)
				c.setFlags(flags)
			},
		})
	}
}

// --- z=6 (x=0): LD r8,d8 ---

func registerLoadImmediate8() {
	for y := uint8(0); y < 8; y++ {
		y := y
		cycles := uint8(2)
		if y == 6 {
			cycles = 3
		}
		define(0x06+y<<3, Instruction{
			Name: fmt.Sprintf("LD %s,d8", reg8Name[y]), Length: 2, Cycles: cycles,
			Execute: func(c *CPU, ops []uint8, branch bool) { c.setReg8(y, ops[0]) },
		})
	}
}

// --- x=1: LD r8,r8 (0x76 is HALT, registered separately) ---

func registerLoadRegisterToRegister() {
	for y := uint8(0); y < 8; y++ {
		for z := uint8(0); z < 8; z++ {
			if y == 6 && z == 6 {
				continue // 0x76 HALT
			}
			y, z := y, z
			cycles := uint8(1)
			if y == 6 || z == 6 {
				cycles = 2
			}
			define(0x40+y<<3+z, Instruction{
				Name: fmt.Sprintf("LD %s,%s", reg8Name[y], reg8Name[z]), Length: 1, Cycles: cycles,
				Execute: func(c *CPU, ops []uint8, branch bool) { c.setReg8(y, c.reg8(z)) },
			})
		}
	}
	define(0x76, Instruction{
		Name: "HALT", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.Halted = true },
	})
}

// --- x=2: ALU A,r8 ---

// aluApply applies ALU operation y to (A, operand), writing A (except for
// CP, which only sets flags) and folding the resulting flags into F.
func aluApply(c *CPU, y uint8, operand uint8) {
	var result uint8
	var flags Flags
	switch y {
	case 0:
		result, flags = Add8(c.A, operand)
	case 1:
		result, flags = Adc8(c.A, operand, c.isFlagSet(FlagCarry))
	case 2:
		result, flags = Sub8(c.A, operand)
	case 3:
		result, flags = Sbc8(c.A, operand, c.isFlagSet(FlagCarry))
	case 4:
		result, flags = And8(c.A, operand)
	case 5:
		result, flags = Xor8(c.A, operand)
	case 6:
		result, flags = Or8(c.A, operand)
	default: // 7: CP
		flags = Cp8(c.A, operand)
		c.setFlags(flags)
		return
	}
	c.A = result
	c.setFlags(flags)
}

var aluName = [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

func registerALURegister() {
	for y := uint8(0); y < 8; y++ {
		for z := uint8(0); z < 8; z++ {
			y, z := y, z
			cycles := uint8(1)
			if z == 6 {
				cycles = 2
			}
			define(0x80+y<<3+z, Instruction{
				Name: fmt.Sprintf("%s A,%s", aluName[y], reg8Name[z]), Length: 1, Cycles: cycles,
				Execute: func(c *CPU, ops []uint8, branch bool) { aluApply(c, y, c.reg8(z)) },
			})
		}
	}
}

func registerALUImmediate() {
	for y := uint8(0); y < 8; y++ {
		y := y
		define(0xC6+y<<3, Instruction{
			Name: fmt.Sprintf("%s A,d8", aluName[y]), Length: 2, Cycles: 2,
			Execute: func(c *CPU, ops []uint8, branch bool) { aluApply(c, y, ops[0]) },
		})
	}
}

// --- PUSH/POP ---

func registerStackOps() {
	for p := uint8(0); p < 4; p++ {
		p := p
		define(0xC1+p<<4, Instruction{
			Name: fmt.Sprintf("POP %s", rp16StackName[p]), Length: 1, Cycles: 3,
			Execute: func(c *CPU, ops []uint8, branch bool) { c.setRP16Stack(p, c.pop16()) },
		})
		define(0xC5+p<<4, Instruction{
			Name: fmt.Sprintf("PUSH %s", rp16StackName[p]), Length: 1, Cycles: 4,
			Execute: func(c *CPU, ops []uint8, branch bool) { c.push16(c.rp16Stack(p)) },
		})
	}
}

// --- control flow: JR/JP/CALL/RET/RST, plain and conditional ---

func registerJumpsAndCalls() {
	define(0x18, Instruction{
		Name: "JR d8", Length: 2, Cycles: 3,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.PC = uint16(int32(c.PC) + int32(signed8(ops[0]))) },
	})
	for y := uint8(0); y < 4; y++ {
		y := y
		define(0x20+y<<3, Instruction{
			Name: fmt.Sprintf("JR %s,d8", ccName[y]), Length: 2,
			Conditional: true, CyclesTaken: 3, CyclesNotTaken: 2,
			Condition: func(c *CPU) bool { return c.condition(y) },
			Execute: func(c *CPU, ops []uint8, branch bool) {
				if branch {
					c.PC = uint16(int32(c.PC) + int32(signed8(ops[0])))
				}
			},
		})
	}

	define(0xC3, Instruction{
		Name: "JP a16", Length: 3, Cycles: 4,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.PC = u16(ops[0], ops[1]) },
	})
	define(0xE9, Instruction{
		Name: "JP HL", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.PC = c.HL.Uint16() },
	})
	for y := uint8(0); y < 4; y++ {
		y := y
		define(0xC2+y<<3, Instruction{
			Name: fmt.Sprintf("JP %s,a16", ccName[y]), Length: 3,
			Conditional: true, CyclesTaken: 4, CyclesNotTaken: 3,
			Condition: func(c *CPU) bool { return c.condition(y) },
			Execute: func(c *CPU, ops []uint8, branch bool) {
				if branch {
					c.PC = u16(ops[0], ops[1])
				}
			},
		})
	}

	define(0xCD, Instruction{
		Name: "CALL a16", Length: 3, Cycles: 6,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			c.push16(c.PC)
			c.PC = u16(ops[0], ops[1])
		},
	})
	for y := uint8(0); y < 4; y++ {
		y := y
		define(0xC4+y<<3, Instruction{
			Name: fmt.Sprintf("CALL %s,a16", ccName[y]), Length: 3,
			Conditional: true, CyclesTaken: 6, CyclesNotTaken: 3,
			Condition: func(c *CPU) bool { return c.condition(y) },
			Execute: func(c *CPU, ops []uint8, branch bool) {
				if branch {
					c.push16(c.PC)
					c.PC = u16(ops[0], ops[1])
				}
			},
		})
	}

	define(0xC9, Instruction{
		Name: "RET", Length: 1, Cycles: 4,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.PC = c.pop16() },
	})
	define(0xD9, Instruction{
		Name: "RETI", Length: 1, Cycles: 4,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			c.PC = c.pop16()
			c.IME = true
		},
	})
	for y := uint8(0); y < 4; y++ {
		y := y
		define(0xC0+y<<3, Instruction{
			Name: fmt.Sprintf("RET %s", ccName[y]), Length: 1,
			Conditional: true, CyclesTaken: 5, CyclesNotTaken: 2,
			Condition: func(c *CPU) bool { return c.condition(y) },
			Execute: func(c *CPU, ops []uint8, branch bool) {
				if branch {
					c.PC = c.pop16()
				}
			},
		})
	}

	for y := uint8(0); y < 8; y++ {
		y := y
		define(0xC7+y<<3, Instruction{
			Name: fmt.Sprintf("RST %02Xh", y*8), Length: 1, Cycles: 4,
			Execute: func(c *CPU, ops []uint8, branch bool) {
				c.push16(c.PC)
				c.PC = uint16(y) * 8
			},
		})
	}
}

// --- x=0,z=7: accumulator rotates, DAA, CPL, SCF, CCF ---

func registerMiscX0Z7() {
	define(0x07, Instruction{
		Name: "RLCA", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			result, flags := Rlc(c.A, false)
			c.A = result
			c.setFlags(flags)
		},
	})
	define(0x0F, Instruction{
		Name: "RRCA", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			result, flags := Rrc(c.A, false)
			c.A = result
			c.setFlags(flags)
		},
	})
	define(0x17, Instruction{
		Name: "RLA", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			result, flags := Rl(c.A, c.isFlagSet(FlagCarry), false)
			c.A = result
			c.setFlags(flags)
		},
	})
	define(0x1F, Instruction{
		Name: "RRA", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			result, flags := Rr(c.A, c.isFlagSet(FlagCarry), false)
			c.A = result
			c.setFlags(flags)
		},
	})
	define(0x27, Instruction{
		Name: "DAA", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) { daa(c) },
	})
	define(0x2F, Instruction{
		Name: "CPL", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			c.A = ^c.A
			f := c.flags()
			f.Subtract = true
			f.HalfCarry = true
			c.setFlags(f)
		},
	})
	define(0x37, Instruction{
		Name: "SCF", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			f := c.flags()
			f.Subtract = false
			f.HalfCarry = false
			f.Carry = true
			c.setFlags(f)
		},
	})
	define(0x3F, Instruction{
		Name: "CCF", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			f := c.flags()
			f.Subtract = false
			f.HalfCarry = false
			f.Carry = !f.Carry
			c.setFlags(f)
		},
	})
	define(0x10, Instruction{
		Name: "STOP", Length: 2, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) {},
	})
}

// daa adjusts A into packed BCD after an 8-bit add/subtract, per spec.md
// §4.1's add8/sub8 pairing with the N/H flags left behind by the preceding
// instruction. Grounded on the standard SM83 DAA algorithm the teacher's
// internal/cpu/arithmetic.go implements as CPU.daa().
func daa(c *CPU) {
	f := c.flags()
	a := c.A
	adjust := uint8(0)
	carry := f.Carry
	if f.Subtract {
		if f.HalfCarry {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		a -= adjust
	} else {
		if f.HalfCarry || a&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	}
	c.A = a
	c.setFlags(Flags{Zero: a == 0, Subtract: f.Subtract, Carry: carry})
}

// --- misc control: LD (a16),SP; LD (FF00+a8),A and friends; DI/EI ---

func registerControl() {
	define(0x08, Instruction{
		Name: "LD (a16),SP", Length: 3, Cycles: 5,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.write16(u16(ops[0], ops[1]), c.SP) },
	})

	define(0xE0, Instruction{
		Name: "LD (FF00+a8),A", Length: 2, Cycles: 3,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.bus.Write(0xFF00+uint16(ops[0]), c.A) },
	})
	define(0xF0, Instruction{
		Name: "LD A,(FF00+a8)", Length: 2, Cycles: 3,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.A = c.bus.Read(0xFF00 + uint16(ops[0])) },
	})
	define(0xE2, Instruction{
		Name: "LD (FF00+C),A", Length: 1, Cycles: 2,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.bus.Write(0xFF00+uint16(c.C), c.A) },
	})
	define(0xF2, Instruction{
		Name: "LD A,(FF00+C)", Length: 1, Cycles: 2,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.A = c.bus.Read(0xFF00 + uint16(c.C)) },
	})
	define(0xEA, Instruction{
		Name: "LD (a16),A", Length: 3, Cycles: 4,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.bus.Write(u16(ops[0], ops[1]), c.A) },
	})
	define(0xFA, Instruction{
		Name: "LD A,(a16)", Length: 3, Cycles: 4,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.A = c.bus.Read(u16(ops[0], ops[1])) },
	})

	define(0xE8, Instruction{
		Name: "ADD SP,d8", Length: 2, Cycles: 4,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			result, flags := addSPSigned(c.SP, ops[0])
			c.SP = result
			c.setFlags(flags)
		},
	})
	define(0xF8, Instruction{
		Name: "LD HL,SP+d8", Length: 2, Cycles: 3,
		Execute: func(c *CPU, ops []uint8, branch bool) {
			result, flags := addSPSigned(c.SP, ops[0])
			c.HL.SetUint16(result)
			c.setFlags(flags)
		},
	})
	define(0xF9, Instruction{
		Name: "LD SP,HL", Length: 1, Cycles: 2,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.SP = c.HL.Uint16() },
	})

	define(0xF3, Instruction{
		Name: "DI", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.IME = false },
	})
	define(0xFB, Instruction{
		Name: "EI", Length: 1, Cycles: 1,
		Execute: func(c *CPU, ops []uint8, branch bool) { c.IME = true },
	})
}

// addSPSigned implements the shared ADD SP,i8 / LD HL,SP+i8 arithmetic: an
// 8-bit signed displacement added to a 16-bit pointer, with H/C computed
// from the low byte as if it were an 8-bit addition (spec.md §4.1), and Z/N
// always cleared.
func addSPSigned(sp uint16, disp uint8) (uint16, Flags) {
	result := uint16(int32(sp) + int32(signed8(disp)))
	flags := Flags{
		HalfCarry: (sp&0xF)+(uint16(disp)&0xF) > 0xF,
		Carry:     (sp&0xFF)+uint16(disp) > 0xFF,
	}
	return result, flags
}
