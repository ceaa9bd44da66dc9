package cpu

// Each handler receives the already-resolved effective address (or operand
// address for immediate mode) and the addressing mode that produced it,
// and returns any extra cycles beyond the decode table's base cost
// (branches taken/page-crossed; everything else returns 0 and lets the
// dispatcher apply the table's page-cross-eligible flag). PC advancement
// has already happened by the time a handler runs; handlers that need to
// redirect control flow (branches, JMP, JSR, RTS, BRK, RTI) read/write
// c.pc directly.
type handlerFunc func(c *Chip, addr uint16, m mode) (extraCycles uint8)

// --- Arithmetic ---

func (c *Chip) adc(operand uint8) {
	var carryIn uint16
	if c.flag(FlagC) {
		carryIn = 1
	}
	oldA := c.a
	sum := uint16(oldA) + uint16(operand) + carryIn
	result := uint8(sum)
	c.setFlag(FlagC, sum > 0xFF)
	c.setFlag(FlagV, (oldA^result)&(operand^result)&0x80 != 0)
	c.a = result
	c.setZN(result)
}

func opADC(c *Chip, addr uint16, m mode) uint8 {
	c.adc(c.bus.Read(addr))
	return 0
}

func opSBC(c *Chip, addr uint16, m mode) uint8 {
	c.adc(^c.bus.Read(addr))
	return 0
}

// --- Logical ---

func opAND(c *Chip, addr uint16, m mode) uint8 {
	c.a &= c.bus.Read(addr)
	c.setZN(c.a)
	return 0
}

func opORA(c *Chip, addr uint16, m mode) uint8 {
	c.a |= c.bus.Read(addr)
	c.setZN(c.a)
	return 0
}

func opEOR(c *Chip, addr uint16, m mode) uint8 {
	c.a ^= c.bus.Read(addr)
	c.setZN(c.a)
	return 0
}

func opBIT(c *Chip, addr uint16, m mode) uint8 {
	v := c.bus.Read(addr)
	c.setFlag(FlagZ, c.a&v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
	c.setFlag(FlagV, v&0x40 != 0)
	return 0
}

// --- Shifts & rotates ---
//
// shiftOp carries the accumulator-vs-memory dispatch shared by all four
// shift/rotate handlers in a single place, rather than duplicating the
// mode check in each one.
func (c *Chip) shiftOp(addr uint16, m mode, op func(in uint8) (result uint8, carryOut bool)) uint8 {
	var in uint8
	if m == modeAccumulator {
		in = c.a
	} else {
		in = c.bus.Read(addr)
	}
	result, carryOut := op(in)
	c.setFlag(FlagC, carryOut)
	c.setZN(result)
	if m == modeAccumulator {
		c.a = result
	} else {
		c.bus.Write(addr, result)
	}
	return 0
}

func opASL(c *Chip, addr uint16, m mode) uint8 {
	return c.shiftOp(addr, m, func(in uint8) (uint8, bool) {
		return in << 1, in&0x80 != 0
	})
}

func opLSR(c *Chip, addr uint16, m mode) uint8 {
	return c.shiftOp(addr, m, func(in uint8) (uint8, bool) {
		return in >> 1, in&0x01 != 0
	})
}

func opROL(c *Chip, addr uint16, m mode) uint8 {
	carryIn := c.flag(FlagC)
	return c.shiftOp(addr, m, func(in uint8) (uint8, bool) {
		result := in << 1
		if carryIn {
			result |= 0x01
		}
		return result, in&0x80 != 0
	})
}

func opROR(c *Chip, addr uint16, m mode) uint8 {
	carryIn := c.flag(FlagC)
	return c.shiftOp(addr, m, func(in uint8) (uint8, bool) {
		result := in >> 1
		if carryIn {
			result |= 0x80
		}
		return result, in&0x01 != 0
	})
}

// --- Comparisons ---

func (c *Chip) compare(r, m uint8) {
	t := r - m
	c.setFlag(FlagC, r >= m)
	c.setFlag(FlagZ, r == m)
	c.setFlag(FlagN, t&0x80 != 0)
}

func opCMP(c *Chip, addr uint16, m mode) uint8 {
	c.compare(c.a, c.bus.Read(addr))
	return 0
}

func opCPX(c *Chip, addr uint16, m mode) uint8 {
	c.compare(c.x, c.bus.Read(addr))
	return 0
}

func opCPY(c *Chip, addr uint16, m mode) uint8 {
	c.compare(c.y, c.bus.Read(addr))
	return 0
}

// --- Increment/decrement ---

func opINC(c *Chip, addr uint16, m mode) uint8 {
	v := c.bus.Read(addr) + 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return 0
}

func opDEC(c *Chip, addr uint16, m mode) uint8 {
	v := c.bus.Read(addr) - 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return 0
}

func opINX(c *Chip, addr uint16, m mode) uint8 { c.x++; c.setZN(c.x); return 0 }
func opDEX(c *Chip, addr uint16, m mode) uint8 { c.x--; c.setZN(c.x); return 0 }
func opINY(c *Chip, addr uint16, m mode) uint8 { c.y++; c.setZN(c.y); return 0 }
func opDEY(c *Chip, addr uint16, m mode) uint8 { c.y--; c.setZN(c.y); return 0 }

// --- Loads/stores ---

func opLDA(c *Chip, addr uint16, m mode) uint8 { c.a = c.bus.Read(addr); c.setZN(c.a); return 0 }
func opLDX(c *Chip, addr uint16, m mode) uint8 { c.x = c.bus.Read(addr); c.setZN(c.x); return 0 }
func opLDY(c *Chip, addr uint16, m mode) uint8 { c.y = c.bus.Read(addr); c.setZN(c.y); return 0 }

func opSTA(c *Chip, addr uint16, m mode) uint8 { c.bus.Write(addr, c.a); return 0 }
func opSTX(c *Chip, addr uint16, m mode) uint8 { c.bus.Write(addr, c.x); return 0 }
func opSTY(c *Chip, addr uint16, m mode) uint8 { c.bus.Write(addr, c.y); return 0 }

// --- Register transfers ---

func opTAX(c *Chip, addr uint16, m mode) uint8 { c.x = c.a; c.setZN(c.x); return 0 }
func opTAY(c *Chip, addr uint16, m mode) uint8 { c.y = c.a; c.setZN(c.y); return 0 }
func opTXA(c *Chip, addr uint16, m mode) uint8 { c.a = c.x; c.setZN(c.a); return 0 }
func opTYA(c *Chip, addr uint16, m mode) uint8 { c.a = c.y; c.setZN(c.a); return 0 }
func opTSX(c *Chip, addr uint16, m mode) uint8 { c.x = c.sp; c.setZN(c.x); return 0 }
func opTXS(c *Chip, addr uint16, m mode) uint8 { c.sp = c.x; return 0 }

// --- Stack ---

func opPHA(c *Chip, addr uint16, m mode) uint8 { c.push(c.a); return 0 }
func opPHP(c *Chip, addr uint16, m mode) uint8 { c.push(c.p | FlagB | FlagU); return 0 }

func opPLA(c *Chip, addr uint16, m mode) uint8 {
	c.a = c.pull()
	c.setZN(c.a)
	return 0
}

func opPLP(c *Chip, addr uint16, m mode) uint8 {
	v := c.pull()
	c.p = (v &^ FlagB) | FlagU
	return 0
}

// --- Flag operations ---

func opCLC(c *Chip, addr uint16, m mode) uint8 { c.setFlag(FlagC, false); return 0 }
func opSEC(c *Chip, addr uint16, m mode) uint8 { c.setFlag(FlagC, true); return 0 }
func opCLI(c *Chip, addr uint16, m mode) uint8 { c.setFlag(FlagI, false); return 0 }
func opSEI(c *Chip, addr uint16, m mode) uint8 { c.setFlag(FlagI, true); return 0 }
func opCLV(c *Chip, addr uint16, m mode) uint8 { c.setFlag(FlagV, false); return 0 }
func opCLD(c *Chip, addr uint16, m mode) uint8 { c.setFlag(FlagD, false); return 0 }
func opSED(c *Chip, addr uint16, m mode) uint8 { c.setFlag(FlagD, true); return 0 }

// --- Branches ---
//
// branch charges the base-2-plus-taken-plus-page-crossed cost described by
// the dispatcher's cycle table; target is the already-resolved relative
// address, and c.pc (set by the dispatcher before the handler runs) still
// names the instruction immediately after the branch, which is exactly
// what the page-cross comparison needs.
func (c *Chip) branch(taken bool, target uint16) uint8 {
	if !taken {
		return 0
	}
	extra := uint8(1)
	if pageOf(target) != pageOf(c.pc) {
		extra++
	}
	c.pc = target
	return extra
}

func opBCC(c *Chip, addr uint16, m mode) uint8 { return c.branch(!c.flag(FlagC), addr) }
func opBCS(c *Chip, addr uint16, m mode) uint8 { return c.branch(c.flag(FlagC), addr) }
func opBEQ(c *Chip, addr uint16, m mode) uint8 { return c.branch(c.flag(FlagZ), addr) }
func opBNE(c *Chip, addr uint16, m mode) uint8 { return c.branch(!c.flag(FlagZ), addr) }
func opBMI(c *Chip, addr uint16, m mode) uint8 { return c.branch(c.flag(FlagN), addr) }
func opBPL(c *Chip, addr uint16, m mode) uint8 { return c.branch(!c.flag(FlagN), addr) }
func opBVC(c *Chip, addr uint16, m mode) uint8 { return c.branch(!c.flag(FlagV), addr) }
func opBVS(c *Chip, addr uint16, m mode) uint8 { return c.branch(c.flag(FlagV), addr) }

// --- Jumps & subroutines ---

func opJMP(c *Chip, addr uint16, m mode) uint8 { c.pc = addr; return 0 }

func opJSR(c *Chip, addr uint16, m mode) uint8 {
	c.push16(c.pc - 1)
	c.pc = addr
	return 0
}

func opRTS(c *Chip, addr uint16, m mode) uint8 {
	c.pc = c.pull16() + 1
	return 0
}

// --- Software interrupt ---

func opBRK(c *Chip, addr uint16, m mode) uint8 {
	c.push16(c.pc)
	c.push(c.p | FlagB | FlagU)
	c.setFlag(FlagI, true)
	c.pc = c.read16(vectorIRQ)
	return 0
}

func opRTI(c *Chip, addr uint16, m mode) uint8 {
	v := c.pull()
	c.p = (v &^ FlagB) | FlagU
	c.pc = c.pull16()
	return 0
}

// --- No-op ---

func opNOP(c *Chip, addr uint16, m mode) uint8 { return 0 }
