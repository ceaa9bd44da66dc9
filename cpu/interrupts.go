package cpu

// Reset performs the RESET sequence synchronously: no stack writes occur
// on real hardware, but SP lands at 0xFD as if three dummy pushes had
// happened. Unlike NMI/IRQ, RESET is not a pending flag drained at the
// next instruction boundary — a caller invokes it directly, matching the
// external interface's reset() being a distinct call from the
// interrupt-signaling pair.
func (c *Chip) Reset() {
	c.setFlag(FlagU, true)
	c.setFlag(FlagI, true)
	c.setFlag(FlagD, false)
	c.sp = 0xFD
	c.cycles = 7
	c.pc = c.read16(vectorReset)
}

// NMI signals a pending non-maskable interrupt, serviced at the next
// instruction boundary regardless of the I flag.
func (c *Chip) NMI() { c.pendingNMI = true }

// IRQ signals a pending maskable interrupt, serviced at the next
// instruction boundary only if the I flag is clear.
func (c *Chip) IRQ() { c.pendingIRQ = true }

// drainInterrupts services at most one pending interrupt per call, in
// NMI-then-IRQ priority (RESET never reaches here; it's synchronous). It
// reports whether it serviced one and how many cycles that consumed, so
// Step can skip the normal fetch/decode/execute path entirely when it did.
func (c *Chip) drainInterrupts() (serviced bool, cycles uint8) {
	if c.pendingNMI {
		c.pendingNMI = false
		c.serviceInterrupt(vectorNMI)
		return true, 7
	}
	if c.pendingIRQ && !c.flag(FlagI) {
		c.pendingIRQ = false
		c.serviceInterrupt(vectorIRQ)
		return true, 7
	}
	return false, 0
}

// serviceInterrupt implements the shared NMI/IRQ push/vector sequence: the
// pushed status byte has B=0 (distinguishing a hardware interrupt from a
// software BRK on the stack) and U=1.
func (c *Chip) serviceInterrupt(vector uint16) {
	c.push16(c.pc)
	c.push((c.p &^ FlagB) | FlagU)
	c.setFlag(FlagI, true)
	c.pc = c.read16(vector)
	c.cycles += 7
}
