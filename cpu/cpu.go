// Package cpu implements a cycle-counted interpreter for the MOS 6502 as
// embodied in the Ricoh 2A03 (decimal mode disabled). It decodes opcode
// bytes read from an injected bus.Bus, updates the six architectural
// registers plus a cycle counter, and returns control between
// instructions.
package cpu

import (
	"fmt"

	"github.com/rp2a03/core/bus"
)

// Stack occupies page 1: addresses 0x0100-0x01FF, addressed by 0x0100|sp.
const stackPage = 0x0100

// Interrupt/reset vectors, read little-endian from the top of the address
// space.
const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE
)

// Variant distinguishes CPU flavors. This module only implements the
// Ricoh 2A03 (decimal mode disabled); the type exists so a fuller
// emulator can add NMOS/CMOS variants without changing Config's shape.
type Variant int

const (
	RicohRP2A03 Variant = iota
)

// Config constructs a Chip. Bus is required; everything else has a
// reasonable default.
type Config struct {
	Bus     bus.Bus
	Variant Variant
}

// Chip is one MOS 6502 / Ricoh 2A03 core. Its zero value is not usable;
// construct with New.
type Chip struct {
	pc uint16
	a  uint8
	x  uint8
	y  uint8
	sp uint8
	p  uint8

	cycles uint64

	bus     bus.Bus
	variant Variant

	pageCrossed bool

	pendingNMI bool
	pendingIRQ bool
}

// New constructs a Chip wired to cfg.Bus. The chip's registers start at
// their power-on values; call Reset to run the RESET sequence (which is
// what actually loads PC from the reset vector on real hardware, and is
// the normal way to bring a Chip up).
func New(cfg Config) *Chip {
	if cfg.Bus == nil {
		panic("cpu: Config.Bus is required")
	}
	return &Chip{
		bus:     cfg.Bus,
		variant: cfg.Variant,
		sp:      0xFD,
		p:       FlagU | FlagI,
	}
}

func (c *Chip) PC() uint16    { return c.pc }
func (c *Chip) A() uint8      { return c.a }
func (c *Chip) X() uint8      { return c.x }
func (c *Chip) Y() uint8      { return c.y }
func (c *Chip) SP() uint8     { return c.sp }
func (c *Chip) P() uint8      { return c.p }
func (c *Chip) Cycles() uint64 { return c.cycles }

// Snapshot is a plain-value copy of a Chip's architectural state, useful
// for golden-state comparisons in tests without exposing the Chip's
// unexported fields directly.
type Snapshot struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	P      uint8
	Cycles uint64
}

// Snapshot returns the chip's current architectural state.
func (c *Chip) Snapshot() Snapshot {
	return Snapshot{PC: c.pc, A: c.a, X: c.x, Y: c.y, SP: c.sp, P: c.p, Cycles: c.cycles}
}

func (c *Chip) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%08b CYC:%d", c.pc, c.a, c.x, c.y, c.sp, c.p, c.cycles)
}

// CurrentInstruction disassembles the opcode at PC without advancing any
// state, for debugging/single-step inspection. Adapted from the teacher's
// opcode.String()/Chip.String() introspection helpers.
func (c *Chip) CurrentInstruction() string {
	op := c.bus.Read(c.pc)
	entry := decodeTable[op]
	if entry.handler == nil {
		return fmt.Sprintf("0x%04X: ??? (0x%02X)", c.pc, op)
	}
	return fmt.Sprintf("0x%04X: %s %s", c.pc, entry.mnemonic, entry.mode)
}

func (c *Chip) push(v uint8) {
	c.bus.Write(stackPage|uint16(c.sp), v)
	c.sp--
}

func (c *Chip) pull() uint8 {
	c.sp++
	return c.bus.Read(stackPage | uint16(c.sp))
}

func (c *Chip) push16(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *Chip) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

func (c *Chip) read16(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr))
	hi := uint16(c.bus.Read(addr + 1))
	return hi<<8 | lo
}
