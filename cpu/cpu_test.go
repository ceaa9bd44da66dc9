package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatBus is a plain 64KB slab used directly as a bus.Bus in tests that
// don't need the NES memory map's mirroring semantics.
type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) Read(addr uint16) uint8       { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, val uint8) { b.mem[addr] = val }

func (b *flatBus) set(addr uint16, vals ...uint8) {
	for i, v := range vals {
		b.mem[int(addr)+i] = v
	}
}

func newTestChip() (*Chip, *flatBus) {
	b := &flatBus{}
	c := New(Config{Bus: b})
	return c, b
}

func TestLDAImmediateSetsNegative(t *testing.T) {
	c, b := newTestChip()
	b.set(0x0000, 0xA9, 0x80)

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(0x80), c.a)
	assert.True(t, c.flag(FlagN))
	assert.False(t, c.flag(FlagZ))
	assert.Equal(t, uint16(0x02), c.pc)
	assert.Equal(t, uint8(2), cycles)
}

func TestADCCarryAndOverflow(t *testing.T) {
	c, b := newTestChip()
	c.a = 0x50
	b.set(0x0000, 0x65, 0x10)
	b.set(0x0010, 0x50)

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(0xA0), c.a)
	assert.False(t, c.flag(FlagC))
	assert.False(t, c.flag(FlagZ))
	assert.True(t, c.flag(FlagN))
	assert.True(t, c.flag(FlagV))
	assert.Equal(t, uint8(3), cycles)
}

func TestSBCBorrow(t *testing.T) {
	c, b := newTestChip()
	c.a = 0x50
	c.setFlag(FlagC, true) // no borrow in
	b.set(0x0000, 0xE9, 0x10)
	b.set(0x0010, 0xF0)

	_, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(0x40), c.a)
	assert.True(t, c.flag(FlagC))
}

func TestAbsoluteXPageCrossPenalty(t *testing.T) {
	c, b := newTestChip()
	c.x = 0x01
	b.set(0x0000, 0xBD, 0xFF, 0x10)
	b.set(0x1100, 0x42)

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(0x42), c.a)
	assert.Equal(t, uint8(5), cycles, "base 4 + 1 page cross")
}

func TestAbsoluteXNoPageCross(t *testing.T) {
	c, b := newTestChip()
	c.x = 0x01
	b.set(0x0000, 0xBD, 0x00, 0x10)
	b.set(0x1001, 0x42)

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(0x42), c.a)
	assert.Equal(t, uint8(4), cycles)
}

func TestSTADoesNotReceivePageCrossPenalty(t *testing.T) {
	c, b := newTestChip()
	c.x = 0x01
	c.a = 0x99
	b.set(0x0000, 0x9D, 0xFF, 0x10) // STA abs,X, crosses a page

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(5), cycles, "STA pays a fixed cost regardless of page crossing")
	assert.Equal(t, uint8(0x99), b.Read(0x1100))
}

func TestBranchTakenSamePage(t *testing.T) {
	c, b := newTestChip()
	c.setFlag(FlagZ, true)
	c.pc = 0x0002
	b.set(0x0002, 0xF0, 0x20) // BEQ +0x20

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0024), c.pc)
	assert.Equal(t, uint8(3), cycles, "taken, same page: base 2 + 1")
}

func TestBranchTakenPageCross(t *testing.T) {
	c, b := newTestChip()
	c.setFlag(FlagZ, true)
	c.pc = 0x00F0
	b.set(0x00F0, 0xF0, 0x20) // BEQ +0x20

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0112), c.pc)
	assert.Equal(t, uint8(4), cycles, "2 + taken + page")
}

func TestBranchNotTaken(t *testing.T) {
	c, b := newTestChip()
	c.setFlag(FlagZ, false)
	c.pc = 0x0000
	b.set(0x0000, 0xF0, 0x20) // BEQ, Z clear

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0002), c.pc)
	assert.Equal(t, uint8(2), cycles)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, b := newTestChip()
	c.pc = 0x0600
	c.sp = 0xFF
	b.set(0x0600, 0x20, 0x00, 0x08)
	b.set(0x0800, 0x60)

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0800), c.pc)
	assert.Equal(t, uint8(0xFD), c.sp)
	assert.Equal(t, uint8(0x06), b.Read(0x01FF))
	assert.Equal(t, uint8(0x02), b.Read(0x01FE))

	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0603), c.pc)
	assert.Equal(t, uint8(0xFF), c.sp)
}

func TestBRKRTIRoundTrip(t *testing.T) {
	c, b := newTestChip()
	c.pc = 0x0400
	c.sp = 0xFF
	c.setFlag(FlagI, false)
	b.set(0xFFFE, 0x00, 0x90)
	b.set(0x0400, 0x00) // BRK
	b.set(0x9000, 0x40) // RTI

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x9000), c.pc)
	assert.Equal(t, uint8(0xFC), c.sp)
	status := b.Read(0x01FD)
	assert.True(t, status&FlagB != 0)
	assert.True(t, status&FlagU != 0)
	assert.True(t, c.flag(FlagI))

	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0402), c.pc)
	assert.Equal(t, uint8(0xFF), c.sp)
}

func TestIllegalOpcode(t *testing.T) {
	c, b := newTestChip()
	b.set(0x0000, 0x02) // unmapped byte
	before := c.Snapshot()

	_, err := c.Step()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalOpcode))

	var illegal *IllegalOpcode
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, uint8(0x02), illegal.Op)
	assert.Equal(t, before.PC, illegal.PC)
	assert.Equal(t, before, c.Snapshot(), "registers are untouched on an illegal fetch")
}

func TestCMPSetsCarryAndZero(t *testing.T) {
	c, b := newTestChip()
	c.a = 0x40
	b.set(0x0000, 0xC9, 0x40)

	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, c.flag(FlagC))
	assert.True(t, c.flag(FlagZ))
}

func TestCPXComparesAgainstX(t *testing.T) {
	c, b := newTestChip()
	c.x = 0x10
	c.y = 0x20
	b.set(0x0000, 0xE0, 0x10) // CPX #$10

	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, c.flag(FlagZ), "CPX must compare against X, not Y")
}

func TestPLPMasksBAndSetsU(t *testing.T) {
	c, b := newTestChip()
	c.sp = 0xFE
	b.set(0x01FF, 0xFF) // all bits set on the stack, including B
	b.set(0x0000, 0x28) // PLP

	_, err := c.Step()
	require.NoError(t, err)
	assert.False(t, c.flag(FlagB), "PLP discards the stacked B bit")
	assert.True(t, c.flag(FlagU))
}

func TestTYAUpdatesFromY(t *testing.T) {
	c, b := newTestChip()
	c.y = 0x00
	c.x = 0x55
	b.set(0x0000, 0x98) // TYA

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x00), c.a)
	assert.True(t, c.flag(FlagZ), "Z/N must reflect A, not X")
}

func TestLDADispatchesToLDANotADC(t *testing.T) {
	c, b := newTestChip()
	c.a = 0x01
	c.setFlag(FlagC, true)
	b.set(0x0000, 0xA9, 0x05) // LDA #$05

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x05), c.a, "LDA must load, not add")
}

func TestResetSequence(t *testing.T) {
	c, b := newTestChip()
	b.set(0xFFFC, 0x00, 0x80)

	c.Reset()

	assert.Equal(t, uint16(0x8000), c.pc)
	assert.Equal(t, uint8(0xFD), c.sp)
	assert.Equal(t, uint64(7), c.cycles)
	assert.True(t, c.flag(FlagI))
	assert.True(t, c.flag(FlagU))
}

func TestNMIServicedRegardlessOfI(t *testing.T) {
	c, b := newTestChip()
	c.pc = 0x1234
	c.sp = 0xFF
	c.setFlag(FlagI, true)
	b.set(0xFFFA, 0x00, 0x40)
	c.NMI()

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), cycles)
	assert.Equal(t, uint16(0x4000), c.pc)
	status := b.Read(0x01FD)
	assert.False(t, status&FlagB != 0)
}

func TestIRQMaskedByI(t *testing.T) {
	c, b := newTestChip()
	c.pc = 0x1234
	c.setFlag(FlagI, true)
	c.IRQ()
	b.set(0x1234, 0xEA) // NOP

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1235), c.pc, "masked IRQ does not redirect execution")
	assert.Equal(t, uint8(2), cycles, "the NOP ran instead of interrupt service")
}

func TestStatusByteBit5AlwaysSet(t *testing.T) {
	c, b := newTestChip()
	b.set(0x0000, 0xA9, 0x01)

	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, c.flag(FlagU))
}

func TestRegisterWraparound(t *testing.T) {
	c, b := newTestChip()
	c.x = 0xFF
	b.set(0x0000, 0xE8) // INX

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x00), c.x)
	assert.True(t, c.flag(FlagZ))
}

func TestROLThenRORRestoresValueAndCarry(t *testing.T) {
	for m := 0; m < 256; m += 17 {
		for _, carry := range []bool{false, true} {
			c, b := newTestChip()
			c.a = uint8(m)
			c.setFlag(FlagC, carry)
			b.set(0x0000, 0x2A) // ROL A
			_, err := c.Step()
			require.NoError(t, err)

			b.set(0x0001, 0x6A) // ROR A
			_, err = c.Step()
			require.NoError(t, err)

			assert.Equal(t, uint8(m), c.a)
			assert.Equal(t, carry, c.flag(FlagC))
		}
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, b := newTestChip()
	b.set(0x02FF, 0x00) // low byte of target
	b.set(0x0200, 0x80) // high byte, fetched from 0x0200 not 0x0300 due to the bug
	b.set(0x0300, 0xFF) // decoy: if the bug weren't reproduced, this would be read
	b.set(0x0000, 0x6C, 0xFF, 0x02)

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x8000), c.pc)
}

func TestIndirectIndexedYPageCross(t *testing.T) {
	c, b := newTestChip()
	c.y = 0x01
	b.set(0x0010, 0xFF, 0x10) // pointer at zp 0x10 -> 0x10FF
	b.set(0x1100, 0x55)       // 0x10FF + 1 crosses into 0x1100
	b.set(0x0000, 0xB1, 0x10) // LDA (zp),Y

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x55), c.a)
	assert.Equal(t, uint8(6), cycles, "base 5 + 1 page cross")
}
