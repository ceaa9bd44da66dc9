package bus

// PPURegisters is the collaborator behind the eight PPU registers mirrored
// across 0x2000-0x3FFF. The real PPU applies side effects on most of these
// (OAMDATA auto-increment, PPUSTATUS clearing the write latch, PPUDATA's
// buffered-read quirk, and so on); accurate PPU behavior is out of this
// core's scope, so this interface only carries the plain register storage
// the memory map needs to decode addresses against. A fuller emulator
// supplies its own implementation with the real side effects; this
// package's NullPPU is a flat, side-effect-free store useful for testing
// the CPU and memory map in isolation.
//
// Register offsets, grounded on the teacher's console/ppu_register.go and
// ppu/ppu.go:
const (
	RegPPUCTRL   = 0
	RegPPUMASK   = 1
	RegPPUSTATUS = 2
	RegOAMADDR   = 3
	RegOAMDATA   = 4
	RegPPUSCROLL = 5
	RegPPUADDR   = 6
	RegPPUDATA   = 7
)

// PPURegisters exposes the 8 register slots the memory map mirrors every
// 8 bytes from 0x2000 to 0x3FFF. reg is already reduced to 0-7 by the
// memory map before these are called.
type PPURegisters interface {
	ReadReg(reg uint8) uint8
	WriteReg(reg uint8, val uint8)
}

// NullPPU is a flat 8-byte register store with no rendering side effects.
type NullPPU struct {
	regs [8]uint8
}

// NewNullPPU returns a PPURegisters with all registers zeroed.
func NewNullPPU() *NullPPU {
	return &NullPPU{}
}

func (p *NullPPU) ReadReg(reg uint8) uint8 {
	return p.regs[reg&0x7]
}

func (p *NullPPU) WriteReg(reg uint8, val uint8) {
	p.regs[reg&0x7] = val
}
