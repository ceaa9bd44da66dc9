package bus

// Cartridge is the collaborator that owns the address space from 0x4020
// through 0xFFFF. Real cartridges decode this through a mapper (bank
// switching, CHR banking, IRQ generation on scanline counters, etc); that
// logic is out of this core's scope, so only the narrow read/write surface
// the memory map needs is exposed here.
//
// Grounded on the teacher's mappers.Mapper interface (PrgRead/PrgWrite),
// trimmed of the ROM-loading and mapper-registry machinery that belongs to
// the excluded file-format layer.
type Cartridge interface {
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
}

// RAMCartridge is a default Cartridge backed by plain RAM across the whole
// cartridge region. It has no mapper semantics (no bank switching, no
// battery-backed save RAM) — it exists so MemoryMap is usable without
// wiring a real mapper, e.g. in tests that just need writable cartridge
// space. Adapted from the teacher's mappers.dummyMapper.
type RAMCartridge struct {
	mem [0x10000 - 0x4020]uint8
}

// NewRAMCartridge returns a Cartridge backed by zeroed RAM.
func NewRAMCartridge() *RAMCartridge {
	return &RAMCartridge{}
}

func (c *RAMCartridge) PrgRead(addr uint16) uint8 {
	return c.mem[addr-0x4020]
}

func (c *RAMCartridge) PrgWrite(addr uint16, val uint8) {
	c.mem[addr-0x4020] = val
}
