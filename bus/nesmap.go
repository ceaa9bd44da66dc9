package bus

// NESMemoryMap is the default Bus implementation: the standard NES CPU
// address space, decoded into four regions and wired to collaborators.
// Grounded directly on the teacher's console/cpu_memory.go (region
// boundaries and mirroring arithmetic) and console/bus.go (OAMDMA
// recognition at $4014).
//
//	0x0000-0x1FFF  2KB internal RAM, mirrored every 0x800 bytes
//	0x2000-0x3FFF  PPU registers, mirrored every 8 bytes
//	0x4000-0x401F  APU/IO registers
//	0x4020-0xFFFF  Cartridge space (PRG-ROM/RAM via the mapper)
type NESMemoryMap struct {
	ram       [0x800]uint8
	ppu       PPURegisters
	io        IOPort
	cartridge Cartridge
}

// NESConfig supplies the collaborators behind the PPU, IO and cartridge
// regions. Any left nil get a default stub so a NESMemoryMap is usable
// without wiring a full console.
type NESConfig struct {
	Cartridge Cartridge
	PPU       PPURegisters
	IO        IOPort
}

// NewNESMemoryMap builds a memory map from cfg, filling in defaults for any
// collaborator left unset.
func NewNESMemoryMap(cfg NESConfig) *NESMemoryMap {
	m := &NESMemoryMap{
		ppu:       cfg.PPU,
		io:        cfg.IO,
		cartridge: cfg.Cartridge,
	}
	if m.ppu == nil {
		m.ppu = NewNullPPU()
	}
	if m.io == nil {
		m.io = NewNullIO()
	}
	if m.cartridge == nil {
		m.cartridge = NewRAMCartridge()
	}
	return m
}

func (m *NESMemoryMap) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return m.ram[addr%0x800]
	case addr < 0x4000:
		return m.ppu.ReadReg(uint8((addr - 0x2000) % 8))
	case addr < 0x4020:
		return m.io.ReadReg(uint8(addr - 0x4000))
	case addr <= 0xFFFF:
		return m.cartridge.PrgRead(addr)
	default:
		panic("bus: address space exhausted without match")
	}
}

func (m *NESMemoryMap) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		m.ram[addr%0x800] = val
	case addr < 0x4000:
		m.ppu.WriteReg(uint8((addr-0x2000)%8), val)
	case addr < 0x4020:
		m.io.WriteReg(uint8(addr-0x4000), val)
	case addr <= 0xFFFF:
		m.cartridge.PrgWrite(addr, val)
	default:
		panic("bus: address space exhausted without match")
	}
}
