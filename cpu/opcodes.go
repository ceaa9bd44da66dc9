package cpu

// decodeEntry is one row of the fixed 256-entry decode table: the handler
// for the opcode, its mnemonic (for disassembly), its addressing mode, the
// total instruction length in bytes, the base cycle cost, and whether that
// base cost gets +1 when the addressing mode crossed a page boundary.
// Opcodes with a nil handler are illegal: this core emulates none of the
// 105 undocumented NMOS 6502 encodings.
type decodeEntry struct {
	handler           handlerFunc
	mnemonic          string
	mode              mode
	length            uint8
	baseCycles        uint8
	pageCrossEligible bool
}

// decodeTable is keyed by opcode byte. Only the 151 legal encodings have a
// handler; grounded on the standard NMOS 6502 opcode map (the same table
// the teacher's mos6502.opcodes draft was transcribing), re-verified
// against spec.md's addressing-mode and cycle rules rather than copied
// from the teacher's table verbatim — the teacher's draft has at least one
// transcription bug (0x15 ORA zp,X listed with length 3 instead of 2).
var decodeTable = [256]decodeEntry{
	0x00: {opBRK, "BRK", modeImplied, 2, 7, false},
	0x01: {opORA, "ORA", modeIndirectX, 2, 6, false},
	0x05: {opORA, "ORA", modeZeroPage, 2, 3, false},
	0x06: {opASL, "ASL", modeZeroPage, 2, 5, false},
	0x08: {opPHP, "PHP", modeImplied, 1, 3, false},
	0x09: {opORA, "ORA", modeImmediate, 2, 2, false},
	0x0A: {opASL, "ASL", modeAccumulator, 1, 2, false},
	0x0D: {opORA, "ORA", modeAbsolute, 3, 4, false},
	0x0E: {opASL, "ASL", modeAbsolute, 3, 6, false},

	0x10: {opBPL, "BPL", modeRelative, 2, 2, false},
	0x11: {opORA, "ORA", modeIndirectY, 2, 5, true},
	0x15: {opORA, "ORA", modeZeroPageX, 2, 4, false},
	0x16: {opASL, "ASL", modeZeroPageX, 2, 6, false},
	0x18: {opCLC, "CLC", modeImplied, 1, 2, false},
	0x19: {opORA, "ORA", modeAbsoluteY, 3, 4, true},
	0x1D: {opORA, "ORA", modeAbsoluteX, 3, 4, true},
	0x1E: {opASL, "ASL", modeAbsoluteX, 3, 7, false},

	0x20: {opJSR, "JSR", modeAbsolute, 3, 6, false},
	0x21: {opAND, "AND", modeIndirectX, 2, 6, false},
	0x24: {opBIT, "BIT", modeZeroPage, 2, 3, false},
	0x25: {opAND, "AND", modeZeroPage, 2, 3, false},
	0x26: {opROL, "ROL", modeZeroPage, 2, 5, false},
	0x28: {opPLP, "PLP", modeImplied, 1, 4, false},
	0x29: {opAND, "AND", modeImmediate, 2, 2, false},
	0x2A: {opROL, "ROL", modeAccumulator, 1, 2, false},
	0x2C: {opBIT, "BIT", modeAbsolute, 3, 4, false},
	0x2D: {opAND, "AND", modeAbsolute, 3, 4, false},
	0x2E: {opROL, "ROL", modeAbsolute, 3, 6, false},

	0x30: {opBMI, "BMI", modeRelative, 2, 2, false},
	0x31: {opAND, "AND", modeIndirectY, 2, 5, true},
	0x35: {opAND, "AND", modeZeroPageX, 2, 4, false},
	0x36: {opROL, "ROL", modeZeroPageX, 2, 6, false},
	0x38: {opSEC, "SEC", modeImplied, 1, 2, false},
	0x39: {opAND, "AND", modeAbsoluteY, 3, 4, true},
	0x3D: {opAND, "AND", modeAbsoluteX, 3, 4, true},
	0x3E: {opROL, "ROL", modeAbsoluteX, 3, 7, false},

	0x40: {opRTI, "RTI", modeImplied, 1, 6, false},
	0x41: {opEOR, "EOR", modeIndirectX, 2, 6, false},
	0x45: {opEOR, "EOR", modeZeroPage, 2, 3, false},
	0x46: {opLSR, "LSR", modeZeroPage, 2, 5, false},
	0x48: {opPHA, "PHA", modeImplied, 1, 3, false},
	0x49: {opEOR, "EOR", modeImmediate, 2, 2, false},
	0x4A: {opLSR, "LSR", modeAccumulator, 1, 2, false},
	0x4C: {opJMP, "JMP", modeAbsolute, 3, 3, false},
	0x4D: {opEOR, "EOR", modeAbsolute, 3, 4, false},
	0x4E: {opLSR, "LSR", modeAbsolute, 3, 6, false},

	0x50: {opBVC, "BVC", modeRelative, 2, 2, false},
	0x51: {opEOR, "EOR", modeIndirectY, 2, 5, true},
	0x55: {opEOR, "EOR", modeZeroPageX, 2, 4, false},
	0x56: {opLSR, "LSR", modeZeroPageX, 2, 6, false},
	0x58: {opCLI, "CLI", modeImplied, 1, 2, false},
	0x59: {opEOR, "EOR", modeAbsoluteY, 3, 4, true},
	0x5D: {opEOR, "EOR", modeAbsoluteX, 3, 4, true},
	0x5E: {opLSR, "LSR", modeAbsoluteX, 3, 7, false},

	0x60: {opRTS, "RTS", modeImplied, 1, 6, false},
	0x61: {opADC, "ADC", modeIndirectX, 2, 6, false},
	0x65: {opADC, "ADC", modeZeroPage, 2, 3, false},
	0x66: {opROR, "ROR", modeZeroPage, 2, 5, false},
	0x68: {opPLA, "PLA", modeImplied, 1, 4, false},
	0x69: {opADC, "ADC", modeImmediate, 2, 2, false},
	0x6A: {opROR, "ROR", modeAccumulator, 1, 2, false},
	0x6C: {opJMP, "JMP", modeIndirect, 3, 5, false},
	0x6D: {opADC, "ADC", modeAbsolute, 3, 4, false},
	0x6E: {opROR, "ROR", modeAbsolute, 3, 6, false},

	0x70: {opBVS, "BVS", modeRelative, 2, 2, false},
	0x71: {opADC, "ADC", modeIndirectY, 2, 5, true},
	0x75: {opADC, "ADC", modeZeroPageX, 2, 4, false},
	0x76: {opROR, "ROR", modeZeroPageX, 2, 6, false},
	0x78: {opSEI, "SEI", modeImplied, 1, 2, false},
	0x79: {opADC, "ADC", modeAbsoluteY, 3, 4, true},
	0x7D: {opADC, "ADC", modeAbsoluteX, 3, 4, true},
	0x7E: {opROR, "ROR", modeAbsoluteX, 3, 7, false},

	0x81: {opSTA, "STA", modeIndirectX, 2, 6, false},
	0x84: {opSTY, "STY", modeZeroPage, 2, 3, false},
	0x85: {opSTA, "STA", modeZeroPage, 2, 3, false},
	0x86: {opSTX, "STX", modeZeroPage, 2, 3, false},
	0x88: {opDEY, "DEY", modeImplied, 1, 2, false},
	0x8A: {opTXA, "TXA", modeImplied, 1, 2, false},
	0x8C: {opSTY, "STY", modeAbsolute, 3, 4, false},
	0x8D: {opSTA, "STA", modeAbsolute, 3, 4, false},
	0x8E: {opSTX, "STX", modeAbsolute, 3, 4, false},

	0x90: {opBCC, "BCC", modeRelative, 2, 2, false},
	0x91: {opSTA, "STA", modeIndirectY, 2, 6, false},
	0x94: {opSTY, "STY", modeZeroPageX, 2, 4, false},
	0x95: {opSTA, "STA", modeZeroPageX, 2, 4, false},
	0x96: {opSTX, "STX", modeZeroPageY, 2, 4, false},
	0x98: {opTYA, "TYA", modeImplied, 1, 2, false},
	0x99: {opSTA, "STA", modeAbsoluteY, 3, 5, false},
	0x9A: {opTXS, "TXS", modeImplied, 1, 2, false},
	0x9D: {opSTA, "STA", modeAbsoluteX, 3, 5, false},

	0xA0: {opLDY, "LDY", modeImmediate, 2, 2, false},
	0xA1: {opLDA, "LDA", modeIndirectX, 2, 6, false},
	0xA2: {opLDX, "LDX", modeImmediate, 2, 2, false},
	0xA4: {opLDY, "LDY", modeZeroPage, 2, 3, false},
	0xA5: {opLDA, "LDA", modeZeroPage, 2, 3, false},
	0xA6: {opLDX, "LDX", modeZeroPage, 2, 3, false},
	0xA8: {opTAY, "TAY", modeImplied, 1, 2, false},
	0xA9: {opLDA, "LDA", modeImmediate, 2, 2, false},
	0xAA: {opTAX, "TAX", modeImplied, 1, 2, false},
	0xAC: {opLDY, "LDY", modeAbsolute, 3, 4, false},
	0xAD: {opLDA, "LDA", modeAbsolute, 3, 4, false},
	0xAE: {opLDX, "LDX", modeAbsolute, 3, 4, false},

	0xB0: {opBCS, "BCS", modeRelative, 2, 2, false},
	0xB1: {opLDA, "LDA", modeIndirectY, 2, 5, true},
	0xB4: {opLDY, "LDY", modeZeroPageX, 2, 4, false},
	0xB5: {opLDA, "LDA", modeZeroPageX, 2, 4, false},
	0xB6: {opLDX, "LDX", modeZeroPageY, 2, 4, false},
	0xB8: {opCLV, "CLV", modeImplied, 1, 2, false},
	0xB9: {opLDA, "LDA", modeAbsoluteY, 3, 4, true},
	0xBA: {opTSX, "TSX", modeImplied, 1, 2, false},
	0xBC: {opLDY, "LDY", modeAbsoluteX, 3, 4, true},
	0xBD: {opLDA, "LDA", modeAbsoluteX, 3, 4, true},
	0xBE: {opLDX, "LDX", modeAbsoluteY, 3, 4, true},

	0xC0: {opCPY, "CPY", modeImmediate, 2, 2, false},
	0xC1: {opCMP, "CMP", modeIndirectX, 2, 6, false},
	0xC4: {opCPY, "CPY", modeZeroPage, 2, 3, false},
	0xC5: {opCMP, "CMP", modeZeroPage, 2, 3, false},
	0xC6: {opDEC, "DEC", modeZeroPage, 2, 5, false},
	0xC8: {opINY, "INY", modeImplied, 1, 2, false},
	0xC9: {opCMP, "CMP", modeImmediate, 2, 2, false},
	0xCA: {opDEX, "DEX", modeImplied, 1, 2, false},
	0xCC: {opCPY, "CPY", modeAbsolute, 3, 4, false},
	0xCD: {opCMP, "CMP", modeAbsolute, 3, 4, false},
	0xCE: {opDEC, "DEC", modeAbsolute, 3, 6, false},

	0xD0: {opBNE, "BNE", modeRelative, 2, 2, false},
	0xD1: {opCMP, "CMP", modeIndirectY, 2, 5, true},
	0xD5: {opCMP, "CMP", modeZeroPageX, 2, 4, false},
	0xD6: {opDEC, "DEC", modeZeroPageX, 2, 6, false},
	0xD8: {opCLD, "CLD", modeImplied, 1, 2, false},
	0xD9: {opCMP, "CMP", modeAbsoluteY, 3, 4, true},
	0xDD: {opCMP, "CMP", modeAbsoluteX, 3, 4, true},
	0xDE: {opDEC, "DEC", modeAbsoluteX, 3, 7, false},

	0xE0: {opCPX, "CPX", modeImmediate, 2, 2, false},
	0xE1: {opSBC, "SBC", modeIndirectX, 2, 6, false},
	0xE4: {opCPX, "CPX", modeZeroPage, 2, 3, false},
	0xE5: {opSBC, "SBC", modeZeroPage, 2, 3, false},
	0xE6: {opINC, "INC", modeZeroPage, 2, 5, false},
	0xE8: {opINX, "INX", modeImplied, 1, 2, false},
	0xE9: {opSBC, "SBC", modeImmediate, 2, 2, false},
	0xEA: {opNOP, "NOP", modeImplied, 1, 2, false},
	0xEC: {opCPX, "CPX", modeAbsolute, 3, 4, false},
	0xED: {opSBC, "SBC", modeAbsolute, 3, 4, false},
	0xEE: {opINC, "INC", modeAbsolute, 3, 6, false},

	0xF0: {opBEQ, "BEQ", modeRelative, 2, 2, false},
	0xF1: {opSBC, "SBC", modeIndirectY, 2, 5, true},
	0xF5: {opSBC, "SBC", modeZeroPageX, 2, 4, false},
	0xF6: {opINC, "INC", modeZeroPageX, 2, 6, false},
	0xF8: {opSED, "SED", modeImplied, 1, 2, false},
	0xF9: {opSBC, "SBC", modeAbsoluteY, 3, 4, true},
	0xFD: {opSBC, "SBC", modeAbsoluteX, 3, 4, true},
	0xFE: {opINC, "INC", modeAbsoluteX, 3, 7, false},
}
