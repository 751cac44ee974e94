package nes

// buildOpcodeTable returns the immutable 256-entry instruction dispatch
// table. Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
//
// Unassigned opcode bytes map to XXX, a no-op carrying a nominal 2-cycle
// budget. A few unassigned slots are documented illegal opcodes that behave
// as extra NOPs or SBC aliases; those are called out per entry.
func buildOpcodeTable(cpu *Cpu6502) [256]Instruction {
	table := [256]Instruction{
		0x00: {"BRK", cpu.amIMP, cpu.opBRK, IMP, 7},
		0x01: {"ORA", cpu.amIZX, cpu.opORA, IZX, 6},
		0x05: {"ORA", cpu.amZP0, cpu.opORA, ZP0, 3},
		0x06: {"ASL", cpu.amZP0, cpu.opASL, ZP0, 5},
		0x08: {"PHP", cpu.amIMP, cpu.opPHP, IMP, 3},
		0x09: {"ORA", cpu.amIMM, cpu.opORA, IMM, 2},
		0x0A: {"ASL", cpu.amIMP, cpu.opASL, IMP, 2},
		0x0D: {"ORA", cpu.amABS, cpu.opORA, ABS, 4},
		0x0E: {"ASL", cpu.amABS, cpu.opASL, ABS, 6},

		0x10: {"BPL", cpu.amREL, cpu.opBPL, REL, 2},
		0x11: {"ORA", cpu.amIZY, cpu.opORA, IZY, 5},
		0x15: {"ORA", cpu.amZPX, cpu.opORA, ZPX, 4},
		0x16: {"ASL", cpu.amZPX, cpu.opASL, ZPX, 6},
		0x18: {"CLC", cpu.amIMP, cpu.opCLC, IMP, 2},
		0x19: {"ORA", cpu.amABY, cpu.opORA, ABY, 4},
		0x1D: {"ORA", cpu.amABX, cpu.opORA, ABX, 4},
		0x1E: {"ASL", cpu.amABX, cpu.opASL, ABX, 7},

		0x20: {"JSR", cpu.amABS, cpu.opJSR, ABS, 6},
		0x21: {"AND", cpu.amIZX, cpu.opAND, IZX, 6},
		0x24: {"BIT", cpu.amZP0, cpu.opBIT, ZP0, 3},
		0x25: {"AND", cpu.amZP0, cpu.opAND, ZP0, 3},
		0x26: {"ROL", cpu.amZP0, cpu.opROL, ZP0, 5},
		0x28: {"PLP", cpu.amIMP, cpu.opPLP, IMP, 4},
		0x29: {"AND", cpu.amIMM, cpu.opAND, IMM, 2},
		0x2A: {"ROL", cpu.amIMP, cpu.opROL, IMP, 2},
		0x2C: {"BIT", cpu.amABS, cpu.opBIT, ABS, 4},
		0x2D: {"AND", cpu.amABS, cpu.opAND, ABS, 4},
		0x2E: {"ROL", cpu.amABS, cpu.opROL, ABS, 6},

		0x30: {"BMI", cpu.amREL, cpu.opBMI, REL, 2},
		0x31: {"AND", cpu.amIZY, cpu.opAND, IZY, 5},
		0x35: {"AND", cpu.amZPX, cpu.opAND, ZPX, 4},
		0x36: {"ROL", cpu.amZPX, cpu.opROL, ZPX, 6},
		0x38: {"SEC", cpu.amIMP, cpu.opSEC, IMP, 2},
		0x39: {"AND", cpu.amABY, cpu.opAND, ABY, 4},
		0x3D: {"AND", cpu.amABX, cpu.opAND, ABX, 4},
		0x3E: {"ROL", cpu.amABX, cpu.opROL, ABX, 7},

		0x40: {"RTI", cpu.amIMP, cpu.opRTI, IMP, 6},
		0x41: {"EOR", cpu.amIZX, cpu.opEOR, IZX, 6},
		0x45: {"EOR", cpu.amZP0, cpu.opEOR, ZP0, 3},
		0x46: {"LSR", cpu.amZP0, cpu.opLSR, ZP0, 5},
		0x48: {"PHA", cpu.amIMP, cpu.opPHA, IMP, 3},
		0x49: {"EOR", cpu.amIMM, cpu.opEOR, IMM, 2},
		0x4A: {"LSR", cpu.amIMP, cpu.opLSR, IMP, 2},
		0x4C: {"JMP", cpu.amABS, cpu.opJMP, ABS, 3},
		0x4D: {"EOR", cpu.amABS, cpu.opEOR, ABS, 4},
		0x4E: {"LSR", cpu.amABS, cpu.opLSR, ABS, 6},

		0x50: {"BVC", cpu.amREL, cpu.opBVC, REL, 2},
		0x51: {"EOR", cpu.amIZY, cpu.opEOR, IZY, 5},
		0x55: {"EOR", cpu.amZPX, cpu.opEOR, ZPX, 4},
		0x56: {"LSR", cpu.amZPX, cpu.opLSR, ZPX, 6},
		0x58: {"CLI", cpu.amIMP, cpu.opCLI, IMP, 2},
		0x59: {"EOR", cpu.amABY, cpu.opEOR, ABY, 4},
		0x5D: {"EOR", cpu.amABX, cpu.opEOR, ABX, 4},
		0x5E: {"LSR", cpu.amABX, cpu.opLSR, ABX, 7},

		0x60: {"RTS", cpu.amIMP, cpu.opRTS, IMP, 6},
		0x61: {"ADC", cpu.amIZX, cpu.opADC, IZX, 6},
		0x65: {"ADC", cpu.amZP0, cpu.opADC, ZP0, 3},
		0x66: {"ROR", cpu.amZP0, cpu.opROR, ZP0, 5},
		0x68: {"PLA", cpu.amIMP, cpu.opPLA, IMP, 4},
		0x69: {"ADC", cpu.amIMM, cpu.opADC, IMM, 2},
		0x6A: {"ROR", cpu.amIMP, cpu.opROR, IMP, 2},
		0x6C: {"JMP", cpu.amIND, cpu.opJMP, IND, 5},
		0x6D: {"ADC", cpu.amABS, cpu.opADC, ABS, 4},
		0x6E: {"ROR", cpu.amABS, cpu.opROR, ABS, 6},

		0x70: {"BVS", cpu.amREL, cpu.opBVS, REL, 2},
		0x71: {"ADC", cpu.amIZY, cpu.opADC, IZY, 5},
		0x75: {"ADC", cpu.amZPX, cpu.opADC, ZPX, 4},
		0x76: {"ROR", cpu.amZPX, cpu.opROR, ZPX, 6},
		0x78: {"SEI", cpu.amIMP, cpu.opSEI, IMP, 2},
		0x79: {"ADC", cpu.amABY, cpu.opADC, ABY, 4},
		0x7D: {"ADC", cpu.amABX, cpu.opADC, ABX, 4},
		0x7E: {"ROR", cpu.amABX, cpu.opROR, ABX, 7},

		0x81: {"STA", cpu.amIZX, cpu.opSTA, IZX, 6},
		0x84: {"STY", cpu.amZP0, cpu.opSTY, ZP0, 3},
		0x85: {"STA", cpu.amZP0, cpu.opSTA, ZP0, 3},
		0x86: {"STX", cpu.amZP0, cpu.opSTX, ZP0, 3},
		0x88: {"DEY", cpu.amIMP, cpu.opDEY, IMP, 2},
		0x8A: {"TXA", cpu.amIMP, cpu.opTXA, IMP, 2},
		0x8C: {"STY", cpu.amABS, cpu.opSTY, ABS, 4},
		0x8D: {"STA", cpu.amABS, cpu.opSTA, ABS, 4},
		0x8E: {"STX", cpu.amABS, cpu.opSTX, ABS, 4},

		0x90: {"BCC", cpu.amREL, cpu.opBCC, REL, 2},
		0x91: {"STA", cpu.amIZY, cpu.opSTA, IZY, 6},
		0x94: {"STY", cpu.amZPX, cpu.opSTY, ZPX, 4},
		0x95: {"STA", cpu.amZPX, cpu.opSTA, ZPX, 4},
		0x96: {"STX", cpu.amZPY, cpu.opSTX, ZPY, 4},
		0x98: {"TYA", cpu.amIMP, cpu.opTYA, IMP, 2},
		0x99: {"STA", cpu.amABY, cpu.opSTA, ABY, 5},
		0x9A: {"TXS", cpu.amIMP, cpu.opTXS, IMP, 2},
		0x9D: {"STA", cpu.amABX, cpu.opSTA, ABX, 5},

		0xA0: {"LDY", cpu.amIMM, cpu.opLDY, IMM, 2},
		0xA1: {"LDA", cpu.amIZX, cpu.opLDA, IZX, 6},
		0xA2: {"LDX", cpu.amIMM, cpu.opLDX, IMM, 2},
		0xA4: {"LDY", cpu.amZP0, cpu.opLDY, ZP0, 3},
		0xA5: {"LDA", cpu.amZP0, cpu.opLDA, ZP0, 3},
		0xA6: {"LDX", cpu.amZP0, cpu.opLDX, ZP0, 3},
		0xA8: {"TAY", cpu.amIMP, cpu.opTAY, IMP, 2},
		0xA9: {"LDA", cpu.amIMM, cpu.opLDA, IMM, 2},
		0xAA: {"TAX", cpu.amIMP, cpu.opTAX, IMP, 2},
		0xAC: {"LDY", cpu.amABS, cpu.opLDY, ABS, 4},
		0xAD: {"LDA", cpu.amABS, cpu.opLDA, ABS, 4},
		0xAE: {"LDX", cpu.amABS, cpu.opLDX, ABS, 4},

		0xB0: {"BCS", cpu.amREL, cpu.opBCS, REL, 2},
		0xB1: {"LDA", cpu.amIZY, cpu.opLDA, IZY, 5},
		0xB4: {"LDY", cpu.amZPX, cpu.opLDY, ZPX, 4},
		0xB5: {"LDA", cpu.amZPX, cpu.opLDA, ZPX, 4},
		0xB6: {"LDX", cpu.amZPY, cpu.opLDX, ZPY, 4},
		0xB8: {"CLV", cpu.amIMP, cpu.opCLV, IMP, 2},
		0xB9: {"LDA", cpu.amABY, cpu.opLDA, ABY, 4},
		0xBA: {"TSX", cpu.amIMP, cpu.opTSX, IMP, 2},
		0xBC: {"LDY", cpu.amABX, cpu.opLDY, ABX, 4},
		0xBD: {"LDA", cpu.amABX, cpu.opLDA, ABX, 4},
		0xBE: {"LDX", cpu.amABY, cpu.opLDX, ABY, 4},

		0xC0: {"CPY", cpu.amIMM, cpu.opCPY, IMM, 2},
		0xC1: {"CMP", cpu.amIZX, cpu.opCMP, IZX, 6},
		0xC4: {"CPY", cpu.amZP0, cpu.opCPY, ZP0, 3},
		0xC5: {"CMP", cpu.amZP0, cpu.opCMP, ZP0, 3},
		0xC6: {"DEC", cpu.amZP0, cpu.opDEC, ZP0, 5},
		0xC8: {"INY", cpu.amIMP, cpu.opINY, IMP, 2},
		0xC9: {"CMP", cpu.amIMM, cpu.opCMP, IMM, 2},
		0xCA: {"DEX", cpu.amIMP, cpu.opDEX, IMP, 2},
		0xCC: {"CPY", cpu.amABS, cpu.opCPY, ABS, 4},
		0xCD: {"CMP", cpu.amABS, cpu.opCMP, ABS, 4},
		0xCE: {"DEC", cpu.amABS, cpu.opDEC, ABS, 6},

		0xD0: {"BNE", cpu.amREL, cpu.opBNE, REL, 2},
		0xD1: {"CMP", cpu.amIZY, cpu.opCMP, IZY, 5},
		0xD5: {"CMP", cpu.amZPX, cpu.opCMP, ZPX, 4},
		0xD6: {"DEC", cpu.amZPX, cpu.opDEC, ZPX, 6},
		0xD8: {"CLD", cpu.amIMP, cpu.opCLD, IMP, 2},
		0xD9: {"CMP", cpu.amABY, cpu.opCMP, ABY, 4},
		0xDD: {"CMP", cpu.amABX, cpu.opCMP, ABX, 4},
		0xDE: {"DEC", cpu.amABX, cpu.opDEC, ABX, 7},

		0xE0: {"CPX", cpu.amIMM, cpu.opCPX, IMM, 2},
		0xE1: {"SBC", cpu.amIZX, cpu.opSBC, IZX, 6},
		0xE4: {"CPX", cpu.amZP0, cpu.opCPX, ZP0, 3},
		0xE5: {"SBC", cpu.amZP0, cpu.opSBC, ZP0, 3},
		0xE6: {"INC", cpu.amZP0, cpu.opINC, ZP0, 5},
		0xE8: {"INX", cpu.amIMP, cpu.opINX, IMP, 2},
		0xE9: {"SBC", cpu.amIMM, cpu.opSBC, IMM, 2},
		0xEA: {"NOP", cpu.amIMP, cpu.opNOP, IMP, 2},
		0xEB: {"SBC", cpu.amIMM, cpu.opSBC, IMM, 2}, // illegal: USBC, SBC alias
		0xEC: {"CPX", cpu.amABS, cpu.opCPX, ABS, 4},
		0xED: {"SBC", cpu.amABS, cpu.opSBC, ABS, 4},
		0xEE: {"INC", cpu.amABS, cpu.opINC, ABS, 6},

		0xF0: {"BEQ", cpu.amREL, cpu.opBEQ, REL, 2},
		0xF1: {"SBC", cpu.amIZY, cpu.opSBC, IZY, 5},
		0xF5: {"SBC", cpu.amZPX, cpu.opSBC, ZPX, 4},
		0xF6: {"INC", cpu.amZPX, cpu.opINC, ZPX, 6},
		0xF8: {"SED", cpu.amIMP, cpu.opSED, IMP, 2},
		0xF9: {"SBC", cpu.amABY, cpu.opSBC, ABY, 4},
		0xFD: {"SBC", cpu.amABX, cpu.opSBC, ABX, 4},
		0xFE: {"INC", cpu.amABX, cpu.opINC, ABX, 7},

		// Illegal-opcode NOP slots: several undocumented opcodes behave as
		// extra NOPs. The ABX-addressed ones may still draw a page-crossing
		// penalty, so they route through opNOP rather than a bare literal.
		0x04: {"NOP", cpu.amZP0, cpu.opNOP, ZP0, 3},
		0x0C: {"NOP", cpu.amABS, cpu.opNOP, ABS, 4},
		0x14: {"NOP", cpu.amZPX, cpu.opNOP, ZPX, 4},
		0x1A: {"NOP", cpu.amIMP, cpu.opNOP, IMP, 2},
		0x1C: {"NOP", cpu.amABX, cpu.opNOP, ABX, 4},
		0x34: {"NOP", cpu.amZPX, cpu.opNOP, ZPX, 4},
		0x3A: {"NOP", cpu.amIMP, cpu.opNOP, IMP, 2},
		0x3C: {"NOP", cpu.amABX, cpu.opNOP, ABX, 4},
		0x44: {"NOP", cpu.amZP0, cpu.opNOP, ZP0, 3},
		0x54: {"NOP", cpu.amZPX, cpu.opNOP, ZPX, 4},
		0x5A: {"NOP", cpu.amIMP, cpu.opNOP, IMP, 2},
		0x5C: {"NOP", cpu.amABX, cpu.opNOP, ABX, 4},
		0x64: {"NOP", cpu.amZP0, cpu.opNOP, ZP0, 3},
		0x74: {"NOP", cpu.amZPX, cpu.opNOP, ZPX, 4},
		0x7A: {"NOP", cpu.amIMP, cpu.opNOP, IMP, 2},
		0x7C: {"NOP", cpu.amABX, cpu.opNOP, ABX, 4},
		0x80: {"NOP", cpu.amIMM, cpu.opNOP, IMM, 2},
		0xD4: {"NOP", cpu.amZPX, cpu.opNOP, ZPX, 4},
		0xDA: {"NOP", cpu.amIMP, cpu.opNOP, IMP, 2},
		0xDC: {"NOP", cpu.amABX, cpu.opNOP, ABX, 4},
		0xF4: {"NOP", cpu.amZPX, cpu.opNOP, ZPX, 4},
		0xFA: {"NOP", cpu.amIMP, cpu.opNOP, IMP, 2},
		0xFC: {"NOP", cpu.amABX, cpu.opNOP, ABX, 4},
	}

	for i := range table {
		if table[i].Name == "" {
			table[i] = Instruction{"XXX", cpu.amIMP, cpu.opXXX, IMP, 2}
		}
	}
	return table
}
