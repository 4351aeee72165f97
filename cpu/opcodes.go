package cpu

// opcodeEntry is one row of the 256-entry dispatch table: the
// mnemonic (for diagnostics), the addressing mode the handler expects,
// and the handler itself. A nil handler marks an opcode byte with no
// documented instruction.
type opcodeEntry struct {
	mnemonic string
	mode     addrMode
	handler  handlerFunc
}

// opcodeTable is the 256-entry decode table covering exactly the
// documented NMOS opcode/addressing-mode set. It is data, not a
// switch, per the recommended replacement for a giant case statement;
// unassigned entries are left at their zero value (nil handler) and
// cause Step to report InvalidOpcode.
var opcodeTable [256]opcodeEntry

func set(op uint8, mnemonic string, mode addrMode, fn handlerFunc) {
	opcodeTable[op] = opcodeEntry{mnemonic, mode, fn}
}

func init() {
	// Row 0x00
	set(0x00, "BRK", modeImplied, opBRK)
	set(0x01, "ORA", modeIndirectX, opORA)
	set(0x05, "ORA", modeZeroPage, opORA)
	set(0x06, "ASL", modeZeroPage, opASL)
	set(0x08, "PHP", modeImplied, opPHP)
	set(0x09, "ORA", modeImmediate, opORA)
	set(0x0A, "ASL", modeAccumulator, opASL)
	set(0x0D, "ORA", modeAbsolute, opORA)
	set(0x0E, "ASL", modeAbsolute, opASL)

	// Row 0x10
	set(0x10, "BPL", modeRelative, opBPL)
	set(0x11, "ORA", modeIndirectY, opORA)
	set(0x15, "ORA", modeZeroPageX, opORA)
	set(0x16, "ASL", modeZeroPageX, opASL)
	set(0x18, "CLC", modeImplied, opCLC)
	set(0x19, "ORA", modeAbsoluteY, opORA)
	set(0x1D, "ORA", modeAbsoluteX, opORA)
	set(0x1E, "ASL", modeAbsoluteX, opASL)

	// Row 0x20
	set(0x20, "JSR", modeAbsolute, opJSR)
	set(0x21, "AND", modeIndirectX, opAND)
	set(0x24, "BIT", modeZeroPage, opBIT)
	set(0x25, "AND", modeZeroPage, opAND)
	set(0x26, "ROL", modeZeroPage, opROL)
	set(0x28, "PLP", modeImplied, opPLP)
	set(0x29, "AND", modeImmediate, opAND)
	set(0x2A, "ROL", modeAccumulator, opROL)
	set(0x2C, "BIT", modeAbsolute, opBIT)
	set(0x2D, "AND", modeAbsolute, opAND)
	set(0x2E, "ROL", modeAbsolute, opROL)

	// Row 0x30
	set(0x30, "BMI", modeRelative, opBMI)
	set(0x31, "AND", modeIndirectY, opAND)
	set(0x35, "AND", modeZeroPageX, opAND)
	set(0x36, "ROL", modeZeroPageX, opROL)
	set(0x38, "SEC", modeImplied, opSEC)
	set(0x39, "AND", modeAbsoluteY, opAND)
	set(0x3D, "AND", modeAbsoluteX, opAND)
	set(0x3E, "ROL", modeAbsoluteX, opROL)

	// Row 0x40
	set(0x40, "RTI", modeImplied, opRTI)
	set(0x41, "EOR", modeIndirectX, opEOR)
	set(0x45, "EOR", modeZeroPage, opEOR)
	set(0x46, "LSR", modeZeroPage, opLSR)
	set(0x48, "PHA", modeImplied, opPHA)
	set(0x49, "EOR", modeImmediate, opEOR)
	set(0x4A, "LSR", modeAccumulator, opLSR)
	set(0x4C, "JMP", modeAbsolute, opJMP)
	set(0x4D, "EOR", modeAbsolute, opEOR)
	set(0x4E, "LSR", modeAbsolute, opLSR)

	// Row 0x50
	set(0x50, "BVC", modeRelative, opBVC)
	set(0x51, "EOR", modeIndirectY, opEOR)
	set(0x55, "EOR", modeZeroPageX, opEOR)
	set(0x56, "LSR", modeZeroPageX, opLSR)
	set(0x58, "CLI", modeImplied, opCLI)
	set(0x59, "EOR", modeAbsoluteY, opEOR)
	set(0x5D, "EOR", modeAbsoluteX, opEOR)
	set(0x5E, "LSR", modeAbsoluteX, opLSR)

	// Row 0x60
	set(0x60, "RTS", modeImplied, opRTS)
	set(0x61, "ADC", modeIndirectX, opADC)
	set(0x65, "ADC", modeZeroPage, opADC)
	set(0x66, "ROR", modeZeroPage, opROR)
	set(0x68, "PLA", modeImplied, opPLA)
	set(0x69, "ADC", modeImmediate, opADC)
	set(0x6A, "ROR", modeAccumulator, opROR)
	set(0x6C, "JMP", modeIndirect, opJMP)
	set(0x6D, "ADC", modeAbsolute, opADC)
	set(0x6E, "ROR", modeAbsolute, opROR)

	// Row 0x70
	set(0x70, "BVS", modeRelative, opBVS)
	set(0x71, "ADC", modeIndirectY, opADC)
	set(0x75, "ADC", modeZeroPageX, opADC)
	set(0x76, "ROR", modeZeroPageX, opROR)
	set(0x78, "SEI", modeImplied, opSEI)
	set(0x79, "ADC", modeAbsoluteY, opADC)
	set(0x7D, "ADC", modeAbsoluteX, opADC)
	set(0x7E, "ROR", modeAbsoluteX, opROR)

	// Row 0x80
	set(0x81, "STA", modeIndirectX, opSTA)
	set(0x84, "STY", modeZeroPage, opSTY)
	set(0x85, "STA", modeZeroPage, opSTA)
	set(0x86, "STX", modeZeroPage, opSTX)
	set(0x88, "DEY", modeImplied, opDEY)
	set(0x8A, "TXA", modeImplied, opTXA)
	set(0x8C, "STY", modeAbsolute, opSTY)
	set(0x8D, "STA", modeAbsolute, opSTA)
	set(0x8E, "STX", modeAbsolute, opSTX)

	// Row 0x90
	set(0x90, "BCC", modeRelative, opBCC)
	set(0x91, "STA", modeIndirectY, opSTA)
	set(0x94, "STY", modeZeroPageX, opSTY)
	set(0x95, "STA", modeZeroPageX, opSTA)
	set(0x96, "STX", modeZeroPageY, opSTX)
	set(0x98, "TYA", modeImplied, opTYA)
	set(0x99, "STA", modeAbsoluteY, opSTA)
	set(0x9A, "TXS", modeImplied, opTXS)
	set(0x9D, "STA", modeAbsoluteX, opSTA)

	// Row 0xA0
	set(0xA0, "LDY", modeImmediate, opLDY)
	set(0xA1, "LDA", modeIndirectX, opLDA)
	set(0xA2, "LDX", modeImmediate, opLDX)
	set(0xA4, "LDY", modeZeroPage, opLDY)
	set(0xA5, "LDA", modeZeroPage, opLDA)
	set(0xA6, "LDX", modeZeroPage, opLDX)
	set(0xA8, "TAY", modeImplied, opTAY)
	set(0xA9, "LDA", modeImmediate, opLDA)
	set(0xAA, "TAX", modeImplied, opTAX)
	set(0xAC, "LDY", modeAbsolute, opLDY)
	set(0xAD, "LDA", modeAbsolute, opLDA)
	set(0xAE, "LDX", modeAbsolute, opLDX)

	// Row 0xB0
	set(0xB0, "BCS", modeRelative, opBCS)
	set(0xB1, "LDA", modeIndirectY, opLDA)
	set(0xB4, "LDY", modeZeroPageX, opLDY)
	set(0xB5, "LDA", modeZeroPageX, opLDA)
	set(0xB6, "LDX", modeZeroPageY, opLDX)
	set(0xB8, "CLV", modeImplied, opCLV)
	set(0xB9, "LDA", modeAbsoluteY, opLDA)
	set(0xBA, "TSX", modeImplied, opTSX)
	set(0xBC, "LDY", modeAbsoluteX, opLDY)
	set(0xBD, "LDA", modeAbsoluteX, opLDA)
	set(0xBE, "LDX", modeAbsoluteY, opLDX)

	// Row 0xC0
	set(0xC0, "CPY", modeImmediate, opCPY)
	set(0xC1, "CMP", modeIndirectX, opCMP)
	set(0xC4, "CPY", modeZeroPage, opCPY)
	set(0xC5, "CMP", modeZeroPage, opCMP)
	set(0xC6, "DEC", modeZeroPage, opDEC)
	set(0xC8, "INY", modeImplied, opINY)
	set(0xC9, "CMP", modeImmediate, opCMP)
	set(0xCA, "DEX", modeImplied, opDEX)
	set(0xCC, "CPY", modeAbsolute, opCPY)
	set(0xCD, "CMP", modeAbsolute, opCMP)
	set(0xCE, "DEC", modeAbsolute, opDEC)

	// Row 0xD0
	set(0xD0, "BNE", modeRelative, opBNE)
	set(0xD1, "CMP", modeIndirectY, opCMP)
	set(0xD5, "CMP", modeZeroPageX, opCMP)
	set(0xD6, "DEC", modeZeroPageX, opDEC)
	set(0xD8, "CLD", modeImplied, opCLD)
	set(0xD9, "CMP", modeAbsoluteY, opCMP)
	set(0xDD, "CMP", modeAbsoluteX, opCMP)
	set(0xDE, "DEC", modeAbsoluteX, opDEC)

	// Row 0xE0
	set(0xE0, "CPX", modeImmediate, opCPX)
	set(0xE1, "SBC", modeIndirectX, opSBC)
	set(0xE4, "CPX", modeZeroPage, opCPX)
	set(0xE5, "SBC", modeZeroPage, opSBC)
	set(0xE6, "INC", modeZeroPage, opINC)
	set(0xE8, "INX", modeImplied, opINX)
	set(0xE9, "SBC", modeImmediate, opSBC)
	set(0xEA, "NOP", modeImplied, opNOP)
	set(0xEC, "CPX", modeAbsolute, opCPX)
	set(0xED, "SBC", modeAbsolute, opSBC)
	set(0xEE, "INC", modeAbsolute, opINC)

	// Row 0xF0
	set(0xF0, "BEQ", modeRelative, opBEQ)
	set(0xF1, "SBC", modeIndirectY, opSBC)
	set(0xF5, "SBC", modeZeroPageX, opSBC)
	set(0xF6, "INC", modeZeroPageX, opINC)
	set(0xF8, "SED", modeImplied, opSED)
	set(0xF9, "SBC", modeAbsoluteY, opSBC)
	set(0xFD, "SBC", modeAbsoluteX, opSBC)
	set(0xFE, "INC", modeAbsoluteX, opINC)
}
