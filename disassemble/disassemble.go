// Package disassemble renders 6502 machine code back to mnemonic text.
// It shares no state with the cpu package: its opcode table is built
// independently from the same documented opcode/addressing-mode
// mapping, packed the way a disassembler generated from a lookup
// spreadsheet would be -- a contiguous mnemonic byte string plus a
// per-opcode index, and a nibble-packed addressing-mode table.
package disassemble

import (
	"fmt"
	"strings"
)

// addrMode mirrors the nibble values a packed addressing-mode table
// would store: one nibble per opcode, two opcodes per byte.
type addrMode uint8

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeAbsolute
	modeZeroPage
	modeRelative
	modeAbsoluteX
	modeAbsoluteY
	modeZeroPageX
	modeZeroPageY
	modeIndirectX
	modeIndirectY
	modeIndirect
)

// descriptor is the unpacked, human-authored source of truth; init
// packs it into the contiguous tables below. A real code-generator
// would emit the packed tables directly, but deriving them from one
// table keeps the 256-opcode listing auditable against the opcode set
// documented for the CPU core.
type descriptor struct {
	mnemonic string
	mode     addrMode
}

var opcodeDescriptors = [256]descriptor{
	0x00: {"BRK", modeImplied}, 0x01: {"ORA", modeIndirectX},
	0x05: {"ORA", modeZeroPage}, 0x06: {"ASL", modeZeroPage},
	0x08: {"PHP", modeImplied}, 0x09: {"ORA", modeImmediate},
	0x0A: {"ASL", modeAccumulator}, 0x0D: {"ORA", modeAbsolute},
	0x0E: {"ASL", modeAbsolute},

	0x10: {"BPL", modeRelative}, 0x11: {"ORA", modeIndirectY},
	0x15: {"ORA", modeZeroPageX}, 0x16: {"ASL", modeZeroPageX},
	0x18: {"CLC", modeImplied}, 0x19: {"ORA", modeAbsoluteY},
	0x1D: {"ORA", modeAbsoluteX}, 0x1E: {"ASL", modeAbsoluteX},

	0x20: {"JSR", modeAbsolute}, 0x21: {"AND", modeIndirectX},
	0x24: {"BIT", modeZeroPage}, 0x25: {"AND", modeZeroPage},
	0x26: {"ROL", modeZeroPage}, 0x28: {"PLP", modeImplied},
	0x29: {"AND", modeImmediate}, 0x2A: {"ROL", modeAccumulator},
	0x2C: {"BIT", modeAbsolute}, 0x2D: {"AND", modeAbsolute},
	0x2E: {"ROL", modeAbsolute},

	0x30: {"BMI", modeRelative}, 0x31: {"AND", modeIndirectY},
	0x35: {"AND", modeZeroPageX}, 0x36: {"ROL", modeZeroPageX},
	0x38: {"SEC", modeImplied}, 0x39: {"AND", modeAbsoluteY},
	0x3D: {"AND", modeAbsoluteX}, 0x3E: {"ROL", modeAbsoluteX},

	0x40: {"RTI", modeImplied}, 0x41: {"EOR", modeIndirectX},
	0x45: {"EOR", modeZeroPage}, 0x46: {"LSR", modeZeroPage},
	0x48: {"PHA", modeImplied}, 0x49: {"EOR", modeImmediate},
	0x4A: {"LSR", modeAccumulator}, 0x4C: {"JMP", modeAbsolute},
	0x4D: {"EOR", modeAbsolute}, 0x4E: {"LSR", modeAbsolute},

	0x50: {"BVC", modeRelative}, 0x51: {"EOR", modeIndirectY},
	0x55: {"EOR", modeZeroPageX}, 0x56: {"LSR", modeZeroPageX},
	0x58: {"CLI", modeImplied}, 0x59: {"EOR", modeAbsoluteY},
	0x5D: {"EOR", modeAbsoluteX}, 0x5E: {"LSR", modeAbsoluteX},

	0x60: {"RTS", modeImplied}, 0x61: {"ADC", modeIndirectX},
	0x65: {"ADC", modeZeroPage}, 0x66: {"ROR", modeZeroPage},
	0x68: {"PLA", modeImplied}, 0x69: {"ADC", modeImmediate},
	0x6A: {"ROR", modeAccumulator}, 0x6C: {"JMP", modeIndirect},
	0x6D: {"ADC", modeAbsolute}, 0x6E: {"ROR", modeAbsolute},

	0x70: {"BVS", modeRelative}, 0x71: {"ADC", modeIndirectY},
	0x75: {"ADC", modeZeroPageX}, 0x76: {"ROR", modeZeroPageX},
	0x78: {"SEI", modeImplied}, 0x79: {"ADC", modeAbsoluteY},
	0x7D: {"ADC", modeAbsoluteX}, 0x7E: {"ROR", modeAbsoluteX},

	0x81: {"STA", modeIndirectX}, 0x84: {"STY", modeZeroPage},
	0x85: {"STA", modeZeroPage}, 0x86: {"STX", modeZeroPage},
	0x88: {"DEY", modeImplied}, 0x8A: {"TXA", modeImplied},
	0x8C: {"STY", modeAbsolute}, 0x8D: {"STA", modeAbsolute},
	0x8E: {"STX", modeAbsolute},

	0x90: {"BCC", modeRelative}, 0x91: {"STA", modeIndirectY},
	0x94: {"STY", modeZeroPageX}, 0x95: {"STA", modeZeroPageX},
	0x96: {"STX", modeZeroPageY}, 0x98: {"TYA", modeImplied},
	0x99: {"STA", modeAbsoluteY}, 0x9A: {"TXS", modeImplied},
	0x9D: {"STA", modeAbsoluteX},

	0xA0: {"LDY", modeImmediate}, 0xA1: {"LDA", modeIndirectX},
	0xA2: {"LDX", modeImmediate}, 0xA4: {"LDY", modeZeroPage},
	0xA5: {"LDA", modeZeroPage}, 0xA6: {"LDX", modeZeroPage},
	0xA8: {"TAY", modeImplied}, 0xA9: {"LDA", modeImmediate},
	0xAA: {"TAX", modeImplied}, 0xAC: {"LDY", modeAbsolute},
	0xAD: {"LDA", modeAbsolute}, 0xAE: {"LDX", modeAbsolute},

	0xB0: {"BCS", modeRelative}, 0xB1: {"LDA", modeIndirectY},
	0xB4: {"LDY", modeZeroPageX}, 0xB5: {"LDA", modeZeroPageX},
	0xB6: {"LDX", modeZeroPageY}, 0xB8: {"CLV", modeImplied},
	0xB9: {"LDA", modeAbsoluteY}, 0xBA: {"TSX", modeImplied},
	0xBC: {"LDY", modeAbsoluteX}, 0xBD: {"LDA", modeAbsoluteX},
	0xBE: {"LDX", modeAbsoluteY},

	0xC0: {"CPY", modeImmediate}, 0xC1: {"CMP", modeIndirectX},
	0xC4: {"CPY", modeZeroPage}, 0xC5: {"CMP", modeZeroPage},
	0xC6: {"DEC", modeZeroPage}, 0xC8: {"INY", modeImplied},
	0xC9: {"CMP", modeImmediate}, 0xCA: {"DEX", modeImplied},
	0xCC: {"CPY", modeAbsolute}, 0xCD: {"CMP", modeAbsolute},
	0xCE: {"DEC", modeAbsolute},

	0xD0: {"BNE", modeRelative}, 0xD1: {"CMP", modeIndirectY},
	0xD5: {"CMP", modeZeroPageX}, 0xD6: {"DEC", modeZeroPageX},
	0xD8: {"CLD", modeImplied}, 0xD9: {"CMP", modeAbsoluteY},
	0xDD: {"CMP", modeAbsoluteX}, 0xDE: {"DEC", modeAbsoluteX},

	0xE0: {"CPX", modeImmediate}, 0xE1: {"SBC", modeIndirectX},
	0xE4: {"CPX", modeZeroPage}, 0xE5: {"SBC", modeZeroPage},
	0xE6: {"INC", modeZeroPage}, 0xE8: {"INX", modeImplied},
	0xE9: {"SBC", modeImmediate}, 0xEA: {"NOP", modeImplied},
	0xEC: {"CPX", modeAbsolute}, 0xED: {"SBC", modeAbsolute},
	0xEE: {"INC", modeAbsolute},

	0xF0: {"BEQ", modeRelative}, 0xF1: {"SBC", modeIndirectY},
	0xF5: {"SBC", modeZeroPageX}, 0xF6: {"INC", modeZeroPageX},
	0xF8: {"SED", modeImplied}, 0xF9: {"SBC", modeAbsoluteY},
	0xFD: {"SBC", modeAbsoluteX}, 0xFE: {"INC", modeAbsoluteX},
}

const illegalIndex = 0xFF

var (
	mnemonicBytes strings.Builder
	mnemonicIndex [256]uint8
	addrModeTable [128]uint8
)

func init() {
	seen := make(map[string]uint8, 48)
	for op, d := range opcodeDescriptors {
		if d.mnemonic == "" {
			mnemonicIndex[op] = illegalIndex
			continue
		}
		idx, ok := seen[d.mnemonic]
		if !ok {
			idx = uint8(mnemonicBytes.Len())
			mnemonicBytes.WriteString(d.mnemonic)
			seen[d.mnemonic] = idx
		}
		mnemonicIndex[op] = idx

		slot := op >> 1
		if op&1 == 1 {
			addrModeTable[slot] = addrModeTable[slot]&0xF0 | uint8(d.mode)
		} else {
			addrModeTable[slot] = addrModeTable[slot]&0x0F | uint8(d.mode)<<4
		}
	}
}

func modeOf(op byte) addrMode {
	b := addrModeTable[op>>1]
	if op&1 == 1 {
		return addrMode(b & 0x0F)
	}
	return addrMode(b >> 4)
}

// Width returns the instruction length in bytes (1, 2, or 3) for the
// opcode's addressing mode. Illegal opcodes are always treated as
// width 1 so a caller can step past them one byte at a time.
func Width(op byte) int {
	if mnemonicIndex[op] == illegalIndex {
		return 1
	}
	switch modeOf(op) {
	case modeImplied, modeAccumulator:
		return 1
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirect:
		return 3
	default:
		return 2
	}
}

// Disassemble renders the instruction starting at address, reading up
// to three bytes (fewer bytes than the opcode needs are read as zero,
// matching a caller that has run off the end of a loaded program).
// The result is a single line terminated by a newline, per the
// contract: "ADDR:\tMNEM\tOPERAND\n", with unknown opcodes rendered as
// a DB pseudo-instruction.
func Disassemble(bytes [3]byte, address uint16) string {
	op := bytes[0]
	idx := mnemonicIndex[op]
	if idx == illegalIndex {
		return fmt.Sprintf("%04X:\tDB\t$%02X\t; illegal instruction\n", address, op)
	}

	mnemonic := mnemonicBytes.String()[idx : idx+3]
	mode := modeOf(op)
	operand := renderOperand(mode, bytes, address)

	if operand == "" {
		return fmt.Sprintf("%04X:\t%s\n", address, mnemonic)
	}
	return fmt.Sprintf("%04X:\t%s\t%s\n", address, mnemonic, operand)
}

func renderOperand(mode addrMode, bytes [3]byte, address uint16) string {
	word := uint16(bytes[1]) | uint16(bytes[2])<<8
	switch mode {
	case modeImplied:
		return ""
	case modeAccumulator:
		return "A"
	case modeImmediate:
		return fmt.Sprintf("#$%02X", bytes[1])
	case modeAbsolute:
		return fmt.Sprintf("$%04X", word)
	case modeZeroPage:
		return fmt.Sprintf("$%02X", bytes[1])
	case modeRelative:
		target := address + 2 + uint16(int16(int8(bytes[1])))
		return fmt.Sprintf("$%04X\t; +%02X", target, bytes[1])
	case modeAbsoluteX:
		return fmt.Sprintf("$%04X,X", word)
	case modeAbsoluteY:
		return fmt.Sprintf("$%04X,Y", word)
	case modeZeroPageX:
		return fmt.Sprintf("$%02X,X", bytes[1])
	case modeZeroPageY:
		return fmt.Sprintf("$%02X,Y", bytes[1])
	case modeIndirectX:
		return fmt.Sprintf("($%02X,X)", bytes[1])
	case modeIndirectY:
		return fmt.Sprintf("($%02X),Y", bytes[1])
	case modeIndirect:
		return fmt.Sprintf("($%04X)", word)
	default:
		return ""
	}
}
