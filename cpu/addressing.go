package cpu

// addrMode identifies which addressing-mode resolution procedure an
// opcode uses. It is local to instruction execution; the disassemble
// package keeps its own, differently-encoded addressing-mode table
// since it resolves operands from raw bytes, never from live CPU/bus
// state.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeRelative
	modeIndirectX
	modeIndirectY
	modeIndirect
)

// resolveAddress fetches whatever operand bytes mode requires
// (advancing PC) and returns the effective 16-bit address. It must
// not be called for modeImplied, modeAccumulator, or modeImmediate,
// none of which resolve to a memory address.
func (c *CPU) resolveAddress(mode addrMode) uint16 {
	switch mode {
	case modeZeroPage:
		return uint16(c.fetchByte())
	case modeZeroPageX:
		return uint16(c.fetchByte() + c.X)
	case modeZeroPageY:
		return uint16(c.fetchByte() + c.Y)
	case modeAbsolute:
		return c.fetchWord()
	case modeAbsoluteX:
		return c.fetchWord() + uint16(c.X)
	case modeAbsoluteY:
		return c.fetchWord() + uint16(c.Y)
	case modeRelative:
		// PC already points past the offset byte once fetchByte
		// returns; the branch target is relative to that address.
		offset := c.fetchByte()
		return c.PC + uint16(int16(int8(offset)))
	case modeIndirectX:
		zp := c.fetchByte() + c.X
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		return uint16(lo) | uint16(hi)<<8
	case modeIndirectY:
		d := c.fetchByte()
		lo := c.bus.Read(uint16(d))
		hi := c.bus.Read(uint16(d + 1))
		base := uint16(lo) | uint16(hi)<<8
		return base + uint16(c.Y)
	case modeIndirect:
		ptr := c.fetchWord()
		lo := c.bus.Read(ptr)
		hi := c.bus.Read(ptr + 1)
		return uint16(lo) | uint16(hi)<<8
	default:
		return 0
	}
}

// loadOperand returns the 8-bit value an instruction should operate
// on for any readable addressing mode, including immediate.
func (c *CPU) loadOperand(mode addrMode) uint8 {
	if mode == modeImmediate {
		return c.fetchByte()
	}
	return c.bus.Read(c.resolveAddress(mode))
}

// readModifyTarget returns the value to shift/rotate along with where
// to write the result back: either the accumulator or a resolved
// memory address.
func (c *CPU) readModifyTarget(mode addrMode) (value uint8, addr uint16, accumulator bool) {
	if mode == modeAccumulator {
		return c.A, 0, true
	}
	addr = c.resolveAddress(mode)
	return c.bus.Read(addr), addr, false
}

func (c *CPU) storeModifyResult(accumulator bool, addr uint16, value uint8) {
	if accumulator {
		c.A = value
		return
	}
	c.bus.Write(addr, value)
}
