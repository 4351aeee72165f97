package cpu

// handlerFunc implements the body of one opcode: resolve its operand
// per mode, perform the operation, update registers/flags, and leave
// PC wherever the instruction's semantics say it should end up.
type handlerFunc func(c *CPU, mode addrMode)

// --- Loads ---------------------------------------------------------

func opLDA(c *CPU, mode addrMode) { c.A = c.loadOperand(mode); c.setNZ(c.A) }
func opLDX(c *CPU, mode addrMode) { c.X = c.loadOperand(mode); c.setNZ(c.X) }
func opLDY(c *CPU, mode addrMode) { c.Y = c.loadOperand(mode); c.setNZ(c.Y) }

// --- Stores ----------------------------------------------------------

func opSTA(c *CPU, mode addrMode) { c.bus.Write(c.resolveAddress(mode), c.A) }
func opSTX(c *CPU, mode addrMode) { c.bus.Write(c.resolveAddress(mode), c.X) }
func opSTY(c *CPU, mode addrMode) { c.bus.Write(c.resolveAddress(mode), c.Y) }

// --- Transfers -------------------------------------------------------

func opTAX(c *CPU, _ addrMode) { c.X = c.A; c.setNZ(c.X) }
func opTAY(c *CPU, _ addrMode) { c.Y = c.A; c.setNZ(c.Y) }
func opTXA(c *CPU, _ addrMode) { c.A = c.X; c.setNZ(c.A) }
func opTYA(c *CPU, _ addrMode) { c.A = c.Y; c.setNZ(c.A) }
func opTSX(c *CPU, _ addrMode) { c.X = c.SP; c.setNZ(c.X) }
func opTXS(c *CPU, _ addrMode) { c.SP = c.X } // no flag update

// --- Stack -----------------------------------------------------------

func opPHA(c *CPU, _ addrMode) { c.push8(c.A) }
func opPHP(c *CPU, _ addrMode) { c.push8(c.P | stackFlagMask) }
func opPLA(c *CPU, _ addrMode) { c.A = c.pop8(); c.setNZ(c.A) }
func opPLP(c *CPU, _ addrMode) { c.P = c.pop8() & physicalFlagMask }

// --- Logical -----------------------------------------------------------

func opAND(c *CPU, mode addrMode) { c.A &= c.loadOperand(mode); c.setNZ(c.A) }
func opORA(c *CPU, mode addrMode) { c.A |= c.loadOperand(mode); c.setNZ(c.A) }
func opEOR(c *CPU, mode addrMode) { c.A ^= c.loadOperand(mode); c.setNZ(c.A) }

// --- Arithmetic --------------------------------------------------------
//
// Flags are computed on the pre-BCD-corrected binary result, matching
// NMOS behavior; the D flag is tracked and settable but never alters
// the arithmetic (BCD value correction is out of scope).

func opADC(c *CPU, mode addrMode) {
	m := c.loadOperand(mode)
	carryIn := uint16(0)
	if c.getFlag(FlagCarry) {
		carryIn = 1
	}
	u := uint16(c.A) + uint16(m) + carryIn
	s := int16(int8(c.A)) + int16(int8(m)) + int16(carryIn)
	result := uint8(u)
	c.A = result
	c.setFlag(FlagCarry, u>>8 != 0)
	c.setFlag(FlagOverflow, s > 127 || s < -128)
	c.setNZ(result)
}

func opSBC(c *CPU, mode addrMode) {
	m := c.loadOperand(mode)
	borrowIn := uint16(0)
	if !c.getFlag(FlagCarry) {
		borrowIn = 1
	}
	u := uint16(c.A) - uint16(m) - borrowIn
	s := int16(int8(c.A)) - int16(int8(m)) - int16(borrowIn)
	result := uint8(u)
	c.A = result
	// Carry is the negated borrow: set when the subtraction did not
	// need to borrow out of bit 8.
	c.setFlag(FlagCarry, u>>8 == 0)
	c.setFlag(FlagOverflow, s > 127 || s < -128)
	c.setNZ(result)
}

// --- Compare -------------------------------------------------------------

func compare(c *CPU, reg uint8, mode addrMode) {
	m := c.loadOperand(mode)
	r := uint16(reg) - uint16(m)
	c.setFlag(FlagCarry, r>>8 == 0)
	c.setNZ(uint8(r))
}

func opCMP(c *CPU, mode addrMode) { compare(c, c.A, mode) }
func opCPX(c *CPU, mode addrMode) { compare(c, c.X, mode) }
func opCPY(c *CPU, mode addrMode) { compare(c, c.Y, mode) }

// --- Bit test --------------------------------------------------------------

func opBIT(c *CPU, mode addrMode) {
	m := c.loadOperand(mode)
	c.setFlag(FlagZero, c.A&m == 0)
	c.setFlag(FlagNegative, m&0x80 != 0)
	c.setFlag(FlagOverflow, m&0x40 != 0)
}

// --- Increment / decrement ---------------------------------------------

func opINC(c *CPU, mode addrMode) {
	addr := c.resolveAddress(mode)
	v := c.bus.Read(addr) + 1
	c.bus.Write(addr, v)
	c.setNZ(v)
}

func opDEC(c *CPU, mode addrMode) {
	addr := c.resolveAddress(mode)
	v := c.bus.Read(addr) - 1
	c.bus.Write(addr, v)
	c.setNZ(v)
}

func opINX(c *CPU, _ addrMode) { c.X++; c.setNZ(c.X) }
func opDEX(c *CPU, _ addrMode) { c.X--; c.setNZ(c.X) }
func opINY(c *CPU, _ addrMode) { c.Y++; c.setNZ(c.Y) }
func opDEY(c *CPU, _ addrMode) { c.Y--; c.setNZ(c.Y) }

// --- Shifts and rotates ------------------------------------------------

func opASL(c *CPU, mode addrMode) {
	v, addr, acc := c.readModifyTarget(mode)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.storeModifyResult(acc, addr, v)
	c.setNZ(v)
}

func opLSR(c *CPU, mode addrMode) {
	v, addr, acc := c.readModifyTarget(mode)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.storeModifyResult(acc, addr, v)
	c.setNZ(v)
}

func opROL(c *CPU, mode addrMode) {
	v, addr, acc := c.readModifyTarget(mode)
	oldCarry := uint8(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 1
	}
	c.setFlag(FlagCarry, v&0x80 != 0)
	v = (v << 1) | oldCarry
	c.storeModifyResult(acc, addr, v)
	c.setNZ(v)
}

func opROR(c *CPU, mode addrMode) {
	v, addr, acc := c.readModifyTarget(mode)
	oldCarry := uint8(0)
	if c.getFlag(FlagCarry) {
		oldCarry = 0x80
	}
	c.setFlag(FlagCarry, v&0x01 != 0)
	v = (v >> 1) | oldCarry
	c.storeModifyResult(acc, addr, v)
	c.setNZ(v)
}

// --- Flag operations -----------------------------------------------------

func opCLC(c *CPU, _ addrMode) { c.setFlag(FlagCarry, false) }
func opSEC(c *CPU, _ addrMode) { c.setFlag(FlagCarry, true) }
func opCLI(c *CPU, _ addrMode) { c.setFlag(FlagInterrupt, false) }
func opSEI(c *CPU, _ addrMode) { c.setFlag(FlagInterrupt, true) }
func opCLV(c *CPU, _ addrMode) { c.setFlag(FlagOverflow, false) }

// opCLD clears the decimal flag. The source this emulator is built
// from has a bug here that clears carry instead; fixed per the
// documented correct semantics.
func opCLD(c *CPU, _ addrMode) { c.setFlag(FlagDecimal, false) }
func opSED(c *CPU, _ addrMode) { c.setFlag(FlagDecimal, true) }

// --- Branches --------------------------------------------------------------

func branch(c *CPU, taken bool) {
	target := c.resolveAddress(modeRelative)
	if taken {
		c.PC = target
	}
}

func opBPL(c *CPU, _ addrMode) { branch(c, !c.getFlag(FlagNegative)) }
func opBMI(c *CPU, _ addrMode) { branch(c, c.getFlag(FlagNegative)) }
func opBVC(c *CPU, _ addrMode) { branch(c, !c.getFlag(FlagOverflow)) }

// opBVS branches on overflow. The source this emulator is built from
// tests the negative flag here instead; fixed per the documented
// correct semantics.
func opBVS(c *CPU, _ addrMode) { branch(c, c.getFlag(FlagOverflow)) }
func opBCC(c *CPU, _ addrMode) { branch(c, !c.getFlag(FlagCarry)) }
func opBCS(c *CPU, _ addrMode) { branch(c, c.getFlag(FlagCarry)) }
func opBNE(c *CPU, _ addrMode) { branch(c, !c.getFlag(FlagZero)) }
func opBEQ(c *CPU, _ addrMode) { branch(c, c.getFlag(FlagZero)) }

// --- Jumps, subroutines, interrupts --------------------------------------

func opJMP(c *CPU, mode addrMode) { c.PC = c.resolveAddress(mode) }

// opJSR pushes the address of the last byte of the JSR instruction and
// jumps to the target. The target's high byte is fetched after the
// push, matching the documented hardware sequencing.
func opJSR(c *CPU, _ addrMode) {
	lo := c.fetchByte()
	c.push16(c.PC) // PC is the address of the (not yet fetched) high byte
	hi := c.fetchByte()
	c.PC = uint16(lo) | uint16(hi)<<8
}

func opRTS(c *CPU, _ addrMode) { c.PC = c.pop16() + 1 }

// opBRK pushes PC pointing at BRK+2, pushes P with the stack-only bits
// forced on, sets the interrupt-disable flag, and loads PC from the
// IRQ/BRK vector.
func opBRK(c *CPU, _ addrMode) {
	c.fetchByte() // skip the padding byte after the opcode
	c.push16(c.PC)
	c.push8(c.P | stackFlagMask)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.readWord(IRQVector)
}

// opRTI pops P (discarding the stack-only bits) then PC, with no
// increment, unlike RTS.
func opRTI(c *CPU, _ addrMode) {
	c.P = c.pop8() & physicalFlagMask
	c.PC = c.pop16()
}

func opNOP(c *CPU, _ addrMode) {}
