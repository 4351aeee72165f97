package disassemble

import "github.com/mchacon-labs/sixtwotwo/mem"

// Step reads the instruction at pc off bus, disassembles it, and
// returns the rendered line along with the instruction's width in
// bytes so a caller (a disassembly listing loop, say) can advance pc
// without separately decoding the opcode.
func Step(bus mem.Bus, pc uint16) (string, int) {
	var raw [3]byte
	for i := range raw {
		raw[i] = bus.Read(pc + uint16(i))
	}
	width := Width(raw[0])
	return Disassemble(raw, pc), width
}
