// Package loader gets program bytes onto a memory bus. It reads the
// same hand-assembled listing format the toolchain produces -- an
// address field followed by one to three hex byte tokens, with an
// optional disassembly comment after a tab -- straight from a
// io.Reader via regexp/bufio, instead of shelling out to egrep/sed/cut
// the way the original tool did.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/mchacon-labs/sixtwotwo/mem"
)

// lineRE matches a listing line: four hex digits (the address),
// followed by one to three whitespace-separated hex byte tokens, and
// nothing else but an optional tab-introduced comment (disassembly
// text the assembler prints back for the programmer's benefit). The
// trailing anchor matters: a fourth byte token after the address
// means the line isn't a 1-3 byte listing entry at all, so the whole
// line is rejected rather than silently matching its first three
// tokens.
var lineRE = regexp.MustCompile(`^([0-9A-Fa-f]{4})((?:\s+[0-9A-Fa-f]{2}){1,3})(?:\t.*)?$`)

// ParseError reports a malformed listing line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadHexText reads a hand-assembled listing from r, writing each
// decoded byte to bus at its listed address plus offset. It returns
// one past the highest address written, so a caller can chain a reset
// vector or further loads after the program. Lines that don't match
// the listing format are skipped, and that includes lines with a
// malformed hex token: lineRE admits only valid hex digits, so such a
// line never matches and no *ParseError is reported for it.
func LoadHexText(r io.Reader, bus mem.Bus, offset uint16) (uint16, error) {
	scanner := bufio.NewScanner(r)
	var highWater uint16
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := scanner.Text()
		m := lineRE.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		addr64, err := strconv.ParseUint(m[1], 16, 16)
		if err != nil {
			return 0, &ParseError{Line: lineNum, Text: text, Err: err}
		}
		addr := uint16(addr64) + offset

		for i, tok := range strings.Fields(m[2]) {
			v, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return 0, &ParseError{Line: lineNum, Text: text, Err: err}
			}
			target := addr + uint16(i)
			bus.Write(target, uint8(v))
			if end := target + 1; end > highWater {
				highWater = end
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("loader: reading listing: %w", err)
	}
	return highWater, nil
}

// LoadBinary writes b to bus starting at offset, a thin wrapper around
// mem.LoadAt kept here so callers that already import loader for text
// listings don't also need to import mem directly for raw binaries.
func LoadBinary(bus mem.Bus, b []byte, offset uint16) {
	mem.LoadAt(bus, offset, b)
}

// SetResetVector points bus's reset vector at addr, grounded the same
// way flatMemory.PowerOn wires up a fresh test fixture: loading a
// program and setting where execution should start are both "getting
// a bus ready to hand to a CPU", so a loader caller can do both
// without a second import of mem.
func SetResetVector(bus mem.Bus, addr uint16) {
	mem.SetResetVector(bus, addr)
}
