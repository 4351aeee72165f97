// Command sixtwotwo loads 6502 machine code onto a flat memory bus and
// either disassembles it or runs it against the CPU core.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mchacon-labs/sixtwotwo/cpu"
	"github.com/mchacon-labs/sixtwotwo/disassemble"
	"github.com/mchacon-labs/sixtwotwo/loader"
	"github.com/mchacon-labs/sixtwotwo/mem"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sixtwotwo",
		Short: "NMOS 6502 core: disassemble or run flat-memory programs",
	}
	root.AddCommand(disasmCmd(), runCmd(), assembleCmd())
	return root
}

func loadProgram(path string, hexListing bool, offset uint16) (*mem.FlatBus, uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	bus := mem.NewFlatBus()
	if hexListing {
		end, err := loader.LoadHexText(f, bus, offset)
		if err != nil {
			return nil, 0, err
		}
		return bus, end, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %q: %w", path, err)
	}
	loader.LoadBinary(bus, b, offset)
	return bus, offset + uint16(len(b)), nil
}

func disasmCmd() *cobra.Command {
	var hexListing bool
	var offset uint16

	cmd := &cobra.Command{
		Use:   "disasm <file>",
		Short: "Disassemble a loaded program to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bus, end, err := loadProgram(args[0], hexListing, offset)
			if err != nil {
				return err
			}
			for pc := offset; pc < end; {
				line, width := disassemble.Step(bus, pc)
				fmt.Print(line)
				pc += uint16(width)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hexListing, "hex", false, "treat input as a hand-assembled hex listing instead of raw binary")
	cmd.Flags().Uint16Var(&offset, "offset", 0, "address to load the program at and start disassembling from (with --hex, added to each listed address)")
	return cmd
}

func runCmd() *cobra.Command {
	var hexListing bool
	var offset uint16
	var resetVector uint16
	var useOffsetAsReset bool
	var maxSteps int
	var watch []string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Load a program and execute it until BRK, an invalid opcode, or the step limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bus, _, err := loadProgram(args[0], hexListing, offset)
			if err != nil {
				return err
			}
			if useOffsetAsReset {
				mem.SetResetVector(bus, offset)
			} else {
				mem.SetResetVector(bus, resetVector)
			}

			c := cpu.New(bus)
			c.Reset()

			steps := 0
			for steps < maxSteps {
				// A BRK opcode ends the run without being executed,
				// so the printed PC is the address of that BRK.
				if bus.Read(c.PC) == 0x00 {
					break
				}
				if err := c.Step(); err != nil {
					if _, ok := err.(*cpu.InvalidOpcode); ok {
						break
					}
					return err
				}
				steps++
			}

			fmt.Printf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X (%d steps)\n",
				c.PC, c.A, c.X, c.Y, c.SP, c.P, steps)

			// c.Bus() rather than the bus variable above: a watch
			// address is inspected through the CPU the same way a
			// host harness that only holds a *cpu.CPU would have to.
			for _, w := range watch {
				addr64, err := strconv.ParseUint(w, 16, 16)
				if err != nil {
					return fmt.Errorf("--watch %q: %w", w, err)
				}
				addr := uint16(addr64)
				fmt.Printf("%04X: %02X\n", addr, c.Bus().Read(addr))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hexListing, "hex", false, "treat input as a hand-assembled hex listing instead of raw binary")
	cmd.Flags().Uint16Var(&offset, "offset", 0x8000, "address to load the program at (with --hex, added to each listed address)")
	cmd.Flags().Uint16Var(&resetVector, "reset", 0x8000, "explicit reset vector (ignored with --reset-at-offset)")
	cmd.Flags().BoolVar(&useOffsetAsReset, "reset-at-offset", true, "point the reset vector at --offset rather than --reset")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 1_000_000, "stop after this many instructions even without BRK (no cycle-accurate halt detection is modeled)")
	cmd.Flags().StringSliceVar(&watch, "watch", nil, "hex addresses to print from memory after execution, e.g. --watch 0200,0201")
	return cmd
}

func assembleCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "assemble <file>",
		Short:  "Assemble 6502 mnemonics into machine code (not implemented)",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("assemble: not implemented; use a hand-assembled hex listing with --hex instead")
		},
	}
}
