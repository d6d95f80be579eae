// main.go - ppc32dump: a disassembler-driver CLI and tiny interactive
// single-step runner over the ppc32 core.

package main

import (
	"bufio"
	"fmt"
	"math/bits"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppc32emu/ppc32"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ppc32dump",
		Short: "PPC32 disassembler and single-step interpreter",
	}

	var startPC uint32
	var count int

	disasmCmd := &cobra.Command{
		Use:   "disasm [file]",
		Short: "Disassemble a flat binary of PPC32 instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if len(data)%4 != 0 {
				data = data[:len(data)-len(data)%4]
			}
			if count > 0 && count*4 < len(data) {
				data = data[:count*4]
			}

			d := ppc32.NewDisassembler()
			for _, line := range d.Disassemble(data, startPC) {
				fmt.Println(line.Text)
			}
			return nil
		},
	}
	disasmCmd.Flags().Uint32Var(&startPC, "pc", 0x1000, "starting program counter")
	disasmCmd.Flags().IntVar(&count, "count", 0, "number of instructions to disassemble (0 = whole file)")

	var stepPC uint32
	var memSize uint32

	stepCmd := &cobra.Command{
		Use:   "step [file]",
		Short: "Load a flat binary and single-step it interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			mem := ppc32.NewFlatMemory(int(memSize))
			mem.LoadBytes(stepPC, data)

			emu := ppc32.NewEmulator(mem)
			emu.Regs.PC = stepPC
			dbg := ppc32.NewDebugger(emu)
			dasm := ppc32.NewDisassembler()

			return runStepLoop(dbg, dasm)
		},
	}
	stepCmd.Flags().Uint32Var(&stepPC, "pc", 0x1000, "starting program counter")
	stepCmd.Flags().Uint32Var(&memSize, "mem", 0x10000, "guest memory size in bytes")

	rootCmd.AddCommand(disasmCmd, stepCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runStepLoop is a minimal REPL: s/step, r/regs, b/break <addr>,
// bt/backtrace, c/continue, q/quit.
func runStepLoop(dbg *ppc32.Debugger, dasm *ppc32.Disassembler) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("ppc32dump step — s(tep), r(egs), b <addr>, bt, c(ontinue), q(uit)")
	for {
		op := bits.ReverseBytes32(dbg.Emu.Mem.ReadU32(dbg.Emu.Regs.PC))
		fmt.Println(dasm.DisassembleOne(dbg.Emu.Regs.PC, op))
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		cmd := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "q", "quit":
			return nil
		case "r", "regs":
			ppc32.PrintRegisters(os.Stdout, dbg.Emu.Regs)
		case "b", "break":
			if len(fields) < 2 {
				fmt.Println("usage: b <hex-addr>")
				continue
			}
			addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 32)
			if err != nil {
				fmt.Println("bad address:", err)
				continue
			}
			dbg.SetBreakpoint(uint32(addr))
		case "bt", "backtrace":
			for i, ret := range dbg.Backtrace(16) {
				fmt.Printf("  #%d %08X\n", i, ret)
			}
		case "s", "step":
			if err := dbg.Emu.Step(); err != nil {
				fmt.Println("fault:", err)
				return err
			}
		case "c", "continue":
			for {
				if err := dbg.Emu.Step(); err != nil {
					fmt.Println("fault:", err)
					return err
				}
				if dbg.AtBreakpoint() {
					fmt.Printf("breakpoint hit at %08X\n", dbg.Emu.Regs.PC)
					break
				}
			}
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}
