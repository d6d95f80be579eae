// printer.go - register snapshot pretty-printer

package ppc32

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PrintRegisters writes a fixed-width header/row snapshot of regs to w,
// eight GPRs per row. When w is a real terminal (golang.org/x/term), the
// summary header line is highlighted with an ANSI accent; redirected output
// (files, pipes, CI logs) always gets the plain layout so captured output
// stays diffable.
func PrintRegisters(w io.Writer, regs *Registers) {
	header := fmt.Sprintf("PC=%08X  LR=%08X  CTR=%08X  XER=%08X  CR=%08X  TBR=%016X",
		regs.PC, regs.LR, regs.CTR, regs.XER.U(), regs.CR.U(), regs.TBR)
	if isTerminalWriter(w) {
		fmt.Fprintf(w, "\033[1;36m%s\033[0m\n", header)
	} else {
		fmt.Fprintln(w, header)
	}

	for row := 0; row < 4; row++ {
		line := ""
		for col := 0; col < 8; col++ {
			i := row*8 + col
			line += fmt.Sprintf("r%-2d=%08X ", i, regs.R[i].U())
		}
		fmt.Fprintln(w, line)
	}
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
