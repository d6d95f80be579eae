package ppc32

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintRegistersNonTerminalIsPlainText(t *testing.T) {
	r := NewRegisters()
	r.PC = 0x1000
	r.LR = 0x2000
	r.R[3].SetU(0xCAFEBABE)

	var buf bytes.Buffer
	PrintRegisters(&buf, r)

	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Fatalf("non-terminal output should carry no ANSI escapes, got %q", out)
	}
	if !strings.Contains(out, "PC=00001000") {
		t.Fatalf("output missing PC line: %q", out)
	}
	if !strings.Contains(out, "r3 =CAFEBABE") {
		t.Fatalf("output missing r3 value: %q", out)
	}
	if strings.Count(out, "\n") != 5 {
		t.Fatalf("expected 1 header + 4 GPR rows (5 lines), got %q", out)
	}
}
