// dasm_driver.go - linear disassembler sweep over a byte buffer

package ppc32

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Disassembler renders PPC32 instruction words as annotated assembly text.
// Build one with NewDisassembler, which wires the same dispatch tables
// Emulator builds, since rendering is pure and needs no register state; the
// zero value has no tables and is not usable.
type Disassembler struct {
	emu *Emulator
}

// NewDisassembler builds a Disassembler backed by a dedicated Emulator used
// only for its decode tables; no Memory or hooks are required since
// disassembly never executes an instruction.
func NewDisassembler() *Disassembler {
	return &Disassembler{emu: NewEmulator(nil)}
}

// Line is one rendered instruction, with its address and raw word retained
// alongside the text so a caller can re-lay it out (e.g. the CLI prints
// labels before the line they anchor).
type Line struct {
	PC    uint32
	Op    uint32
	Label bool
	Text  string
}

// Disassemble renders every 32-bit big-endian word in buf, which must have a
// length that is a multiple of 4, starting at pc. It runs the two
// architected passes: the first discovers every branch target reachable
// from the buffer, the second renders each line with any labels anchored
// to it emitted first.
func (d *Disassembler) Disassemble(buf []byte, pc uint32) []Line {
	n := len(buf) / 4
	ops := make([]uint32, n)
	for i := 0; i < n; i++ {
		ops[i] = binary.BigEndian.Uint32(buf[i*4 : i*4+4])
	}

	labels := make(map[uint32]bool)
	texts := make([]string, n)
	for i, op := range ops {
		addr := pc + uint32(i*4)
		entry := d.emu.entryFor(op)
		texts[i] = entry.dasm(addr, op, labels)
	}

	sortedLabels := make([]uint32, 0, len(labels))
	for l := range labels {
		sortedLabels = append(sortedLabels, l)
	}
	sort.Slice(sortedLabels, func(i, j int) bool { return sortedLabels[i] < sortedLabels[j] })

	var lines []Line
	li := 0
	for i, op := range ops {
		addr := pc + uint32(i*4)
		for li < len(sortedLabels) && sortedLabels[li] <= addr {
			lines = append(lines, Line{PC: sortedLabels[li], Label: true, Text: labelName(sortedLabels[li]) + ":"})
			li++
		}
		lines = append(lines, Line{PC: addr, Op: op, Text: fmt.Sprintf("%08X  %08X  %s", addr, op, texts[i])})
	}
	for ; li < len(sortedLabels); li++ {
		lines = append(lines, Line{PC: sortedLabels[li], Label: true, Text: labelName(sortedLabels[li]) + ":"})
	}
	return lines
}

// DisassembleOne renders a single instruction word at a known PC with no
// label discovery or emission, as one "<PC>  <OP>  <text>" line.
func (d *Disassembler) DisassembleOne(pc uint32, op uint32) string {
	labels := make(map[uint32]bool)
	entry := d.emu.entryFor(op)
	return fmt.Sprintf("%08X  %08X  %s", pc, op, entry.dasm(pc, op, labels))
}

func labelName(addr uint32) string {
	return fmt.Sprintf("label%08X", addr)
}
