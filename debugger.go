// debugger.go - breakpoints and stack backtrace for an interactive stepper

package ppc32

import "math/bits"

// Debugger wraps an Emulator with address breakpoints for a single-step CLI
// runner. Its only state of its own is the breakpoint set; it has no Step
// method, so callers step Emu directly and check AtBreakpoint.
type Debugger struct {
	Emu         *Emulator
	breakpoints map[uint32]bool
}

// NewDebugger wraps emu for interactive stepping.
func NewDebugger(emu *Emulator) *Debugger {
	return &Debugger{Emu: emu, breakpoints: make(map[uint32]bool)}
}

func (d *Debugger) SetBreakpoint(addr uint32)   { d.breakpoints[addr] = true }
func (d *Debugger) ClearBreakpoint(addr uint32) { delete(d.breakpoints, addr) }
func (d *Debugger) HasBreakpoint(addr uint32) bool {
	return d.breakpoints[addr]
}

// ListBreakpoints returns the set of breakpoint addresses; order is
// unspecified.
func (d *Debugger) ListBreakpoints() []uint32 {
	out := make([]uint32, 0, len(d.breakpoints))
	for a := range d.breakpoints {
		out = append(out, a)
	}
	return out
}

// AtBreakpoint reports whether the emulator's current PC has a breakpoint
// set, for a CLI loop to check before each Step.
func (d *Debugger) AtBreakpoint() bool {
	return d.breakpoints[d.Emu.Regs.PC]
}

// Backtrace walks the PowerPC SVR4 stack back-chain starting at r1: each
// frame's first word is the caller's stack pointer, and the caller's saved
// LR sits 4 bytes above that. A zero back-chain link (common at the
// outermost frame, which a loader usually zeroes) stops the walk.
func (d *Debugger) Backtrace(depth int) []uint32 {
	sp := d.Emu.Regs.R[1].U()
	var result []uint32
	for i := 0; i < depth; i++ {
		callerSP := bits.ReverseBytes32(d.Emu.Mem.ReadU32(sp))
		if callerSP == 0 {
			break
		}
		lr := bits.ReverseBytes32(d.Emu.Mem.ReadU32(callerSP + 4))
		result = append(result, lr)
		sp = callerSP
	}
	return result
}
