package ppc32

import "testing"

func TestBreakpointSetClearHasBreakpoint(t *testing.T) {
	e := newTestEmulator(0x1000, 0x60000000)
	d := NewDebugger(e)
	if d.HasBreakpoint(0x2000) {
		t.Fatalf("no breakpoints set yet")
	}
	d.SetBreakpoint(0x2000)
	if !d.HasBreakpoint(0x2000) {
		t.Fatalf("breakpoint at 0x2000 should be set")
	}
	d.ClearBreakpoint(0x2000)
	if d.HasBreakpoint(0x2000) {
		t.Fatalf("breakpoint at 0x2000 should be cleared")
	}
}

func TestAtBreakpointTracksPC(t *testing.T) {
	e := newTestEmulator(0x1000, 0x60000000, 0x60000000)
	d := NewDebugger(e)
	d.SetBreakpoint(0x1004)
	if d.AtBreakpoint() {
		t.Fatalf("should not be at a breakpoint before stepping")
	}
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.AtBreakpoint() {
		t.Fatalf("PC=0x1004 should be at the set breakpoint")
	}
}

// Backtrace walks the SVR4 back-chain: r1 points at the current frame,
// whose first word is the caller's SP, and the caller's saved LR sits one
// word above that.
func TestBacktraceWalksBackChain(t *testing.T) {
	e := newTestEmulator(0x1000, 0x60000000)
	mem := e.Mem.(*FlatMemory)

	// Frame at 0x8000 was pushed by a caller whose frame is at 0x8040,
	// which returns to 0x3000. The outermost frame's back-chain is zero.
	writeGuestU32(mem, 0x8000, 0x8040)
	writeGuestU32(mem, 0x8040, 0)
	writeGuestU32(mem, 0x8044, 0x3000)

	e.Regs.R[1].SetU(0x8000)
	d := NewDebugger(e)

	bt := d.Backtrace(4)
	if len(bt) != 1 {
		t.Fatalf("len(backtrace) = %d, want 1, got %+v", len(bt), bt)
	}
	if bt[0] != 0x3000 {
		t.Fatalf("backtrace[0] = %#x, want 0x3000", bt[0])
	}
}

func TestListBreakpointsReturnsAll(t *testing.T) {
	e := newTestEmulator(0x1000, 0x60000000)
	d := NewDebugger(e)
	d.SetBreakpoint(0x100)
	d.SetBreakpoint(0x200)
	got := map[uint32]bool{}
	for _, a := range d.ListBreakpoints() {
		got[a] = true
	}
	if len(got) != 2 || !got[0x100] || !got[0x200] {
		t.Fatalf("ListBreakpoints() = %v, want {0x100, 0x200}", got)
	}
}
