package ppc32

import "testing"

func encXL(primary, f1, f2, f3, ext, rc uint32) uint32 {
	return (primary << 26) | (f1 << 21) | (f2 << 16) | (f3 << 11) | (ext << 1) | rc
}

// cror 2,0,1 sets CR bit 2 to CR0.LT || CR0.GT.
func TestCrorCombinesBits(t *testing.T) {
	op := encXL(19, 2, 0, 1, 449, 0)
	e := newTestEmulator(0x1000, op)
	e.Regs.CR.SetBit(0, true)
	e.Regs.CR.SetBit(1, false)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Regs.CR.Bit(2) {
		t.Fatalf("cror 2,0,1 with bit0=1,bit1=0 should set bit2")
	}
}

// crand 3,0,1 sets CR bit 3 only when both inputs are set.
func TestCrandRequiresBoth(t *testing.T) {
	op := encXL(19, 3, 0, 1, 257, 0)
	e := newTestEmulator(0x1000, op)
	e.Regs.CR.SetBit(0, true)
	e.Regs.CR.SetBit(1, false)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.CR.Bit(3) {
		t.Fatalf("crand 3,0,1 with bit1=0 should clear bit3")
	}
}

// mcrf cr1,cr0 copies all four CR0 flags into CR1.
func TestMcrfCopiesField(t *testing.T) {
	op := (uint32(19) << 26) | (uint32(1) << 23) | (uint32(0) << 18)
	e := newTestEmulator(0x1000, op)
	e.Regs.CR.ReplaceField(0, CRFlags{LT: true, SO: true})
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Regs.CR.Field(1); got != (CRFlags{LT: true, SO: true}) {
		t.Fatalf("CR1 = %+v, want copy of CR0", got)
	}
}

// bcctrl (BO=20,BI=0,LK=1) branches to CTR&^3 and sets LR to the return address.
func TestBcctrlBranchesAndLinks(t *testing.T) {
	op := encXL(19, 20, 0, 0, 528, 1)
	e := newTestEmulator(0x1000, op)
	e.Regs.CTR = 0x3004
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.PC != 0x3004 {
		t.Fatalf("PC = %#x, want 0x3004", e.Regs.PC)
	}
	if e.Regs.LR != 0x1004 {
		t.Fatalf("LR = %#x, want 0x1004", e.Regs.LR)
	}
}

// bclr with BO's CR-test facet active only branches when the CR bit matches.
func TestBclrHonorsConditionFacet(t *testing.T) {
	// BO=0b01100 (test CR bit, branch if set, no CTR decrement), BI=2
	op := encXL(19, 0b01100, 2, 0, 16, 0)
	e := newTestEmulator(0x1000, op)
	e.Regs.LR = 0x9000
	e.Regs.CR.SetBit(2, false)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.PC != 0x1004 {
		t.Fatalf("PC = %#x, want 0x1004 (branch not taken)", e.Regs.PC)
	}

	e2 := newTestEmulator(0x1000, op)
	e2.Regs.LR = 0x9000
	e2.Regs.CR.SetBit(2, true)
	if err := e2.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e2.Regs.PC != 0x9000 {
		t.Fatalf("PC = %#x, want 0x9000 (branch taken)", e2.Regs.PC)
	}
}

func TestRfiAndIsyncAreNoFaultingNoops(t *testing.T) {
	e := newTestEmulator(0x1000, encXL(19, 0, 0, 0, 50, 0), encXL(19, 0, 0, 0, 150, 0))
	if err := e.Step(); err != nil {
		t.Fatalf("rfi: unexpected error: %v", err)
	}
	if err := e.Step(); err != nil {
		t.Fatalf("isync: unexpected error: %v", err)
	}
}

// blrl branches to the LR value from before its own link update.
func TestBlrlBranchesToOldLR(t *testing.T) {
	op := encXL(19, 20, 0, 0, 16, 1)
	e := newTestEmulator(0x1000, op)
	e.Regs.LR = 0x2000
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.PC != 0x2000 {
		t.Fatalf("PC = %#x, want 0x2000 (the pre-link LR)", e.Regs.PC)
	}
	if e.Regs.LR != 0x1004 {
		t.Fatalf("LR = %#x, want 0x1004", e.Regs.LR)
	}
}

// rfi has exactly one legal encoding; stray bits are a decode fault.
func TestRfiReservedBitsFault(t *testing.T) {
	op := encXL(19, 1, 0, 0, 50, 0)
	e := newTestEmulator(0x1000, op)
	if _, ok := e.Step().(*DecodeError); !ok {
		t.Fatalf("expected DecodeError for rfi with reserved bits set")
	}
}
