package ppc32

import "testing"

func TestOpOp(t *testing.T) {
	// addi r3,0,5 -> primary 0x0E
	op := uint32(0x0E<<26) | uint32(3<<21) | uint32(0<<16) | 5
	if got := opOp(op); got != 0x0E {
		t.Fatalf("opOp() = %#x, want 0x0E", got)
	}
}

func TestOpSPR(t *testing.T) {
	// SPR 8 (LR): encoded as two 5-bit halves swapped -> bits 11..15 hold low
	// 5 bits (0b01000=8), bits 16..20 hold high 5 bits (0).
	op := uint32(8) << 16
	if got := opSPR(op); got != 8 {
		t.Fatalf("opSPR() = %d, want 8", got)
	}
}

func TestOpImmExt(t *testing.T) {
	op := uint32(0x8000)
	if got := opImmExt(op); got != -32768 {
		t.Fatalf("opImmExt(0x8000) = %d, want -32768", got)
	}
	op = uint32(0x7FFF)
	if got := opImmExt(op); got != 32767 {
		t.Fatalf("opImmExt(0x7FFF) = %d, want 32767", got)
	}
}

func TestOpBTarget(t *testing.T) {
	// displacement 4 with AA=0, LK=1 -> low bits untouched by this accessor
	op := uint32(0x00000005)
	if got := opBTarget(op); got != 4 {
		t.Fatalf("opBTarget() = %d, want 4", got)
	}
}

func TestOpBONamedFacets(t *testing.T) {
	bo := opBO(uint32(0b10100) << 21)
	if !bo.skipCondition() || !bo.skipCTR() {
		t.Fatalf("BO=0b10100 should skip both condition and CTR test")
	}
}

func TestMask32(t *testing.T) {
	if got := mask32(0, 31); got != 0xFFFFFFFF {
		t.Fatalf("mask32(0,31) = %#x, want 0xFFFFFFFF", got)
	}
	if got := mask32(0, 27); got != 0xFFFFFFF0 {
		t.Fatalf("mask32(0,27) = %#x, want 0xFFFFFFF0", got)
	}
	if got := mask32(28, 3); got != 0xF000000F {
		t.Fatalf("mask32(28,3) (wrap) = %#x, want 0xF000000F", got)
	}
}

func TestRotl32(t *testing.T) {
	if got := rotl32(0x00000001, 31); got != 0x80000000 {
		t.Fatalf("rotl32(1,31) = %#x, want 0x80000000", got)
	}
	if got := rotl32(0x12345678, 0); got != 0x12345678 {
		t.Fatalf("rotl32(v,0) = %#x, want unchanged", got)
	}
}
