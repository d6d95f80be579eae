package ppc32

import (
	"math/bits"
	"testing"
)

// newTestEmulator stores the given instruction words as a big-endian guest
// stream, the byte order the fetch path expects.
func newTestEmulator(pc uint32, words ...uint32) *Emulator {
	mem := NewFlatMemory(0x10000)
	for i, w := range words {
		writeGuestU32(mem, pc+uint32(i*4), w)
	}
	e := NewEmulator(mem)
	e.Regs.PC = pc
	return e
}

// writeGuestU32/readGuestU32 access guest memory with the ISA's big-endian
// byte order, mirroring what lwz/stw do.
func writeGuestU32(mem Memory, addr uint32, v uint32) {
	mem.WriteU32(addr, bits.ReverseBytes32(v))
}

func readGuestU32(mem Memory, addr uint32) uint32 {
	return bits.ReverseBytes32(mem.ReadU32(addr))
}

// li r3,5 ; li r4,3 ; add r3,r3,r4
func TestThreeInstructionSequence(t *testing.T) {
	const (
		liR3_5   = 0x38600005
		liR4_3   = 0x38800003
		addR3R3R4 = 0x7C632214
	)
	e := newTestEmulator(0x1000, liR3_5, liR4_3, addR3R3R4)

	for i := 0; i < 3; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}

	if got := e.Regs.R[3].U(); got != 8 {
		t.Fatalf("r3 = %d, want 8", got)
	}
	if got := e.Regs.R[4].U(); got != 3 {
		t.Fatalf("r4 = %d, want 3", got)
	}
	if e.Regs.PC != 0x100C {
		t.Fatalf("PC = %#x, want 0x100C", e.Regs.PC)
	}
}

// blr (bclr with BO=20,BI=0,LK=0) at opcode 0x4E800020.
func TestBLR(t *testing.T) {
	e := newTestEmulator(0x1000, 0x4E800020)
	e.Regs.LR = 0x2000
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.PC != 0x2000 {
		t.Fatalf("PC = %#x, want 0x2000", e.Regs.PC)
	}
}

// b with AA=0, LK=1, displacement=4 at PC=0x1000.
func TestBranchWithLink(t *testing.T) {
	e := newTestEmulator(0x1000, 0x48000005)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.LR != 0x1004 {
		t.Fatalf("LR = %#x, want 0x1004", e.Regs.LR)
	}
	if e.Regs.PC != 0x1004 {
		t.Fatalf("PC = %#x, want 0x1004", e.Regs.PC)
	}
}

// 0x7C6B1B78 is or r11,r3,r3, which renders as mr r11, r3.
func TestOrRendersAsMr(t *testing.T) {
	d := NewDisassembler()
	text := d.DisassembleOne(0x1000, 0x7C6B1B78)
	want := "00001000  7C6B1B78  mr        r11, r3"
	if text != want {
		t.Fatalf("disassembly = %q, want %q", text, want)
	}
}

// 0x3863FFFF with r3=0x10 executes as addi r3,r3,-1 -> r3=0xF, and
// disassembles as subi r3, r3, 1.
func TestNegativeAddiIsSubi(t *testing.T) {
	e := newTestEmulator(0x1000, 0x3863FFFF)
	e.Regs.R[3].SetU(0x10)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Regs.R[3].U(); got != 0xF {
		t.Fatalf("r3 = %#x, want 0xF", got)
	}

	d := NewDisassembler()
	text := d.DisassembleOne(0x1000, 0x3863FFFF)
	want := "00001000  3863FFFF  subi      r3, r3, 1"
	if text != want {
		t.Fatalf("disassembly = %q, want %q", text, want)
	}
}

// rlwinm r3,r3,0,0,27 with r3=0x12345678 masks to 0x12345670.
func TestRlwinmMask(t *testing.T) {
	e := newTestEmulator(0x1000, 0x54630036)
	e.Regs.R[3].SetU(0x12345678)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Regs.R[3].U(); got != 0x12345670 {
		t.Fatalf("r3 = %#x, want 0x12345670", got)
	}
}

// rlwinm rA,rS,0,0,31 is a plain copy.
func TestRlwinmIdentity(t *testing.T) {
	// rlwinm r4,r3,0,0,31
	op := uint32(21<<26) | uint32(3<<21) | uint32(4<<16) | uint32(0<<11) | uint32(0<<6) | uint32(31<<1)
	e := newTestEmulator(0x1000, op)
	e.Regs.R[3].SetU(0xCAFEBABE)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Regs.R[4].U(); got != 0xCAFEBABE {
		t.Fatalf("r4 = %#x, want 0xCAFEBABE", got)
	}
}

func TestCmpiTreatsImmediateAsNegative(t *testing.T) {
	// cmpi cr0,0,r3,0x8000
	op := uint32(11<<26) | uint32(0<<23) | uint32(3<<16) | 0x8000
	e := newTestEmulator(0x1000, op)
	e.Regs.R[3].SetS(-1)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flags := e.Regs.CR.Field(0)
	if !flags.GT {
		t.Fatalf("cmpi r3(-1), -32768 should set GT; got %+v", flags)
	}
}

func TestAddisWritesUpperHalf(t *testing.T) {
	// addis r3,0,0x8000 -> lis r3, 32768
	op := uint32(15<<26) | uint32(3<<21) | uint32(0<<16) | 0x8000
	e := newTestEmulator(0x1000, op)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Regs.R[3].U(); got != 0x80000000 {
		t.Fatalf("r3 = %#x, want 0x80000000", got)
	}
}

// bc with BO=0b10100 (branch always, no CTR decrement, no condition test)
// always branches and leaves CTR unchanged.
func TestBranchAlwaysLeavesCTRUnchanged(t *testing.T) {
	op := uint32(16<<26) | uint32(0b10100<<21) | uint32(0<<16) | uint32(8)
	e := newTestEmulator(0x1000, op)
	e.Regs.CTR = 42
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.PC != 0x1008 {
		t.Fatalf("PC = %#x, want 0x1008", e.Regs.PC)
	}
	if e.Regs.CTR != 42 {
		t.Fatalf("CTR = %d, want 42 (unchanged)", e.Regs.CTR)
	}
}

func TestUpdateFormRAZeroIsInvalidOperand(t *testing.T) {
	// lwzu r3,4(r0)
	op := uint32(0x21<<26) | uint32(3<<21) | uint32(0<<16) | 4
	e := newTestEmulator(0x1000, op)
	err := e.Step()
	if _, ok := err.(*InvalidOperandError); !ok {
		t.Fatalf("err = %T(%v), want *InvalidOperandError", err, err)
	}
	if e.Regs.R[0].U() != 0 {
		t.Fatalf("r0 must be unchanged")
	}
}

func TestUpdateFormRAEqualsRDIsInvalidOperand(t *testing.T) {
	// lwzu r3,4(r3)
	op := uint32(0x21<<26) | uint32(3<<21) | uint32(3<<16) | 4
	e := newTestEmulator(0x1000, op)
	e.Regs.R[3].SetU(0x2000)
	if _, ok := e.Step().(*InvalidOperandError); !ok {
		t.Fatalf("expected InvalidOperandError for lwzu with RA==RD")
	}
	if e.Regs.R[3].U() != 0x2000 {
		t.Fatalf("r3 must be unchanged on invalid-operand fault")
	}
}

func TestTimeBaseAdvancesPerStep(t *testing.T) {
	e := newTestEmulator(0x1000, 0x60000000) // ori r0,r0,0 == nop
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.TBR != 1 {
		t.Fatalf("TBR = %d, want 1", e.Regs.TBR)
	}
}

func TestUnrecognizedPrimaryOpcodeIsDecodeError(t *testing.T) {
	e := newTestEmulator(0x1000, 0x01000000) // primary opcode 0x00, unassigned
	err := e.Step()
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("err = %T(%v), want *DecodeError", err, err)
	}
	if de.Disasm == "" {
		t.Fatalf("DecodeError.Disasm should carry the rendered instruction")
	}
}

func TestFPArithmeticFaultsUnimplemented(t *testing.T) {
	// fadds f1,f2,f3 -> primary 0x3B, ext 21
	op := uint32(0x3B<<26) | uint32(1<<21) | uint32(2<<16) | uint32(3<<11) | uint32(21<<1)
	e := newTestEmulator(0x1000, op)
	ue, ok := e.Step().(*UnimplementedError)
	if !ok {
		t.Fatalf("expected UnimplementedError for fadds")
	}
	if ue.Mnemonic != "fadds" {
		t.Fatalf("Mnemonic = %q, want fadds", ue.Mnemonic)
	}
}

// bc with LK=1 writes LR even when the branch is not taken.
func TestBcNotTakenWithLinkStillWritesLR(t *testing.T) {
	// BO=0b01100 (no CTR decrement, branch if CR bit set), BI=0, LK=1
	op := uint32(16<<26) | uint32(12<<21) | uint32(0<<16) | 8 | 1
	e := newTestEmulator(0x1000, op)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.PC != 0x1004 {
		t.Fatalf("PC = %#x, want 0x1004 (not taken)", e.Regs.PC)
	}
	if e.Regs.LR != 0x1004 {
		t.Fatalf("LR = %#x, want 0x1004 even though the branch was not taken", e.Regs.LR)
	}
}

// subfic r3,r4,10 with r4=5 computes 5 and sets CA (no borrow).
func TestSubficSetsCarry(t *testing.T) {
	op := uint32(8<<26) | uint32(3<<21) | uint32(4<<16) | 10
	e := newTestEmulator(0x1000, op)
	e.Regs.R[4].SetU(5)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Regs.R[3].U(); got != 5 {
		t.Fatalf("r3 = %d, want 5", got)
	}
	if !e.Regs.XER.CA {
		t.Fatalf("subfic with no borrow should set XER.CA")
	}
}

// addic r3,r4,1 with r4=0xFFFFFFFF wraps to zero with carry-out.
func TestAddicSetsCarry(t *testing.T) {
	op := uint32(12<<26) | uint32(3<<21) | uint32(4<<16) | 1
	e := newTestEmulator(0x1000, op)
	e.Regs.R[4].SetU(0xFFFFFFFF)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Regs.R[3].U(); got != 0 {
		t.Fatalf("r3 = %d, want 0", got)
	}
	if !e.Regs.XER.CA {
		t.Fatalf("addic overflow should set XER.CA")
	}
}

// stw emits the word big-endian into guest memory, byte by byte.
func TestStwStoresBigEndianBytes(t *testing.T) {
	op := uint32(36<<26) | uint32(3<<21) | uint32(1<<16) | 0
	e := newTestEmulator(0x1000, op)
	e.Regs.R[1].SetU(0x2000)
	e.Regs.R[3].SetU(0x11223344)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint8{0x11, 0x22, 0x33, 0x44}
	for i, b := range want {
		if got := e.Mem.ReadU8(0x2000 + uint32(i)); got != b {
			t.Fatalf("mem[0x%X] = %#x, want %#x", 0x2000+i, got, b)
		}
	}
}

// Every load/store records its effective address for the host tracer.
func TestDebugAddrTracksEffectiveAddress(t *testing.T) {
	op := uint32(32<<26) | uint32(3<<21) | uint32(1<<16) | 4 // lwz r3,4(r1)
	e := newTestEmulator(0x1000, op)
	e.Regs.R[1].SetU(0x2000)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.Debug.Addr != 0x2004 {
		t.Fatalf("Debug.Addr = %#x, want 0x2004", e.Regs.Debug.Addr)
	}
}

// A syscall handler returning false ends Execute after the sc completes.
func TestExecuteStopsOnSyscallVeto(t *testing.T) {
	e := newTestEmulator(0x1000, 0x44000002)
	calls := 0
	e.SyscallHandler = func(em *Emulator, regs *Registers) bool {
		calls++
		return false
	}
	if err := e.Execute(e.Regs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("syscall handler called %d times, want 1", calls)
	}
	if e.Regs.PC != 0x1004 {
		t.Fatalf("PC = %#x, want 0x1004 (sc completes before exit)", e.Regs.PC)
	}
}

// The debug hook runs before each fetch; returning false stops the loop
// without executing the instruction under the PC.
func TestExecuteStopsOnDebugHookVeto(t *testing.T) {
	e := newTestEmulator(0x1000, 0x60000000, 0x60000000, 0x60000000)
	steps := 0
	e.DebugHook = func(em *Emulator, regs *Registers) bool {
		steps++
		return steps <= 2
	}
	if err := e.Execute(e.Regs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.PC != 0x1008 {
		t.Fatalf("PC = %#x, want 0x1008 (two instructions executed)", e.Regs.PC)
	}
}

type vetoInterruptManager struct{ remaining int }

func (m *vetoInterruptManager) OnCycleStart() bool {
	m.remaining--
	return m.remaining >= 0
}

func TestExecuteStopsOnInterruptManagerVeto(t *testing.T) {
	e := newTestEmulator(0x1000, 0x60000000, 0x60000000)
	e.Interrupt = &vetoInterruptManager{remaining: 1}
	if err := e.Execute(e.Regs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.PC != 0x1004 {
		t.Fatalf("PC = %#x, want 0x1004 (one instruction before veto)", e.Regs.PC)
	}
}

// Encodings differing only in the OE bit reach the same handler.
func TestOEVariantsDecodeToSameHandler(t *testing.T) {
	e := newTestEmulator(0x1000)
	for _, ext := range []uint32{8, 10, 40, 104, 136, 138, 200, 202, 232, 234, 235, 266, 459, 491} {
		base := uint32(31<<26) | uint32(3<<21) | uint32(4<<16) | uint32(5<<11) | (ext << 1)
		withOE := base | (0x200 << 1)
		a, b := e.entryFor(base), e.entryFor(withOE)
		if a.mnemonic == "invalid" {
			t.Fatalf("ext %d: base encoding has no handler", ext)
		}
		if a.mnemonic != b.mnemonic {
			t.Fatalf("ext %d: OE variant decodes to %q, base to %q", ext, b.mnemonic, a.mnemonic)
		}
	}
}

// b with AA=1, LK=1, BD=0 jumps to absolute zero and records the return.
func TestAbsoluteBranchWithLinkToZero(t *testing.T) {
	e := newTestEmulator(0x1000, 0x48000003)
	if err := e.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Regs.LR != 0x1004 {
		t.Fatalf("LR = %#x, want 0x1004", e.Regs.LR)
	}
	if e.Regs.PC != 0 {
		t.Fatalf("PC = %#x, want 0", e.Regs.PC)
	}
}
