// exec_group3b.go - single-precision floating-point arithmetic dispatched
// under primary opcode 0x3B (always A-form, 5-bit secondary opcode).
//
// FP arithmetic execution is out of scope: every handler here decodes and
// disassembles fully but faults with UnimplementedError on execute, the
// same documented stub path as twi/tw.

package ppc32

func (e *Emulator) initGroup3B() {
	e.group3B = map[uint8]instrEntry{
		18: fpStub("fdivs"),
		20: fpStub("fsubs"),
		21: fpStub("fadds"),
		22: fpStub("fsqrts"),
		24: fpStub("fres"),
		25: fpStub("fmuls"),
		28: fpStub("fmsubs"),
		29: fpStub("fmadds"),
		30: fpStub("fnmsubs"),
		31: fpStub("fnmadds"),
	}
}

func fpStub(mnemonic string) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic}
		},
		dasm: dasmFPArith(mnemonic),
	}
}
