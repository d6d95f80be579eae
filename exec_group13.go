// exec_group13.go - CR-logical ops and the branch-to-LR/CTR/system forms
// dispatched under primary opcode 0x13

package ppc32

// initGroup13 populates the extended-opcode table for primary group 0x13:
// the eight CR-logical instructions, mcrf, bclr, bcctr, rfi and isync.
func (e *Emulator) initGroup13() {
	e.group13 = map[uint16]instrEntry{
		0:   mcrfEntry,
		16:  bclrEntry,
		33:  crLogicalEntry("crnor", func(a, b bool) bool { return !(a || b) }),
		50:  rfiEntry,
		129: crLogicalEntry("crandc", func(a, b bool) bool { return a && !b }),
		150: isyncEntry,
		193: crLogicalEntry("crxor", func(a, b bool) bool { return a != b }),
		225: crLogicalEntry("crnand", func(a, b bool) bool { return !(a && b) }),
		257: crLogicalEntry("crand", func(a, b bool) bool { return a && b }),
		289: crLogicalEntry("creqv", func(a, b bool) bool { return a == b }),
		417: crLogicalEntry("crorc", func(a, b bool) bool { return a || !b }),
		449: crLogicalEntry("cror", func(a, b bool) bool { return a || b }),
		528: bcctrEntry,
	}
}

// crLogicalEntry builds one of the eight CR-bit logical ops; each combines
// CR[BA] and CR[BB] with the given boolean function into CR[BT].
func crLogicalEntry(mnemonic string, combine func(a, b bool) bool) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			bt, ba, bb := opReg1(op), opReg2(op), opReg3(op)
			e.Regs.CR.SetBit(bt, combine(e.Regs.CR.Bit(ba), e.Regs.CR.Bit(bb)))
			return nil
		},
		dasm: dasmCRLogical(mnemonic),
	}
}

var mcrfEntry = instrEntry{
	mnemonic: "mcrf",
	exec: func(e *Emulator, op uint32) error {
		bf, bfa := opCRF1(op), opCRF2(op)
		e.Regs.CR.ReplaceField(bf, e.Regs.CR.Field(bfa))
		return nil
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		bf, bfa := opCRF1(op), opCRF2(op)
		return pad("mcrf") + crFieldNames[bf] + ", " + crFieldNames[bfa]
	},
}

// branchTakenCond evaluates only the CR-condition half of BO, used by bcctr
// where BO's CTR-decrement facet is architecturally meaningless.
func branchTakenCond(e *Emulator, bo branchBO, bi uint8) bool {
	if bo.skipCondition() {
		return true
	}
	return e.Regs.CR.Bit(bi) == bo.branchConditionValue()
}

// bclr captures the branch target before the unconditional LR update so
// that blrl branches to the caller's return address, not its own.
var bclrEntry = instrEntry{
	mnemonic: "bclr",
	exec: func(e *Emulator, op uint32) error {
		bo, bi := opBO(op), opBI(op)
		target := e.Regs.LR &^ 0x3
		if opLink(op) {
			e.Regs.LR = e.Regs.PC + 4
		}
		if branchTaken(e, bo, bi) {
			e.Regs.PC = target - 4
		}
		return nil
	},
	dasm: dasmBclr,
}

var bcctrEntry = instrEntry{
	mnemonic: "bcctr",
	exec: func(e *Emulator, op uint32) error {
		bo, bi := opBO(op), opBI(op)
		if opLink(op) {
			e.Regs.LR = e.Regs.PC + 4
		}
		if branchTakenCond(e, bo, bi) {
			e.Regs.PC = (e.Regs.CTR &^ 0x3) - 4
		}
		return nil
	},
	dasm: dasmBcctr,
}

// rfiEntry is a no-op: supervisor mode is out of scope and the register file
// has no SRR0, so PC is not restored and execution simply falls through to
// the next instruction. It exists so rfi decodes and disassembles instead of
// faulting. Like the sync family, it has exactly one legal encoding.
var rfiEntry = instrEntry{
	mnemonic: "rfi",
	exec: func(e *Emulator, op uint32) error {
		if op != 0x4C000064 {
			return &DecodeError{PC: e.Regs.PC, Opcode: op, Reason: "reserved bits set in rfi"}
		}
		return nil
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		if op != 0x4C000064 {
			return pad(".invalid") + "rfi"
		}
		return "rfi"
	},
}

var isyncEntry = instrEntry{
	mnemonic: "isync",
	exec: func(e *Emulator, op uint32) error {
		if op != 0x4C00012C {
			return &DecodeError{PC: e.Regs.PC, Opcode: op, Reason: "reserved bits set in isync"}
		}
		return nil
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		if op != 0x4C00012C {
			return pad(".invalid") + "isync"
		}
		return "isync"
	},
}
