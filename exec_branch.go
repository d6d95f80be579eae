// exec_branch.go - branch and system-call execution

package ppc32

// branchTaken evaluates the BO/BI condition shared by bc, bclr and bcctr,
// decrementing CTR first (unless skipped) exactly as the architecture
// specifies: the decrement happens whether or not its result ends up
// gating the branch.
func branchTaken(e *Emulator, bo branchBO, bi uint8) bool {
	ctrOK := true
	if !bo.skipCTR() {
		e.Regs.CTR--
		ctrOK = (e.Regs.CTR == 0) == bo.branchIfCTRZero()
	}
	condOK := true
	if !bo.skipCondition() {
		condOK = e.Regs.CR.Bit(bi) == bo.branchConditionValue()
	}
	return ctrOK && condOK
}

var bEntry = instrEntry{
	mnemonic: "b",
	exec: func(e *Emulator, op uint32) error {
		if opLink(op) {
			e.Regs.LR = e.Regs.PC + 4
		}
		doBranch(e, op, opBTarget(op))
		return nil
	},
	dasm: dasmB,
}

// bc writes LR before evaluating the branch condition: the architecture
// specifies the LR update happens whether or not the branch is taken.
var bcEntry = instrEntry{
	mnemonic: "bc",
	exec: func(e *Emulator, op uint32) error {
		if opLink(op) {
			e.Regs.LR = e.Regs.PC + 4
		}
		bo := opBO(op)
		bi := opBI(op)
		if branchTaken(e, bo, bi) {
			doBranch(e, op, opBD(op))
		}
		return nil
	},
	dasm: dasmBC,
}

// doBranch applies the target computed from disp (already a 32-bit signed
// word-aligned offset or absolute value per opAbs) to PC. Step adds 4 to PC
// after exec returns, so the target is staged as target-4 here.
func doBranch(e *Emulator, op uint32, disp int32) {
	var target uint32
	if opAbs(op) {
		target = uint32(disp)
	} else {
		target = e.Regs.PC + uint32(disp)
	}
	e.Regs.PC = target - 4
}

var scEntry = instrEntry{
	mnemonic: "sc",
	exec: func(e *Emulator, op uint32) error {
		if op != 0x44000002 {
			return &DecodeError{PC: e.Regs.PC, Opcode: op, Reason: "reserved bits set in sc"}
		}
		if e.SyscallHandler == nil {
			return nil
		}
		if !e.SyscallHandler(e, e.Regs) {
			e.requestExit()
		}
		return nil
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		if op != 0x44000002 {
			return pad(".invalid") + "sc"
		}
		return "sc"
	},
}
