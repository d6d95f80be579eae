// dasm_branch.go - disassembly for branch and system-call instructions

package ppc32

import "fmt"

// branchSuffix renders the AA/LK combination as the conventional la/a/l
// mnemonic suffix.
func branchSuffix(op uint32) string {
	aa, lk := opAbs(op), opLink(op)
	switch {
	case aa && lk:
		return "la"
	case aa:
		return "a"
	case lk:
		return "l"
	default:
		return ""
	}
}

func branchTargetFor(pc uint32, op uint32, disp int32) uint32 {
	if opAbs(op) {
		return uint32(disp)
	}
	return pc + uint32(disp)
}

func dasmB(pc uint32, op uint32, labels map[uint32]bool) string {
	target := branchTargetFor(pc, op, opBTarget(op))
	labels[target] = true
	return fmt.Sprintf("%slabel%08X", pad("b"+branchSuffix(op)), target)
}

func dasmBC(pc uint32, op uint32, labels map[uint32]bool) string {
	bo := opReg1(op)
	bi := opBI(op)
	suffix := branchSuffix(op)
	target := branchTargetFor(pc, op, opBD(op))
	labels[target] = true
	operand := fmt.Sprintf("label%08X", target)

	name, ok := mnemonicForBC(bo, bi)
	if !ok {
		return fmt.Sprintf("%s%d, %d, %s", pad("bc"+suffix), bo, bi, operand)
	}
	mnemonic := "b" + name + suffix
	if bi&0x1C != 0 {
		return fmt.Sprintf("%s%s, %s", pad(mnemonic), crFieldNames[bi>>2], operand)
	}
	return fmt.Sprintf("%s%s", pad(mnemonic), operand)
}
