// dasm_group13.go - disassembly for CR-logical and branch-to-LR/CTR forms

package ppc32

import "fmt"

func dasmCRLogical(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		bt, ba, bb := opReg1(op), opReg2(op), opReg3(op)
		return fmt.Sprintf("%scrb%d, crb%d, crb%d", pad(mnemonic), bt, ba, bb)
	}
}

func dasmBclr(pc uint32, op uint32, labels map[uint32]bool) string {
	bo, bi := opReg1(op), opBI(op)
	name, ok := mnemonicForBC(bo, bi)
	suffix := branchSuffix(op)
	if !ok {
		return fmt.Sprintf("%s%d, %d", pad("bclr"+suffix), bo, bi)
	}
	mnemonic := "b" + name + "lr" + suffix
	if bi&0x1C != 0 {
		return fmt.Sprintf("%s%s", pad(mnemonic), crFieldNames[bi>>2])
	}
	return pad(mnemonic)
}

func dasmBcctr(pc uint32, op uint32, labels map[uint32]bool) string {
	bo, bi := opReg1(op), opBI(op)
	name, ok := mnemonicForBC(bo, bi)
	suffix := branchSuffix(op)
	if !ok {
		return fmt.Sprintf("%s%d, %d", pad("bcctr"+suffix), bo, bi)
	}
	mnemonic := "b" + name + "ctr" + suffix
	if bi&0x1C != 0 {
		return fmt.Sprintf("%s%s", pad(mnemonic), crFieldNames[bi>>2])
	}
	return pad(mnemonic)
}
