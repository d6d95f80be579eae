// dasm_loadstore.go - disassembly for D-form integer and FP load/store

package ppc32

import "fmt"

func dasmLoadStore(mnemonic string, isUpdate bool) dasmFunc {
	_ = isUpdate
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		rd, ra := opReg1(op), opReg2(op)
		imm := opImmExt(op)
		return fmt.Sprintf("%sr%d, %d(r%d)", pad(mnemonic), rd, imm, ra)
	}
}

func dasmFPLoadStore(mnemonic string, isUpdate bool) dasmFunc {
	_ = isUpdate
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		fd, ra := opReg1(op), opReg2(op)
		imm := opImmExt(op)
		return fmt.Sprintf("%s%s, %d(%s)", pad(mnemonic), fprNames[fd], imm, gprNames[ra])
	}
}

func dasmLmwStmw(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		r, ra := opReg1(op), opReg2(op)
		imm := opImmExt(op)
		return fmt.Sprintf("%sr%d, %d(r%d)", pad(mnemonic), r, imm, ra)
	}
}
