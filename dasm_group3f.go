// dasm_group3f.go - disassembly for the X-form FP compare/move/FPSCR family

package ppc32

import "fmt"

func dasmFRD_FRB(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		frt, frb := opReg1(op), opReg3(op)
		return fmt.Sprintf("%sf%d, f%d", pad(mnemonic+recSuffix(op)), frt, frb)
	}
}

func dasmFRD(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		frt := opReg1(op)
		return fmt.Sprintf("%sf%d", pad(mnemonic+recSuffix(op)), frt)
	}
}

func dasmCRB(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		crb := opReg1(op)
		return fmt.Sprintf("%scrb%d", pad(mnemonic+recSuffix(op)), crb)
	}
}

func dasmFPCmp(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		crf, fra, frb := opCRF1(op), opReg2(op), opReg3(op)
		if crf != 0 {
			return fmt.Sprintf("%s%s, f%d, f%d", pad(mnemonic), crFieldNames[crf], fra, frb)
		}
		return fmt.Sprintf("%sf%d, f%d", pad(mnemonic), fra, frb)
	}
}

func dasmMcrfs(pc uint32, op uint32, labels map[uint32]bool) string {
	bf, bfa := opCRF1(op), opCRF2(op)
	return pad("mcrfs") + crFieldNames[bf] + ", " + crFieldNames[bfa]
}

func dasmMtfsfi(pc uint32, op uint32, labels map[uint32]bool) string {
	crf := opCRF1(op)
	imm := uint8((op >> 12) & 0x0F)
	return fmt.Sprintf("%s%s, 0x%X", pad("mtfsfi"+recSuffix(op)), crFieldNames[crf], imm)
}

func dasmMtfsf(pc uint32, op uint32, labels map[uint32]bool) string {
	fm := uint8((op >> 17) & 0xFF)
	frb := opReg3(op)
	return fmt.Sprintf("%s%s, f%d", pad("mtfsf"+recSuffix(op)), hexByte(fm), frb)
}
