// dasm_dform.go - disassembly for D-form immediate instructions

package ppc32

import "fmt"

func pad(mnemonic string) string {
	for len(mnemonic) < 10 {
		mnemonic += " "
	}
	return mnemonic
}

func dasmTWI(pc uint32, op uint32, labels map[uint32]bool) string {
	to, ra, imm := opReg1(op), opReg2(op), opImmExt(op)
	return fmt.Sprintf("%s%d, r%d, %d", pad("twi"), to, ra, imm)
}

func dasmMulli(pc uint32, op uint32, labels map[uint32]bool) string {
	rd, ra, imm := opReg1(op), opReg2(op), opImmExt(op)
	return fmt.Sprintf("%sr%d, r%d, %d", pad("mulli"), rd, ra, imm)
}

func dasmSubfic(pc uint32, op uint32, labels map[uint32]bool) string {
	rd, ra, imm := opReg1(op), opReg2(op), opImmExt(op)
	return fmt.Sprintf("%sr%d, r%d, %d", pad("subfic"), rd, ra, imm)
}

func dasmAddic(rec bool) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		rd, ra, imm := opReg1(op), opReg2(op), opImmExt(op)
		mnemonic := "addic"
		if rec {
			mnemonic = "addic."
		}
		if imm < 0 {
			subMnemonic := "subic"
			if rec {
				subMnemonic = "subic."
			}
			return fmt.Sprintf("%sr%d, r%d, %d", pad(subMnemonic), rd, ra, -imm)
		}
		return fmt.Sprintf("%sr%d, r%d, %d", pad(mnemonic), rd, ra, imm)
	}
}

func dasmAddi(pc uint32, op uint32, labels map[uint32]bool) string {
	rd, ra, imm := opReg1(op), opReg2(op), opImmExt(op)
	if ra == 0 {
		return fmt.Sprintf("%sr%d, %d", pad("li"), rd, imm)
	}
	if imm < 0 {
		return fmt.Sprintf("%sr%d, r%d, %d", pad("subi"), rd, ra, -imm)
	}
	return fmt.Sprintf("%sr%d, r%d, %d", pad("addi"), rd, ra, imm)
}

func dasmAddis(pc uint32, op uint32, labels map[uint32]bool) string {
	rd, ra := opReg1(op), opReg2(op)
	imm := int32(opImm(op))
	// lis is architecturally two-operand: rD and the immediate.
	if ra == 0 {
		return fmt.Sprintf("%sr%d, %d", pad("lis"), rd, imm)
	}
	return fmt.Sprintf("%sr%d, r%d, %d", pad("addis"), rd, ra, imm)
}

func dasmCmpli(pc uint32, op uint32, labels map[uint32]bool) string {
	crf, ra, imm := opCRF1(op), opReg2(op), opImm(op)
	if op&0x00600000 != 0 {
		return pad(".invalid") + "cmpli"
	}
	if crf != 0 {
		return fmt.Sprintf("%s%s, r%d, %d", pad("cmplwi"), crFieldNames[crf], ra, imm)
	}
	return fmt.Sprintf("%sr%d, %d", pad("cmplwi"), ra, imm)
}

func dasmCmpi(pc uint32, op uint32, labels map[uint32]bool) string {
	crf, ra, imm := opCRF1(op), opReg2(op), int16(opImm(op))
	if op&0x00600000 != 0 {
		return pad(".invalid") + "cmpi"
	}
	if crf != 0 {
		return fmt.Sprintf("%s%s, r%d, %d", pad("cmpwi"), crFieldNames[crf], ra, imm)
	}
	return fmt.Sprintf("%sr%d, %d", pad("cmpwi"), ra, imm)
}

func dasmOri(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra, imm := opReg1(op), opReg2(op), opImm(op)
	if rs == 0 && ra == 0 && imm == 0 {
		return "nop"
	}
	return fmt.Sprintf("%sr%d, r%d, 0x%04X", pad("ori"), ra, rs, imm)
}

func dasmOris(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra, imm := opReg1(op), opReg2(op), opImm(op)
	return fmt.Sprintf("%sr%d, r%d, 0x%04X", pad("oris"), ra, rs, imm)
}

func dasmXori(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra, imm := opReg1(op), opReg2(op), opImm(op)
	return fmt.Sprintf("%sr%d, r%d, 0x%04X", pad("xori"), ra, rs, imm)
}

func dasmXoris(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra, imm := opReg1(op), opReg2(op), opImm(op)
	return fmt.Sprintf("%sr%d, r%d, 0x%04X", pad("xoris"), ra, rs, imm)
}

func dasmAndiRec(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra, imm := opReg1(op), opReg2(op), opImm(op)
	return fmt.Sprintf("%sr%d, r%d, 0x%04X", pad("andi."), ra, rs, imm)
}

func dasmAndisRec(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra, imm := opReg1(op), opReg2(op), opImm(op)
	return fmt.Sprintf("%sr%d, r%d, 0x%04X", pad("andis."), ra, rs, imm)
}
