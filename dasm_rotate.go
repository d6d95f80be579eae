// dasm_rotate.go - disassembly for rotate/mask and shift instructions

package ppc32

import "fmt"

func recSuffix(op uint32) string {
	if opRc(op) {
		return "."
	}
	return ""
}

func dasmRlwimi(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra := opReg1(op), opReg2(op)
	sh, mb, me := opReg3(op), opReg4(op), opReg5(op)
	return fmt.Sprintf("%sr%d, r%d, %d, %d, %d", pad("rlwimi"+recSuffix(op)), ra, rs, sh, mb, me)
}

func dasmRlwinm(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra := opReg1(op), opReg2(op)
	sh, mb, me := opReg3(op), opReg4(op), opReg5(op)
	return fmt.Sprintf("%sr%d, r%d, %d, %d, %d", pad("rlwinm"+recSuffix(op)), ra, rs, sh, mb, me)
}

func dasmRlwnm(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
	mb, me := opReg4(op), opReg5(op)
	return fmt.Sprintf("%sr%d, r%d, r%d, %d, %d", pad("rlwnm"+recSuffix(op)), ra, rs, rb, mb, me)
}

// dasmFunc3 builds a disassembler for the "mnemonic rA, rS, rB" shape used by
// slw/srw/sraw.
func dasmFunc3(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		return fmt.Sprintf("%sr%d, r%d, r%d", pad(mnemonic+recSuffix(op)), ra, rs, rb)
	}
}

func dasmSrawi(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra, sh := opReg1(op), opReg2(op), opReg3(op)
	return fmt.Sprintf("%sr%d, r%d, %d", pad("srawi"+recSuffix(op)), ra, rs, sh)
}

func dasmCntlzw(pc uint32, op uint32, labels map[uint32]bool) string {
	rs, ra := opReg1(op), opReg2(op)
	return fmt.Sprintf("%sr%d, r%d", pad("cntlzw"+recSuffix(op)), ra, rs)
}
