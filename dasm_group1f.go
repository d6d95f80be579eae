// dasm_group1f.go - disassembly for the X/XO-form group dispatched under
// primary opcode 0x1F

package ppc32

import "fmt"

func oeSuffix(op uint32) string {
	if opOE(op) {
		return "o"
	}
	return ""
}

func dasmRDRARB(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		rd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		return fmt.Sprintf("%sr%d, r%d, r%d", pad(mnemonic+oeSuffix(op)+recSuffix(op)), rd, ra, rb)
	}
}

func dasmRDRA(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		rd, ra := opReg1(op), opReg2(op)
		return fmt.Sprintf("%sr%d, r%d", pad(mnemonic+oeSuffix(op)+recSuffix(op)), rd, ra)
	}
}

func dasmRARS(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		rs, ra := opReg1(op), opReg2(op)
		return fmt.Sprintf("%sr%d, r%d", pad(mnemonic+recSuffix(op)), ra, rs)
	}
}

func dasmLogicalX(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		if mnemonic == "or" && rs == rb {
			return fmt.Sprintf("%sr%d, r%d", pad("mr"+recSuffix(op)), ra, rs)
		}
		return fmt.Sprintf("%sr%d, r%d, r%d", pad(mnemonic+recSuffix(op)), ra, rs, rb)
	}
}

func dasmCmpX(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		if op&0x00600000 != 0 {
			return pad(".invalid") + mnemonic
		}
		crf, ra, rb := opCRF1(op), opReg2(op), opReg3(op)
		if crf != 0 {
			return fmt.Sprintf("%s%s, r%d, r%d", pad(mnemonic+"w"), crFieldNames[crf], ra, rb)
		}
		return fmt.Sprintf("%sr%d, r%d", pad(mnemonic+"w"), ra, rb)
	}
}

func dasmXLoadStore(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		rd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		return fmt.Sprintf("%sr%d, r%d, r%d", pad(mnemonic), rd, ra, rb)
	}
}

func dasmMfspr(pc uint32, op uint32, labels map[uint32]bool) string {
	spr, rd := opSPR(op), opReg1(op)
	if name, ok := sprNames[spr]; ok {
		return fmt.Sprintf("%sr%d, %s", pad("mfspr"), rd, name)
	}
	return fmt.Sprintf("%sr%d, %d", pad("mfspr"), rd, spr)
}

func dasmMtspr(pc uint32, op uint32, labels map[uint32]bool) string {
	spr, rs := opSPR(op), opReg1(op)
	if name, ok := sprNames[spr]; ok {
		return fmt.Sprintf("%s%s, r%d", pad("mtspr"), name, rs)
	}
	return fmt.Sprintf("%s%d, r%d", pad("mtspr"), spr, rs)
}

func dasmMftb(pc uint32, op uint32, labels map[uint32]bool) string {
	tbr, rd := opSPR(op), opReg1(op)
	if name, ok := tbrNames[tbr]; ok {
		return fmt.Sprintf("%sr%d, %s", pad("mftb"), rd, name)
	}
	return fmt.Sprintf("%sr%d, %d", pad("mftb"), rd, tbr)
}

func hexByte(v uint8) string {
	return fmt.Sprintf("0x%02X", v)
}
