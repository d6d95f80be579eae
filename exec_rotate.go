// exec_rotate.go - rotate/mask and shift execution

package ppc32

var rlwimiEntry = instrEntry{
	mnemonic: "rlwimi",
	exec: func(e *Emulator, op uint32) error {
		rs, ra := opReg1(op), opReg2(op)
		sh, mb, me := opReg3(op), opReg4(op), opReg5(op)
		m := mask32(mb, me)
		rotated := rotl32(e.Regs.R[rs].U(), sh)
		result := (rotated & m) | (e.Regs.R[ra].U() &^ m)
		e.Regs.R[ra].SetU(result)
		if opRc(op) {
			e.Regs.SetCR0Int(int32(result))
		}
		return nil
	},
	dasm: dasmRlwimi,
}

var rlwinmEntry = instrEntry{
	mnemonic: "rlwinm",
	exec: func(e *Emulator, op uint32) error {
		rs, ra := opReg1(op), opReg2(op)
		sh, mb, me := opReg3(op), opReg4(op), opReg5(op)
		result := rotl32(e.Regs.R[rs].U(), sh) & mask32(mb, me)
		e.Regs.R[ra].SetU(result)
		if opRc(op) {
			e.Regs.SetCR0Int(int32(result))
		}
		return nil
	},
	dasm: dasmRlwinm,
}

var rlwnmEntry = instrEntry{
	mnemonic: "rlwnm",
	exec: func(e *Emulator, op uint32) error {
		rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		mb, me := opReg4(op), opReg5(op)
		sh := uint8(e.Regs.R[rb].U() & 0x1F)
		result := rotl32(e.Regs.R[rs].U(), sh) & mask32(mb, me)
		e.Regs.R[ra].SetU(result)
		if opRc(op) {
			e.Regs.SetCR0Int(int32(result))
		}
		return nil
	},
	dasm: dasmRlwnm,
}

var slwEntry = instrEntry{
	mnemonic: "slw",
	exec: func(e *Emulator, op uint32) error {
		rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		sh := e.Regs.R[rb].U() & 0x3F
		var result uint32
		if sh < 32 {
			result = e.Regs.R[rs].U() << sh
		}
		e.Regs.R[ra].SetU(result)
		if opRc(op) {
			e.Regs.SetCR0Int(int32(result))
		}
		return nil
	},
	dasm: dasmFunc3("slw"),
}

var srwEntry = instrEntry{
	mnemonic: "srw",
	exec: func(e *Emulator, op uint32) error {
		rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		sh := e.Regs.R[rb].U() & 0x3F
		var result uint32
		if sh < 32 {
			result = e.Regs.R[rs].U() >> sh
		}
		e.Regs.R[ra].SetU(result)
		if opRc(op) {
			e.Regs.SetCR0Int(int32(result))
		}
		return nil
	},
	dasm: dasmFunc3("srw"),
}

var srawEntry = instrEntry{
	mnemonic: "sraw",
	exec: func(e *Emulator, op uint32) error {
		rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		sh := e.Regs.R[rb].U() & 0x3F
		s := e.Regs.R[rs].S()
		result, carry := arithShiftRight(s, sh)
		e.Regs.R[ra].SetS(result)
		e.Regs.XER.CA = carry
		if opRc(op) {
			e.Regs.SetCR0Int(result)
		}
		return nil
	},
	dasm: dasmFunc3("sraw"),
}

var srawiEntry = instrEntry{
	mnemonic: "srawi",
	exec: func(e *Emulator, op uint32) error {
		rs, ra, sh := opReg1(op), opReg2(op), uint32(opReg3(op))
		s := e.Regs.R[rs].S()
		result, carry := arithShiftRight(s, sh)
		e.Regs.R[ra].SetS(result)
		e.Regs.XER.CA = carry
		if opRc(op) {
			e.Regs.SetCR0Int(result)
		}
		return nil
	},
	dasm: dasmSrawi,
}

var cntlzwEntry = instrEntry{
	mnemonic: "cntlzw",
	exec: func(e *Emulator, op uint32) error {
		rs, ra := opReg1(op), opReg2(op)
		v := e.Regs.R[rs].U()
		n := 0
		for n < 32 && v&(1<<(31-n)) == 0 {
			n++
		}
		e.Regs.R[ra].SetU(uint32(n))
		if opRc(op) {
			e.Regs.SetCR0Int(int32(n))
		}
		return nil
	},
	dasm: dasmCntlzw,
}

// arithShiftRight performs the PowerPC sraw/srawi semantics: an arithmetic
// shift right of a 32-bit signed value by up to 63 bits, setting CA iff the
// source is negative and any 1 bit was shifted out.
func arithShiftRight(v int32, sh uint32) (int32, bool) {
	if sh >= 32 {
		if v < 0 {
			return -1, true
		}
		return 0, false
	}
	result := v >> sh
	carry := false
	if v < 0 {
		mask := uint32(1<<sh) - 1
		if uint32(v)&mask != 0 {
			carry = true
		}
	}
	return result, carry
}
