// exec_group1f.go - the X/XO-form integer ALU, compare, indexed load/store
// and system instructions dispatched under primary opcode 0x1F.
//
// Every XO-form entry (add/subf/mullw/divw and friends) is registered at
// both its base secondary opcode and base+0x200: the OE bit lives inside
// the 10-bit field this table is keyed by, but the exec closure reads OE
// and Rc straight off the instruction word, so one instrEntry serves all
// four OE/Rc combinations.

package ppc32

import (
	"fmt"
	"math"
	"math/bits"
)

func (e *Emulator) initGroup1F() {
	e.group1F = map[uint16]instrEntry{}
	g := e.group1F

	g[0] = cmpEntry(false)
	g[4] = twEntry
	g[32] = cmpEntry(true)

	addOE := func(base uint16, entry instrEntry) {
		g[base] = entry
		g[base+0x200] = entry
	}
	addOE(8, arithEntry("subfc", func(a, b uint32) (uint32, bool, bool) {
		negA := ^a + 1
		r, ca := addWithCarry(^a, b, 1)
		return r, ca, addOverflows(int32(negA), int32(b), int32(r))
	}, true))
	addOE(10, arithEntry("addc", func(a, b uint32) (uint32, bool, bool) {
		r, ca := addWithCarry(a, b, 0)
		return r, ca, addOverflows(int32(a), int32(b), int32(r))
	}, true))
	addOE(40, arithEntry("subf", func(a, b uint32) (uint32, bool, bool) {
		negA := ^a + 1
		r := negA + b
		return r, false, addOverflows(int32(negA), int32(b), int32(r))
	}, false))
	g[104] = negEntry
	g[104+0x200] = negEntry
	addOE(136, arithEntry("subfe", func(a, b uint32) (uint32, bool, bool) {
		return addWithCarryOV(^a, b, caBit(e))
	}, true))
	addOE(138, arithEntry("adde", func(a, b uint32) (uint32, bool, bool) {
		return addWithCarryOV(a, b, caBit(e))
	}, true))
	addOE(266, arithEntry("add", func(a, b uint32) (uint32, bool, bool) {
		r, ca := addWithCarry(a, b, 0)
		return r, ca, addOverflows(int32(a), int32(b), int32(r))
	}, false))
	addOE(235, arithEntry("mullw", func(a, b uint32) (uint32, bool, bool) {
		full := int64(int32(a)) * int64(int32(b))
		r := uint32(full)
		return r, false, full != int64(int32(r))
	}, false))
	addOE(459, arithEntry("divwu", func(a, b uint32) (uint32, bool, bool) {
		if b == 0 {
			return 0, false, true
		}
		return a / b, false, false
	}, false))
	addOE(491, arithEntry("divw", func(a, b uint32) (uint32, bool, bool) {
		sa, sb := int32(a), int32(b)
		if sb == 0 || (sa == math.MinInt32 && sb == -1) {
			return 0, false, true
		}
		return uint32(sa / sb), false, false
	}, false))

	g[11] = rdRaEntry("mulhwu", func(a, b uint32) uint32 {
		return uint32((uint64(a) * uint64(b)) >> 32)
	})
	g[75] = rdRaEntry("mulhw", func(a, b uint32) uint32 {
		return uint32((int64(int32(a)) * int64(int32(b))) >> 32)
	})

	addOE(200, unaryCAEntry("subfze", func(a uint32, caIn uint32) (uint32, bool) {
		return addWithCarry(^a, 0, caIn)
	}, true))
	addOE(202, unaryCAEntry("addze", func(a uint32, caIn uint32) (uint32, bool) {
		return addWithCarry(a, 0, caIn)
	}, true))
	addOE(232, unaryCAEntry("subfme", func(a uint32, caIn uint32) (uint32, bool) {
		return addWithCarry(^a, 0xFFFFFFFF, caIn)
	}, true))
	addOE(234, unaryCAEntry("addme", func(a uint32, caIn uint32) (uint32, bool) {
		return addWithCarry(a, 0xFFFFFFFF, caIn)
	}, true))

	g[28] = logicalEntry("and", func(a, b uint32) uint32 { return a & b })
	g[60] = logicalEntry("andc", func(a, b uint32) uint32 { return a &^ b })
	g[444] = logicalEntry("or", func(a, b uint32) uint32 { return a | b })
	g[412] = logicalEntry("orc", func(a, b uint32) uint32 { return a | ^b })
	g[316] = logicalEntry("xor", func(a, b uint32) uint32 { return a ^ b })
	g[476] = logicalEntry("nand", func(a, b uint32) uint32 { return ^(a & b) })
	g[124] = logicalEntry("nor", func(a, b uint32) uint32 { return ^(a | b) })
	g[284] = logicalEntry("eqv", func(a, b uint32) uint32 { return ^(a ^ b) })

	g[922] = extendEntry("extsh", func(v uint32) uint32 { return uint32(int32(int16(v))) })
	g[954] = extendEntry("extsb", func(v uint32) uint32 { return uint32(int32(int8(v))) })

	g[24] = slwEntry
	g[536] = srwEntry
	g[792] = srawEntry
	g[824] = srawiEntry
	g[26] = cntlzwEntry

	g[23] = xLoadStoreEntry("lwzx", 4, false, false, false)
	g[55] = xLoadStoreEntry("lwzux", 4, false, true, false)
	g[87] = xLoadStoreEntry("lbzx", 1, false, false, false)
	g[119] = xLoadStoreEntry("lbzux", 1, false, true, false)
	g[279] = xLoadStoreEntry("lhzx", 2, false, false, false)
	g[311] = xLoadStoreEntry("lhzux", 2, false, true, false)
	g[343] = xLoadStoreEntry("lhax", 2, false, false, true)
	g[375] = xLoadStoreEntry("lhaux", 2, false, true, true)
	g[151] = xLoadStoreEntry("stwx", 4, true, false, false)
	g[183] = xLoadStoreEntry("stwux", 4, true, true, false)
	g[215] = xLoadStoreEntry("stbx", 1, true, false, false)
	g[247] = xLoadStoreEntry("stbux", 1, true, true, false)
	g[407] = xLoadStoreEntry("sthx", 2, true, false, false)
	g[439] = xLoadStoreEntry("sthux", 2, true, true, false)

	g[534] = brxEntry("lwbrx", 4, false)
	g[790] = brxEntry("lhbrx", 2, false)
	g[662] = brxEntry("stwbrx", 4, true)
	g[918] = brxEntry("sthbrx", 2, true)

	g[535] = fpXLoadStoreEntry("lfsx", 4, false, false)
	g[567] = fpXLoadStoreEntry("lfsux", 4, false, true)
	g[599] = fpXLoadStoreEntry("lfdx", 8, false, false)
	g[631] = fpXLoadStoreEntry("lfdux", 8, false, true)
	g[663] = fpXLoadStoreEntry("stfsx", 4, true, false)
	g[695] = fpXLoadStoreEntry("stfsux", 4, true, true)
	g[743] = fpXLoadStoreEntry("stfdx", 8, true, false)
	g[759] = fpXLoadStoreEntry("stfdux", 8, true, true)
	g[983] = stfiwxEntry

	g[20] = lwarxEntry
	g[150] = stwcxEntry

	g[19] = mfcrEntry
	g[144] = mtcrfEntry
	g[339] = mfsprEntry
	g[467] = mtsprEntry
	g[371] = mftbEntry
	g[598] = noopSystemEntry("sync", 0x7C0004AC)
	g[854] = noopSystemEntry("eieio", 0x7C0006AC)
	g[566] = noopSystemEntry("tlbsync", 0x7C00046C)
	g[370] = noopSystemEntry("tlbia", 0x7C0002E4)

	// Cache control and segment-register moves decode and disassemble but
	// fault on execute: cache effects are invisible to a flat memory model
	// and segment registers need the MMU this core doesn't have.
	g[54] = cacheOpEntry("dcbst")
	g[86] = cacheOpEntry("dcbf")
	g[246] = cacheOpEntry("dcbtst")
	g[278] = cacheOpEntry("dcbt")
	g[470] = cacheOpEntry("dcbi")
	g[758] = cacheOpEntry("dcba")
	g[982] = cacheOpEntry("icbi")
	g[1014] = cacheOpEntry("dcbz")
	g[210] = mtsrEntry
	g[242] = mtsrinEntry
	g[595] = mfsrEntry
	g[659] = mfsrinEntry
	g[306] = tlbieEntry
	g[83] = msrEntry("mfmsr")
	g[146] = msrEntry("mtmsr")
	g[512] = mcrxrEntry
	g[310] = extControlEntry("eciwx")
	g[438] = extControlEntry("ecowx")
	g[533] = stringOpXEntry("lswx")
	g[661] = stringOpXEntry("stswx")
	g[597] = stringOpIEntry("lswi")
	g[741] = stringOpIEntry("stswi")
}

// twEntry: trap-on-condition against a register pair. Like twi, trap
// semantics need an exception model this core doesn't have, so execution is
// a documented stub fault.
var twEntry = instrEntry{
	mnemonic: "tw",
	exec: func(e *Emulator, op uint32) error {
		return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "tw"}
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		to, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		return pad("tw") + fmt.Sprintf("%d, r%d, r%d", to, ra, rb)
	},
}

func cacheOpEntry(mnemonic string) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic}
		},
		dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
			ra, rb := opReg2(op), opReg3(op)
			return pad(mnemonic) + fmt.Sprintf("r%d, r%d", ra, rb)
		},
	}
}

// fpXLoadStoreEntry is the indexed counterpart of fpLoadStoreEntry
// (EA = RA|0 + RB), sharing its single-to-double widening on 4-byte forms.
func fpXLoadStoreEntry(mnemonic string, size int, isStore bool, isUpdate bool) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			fd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
			if isUpdate && ra == 0 {
				return &InvalidOperandError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic, Reason: "RA==0 invalid for update form"}
			}
			ea := e.Regs.GPRForEA(ra) + e.Regs.R[rb].U()
			e.Regs.Debug.Addr = ea
			if isStore {
				if size == 4 {
					fbits := math.Float32bits(float32(e.Regs.F[fd].F()))
					storeInt(e, ea, 4, fbits)
				} else {
					e.Mem.WriteU64(ea, bits.ReverseBytes64(e.Regs.F[fd].Bits()))
				}
			} else {
				if size == 4 {
					e.Regs.F[fd].SetF(float64(math.Float32frombits(loadInt(e, ea, 4, false))))
				} else {
					e.Regs.F[fd].SetBits(bits.ReverseBytes64(e.Mem.ReadU64(ea)))
				}
			}
			if isUpdate {
				e.Regs.R[ra].SetU(ea)
			}
			return nil
		},
		dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
			fd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
			return pad(mnemonic) + fmt.Sprintf("f%d, r%d, r%d", fd, ra, rb)
		},
	}
}

// stfiwx stores the low word of the FPR's raw bits, no conversion.
var stfiwxEntry = instrEntry{
	mnemonic: "stfiwx",
	exec: func(e *Emulator, op uint32) error {
		fs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		ea := e.Regs.GPRForEA(ra) + e.Regs.R[rb].U()
		e.Regs.Debug.Addr = ea
		storeInt(e, ea, 4, uint32(e.Regs.F[fs].Bits()))
		return nil
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		fs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		return pad("stfiwx") + fmt.Sprintf("f%d, r%d, r%d", fs, ra, rb)
	},
}

var tlbieEntry = instrEntry{
	mnemonic: "tlbie",
	exec: func(e *Emulator, op uint32) error {
		return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "tlbie"}
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		return pad("tlbie") + fmt.Sprintf("r%d", opReg3(op))
	},
}

// msrEntry covers mfmsr/mtmsr; the machine state register belongs to the
// supervisor model this core doesn't carry.
func msrEntry(mnemonic string) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic}
		},
		dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
			return pad(mnemonic) + gprNames[opReg1(op)]
		},
	}
}

var mcrxrEntry = instrEntry{
	mnemonic: "mcrxr",
	exec: func(e *Emulator, op uint32) error {
		return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "mcrxr"}
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		return pad("mcrxr") + crFieldNames[opCRF1(op)]
	},
}

// extControlEntry covers eciwx/ecowx, the external-access instructions; no
// external access register exists in this model.
func extControlEntry(mnemonic string) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic}
		},
		dasm: dasmXLoadStore(mnemonic),
	}
}

// stringOpXEntry/stringOpIEntry cover the load/store-string family, which
// transfers XER.ByteCount (or an immediate count) bytes; execution is a
// documented stub fault.
func stringOpXEntry(mnemonic string) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic}
		},
		dasm: dasmXLoadStore(mnemonic),
	}
}

func stringOpIEntry(mnemonic string) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic}
		},
		dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
			rd, ra, n := opReg1(op), opReg2(op), opReg3(op)
			if n == 0 {
				n = 32
			}
			return pad(mnemonic) + fmt.Sprintf("r%d, r%d, %d", rd, ra, n)
		},
	}
}

var mtsrEntry = instrEntry{
	mnemonic: "mtsr",
	exec: func(e *Emulator, op uint32) error {
		return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "mtsr"}
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		rs, sr := opReg1(op), opReg2(op)&0x0F
		return pad("mtsr") + fmt.Sprintf("%d, r%d", sr, rs)
	},
}

var mtsrinEntry = instrEntry{
	mnemonic: "mtsrin",
	exec: func(e *Emulator, op uint32) error {
		return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "mtsrin"}
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		rs, rb := opReg1(op), opReg3(op)
		return pad("mtsrin") + fmt.Sprintf("r%d, r%d", rs, rb)
	},
}

var mfsrEntry = instrEntry{
	mnemonic: "mfsr",
	exec: func(e *Emulator, op uint32) error {
		return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "mfsr"}
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		rd, sr := opReg1(op), opReg2(op)&0x0F
		return pad("mfsr") + fmt.Sprintf("r%d, %d", rd, sr)
	},
}

var mfsrinEntry = instrEntry{
	mnemonic: "mfsrin",
	exec: func(e *Emulator, op uint32) error {
		return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "mfsrin"}
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		rd, rb := opReg1(op), opReg3(op)
		return pad("mfsrin") + fmt.Sprintf("r%d, r%d", rd, rb)
	},
}

var negEntry = instrEntry{
	mnemonic: "neg",
	exec: func(e *Emulator, op uint32) error {
		rd, ra := opReg1(op), opReg2(op)
		a := e.Regs.R[ra].U()
		result := ^a + 1
		e.Regs.R[rd].SetU(result)
		if opOE(op) {
			ov := a == 0x80000000
			e.Regs.XER.OV = ov
			if ov {
				e.Regs.XER.SO = true
			}
		}
		if opRc(op) {
			e.Regs.SetCR0Int(int32(result))
		}
		return nil
	},
	dasm: dasmRDRA("neg"),
}

func caBit(e *Emulator) uint32 {
	if e.Regs.XER.CA {
		return 1
	}
	return 0
}

// addWithCarryOV wraps addWithCarry with PowerPC signed-overflow detection
// for the CA-chained adde/subfe forms.
func addWithCarryOV(a, b, carryIn uint32) (uint32, bool, bool) {
	r, ca := addWithCarry(a, b, carryIn)
	return r, ca, addOverflows(int32(a), int32(b), int32(r))
}

func addOverflows(a, b, result int32) bool {
	return ((a >= 0) == (b >= 0)) && ((result >= 0) != (a >= 0))
}

func arithEntry(mnemonic string, compute func(a, b uint32) (result uint32, ca bool, ov bool), setsCA bool) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			rd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
			a, b := e.Regs.R[ra].U(), e.Regs.R[rb].U()
			result, ca, ov := compute(a, b)
			e.Regs.R[rd].SetU(result)
			if setsCA {
				e.Regs.XER.CA = ca
			}
			if opOE(op) {
				e.Regs.XER.OV = ov
				if ov {
					e.Regs.XER.SO = true
				}
			}
			if opRc(op) {
				e.Regs.SetCR0Int(int32(result))
			}
			return nil
		},
		dasm: dasmRDRARB(mnemonic),
	}
}

func unaryCAEntry(mnemonic string, compute func(a uint32, caIn uint32) (uint32, bool), hasOV bool) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			rd, ra := opReg1(op), opReg2(op)
			a := e.Regs.R[ra].U()
			result, ca := compute(a, caBit(e))
			ov := hasOV && addOverflows(int32(a), int32(caBit(e)), int32(result))
			e.Regs.R[rd].SetU(result)
			e.Regs.XER.CA = ca
			if opOE(op) {
				e.Regs.XER.OV = ov
				if ov {
					e.Regs.XER.SO = true
				}
			}
			if opRc(op) {
				e.Regs.SetCR0Int(int32(result))
			}
			return nil
		},
		dasm: dasmRDRA(mnemonic),
	}
}

func rdRaEntry(mnemonic string, compute func(a, b uint32) uint32) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			rd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
			result := compute(e.Regs.R[ra].U(), e.Regs.R[rb].U())
			e.Regs.R[rd].SetU(result)
			if opRc(op) {
				e.Regs.SetCR0Int(int32(result))
			}
			return nil
		},
		dasm: dasmRDRARB(mnemonic),
	}
}

func logicalEntry(mnemonic string, fn func(a, b uint32) uint32) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
			result := fn(e.Regs.R[rs].U(), e.Regs.R[rb].U())
			e.Regs.R[ra].SetU(result)
			if opRc(op) {
				e.Regs.SetCR0Int(int32(result))
			}
			return nil
		},
		dasm: dasmLogicalX(mnemonic),
	}
}

func extendEntry(mnemonic string, fn func(v uint32) uint32) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			rs, ra := opReg1(op), opReg2(op)
			result := fn(e.Regs.R[rs].U())
			e.Regs.R[ra].SetU(result)
			if opRc(op) {
				e.Regs.SetCR0Int(int32(result))
			}
			return nil
		},
		dasm: dasmRARS(mnemonic),
	}
}

func cmpEntry(logical bool) instrEntry {
	mnemonic := "cmp"
	if logical {
		mnemonic = "cmpl"
	}
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			if op&0x00600000 != 0 {
				return &DecodeError{PC: e.Regs.PC, Opcode: op, Reason: "reserved bits set in " + mnemonic}
			}
			crf, ra, rb := opCRF1(op), opReg2(op), opReg3(op)
			var lt, gt, eq bool
			if logical {
				a, b := e.Regs.R[ra].U(), e.Regs.R[rb].U()
				lt, gt, eq = a < b, a > b, a == b
			} else {
				a, b := e.Regs.R[ra].S(), e.Regs.R[rb].S()
				lt, gt, eq = a < b, a > b, a == b
			}
			e.Regs.CR.ReplaceField(crf, CRFlags{LT: lt, GT: gt, EQ: eq, SO: e.Regs.XER.SO})
			return nil
		},
		dasm: dasmCmpX(mnemonic),
	}
}

// xLoadStoreEntry builds the X-form indexed load/store family (EA = RA|0 + RB).
func xLoadStoreEntry(mnemonic string, size int, isStore bool, isUpdate bool, signExtend bool) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			rd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
			if isUpdate && ra == 0 {
				return &InvalidOperandError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic, Reason: "RA==0 invalid for update form"}
			}
			ea := e.Regs.GPRForEA(ra) + e.Regs.R[rb].U()
			e.Regs.Debug.Addr = ea
			if isStore {
				storeInt(e, ea, size, e.Regs.R[rd].U())
			} else {
				e.Regs.R[rd].SetU(loadInt(e, ea, size, signExtend))
			}
			if isUpdate {
				e.Regs.R[ra].SetU(ea)
			}
			return nil
		},
		dasm: dasmXLoadStore(mnemonic),
	}
}

// brxEntry builds the byte-reversed load/store family. These access memory
// little-endian, which is the Memory interface's host order directly, so
// unlike loadInt/storeInt no byteswap is applied.
func brxEntry(mnemonic string, size int, isStore bool) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			rd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
			ea := e.Regs.GPRForEA(ra) + e.Regs.R[rb].U()
			e.Regs.Debug.Addr = ea
			switch {
			case isStore && size == 2:
				e.Mem.WriteU16(ea, uint16(e.Regs.R[rd].U()))
			case isStore:
				e.Mem.WriteU32(ea, e.Regs.R[rd].U())
			case size == 2:
				e.Regs.R[rd].SetU(uint32(e.Mem.ReadU16(ea)))
			default:
				e.Regs.R[rd].SetU(e.Mem.ReadU32(ea))
			}
			return nil
		},
		dasm: dasmXLoadStore(mnemonic),
	}
}

// lwarxEntry/stwcxEntry implement the documented reservation model: lwarx
// always sets the reservation at its EA; stwcx. succeeds (CR0.EQ set) iff
// the reservation is still held there, and always clears it afterward.
var lwarxEntry = instrEntry{
	mnemonic: "lwarx",
	exec: func(e *Emulator, op uint32) error {
		rd, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		ea := e.Regs.GPRForEA(ra) + e.Regs.R[rb].U()
		e.Regs.Debug.Addr = ea
		e.Regs.R[rd].SetU(loadInt(e, ea, 4, false))
		e.Regs.reservationValid = true
		e.Regs.reservationAddr = ea
		return nil
	},
	dasm: dasmXLoadStore("lwarx"),
}

var stwcxEntry = instrEntry{
	mnemonic: "stwcx.",
	exec: func(e *Emulator, op uint32) error {
		rs, ra, rb := opReg1(op), opReg2(op), opReg3(op)
		ea := e.Regs.GPRForEA(ra) + e.Regs.R[rb].U()
		e.Regs.Debug.Addr = ea
		success := e.Regs.reservationValid && e.Regs.reservationAddr == ea
		if success {
			storeInt(e, ea, 4, e.Regs.R[rs].U())
		}
		e.Regs.reservationValid = false
		e.Regs.CR.ReplaceField(0, CRFlags{EQ: success, SO: e.Regs.XER.SO})
		return nil
	},
	dasm: dasmXLoadStore("stwcx."),
}

var mfcrEntry = instrEntry{
	mnemonic: "mfcr",
	exec: func(e *Emulator, op uint32) error {
		e.Regs.R[opReg1(op)].SetU(e.Regs.CR.U())
		return nil
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		return pad("mfcr") + gprNames[opReg1(op)]
	},
}

var mtcrfEntry = instrEntry{
	mnemonic: "mtcrf",
	exec: func(e *Emulator, op uint32) error {
		fxm := uint8((op >> 12) & 0xFF)
		v := e.Regs.R[opReg1(op)].U()
		for field := uint8(0); field < 8; field++ {
			if fxm&(0x80>>field) != 0 {
				e.Regs.CR.ReplaceField(field, unpackCR(uint8(v>>(28-4*field))&0xF))
			}
		}
		return nil
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		fxm := uint8((op >> 12) & 0xFF)
		return pad("mtcrf") + hexByte(fxm) + ", " + gprNames[opReg1(op)]
	},
}

var mfsprEntry = instrEntry{
	mnemonic: "mfspr",
	exec: func(e *Emulator, op uint32) error {
		spr := opSPR(op)
		rd := opReg1(op)
		switch spr {
		case 1:
			e.Regs.R[rd].SetU(e.Regs.XER.U())
		case 8:
			e.Regs.R[rd].SetU(e.Regs.LR)
		case 9:
			e.Regs.R[rd].SetU(e.Regs.CTR)
		default:
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "mfspr"}
		}
		return nil
	},
	dasm: dasmMfspr,
}

var mtsprEntry = instrEntry{
	mnemonic: "mtspr",
	exec: func(e *Emulator, op uint32) error {
		spr := opSPR(op)
		rs := opReg1(op)
		switch spr {
		case 1:
			e.Regs.XER.SetU(e.Regs.R[rs].U())
		case 8:
			e.Regs.LR = e.Regs.R[rs].U()
		case 9:
			e.Regs.CTR = e.Regs.R[rs].U()
		default:
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "mtspr"}
		}
		return nil
	},
	dasm: dasmMtspr,
}

var mftbEntry = instrEntry{
	mnemonic: "mftb",
	exec: func(e *Emulator, op uint32) error {
		tbr := opSPR(op)
		rd := opReg1(op)
		switch tbr {
		case 268:
			e.Regs.R[rd].SetU(uint32(e.Regs.TBR))
		case 269:
			e.Regs.R[rd].SetU(uint32(e.Regs.TBR >> 32))
		default:
			return &UnimplementedError{PC: e.Regs.PC, Opcode: op, Mnemonic: "mftb"}
		}
		return nil
	},
	dasm: dasmMftb,
}

// noopSystemEntry builds the synchronizing no-ops. Each has exactly one
// legal encoding; any other bit pattern under the same extended opcode is a
// reserved-bit violation per the decoder invariant.
func noopSystemEntry(mnemonic string, exact uint32) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			if op != exact {
				return &DecodeError{PC: e.Regs.PC, Opcode: op, Reason: "reserved bits set in " + mnemonic}
			}
			return nil
		},
		dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
			if op != exact {
				return pad(".invalid") + mnemonic
			}
			return mnemonic
		},
	}
}
