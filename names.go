// names.go - static name tables shared by execution and disassembly

package ppc32

// sprNames backs mfspr/mtspr rendering. An SPR number absent from this map
// still disassembles (as a bare decimal) but only xer (1), lr (8) and ctr
// (9) are executable; every other entry is recognized for naming purposes
// only and faults on execute.
var sprNames = map[uint16]string{
	1:   "xer",
	8:   "lr",
	9:   "ctr",
	18:  "dsisr",
	19:  "dar",
	22:  "dec",
	25:  "sdr1",
	26:  "srr0",
	27:  "srr1",
	272: "sprg0",
	273: "sprg1",
	274: "sprg2",
	275: "sprg3",
	282: "ear",
	287: "pvr",
	528: "ibat0u",
	529: "ibat0l",
	530: "ibat1u",
	531: "ibat1l",
	532: "ibat2u",
	533: "ibat2l",
	534: "ibat3u",
	535: "ibat3l",
	536: "dbat0u",
	537: "dbat0l",
	538: "dbat1u",
	539: "dbat1l",
	540: "dbat2u",
	541: "dbat2l",
	542: "dbat3u",
	543: "dbat3l",
	1013: "dabr",
}

// tbrNames backs mftb.
var tbrNames = map[uint16]string{
	268: "tbl",
	269: "tbu",
}

// mnemonicForBC packs {BO[1..4], BI[3..4]} into a 9-bit key and applies two
// canonicalization masks before the lookup, collapsing equivalent BO/BI
// encodings onto one mnemonic.
func mnemonicForBC(bo, bi uint8) (string, bool) {
	as := (uint16(bo&0x1E) << 5) | uint16(bi&3)
	if as&0x0080 != 0 {
		as &= 0x03BF
	}
	if as&0x0200 != 0 {
		as &= 0x02FF
	}

	switch as {
	case 0x0000, 0x0001:
		return "dnzf", true
	case 0x0080:
		return "ge", true
	case 0x0081:
		return "le", true
	case 0x0082:
		return "ne", true
	case 0x0083:
		return "ns", true
	case 0x0103:
		return "dnzt", true
	case 0x0140, 0x0141:
		return "dzt", true
	case 0x0180:
		return "lt", true
	case 0x0181:
		return "gt", true
	case 0x0182:
		return "eq", true
	case 0x0183:
		return "so", true
	case 0x0200:
		return "dnz", true
	case 0x0243:
		return "dz", true
	case 0x0280:
		return "", true
	default:
		return "", false
	}
}

var gprNames = [32]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"r16", "r17", "r18", "r19", "r20", "r21", "r22", "r23",
	"r24", "r25", "r26", "r27", "r28", "r29", "r30", "r31",
}

var fprNames = [32]string{
	"f0", "f1", "f2", "f3", "f4", "f5", "f6", "f7",
	"f8", "f9", "f10", "f11", "f12", "f13", "f14", "f15",
	"f16", "f17", "f18", "f19", "f20", "f21", "f22", "f23",
	"f24", "f25", "f26", "f27", "f28", "f29", "f30", "f31",
}

var crFieldNames = [8]string{"cr0", "cr1", "cr2", "cr3", "cr4", "cr5", "cr6", "cr7"}
