// exec_loadstore.go - generic D-form integer and floating-point load/store

package ppc32

import (
	"math"
	"math/bits"
)

// loadStoreEntry builds the exec/dasm pair shared by every D-form integer
// load/store (lwz/lbz/lhz/lha/stw/stb/sth and their update forms). size is
// the access width in bytes; signExtend applies only to loads narrower than
// a word (lha/lhau).
func loadStoreEntry(mnemonic string, size int, isStore bool, isUpdate bool, signExtend bool) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			rd, ra := opReg1(op), opReg2(op)
			imm := opImmExt(op)
			if isUpdate && ra == 0 {
				return &InvalidOperandError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic, Reason: "RA==0 invalid for update form"}
			}
			if isUpdate && !isStore && ra == rd {
				return &InvalidOperandError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic, Reason: "RA==RD invalid for update-form load"}
			}
			ea := e.Regs.GPRForEA(ra) + uint32(imm)
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
		dasm: dasmLoadStore(mnemonic, isUpdate),
	}
}

// loadInt reads a big-endian integer of the given width from guest memory.
// The Memory accessors are host-order, so halfword and word reads are
// byteswapped here; the byte-reversed variants (lwbrx and friends) skip
// this function and read host-order directly.
func loadInt(e *Emulator, ea uint32, size int, signExtend bool) uint32 {
	switch size {
	case 1:
		b := e.Mem.ReadU8(ea)
		if signExtend {
			return uint32(int32(int8(b)))
		}
		return uint32(b)
	case 2:
		h := bits.ReverseBytes16(e.Mem.ReadU16(ea))
		if signExtend {
			return uint32(int32(int16(h)))
		}
		return uint32(h)
	default:
		return bits.ReverseBytes32(e.Mem.ReadU32(ea))
	}
}

func storeInt(e *Emulator, ea uint32, size int, v uint32) {
	switch size {
	case 1:
		e.Mem.WriteU8(ea, uint8(v))
	case 2:
		e.Mem.WriteU16(ea, bits.ReverseBytes16(uint16(v)))
	default:
		e.Mem.WriteU32(ea, bits.ReverseBytes32(v))
	}
}

// fpLoadStoreEntry builds the exec/dasm pair for lfs/lfd/stfs/stfd and their
// update forms. size 4 carries IEEE-754 single precision, widened to the
// register's native double; size 8 is the double-precision form and needs no
// conversion.
func fpLoadStoreEntry(mnemonic string, size int, isStore bool, isUpdate bool) instrEntry {
	return instrEntry{
		mnemonic: mnemonic,
		exec: func(e *Emulator, op uint32) error {
			fd, ra := opReg1(op), opReg2(op)
			imm := opImmExt(op)
			if isUpdate && ra == 0 {
				return &InvalidOperandError{PC: e.Regs.PC, Opcode: op, Mnemonic: mnemonic, Reason: "RA==0 invalid for update form"}
			}
			ea := e.Regs.GPRForEA(ra) + uint32(imm)
			e.Regs.Debug.Addr = ea
			if isStore {
				if size == 4 {
					fbits := math.Float32bits(float32(e.Regs.F[fd].F()))
					e.Mem.WriteU32(ea, bits.ReverseBytes32(fbits))
				} else {
					e.Mem.WriteU64(ea, bits.ReverseBytes64(e.Regs.F[fd].Bits()))
				}
			} else {
				if size == 4 {
					fbits := bits.ReverseBytes32(e.Mem.ReadU32(ea))
					e.Regs.F[fd].SetF(float64(math.Float32frombits(fbits)))
				} else {
					e.Regs.F[fd].SetBits(bits.ReverseBytes64(e.Mem.ReadU64(ea)))
				}
			}
			if isUpdate {
				e.Regs.R[ra].SetU(ea)
			}
			return nil
		},
		dasm: dasmFPLoadStore(mnemonic, isUpdate),
	}
}

// lmwEntry loads rD through r31 from consecutive words starting at EA. RA
// inside the loaded range is an invalid encoding since the base would be
// overwritten mid-sequence.
var lmwEntry = instrEntry{
	mnemonic: "lmw",
	exec: func(e *Emulator, op uint32) error {
		rd, ra := opReg1(op), opReg2(op)
		if ra != 0 && ra >= rd {
			return &InvalidOperandError{PC: e.Regs.PC, Opcode: op, Mnemonic: "lmw", Reason: "RA within the loaded register range"}
		}
		ea := e.Regs.GPRForEA(ra) + uint32(opImmExt(op))
		e.Regs.Debug.Addr = ea
		for r := uint32(rd); r <= 31; r++ {
			e.Regs.R[r].SetU(bits.ReverseBytes32(e.Mem.ReadU32(ea)))
			ea += 4
		}
		return nil
	},
	dasm: dasmLmwStmw("lmw"),
}

var stmwEntry = instrEntry{
	mnemonic: "stmw",
	exec: func(e *Emulator, op uint32) error {
		rs, ra := opReg1(op), opReg2(op)
		ea := e.Regs.GPRForEA(ra) + uint32(opImmExt(op))
		e.Regs.Debug.Addr = ea
		for r := uint32(rs); r <= 31; r++ {
			e.Mem.WriteU32(ea, bits.ReverseBytes32(e.Regs.R[r].U()))
			ea += 4
		}
		return nil
	},
	dasm: dasmLmwStmw("stmw"),
}
