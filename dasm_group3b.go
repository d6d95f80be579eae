// dasm_group3b.go - disassembly for the A-form floating-point family shared
// by group 0x3B (single precision) and group 0x3F's 5-bit A-form subset
// (double precision)

package ppc32

import "fmt"

// fpArithShape names which of the four A-form register fields a given
// mnemonic actually uses; frA/frB-only and frA/frC-only forms both exist,
// so the operand list can't be derived from the opcode alone.
type fpArithShape int

const (
	shapeFRT_FRB fpArithShape = iota
	shapeFRT_FRA_FRB
	shapeFRT_FRA_FRC
	shapeFRT_FRA_FRC_FRB
)

var fpArithShapes = map[string]fpArithShape{
	"fdivs": shapeFRT_FRA_FRB, "fdiv": shapeFRT_FRA_FRB,
	"fsubs": shapeFRT_FRA_FRB, "fsub": shapeFRT_FRA_FRB,
	"fadds": shapeFRT_FRA_FRB, "fadd": shapeFRT_FRA_FRB,
	"fsqrts": shapeFRT_FRB, "fsqrt": shapeFRT_FRB,
	"fres": shapeFRT_FRB, "frsqrte": shapeFRT_FRB,
	"fmuls": shapeFRT_FRA_FRC, "fmul": shapeFRT_FRA_FRC,
	"fmsubs": shapeFRT_FRA_FRC_FRB, "fmsub": shapeFRT_FRA_FRC_FRB,
	"fmadds": shapeFRT_FRA_FRC_FRB, "fmadd": shapeFRT_FRA_FRC_FRB,
	"fnmsubs": shapeFRT_FRA_FRC_FRB, "fnmsub": shapeFRT_FRA_FRC_FRB,
	"fnmadds": shapeFRT_FRA_FRC_FRB, "fnmadd": shapeFRT_FRA_FRC_FRB,
	"fsel": shapeFRT_FRA_FRC_FRB,
}

func dasmFPArith(mnemonic string) dasmFunc {
	return func(pc uint32, op uint32, labels map[uint32]bool) string {
		frt, fra, frb, frc := opReg1(op), opReg2(op), opReg3(op), opReg4(op)
		name := pad(mnemonic + recSuffix(op))
		switch fpArithShapes[mnemonic] {
		case shapeFRT_FRB:
			return fmt.Sprintf("%sf%d, f%d", name, frt, frb)
		case shapeFRT_FRA_FRC:
			return fmt.Sprintf("%sf%d, f%d, f%d", name, frt, fra, frc)
		case shapeFRT_FRA_FRC_FRB:
			return fmt.Sprintf("%sf%d, f%d, f%d, f%d", name, frt, fra, frc, frb)
		default:
			return fmt.Sprintf("%sf%d, f%d, f%d", name, frt, fra, frb)
		}
	}
}
