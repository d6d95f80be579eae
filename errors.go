// errors.go - fault taxonomy for decode and execution failures

package ppc32

import "fmt"

// DecodeError reports a reserved-bit violation or an opcode with no assigned
// handler. It is always fatal to Execute; disassembly renders ".invalid"
// instead of raising it.
type DecodeError struct {
	PC     uint32
	Opcode uint32
	Reason string
	Disasm string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ppc32: invalid instruction %08X at %08X: %s (%s)", e.Opcode, e.PC, e.Reason, e.Disasm)
}

// UnimplementedError reports a known encoding whose execution is
// deliberately stubbed (FP arithmetic, most of the exception path).
type UnimplementedError struct {
	PC       uint32
	Opcode   uint32
	Mnemonic string
	Disasm   string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("ppc32: unimplemented opcode %08X at %08X (%s) (%s)", e.Opcode, e.PC, e.Mnemonic, e.Disasm)
}

// InvalidOperandError is raised when an otherwise-recognized instruction is
// encoding-invalid for its specific operand combination (update-form
// RA==0/RA==RD, lmw with RA>=RD, and similar).
type InvalidOperandError struct {
	PC       uint32
	Opcode   uint32
	Mnemonic string
	Reason   string
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("ppc32: invalid operands for %s (%08X at %08X): %s", e.Mnemonic, e.Opcode, e.PC, e.Reason)
}
