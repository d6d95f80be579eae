// emulator.go - dispatch tables and the fetch/decode/execute loop

package ppc32

import "math/bits"

// execFunc mutates registers and/or memory for one recognized encoding.
type execFunc func(e *Emulator, op uint32) error

// dasmFunc renders one recognized encoding as assembly text, recording any
// branch target it discovers into labels.
type dasmFunc func(pc uint32, op uint32, labels map[uint32]bool) string

// instrEntry pairs an execute and a disassemble handler for one semantic.
// Representing the two as a struct of function values (rather than two
// separate parallel arrays) keeps each table slot self-describing while
// still letting Execute and Disassemble share the same dispatch structure.
type instrEntry struct {
	mnemonic string
	exec     execFunc
	dasm     dasmFunc
}

var invalidEntry = instrEntry{
	mnemonic: "invalid",
	exec: func(e *Emulator, op uint32) error {
		return &DecodeError{PC: e.Regs.PC, Opcode: op, Reason: "no handler for primary opcode"}
	},
	dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
		return ".invalid"
	},
}

// invalidGroupEntry names the primary group (by its conventional first-byte
// value) in the rendered text, so an unassigned extended opcode reads
// ".invalid  7C" rather than a bare ".invalid".
func invalidGroupEntry(group string) instrEntry {
	return instrEntry{
		mnemonic: "invalid",
		exec: func(e *Emulator, op uint32) error {
			return &DecodeError{PC: e.Regs.PC, Opcode: op, Reason: "no handler for extended opcode in group " + group}
		},
		dasm: func(pc uint32, op uint32, labels map[uint32]bool) string {
			return pad(".invalid") + group
		},
	}
}

var (
	invalid13Entry  = invalidGroupEntry("4C")
	invalid1FEntry  = invalidGroupEntry("7C")
	invalid3BEntry  = invalidGroupEntry("EC")
	invalid3FEntry  = invalidGroupEntry("FC")
	invalid3FsEntry = invalidGroupEntry("FC, 0")
)

// Emulator holds one machine's decode tables and hook set. The tables are
// shared, read-only dispatch data; Registers is the only mutable per-run
// state (§5, single-threaded and cooperative).
type Emulator struct {
	Regs *Registers
	Mem  Memory

	SyscallHandler HookFunc
	DebugHook      HookFunc
	Interrupt      InterruptManager

	primary  [64]instrEntry
	group13  map[uint16]instrEntry
	group1F  map[uint16]instrEntry
	group3B  map[uint8]instrEntry
	group3F  map[uint16]instrEntry
	group3Fs map[uint8]instrEntry

	shouldExit bool
}

// NewEmulator builds an Emulator with a fresh zeroed register file and the
// given memory. Hooks and interrupt manager may be set afterward; a missing
// InterruptManager is lazily replaced with a no-op at Execute time.
func NewEmulator(mem Memory) *Emulator {
	e := &Emulator{
		Regs: NewRegisters(),
		Mem:  mem,
	}
	e.initPrimaryTable()
	e.initGroup13()
	e.initGroup1F()
	e.initGroup3B()
	e.initGroup3F()
	return e
}

func (e *Emulator) entryFor(op uint32) instrEntry {
	primary := opOp(op)
	entry := e.primary[primary]
	switch primary {
	case 0x13:
		if sub, ok := e.group13[opSubopcode(op)]; ok {
			return sub
		}
		return invalid13Entry
	case 0x1F:
		if sub, ok := e.group1F[opSubopcode(op)]; ok {
			return sub
		}
		return invalid1FEntry
	case 0x3B:
		if sub, ok := e.group3B[opShortSubopcode(op)]; ok {
			return sub
		}
		return invalid3BEntry
	case 0x3F:
		short := opShortSubopcode(op)
		if short&0x10 != 0 {
			if sub, ok := e.group3Fs[short]; ok {
				return sub
			}
			return invalid3FEntry
		}
		if sub, ok := e.group3F[opSubopcode(op)]; ok {
			return sub
		}
		return invalid3FsEntry
	}
	return entry
}

// Step fetches and executes exactly one instruction, in the order the
// emulator loop specifies: debug hook, interrupt check, fetch, dispatch,
// PC advance, time-base advance.
func (e *Emulator) Step() error {
	if e.DebugHook != nil && !e.DebugHook(e, e.Regs) {
		e.shouldExit = true
		return nil
	}
	if e.Interrupt == nil {
		e.Interrupt = noopInterruptManager{}
	}
	if !e.Interrupt.OnCycleStart() {
		e.shouldExit = true
		return nil
	}

	op := bits.ReverseBytes32(e.Mem.ReadU32(e.Regs.PC))
	entry := e.entryFor(op)
	if err := entry.exec(e, op); err != nil {
		attachDisasm(err, e.Regs.PC, op, entry)
		return err
	}
	e.Regs.PC += 4
	e.Regs.TBR += e.Regs.TBRTicksPerCycle
	return nil
}

// Execute runs the fetch/decode/execute loop from the given starting
// register snapshot until a hook vetoes continuation, the syscall handler
// returns false, or a fatal error propagates. The final register state,
// including any partial mutation up to a failing instruction, remains in
// e.Regs for the caller to inspect.
func (e *Emulator) Execute(start *Registers) error {
	e.Regs = start
	if e.Interrupt == nil {
		e.Interrupt = noopInterruptManager{}
	}
	e.shouldExit = false

	for !e.shouldExit {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// requestExit lets the sc handler stop Execute's loop without threading a
// bool return through every handler.
func (e *Emulator) requestExit() {
	e.shouldExit = true
}

// attachDisasm fills in the Disasm field of a fatal DecodeError or
// UnimplementedError so the host sees the offending instruction's rendered
// text alongside its raw opcode, per the error-handling design (§7).
func attachDisasm(err error, pc uint32, op uint32, entry instrEntry) {
	text := entry.dasm(pc, op, make(map[uint32]bool))
	switch e := err.(type) {
	case *DecodeError:
		e.Disasm = text
	case *UnimplementedError:
		e.Disasm = text
	}
}
