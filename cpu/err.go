package cpu

import (
	"errors"

	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	// Stack errors
	ErrStackOverflow      = errors.New(f("stack overflow"))
	ErrStackUnderflow     = errors.New(f("stack underflow"))
	ErrIllegalAccess      = errors.New(f("illegal access"))
	ErrAllocationOverflow = errors.New(f("allocation overflow"))

	// Execution errors
	ErrHalt        = errors.New(f("halt"))
	ErrProgramSize = errors.New(f("program larger than memory"))

	// Instruction decode errors
	ErrOpcodeUnknown = errors.New(f("unknown opcode"))
)

// ErrOpcode identifies the instruction word that failed.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrFault is a fatal condition, with the machine state it occurred in.
type ErrFault struct {
	Pc     uint16 // Address of the faulting instruction.
	Sp     uint16 // Stack pointer at the fault.
	Bp     uint16 // Base pointer at the fault.
	Offset int    // Requested stack offset, for stack faults.
	Err    error
}

func (err *ErrFault) Error() string {
	return f("pc 0x%04x sp 0x%04x bp 0x%04x offset 0x%x: %v", err.Pc, err.Sp, err.Bp, err.Offset, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrStackAccess is a stack fault at a specific stack offset.
type ErrStackAccess struct {
	Offset int // Requested stack byte offset.
	Err    error
}

func (err *ErrStackAccess) Error() string {
	return f("stack offset 0x%x %v", err.Offset, err.Err)
}

func (err *ErrStackAccess) Unwrap() error {
	return err.Err
}
