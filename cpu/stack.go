package cpu

import (
	"encoding/binary"
)

const (
	STACK_SIZE  = 0x10000 // Size of the stack region, in bytes.
	STACK_LIMIT = 0xfffd  // Highest stack pointer that can still push.
)

func (cpu *Cpu) stackFault(offset int, err error) error {
	return &ErrStackAccess{Offset: offset, Err: err}
}

// Push pushes a value onto the stack.
func (cpu *Cpu) Push(value uint16) (err error) {
	if cpu.Sp > STACK_LIMIT {
		err = cpu.stackFault(int(cpu.Sp), ErrStackOverflow)
		return
	}

	binary.LittleEndian.PutUint16(cpu.Stack[cpu.Sp:], value)
	cpu.Sp += 2

	return
}

// Pop pops a value off the stack.
func (cpu *Cpu) Pop() (value uint16, err error) {
	if cpu.Sp < 2 {
		err = cpu.stackFault(int(cpu.Sp), ErrStackUnderflow)
		return
	}

	cpu.Sp -= 2
	value = binary.LittleEndian.Uint16(cpu.Stack[cpu.Sp:])

	return
}

// baseSlot returns the stack byte offset of the word at bp+2*offset.
// The whole word must lie below the stack pointer.
func (cpu *Cpu) baseSlot(offset uint8) (slot int, err error) {
	slot = int(cpu.Bp) + 2*int(offset)
	if slot+2 > int(cpu.Sp) {
		err = cpu.stackFault(slot, ErrIllegalAccess)
	}
	return
}

// ReadBase reads the frame slot at offset words from the base pointer.
func (cpu *Cpu) ReadBase(offset uint8) (value uint16, err error) {
	slot, err := cpu.baseSlot(offset)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint16(cpu.Stack[slot:])
	return
}

// WriteBase writes the frame slot at offset words from the base pointer.
func (cpu *Cpu) WriteBase(offset uint8, value uint16) (err error) {
	slot, err := cpu.baseSlot(offset)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint16(cpu.Stack[slot:], value)
	return
}

// Allocate grows the stack by words 16-bit slots.
func (cpu *Cpu) Allocate(words uint8) (err error) {
	sp := int(cpu.Sp) + 2*int(words)
	if sp > 0xffff {
		err = cpu.stackFault(sp, ErrAllocationOverflow)
		return
	}

	cpu.Sp = uint16(sp)
	return
}

// Deallocate shrinks the stack by words 16-bit slots.
func (cpu *Cpu) Deallocate(words uint8) (err error) {
	sp := int(cpu.Sp) - 2*int(words)
	if sp < 0 {
		err = cpu.stackFault(sp, ErrStackUnderflow)
		return
	}

	cpu.Sp = uint16(sp)
	return
}
