package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x1234))
	assert.Equal(uint16(2), cpu.Sp)
	assert.Equal(byte(0x34), cpu.Stack[0])
	assert.Equal(byte(0x12), cpu.Stack[1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Push(0x1234))
	assert.NoError(cpu.Push(0xabcd))

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0xabcd), val)
	assert.Equal(uint16(2), cpu.Sp)

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x1234), val)
	assert.Equal(uint16(0), cpu.Sp)
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	val, err := cpu.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(uint16(0), val)
	assert.Equal(uint16(0), cpu.Sp)
}

func TestStack_Overflow(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	pushes := 0
	var err error
	for {
		err = cpu.Push(uint16(pushes))
		if err != nil {
			break
		}
		pushes++
	}

	assert.ErrorIs(err, ErrStackOverflow)
	assert.Equal(0x7fff, pushes)
	assert.Equal(uint16(0xfffe), cpu.Sp)

	var access *ErrStackAccess
	assert.True(errors.As(err, &access))
	assert.Equal(0xfffe, access.Offset)
}

func TestStack_Base(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Bp = 2
	cpu.Sp = 8

	assert.NoError(cpu.WriteBase(0, 0x1111))
	assert.NoError(cpu.WriteBase(2, 0x3333))

	val, err := cpu.ReadBase(0)
	assert.NoError(err)
	assert.Equal(uint16(0x1111), val)

	val, err = cpu.ReadBase(2)
	assert.NoError(err)
	assert.Equal(uint16(0x3333), val)
	assert.Equal(byte(0x33), cpu.Stack[6])

	// bp + 2*3 == sp: slot is not on the stack
	_, err = cpu.ReadBase(3)
	assert.ErrorIs(err, ErrIllegalAccess)

	// bp + 2*4 > sp
	err = cpu.WriteBase(4, 0)
	assert.ErrorIs(err, ErrIllegalAccess)

	var access *ErrStackAccess
	assert.True(errors.As(err, &access))
	assert.Equal(10, access.Offset)
}

func TestStack_Locals(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	assert.NoError(cpu.Allocate(63))
	assert.Equal(uint16(126), cpu.Sp)

	assert.NoError(cpu.Deallocate(60))
	assert.Equal(uint16(6), cpu.Sp)

	assert.ErrorIs(cpu.Deallocate(4), ErrStackUnderflow)
	assert.Equal(uint16(6), cpu.Sp)

	cpu.Sp = 0xff80
	assert.NoError(cpu.Allocate(63))
	assert.Equal(uint16(0xfffe), cpu.Sp)

	assert.ErrorIs(cpu.Allocate(1), ErrAllocationOverflow)
	assert.Equal(uint16(0xfffe), cpu.Sp)
}
