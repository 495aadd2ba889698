package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd16(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b  uint16
		sum   uint16
		flags Flags
	}){
		{0, 0, 0, FLAG_Z},
		{1, 2, 3, 0},
		{0xffff, 1, 0, FLAG_Z | FLAG_C},
		{0x7fff, 1, 0x8000, FLAG_N | FLAG_V},
		{0x8000, 0x8000, 0, FLAG_Z | FLAG_C | FLAG_V},
		{0xfffe, 0xffff, 0xfffd, FLAG_N | FLAG_C},
		{0x8000, 0x0001, 0x8001, FLAG_N},
		{0x1234, 0xedcc, 0, FLAG_Z | FLAG_C},
	}

	for _, entry := range table {
		sum, flags := Add16(entry.a, entry.b)
		assert.Equal(entry.sum, sum, "%04x + %04x", entry.a, entry.b)
		assert.Equal(entry.flags, flags, "%04x + %04x: %v", entry.a, entry.b, flags)
	}
}

func TestAdd16_Properties(t *testing.T) {
	assert := assert.New(t)

	for a := 0; a <= 0xffff; a += 0x0101 {
		for b := 0; b <= 0xffff; b += 0x0307 {
			sum, flags := Add16(uint16(a), uint16(b))

			assert.Equal(uint16(a+b), sum)
			assert.Equal(a+b > 0xffff, flags.C())
			assert.Equal(sum == 0, flags.Z())
			assert.Equal(sum&0x8000 != 0, flags.N())

			signed := int(int16(a)) + int(int16(b))
			assert.Equal(signed < -0x8000 || signed > 0x7fff, flags.V())
		}
	}
}

func TestSub16(t *testing.T) {
	assert := assert.New(t)

	diff, flags := Sub16(5, 7)
	assert.Equal(uint16(0xfffe), diff)
	assert.True(flags.N())
	assert.False(flags.V())

	diff, flags = Sub16(7, 7)
	assert.Equal(uint16(0), diff)
	assert.True(flags.Z())

	diff, flags = Sub16(0x8000, 1)
	assert.Equal(uint16(0x7fff), diff)
	assert.True(flags.V())
	assert.False(flags.N())
}

func TestShifts(t *testing.T) {
	assert := assert.New(t)

	result, flags := shiftLeft(0x8001, 1)
	assert.Equal(uint16(0x0002), result)
	assert.Equal(FLAG_C, flags)

	result, flags = shiftLeft(0x4000, 1)
	assert.Equal(uint16(0x8000), result)
	assert.Equal(FLAG_N, flags)

	result, flags = shiftLeft(0x8000, 1)
	assert.Equal(uint16(0), result)
	assert.Equal(FLAG_Z|FLAG_C, flags)

	result, flags = shiftLeft(0x0001, 0)
	assert.Equal(uint16(1), result)
	assert.Equal(Flags(0), flags)

	assert.Equal(uint16(0xf000), shiftRightArithmetic(0x8000, 3))
	assert.Equal(uint16(0x0100), shiftRightArithmetic(0x0800, 3))
	assert.Equal(uint16(0xffff), shiftRightArithmetic(0x8000, 15))
	assert.Equal(uint16(0x1000), shiftRightLogical(0x8000, 3))
	assert.Equal(uint16(0x0001), shiftRightLogical(0x8000, 15))
}

func TestFlags_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("----", Flags(0).String())
	assert.Equal("Z--C", (FLAG_Z | FLAG_C).String())
	assert.Equal("ZNVC", (FLAG_Z | FLAG_N | FLAG_V | FLAG_C).String())
}
