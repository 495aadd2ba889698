package cpu

// Flags are the condition flags.
type Flags uint8

const (
	FLAG_Z = Flags(0x1) // Zero
	FLAG_N = Flags(0x2) // Negative
	FLAG_V = Flags(0x4) // Overflow
	FLAG_C = Flags(0x8) // Carry
)

// Z returns true if the zero flag is set.
func (fl Flags) Z() bool { return fl&FLAG_Z != 0 }

// N returns true if the negative flag is set.
func (fl Flags) N() bool { return fl&FLAG_N != 0 }

// V returns true if the overflow flag is set.
func (fl Flags) V() bool { return fl&FLAG_V != 0 }

// C returns true if the carry flag is set.
func (fl Flags) C() bool { return fl&FLAG_C != 0 }

// String returns the flags as 'ZNVC', with '-' for clear flags.
func (fl Flags) String() string {
	text := []byte("----")
	for n, flag := range []Flags{FLAG_Z, FLAG_N, FLAG_V, FLAG_C} {
		if fl&flag != 0 {
			text[n] = "ZNVC"[n]
		}
	}
	return string(text)
}

// Add16 adds two 16-bit values, returning the low 16 bits of the sum
// and the flags describing it.
func Add16(a, b uint16) (sum uint16, flags Flags) {
	wide := uint32(a) + uint32(b)
	sum = uint16(wide)

	if wide > 0xffff {
		flags |= FLAG_C
	}
	// Operands agree in sign, result does not.
	if (^(a ^ b) & (a ^ sum) & 0x8000) != 0 {
		flags |= FLAG_V
	}
	if sum&0x8000 != 0 {
		flags |= FLAG_N
	}
	if sum == 0 {
		flags |= FLAG_Z
	}

	return
}

// Negate returns the two's complement negation of value.
func Negate(value uint16) uint16 {
	return ^value + 1
}

// Sub16 subtracts b from a through the adder.
func Sub16(a, b uint16) (uint16, Flags) {
	return Add16(Negate(b), a)
}

// shiftLeft shifts value left, computing Z, N and C from the result.
func shiftLeft(value uint16, amount uint8) (result uint16, flags Flags) {
	wide := uint32(value) << amount
	result = uint16(wide)

	if result == 0 {
		flags |= FLAG_Z
	}
	if wide&0x10000 != 0 {
		flags |= FLAG_C
	}
	if result&0x8000 != 0 {
		flags |= FLAG_N
	}

	return
}

// shiftRightArithmetic shifts value right, replicating the sign bit.
func shiftRightArithmetic(value uint16, amount uint8) uint16 {
	return uint16(int16(value) >> amount)
}

// shiftRightLogical shifts value right, filling with zeros.
func shiftRightLogical(value uint16, amount uint8) uint16 {
	return value >> amount
}
