package cpu

import (
	"fmt"
)

// CodeOp is the 4-bit operation selector in the top nibble of a word.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ADD   = CodeOp(0)  // add
	OP_SUB   = CodeOp(1)  // sub
	OP_SHL   = CodeOp(2)  // shl
	OP_ASHR  = CodeOp(3)  // ashr
	OP_LSHR  = CodeOp(4)  // lshr
	OP_AND   = CodeOp(5)  // and
	OP_OR    = CodeOp(6)  // or
	OP_NOT   = CodeOp(7)  // not
	OP_LD    = CodeOp(8)  // ld
	OP_ST    = CodeOp(9)  // st
	OP_STACK = CodeOp(10) // stack
	OP_LOCS  = CodeOp(11) // locs
	OP_CMP   = CodeOp(12) // cmp
	OP_BR    = CodeOp(13) // br
	OP_TRAP  = CodeOp(14) // trap
)

// Valid returns true if the opcode is defined.
func (op CodeOp) Valid() bool {
	return op >= OP_ADD && op <= OP_TRAP
}

// CodeStyle is the addressing style of a decoded instruction.
type CodeStyle int

//go:generate go tool stringer -linecomment -type=CodeStyle
const (
	STYLE_RR = CodeStyle(0) // rr
	STYLE_RI = CodeStyle(1) // ri
	STYLE_RM = CodeStyle(2) // rm
	STYLE_IM = CodeStyle(3) // im
	STYLE_RB = CodeStyle(4) // rb
	STYLE_BM = CodeStyle(5) // bm
	STYLE_R  = CodeStyle(6) // r
	STYLE_I  = CodeStyle(7) // i
)

// CodeCond is a branch condition.
type CodeCond int

//go:generate go tool stringer -linecomment -type=CodeCond
const (
	COND_JMP = CodeCond(0) // jmp
	COND_JGT = CodeCond(1) // jgt
	COND_JEQ = CodeCond(2) // jeq
	COND_JGE = CodeCond(3) // jge
	COND_JLT = CodeCond(4) // jlt
	COND_JSR = CodeCond(5) // jsr
	COND_JLE = CodeCond(6) // jle
	COND_RET = CodeCond(7) // ret
)

// CodeReg is a general purpose register index.
type CodeReg int

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_R0 = CodeReg(0) // r0
	REG_R1 = CodeReg(1) // r1
	REG_R2 = CodeReg(2) // r2
	REG_R3 = CodeReg(3) // r3
	REG_R4 = CodeReg(4) // r4
	REG_R5 = CodeReg(5) // r5
	REG_R6 = CodeReg(6) // r6
	REG_R7 = CodeReg(7) // r7
)

// Well known trap codes.
const (
	TRAP_HALT = uint8(0) // Stop execution.
	TRAP_DUMP = uint8(1) // Dump all registers to the trap channel.
)

// Code is a single 16-bit instruction word.
type Code uint16

// Op returns the opcode from the instruction word.
func (code Code) Op() CodeOp {
	return CodeOp((code >> 12) & 0xf)
}

// field extracts width bits starting at bit shift.
func (code Code) field(shift, width uint) uint16 {
	return (uint16(code) >> shift) & ((1 << width) - 1)
}

// bit returns true if the given bit is set.
func (code Code) bit(n uint) bool {
	return code.field(n, 1) == 1
}

func makeCode(op CodeOp, body uint16) Code {
	return Code((uint16(op) << 12) | (body & 0x0fff))
}

func boolBit(b bool, n uint) uint16 {
	if b {
		return 1 << n
	}
	return 0
}

// MakeCodeAluReg creates a register/register ADD, SUB, CMP, AND or OR.
// Bit 5, the high bit of the source register, decodes as the signed flag.
//
//	XXXX1DDD10RRR111
func MakeCodeAluReg(op CodeOp, dst, src CodeReg) Code {
	return makeCode(op, (1<<11)|(uint16(dst&7)<<8)|(1<<7)|(uint16(src&7)<<3)|0b111)
}

// MakeCodeAluImm creates a register/immediate ADD, SUB, CMP, AND or OR.
//
//	XXXX0DDD11iiiiii
func MakeCodeAluImm(op CodeOp, dst CodeReg, imm uint8) Code {
	return makeCode(op, (uint16(dst&7)<<8)|(0b11<<6)|uint16(imm&0x3f))
}

// MakeCodeShift creates a SHL, ASHR or LSHR.
//
//	XXXX0RRR1111iiii
func MakeCodeShift(op CodeOp, dst CodeReg, amount uint8) Code {
	return makeCode(op, (uint16(dst&7)<<8)|(0b1111<<4)|uint16(amount&0xf))
}

// MakeCodeNot creates a NOT.
func MakeCodeNot(dst CodeReg) Code {
	return makeCode(OP_NOT, (uint16(dst&7)<<8)|0xff)
}

// MakeCodeLoadImm loads a 6-bit immediate.
//
//	XXXX0DDD11iiiiii
func MakeCodeLoadImm(dst CodeReg, imm uint8) Code {
	return makeCode(OP_LD, (uint16(dst&7)<<8)|(0b11<<6)|uint16(imm&0x3f))
}

// MakeCodeLoadReg copies a register.
//
//	XXXX1DDD00RRR101
func MakeCodeLoadReg(dst, src CodeReg) Code {
	return makeCode(OP_LD, (1<<11)|(uint16(dst&7)<<8)|(uint16(src&7)<<3)|0b101)
}

// MakeCodeLoadMem loads from the memory address held in a register.
//
//	XXXX1DDD01MMM101
func MakeCodeLoadMem(dst, addr CodeReg) Code {
	return makeCode(OP_LD, (1<<11)|(uint16(dst&7)<<8)|(1<<6)|(uint16(addr&7)<<3)|0b101)
}

// MakeCodeLoadBase loads a base pointer relative stack slot.
//
//	XXXX0DDD10BBBBBB
func MakeCodeLoadBase(dst CodeReg, offset uint8) Code {
	return makeCode(OP_LD, (uint16(dst&7)<<8)|(0b10<<6)|uint16(offset&0x3f))
}

// MakeCodeStoreReg stores a register to the memory address held in another.
//
//	XXXX1MMM01RRR110
func MakeCodeStoreReg(addr, src CodeReg) Code {
	return makeCode(OP_ST, (1<<11)|(uint16(addr&7)<<8)|(1<<6)|(uint16(src&7)<<3)|0b110)
}

// MakeCodeStoreImm stores a 6-bit immediate to the memory address held in a register.
//
//	XXXX0MMM01iiiiii
func MakeCodeStoreImm(addr CodeReg, imm uint8) Code {
	return makeCode(OP_ST, (uint16(addr&7)<<8)|(1<<6)|uint16(imm&0x3f))
}

// MakeCodeStoreBase stores a register into a base pointer relative stack slot.
//
//	XXXX0RRR00BBBBBB
func MakeCodeStoreBase(src CodeReg, offset uint8) Code {
	return makeCode(OP_ST, (uint16(src&7)<<8)|uint16(offset&0x3f))
}

// MakeCodePush pushes every register in mask, r0 first.
//
//	XXXX1101RRRRRRRR
func MakeCodePush(mask uint8) Code {
	return makeCode(OP_STACK, (0b1101<<8)|uint16(mask))
}

// MakeCodePop pops into every register in mask, r0 first.
// An empty mask discards one value.
//
//	XXXX1100RRRRRRRR
func MakeCodePop(mask uint8) Code {
	return makeCode(OP_STACK, (0b1100<<8)|uint16(mask))
}

// MakeCodeLocals allocates or releases size words of stack.
//
//	XXXX11111SBBBBBB
func MakeCodeLocals(allocate bool, size uint8) Code {
	return makeCode(OP_LOCS, (0b11111<<7)|boolBit(allocate, 6)|uint16(size&0x3f))
}

// MakeCodeBranch creates a branch, call or return with a word offset
// in the range -256..255.
//
//	XXXXCCCiiiiiiiii
func MakeCodeBranch(cond CodeCond, offset int16) Code {
	return makeCode(OP_BR, (uint16(cond&7)<<9)|(uint16(offset)&0x1ff))
}

// MakeCodeTrap creates a trap to the host.
//
//	XXXX00U0HHHHHHHH
func MakeCodeTrap(user bool, code uint8) Code {
	return makeCode(OP_TRAP, boolBit(user, 9)|uint16(code))
}

// String returns the disassembly of the word.
func (code Code) String() string {
	ins, err := Decode(code)
	if err != nil {
		return fmt.Sprintf(".word 0x%04x", uint16(code))
	}
	return ins.String()
}
