package cpu

import (
	"fmt"
	"iter"
)

// Instruction is a decoded instruction word.
// Each instruction shape is its own type, carrying only the fields it needs.
type Instruction interface {
	// Op returns the opcode of the instruction.
	Op() CodeOp
	// Style returns the addressing style of the instruction.
	Style() CodeStyle
	// Encode returns the instruction word.
	Encode() Code
	// String returns the assembly representation of the instruction.
	String() string
}

// Alu is an ADD, SUB, CMP, AND or OR.
type Alu struct {
	Opcode CodeOp
	Dst    CodeReg
	Reg    bool    // Set for register/register, clear for register/immediate.
	Src    CodeReg // Source register, if Reg.
	Imm    uint8   // 6-bit unsigned immediate, if !Reg.
	Signed bool    // Signed comparand, if Reg. Shares bit 5 with Src.
}

func (ins Alu) Op() CodeOp { return ins.Opcode }

func (ins Alu) Style() CodeStyle {
	if ins.Reg {
		return STYLE_RR
	}
	return STYLE_RI
}

func (ins Alu) Encode() Code {
	if ins.Reg {
		return MakeCodeAluReg(ins.Opcode, ins.Dst, ins.Src)
	}
	return MakeCodeAluImm(ins.Opcode, ins.Dst, ins.Imm)
}

func (ins Alu) String() string {
	if ins.Reg {
		suffix := ""
		if ins.Signed {
			suffix = ".s"
		}
		return fmt.Sprintf("%v%v %v,%v", ins.Opcode, suffix, ins.Dst, ins.Src)
	}
	return fmt.Sprintf("%v %v,#%d", ins.Opcode, ins.Dst, ins.Imm)
}

// Shift is a SHL, ASHR or LSHR.
type Shift struct {
	Opcode CodeOp
	Dst    CodeReg
	Amount uint8
}

func (ins Shift) Op() CodeOp       { return ins.Opcode }
func (ins Shift) Style() CodeStyle { return STYLE_R }
func (ins Shift) Encode() Code     { return MakeCodeShift(ins.Opcode, ins.Dst, ins.Amount) }

func (ins Shift) String() string {
	return fmt.Sprintf("%v %v,#%d", ins.Opcode, ins.Dst, ins.Amount)
}

// Not is a bitwise complement.
type Not struct {
	Dst CodeReg
}

func (ins Not) Op() CodeOp       { return OP_NOT }
func (ins Not) Style() CodeStyle { return STYLE_R }
func (ins Not) Encode() Code     { return MakeCodeNot(ins.Dst) }
func (ins Not) String() string   { return fmt.Sprintf("not %v", ins.Dst) }

// Load is an LD. Mode is one of STYLE_RI, STYLE_RR, STYLE_RM or STYLE_RB.
type Load struct {
	Mode CodeStyle
	Dst  CodeReg
	Src  CodeReg // Source or address register, for STYLE_RR and STYLE_RM.
	Imm  uint8   // Immediate value or base offset, for STYLE_RI and STYLE_RB.
}

func (ins Load) Op() CodeOp       { return OP_LD }
func (ins Load) Style() CodeStyle { return ins.Mode }

func (ins Load) Encode() Code {
	switch ins.Mode {
	case STYLE_RR:
		return MakeCodeLoadReg(ins.Dst, ins.Src)
	case STYLE_RM:
		return MakeCodeLoadMem(ins.Dst, ins.Src)
	case STYLE_RB:
		return MakeCodeLoadBase(ins.Dst, ins.Imm)
	default:
		return MakeCodeLoadImm(ins.Dst, ins.Imm)
	}
}

func (ins Load) String() string {
	switch ins.Mode {
	case STYLE_RR:
		return fmt.Sprintf("ld %v,%v", ins.Dst, ins.Src)
	case STYLE_RM:
		return fmt.Sprintf("ld %v,[%v]", ins.Dst, ins.Src)
	case STYLE_RB:
		return fmt.Sprintf("ld %v,[bp+%d]", ins.Dst, ins.Imm)
	default:
		return fmt.Sprintf("ld %v,#%d", ins.Dst, ins.Imm)
	}
}

// Store is an ST. Mode is one of STYLE_RM, STYLE_IM or STYLE_BM.
type Store struct {
	Mode CodeStyle
	Addr CodeReg // Register holding the memory address; the value register for STYLE_BM.
	Src  CodeReg // Value register, for STYLE_RM.
	Imm  uint8   // Immediate value or base offset, for STYLE_IM and STYLE_BM.
}

func (ins Store) Op() CodeOp       { return OP_ST }
func (ins Store) Style() CodeStyle { return ins.Mode }

func (ins Store) Encode() Code {
	switch ins.Mode {
	case STYLE_RM:
		return MakeCodeStoreReg(ins.Addr, ins.Src)
	case STYLE_BM:
		return MakeCodeStoreBase(ins.Addr, ins.Imm)
	default:
		return MakeCodeStoreImm(ins.Addr, ins.Imm)
	}
}

func (ins Store) String() string {
	switch ins.Mode {
	case STYLE_RM:
		return fmt.Sprintf("st [%v],%v", ins.Addr, ins.Src)
	case STYLE_BM:
		return fmt.Sprintf("st [bp+%d],%v", ins.Imm, ins.Addr)
	default:
		return fmt.Sprintf("st [%v],#%d", ins.Addr, ins.Imm)
	}
}

// Stack is a multi-register PUSH or POP.
type Stack struct {
	Push bool
	Mask uint8 // Bit i set selects register i.
}

func (ins Stack) Op() CodeOp       { return OP_STACK }
func (ins Stack) Style() CodeStyle { return STYLE_I }

func (ins Stack) Encode() Code {
	if ins.Push {
		return MakeCodePush(ins.Mask)
	}
	return MakeCodePop(ins.Mask)
}

// Registers returns the selected registers in ascending order.
func (ins Stack) Registers() iter.Seq[CodeReg] {
	return func(yield func(CodeReg) bool) {
		for reg := REG_R0; reg <= REG_R7; reg++ {
			if ins.Mask&(1<<reg) != 0 {
				if !yield(reg) {
					return
				}
			}
		}
	}
}

func (ins Stack) String() (text string) {
	text = "pop {"
	if ins.Push {
		text = "push {"
	}
	first := true
	for reg := range ins.Registers() {
		if !first {
			text += ","
		}
		text += reg.String()
		first = false
	}
	text += "}"
	return
}

// Locals grows or shrinks the stack by Size words.
type Locals struct {
	Allocate bool
	Size     uint8
}

func (ins Locals) Op() CodeOp       { return OP_LOCS }
func (ins Locals) Style() CodeStyle { return STYLE_I }
func (ins Locals) Encode() Code     { return MakeCodeLocals(ins.Allocate, ins.Size) }

func (ins Locals) String() string {
	if ins.Allocate {
		return fmt.Sprintf("locs +%d", ins.Size)
	}
	return fmt.Sprintf("locs -%d", ins.Size)
}

// Branch is a conditional branch, subroutine call, or return.
// JSR pushes the return address and bp, then sets bp to sp. RET unwinds that frame.
type Branch struct {
	Cond   CodeCond
	Offset int16 // Signed word offset, -256..255.
}

func (ins Branch) Op() CodeOp       { return OP_BR }
func (ins Branch) Style() CodeStyle { return STYLE_I }
func (ins Branch) Encode() Code     { return MakeCodeBranch(ins.Cond, ins.Offset) }

func (ins Branch) String() string {
	if ins.Cond == COND_RET {
		return "ret"
	}
	return fmt.Sprintf("%v %+d", ins.Cond, ins.Offset)
}

// Trap signals the host.
type Trap struct {
	User bool
	Code uint8
}

func (ins Trap) Op() CodeOp       { return OP_TRAP }
func (ins Trap) Style() CodeStyle { return STYLE_I }
func (ins Trap) Encode() Code     { return MakeCodeTrap(ins.User, ins.Code) }

func (ins Trap) String() string {
	if ins.User {
		return fmt.Sprintf("trap.u 0x%02x", ins.Code)
	}
	return fmt.Sprintf("trap 0x%02x", ins.Code)
}

// signExtend9 interprets the low 9 bits as a two's complement value.
func signExtend9(value uint16) int16 {
	value &= 0x1ff
	if value&0x100 != 0 {
		return int16(value) - 0x200
	}
	return int16(value)
}

// Decode converts an instruction word to its decoded form.
// It has no side effects.
func Decode(code Code) (ins Instruction, err error) {
	op := code.Op()
	switch op {
	case OP_ADD, OP_SUB, OP_CMP, OP_AND, OP_OR:
		alu := Alu{
			Opcode: op,
			Dst:    CodeReg(code.field(8, 3)),
		}
		if code.bit(11) {
			alu.Reg = true
			alu.Src = CodeReg(code.field(3, 3))
			alu.Signed = code.bit(5)
		} else {
			alu.Imm = uint8(code.field(0, 6))
		}
		ins = alu
	case OP_ST:
		st := Store{
			Addr: CodeReg(code.field(8, 3)),
		}
		switch {
		case code.bit(11):
			st.Mode = STYLE_RM
			st.Src = CodeReg(code.field(3, 3))
		case code.bit(6):
			st.Mode = STYLE_IM
			st.Imm = uint8(code.field(0, 6))
		default:
			st.Mode = STYLE_BM
			st.Imm = uint8(code.field(0, 6))
		}
		ins = st
	case OP_LD:
		ld := Load{
			Dst: CodeReg(code.field(8, 3)),
		}
		switch {
		case code.bit(11) && code.bit(6):
			ld.Mode = STYLE_RM
			ld.Src = CodeReg(code.field(3, 3))
		case code.bit(11):
			ld.Mode = STYLE_RR
			ld.Src = CodeReg(code.field(3, 3))
		case code.bit(6):
			ld.Mode = STYLE_RI
			ld.Imm = uint8(code.field(0, 6))
		default:
			ld.Mode = STYLE_RB
			ld.Imm = uint8(code.field(0, 6))
		}
		ins = ld
	case OP_SHL, OP_ASHR, OP_LSHR:
		ins = Shift{
			Opcode: op,
			Dst:    CodeReg(code.field(8, 3)),
			Amount: uint8(code.field(0, 4)),
		}
	case OP_NOT:
		ins = Not{Dst: CodeReg(code.field(8, 3))}
	case OP_BR:
		ins = Branch{
			Cond:   CodeCond(code.field(9, 3)),
			Offset: signExtend9(code.field(0, 9)),
		}
	case OP_STACK:
		ins = Stack{
			Push: code.bit(8),
			Mask: uint8(code.field(0, 8)),
		}
	case OP_LOCS:
		ins = Locals{
			Allocate: code.bit(6),
			Size:     uint8(code.field(0, 6)),
		}
	case OP_TRAP:
		ins = Trap{
			User: code.bit(9),
			Code: uint8(code.field(0, 8)),
		}
	default:
		err = ErrOpcodeUnknown
	}

	return
}
