package cpu

import (
	"errors"
	"log"
)

// taken evaluates a branch condition against the flags.
// COND_JSR and COND_RET are not conditions, and are never taken.
func (cond CodeCond) taken(fl Flags) bool {
	lt := fl.N() != fl.V()
	switch cond {
	case COND_JMP:
		return true
	case COND_JEQ:
		return fl.Z()
	case COND_JGT:
		return !fl.Z() && !lt
	case COND_JLT:
		return lt
	case COND_JGE:
		return !lt
	case COND_JLE:
		return fl.Z() || lt
	}
	return false
}

// operand returns the source value of a register/register or
// register/immediate ALU instruction.
func (cpu *Cpu) operand(ins Alu) uint16 {
	if ins.Reg {
		return cpu.Register[ins.Src]
	}
	return uint16(ins.Imm)
}

// Execute decodes and executes a single instruction word at the
// program counter, leaving the program counter at the next instruction.
// ErrHalt is returned for a halt trap.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil && err != ErrHalt {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	ins, err := Decode(code)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v", cpu.Pc, ins)
	}

	next_pc := cpu.Pc + 2

	switch ins := ins.(type) {
	case Alu:
		dst := &cpu.Register[ins.Dst]
		value := cpu.operand(ins)
		switch ins.Opcode {
		case OP_ADD:
			*dst, cpu.Flags = Add16(value, *dst)
		case OP_SUB:
			*dst, cpu.Flags = Add16(Negate(value), *dst)
		case OP_CMP:
			_, cpu.Flags = Add16(Negate(value), *dst)
		case OP_AND:
			*dst &= value
		case OP_OR:
			*dst |= value
		}
	case Shift:
		dst := &cpu.Register[ins.Dst]
		switch ins.Opcode {
		case OP_SHL:
			*dst, cpu.Flags = shiftLeft(*dst, ins.Amount)
		case OP_ASHR:
			*dst = shiftRightArithmetic(*dst, ins.Amount)
		case OP_LSHR:
			*dst = shiftRightLogical(*dst, ins.Amount)
		}
	case Not:
		cpu.Register[ins.Dst] = ^cpu.Register[ins.Dst]
	case Load:
		var value uint16
		switch ins.Mode {
		case STYLE_RI:
			value = uint16(ins.Imm)
		case STYLE_RR:
			value = cpu.Register[ins.Src]
		case STYLE_RM:
			value = cpu.ReadWord(cpu.Register[ins.Src])
		case STYLE_RB:
			value, err = cpu.ReadBase(ins.Imm)
			if err != nil {
				return
			}
		}
		cpu.Register[ins.Dst] = value
	case Store:
		switch ins.Mode {
		case STYLE_RM:
			cpu.WriteWord(cpu.Register[ins.Addr], cpu.Register[ins.Src])
		case STYLE_IM:
			cpu.WriteWord(cpu.Register[ins.Addr], uint16(ins.Imm))
		case STYLE_BM:
			err = cpu.WriteBase(ins.Imm, cpu.Register[ins.Addr])
			if err != nil {
				return
			}
		}
	case Stack:
		// A fault part way through leaves sp and the registers untouched.
		sp, regs := cpu.Sp, cpu.Register
		if ins.Push {
			for reg := range ins.Registers() {
				err = cpu.Push(cpu.Register[reg])
				if err != nil {
					break
				}
			}
		} else {
			if ins.Mask == 0 {
				_, err = cpu.Pop()
			}
			for reg := range ins.Registers() {
				var value uint16
				value, err = cpu.Pop()
				if err != nil {
					break
				}
				cpu.Register[reg] = value
			}
		}
		if err != nil {
			cpu.Sp, cpu.Register = sp, regs
			return
		}
	case Locals:
		if ins.Allocate {
			err = cpu.Allocate(ins.Size)
		} else {
			err = cpu.Deallocate(ins.Size)
		}
		if err != nil {
			return
		}
	case Branch:
		target := cpu.Pc + uint16(2*ins.Offset)
		switch ins.Cond {
		case COND_JSR:
			// JSR sets up the callee frame: return address, caller bp, bp = sp.
			sp := cpu.Sp
			err = cpu.Push(next_pc)
			if err == nil {
				err = cpu.Push(cpu.Bp)
			}
			if err != nil {
				cpu.Sp = sp
				return
			}
			cpu.Bp = cpu.Sp
			next_pc = target
		case COND_RET:
			sp, bp := cpu.Sp, cpu.Bp
			cpu.Sp = cpu.Bp
			var link uint16
			link, err = cpu.Pop()
			if err == nil {
				next_pc, err = cpu.Pop()
			}
			if err != nil {
				cpu.Sp, cpu.Bp = sp, bp
				return
			}
			cpu.Bp = link
		default:
			if ins.Cond.taken(cpu.Flags) {
				next_pc = target
			}
		}
	case Trap:
		if cpu.channel != nil {
			cpu.channel.Trap(ins.User, ins.Code)
			if ins.Code == TRAP_DUMP {
				cpu.channel.Dump(cpu.Register)
			}
		} else if cpu.Verbose {
			log.Printf("cpu: trap 0x%02x dropped, no channel", ins.Code)
		}
		if ins.Code == TRAP_HALT {
			err = ErrHalt
			return
		}
	}

	cpu.Pc = next_pc

	return
}
