package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/vm16/io"
)

// Channel is the trap channel interface.
type Channel io.Channel

const (
	MEMORY_SIZE   = 0x10000 // Size of the code and data memory, in bytes.
	REGISTER_SIZE = 8       // Number of general purpose registers.
)

// Cpu is the complete machine state: registers, flags, memory and stack.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   [MEMORY_SIZE]byte     // Code and data memory.
	Stack    [STACK_SIZE]byte      // Stack memory, grows upwards from 0.
	Register [REGISTER_SIZE]uint16 // Register bank.
	Pc       uint16                // Program counter, a byte address into Memory.
	Sp       uint16                // Stack pointer, one past the last pushed value.
	Bp       uint16                // Base pointer of the current frame.
	Flags    Flags                 // Condition flags.

	Ticks int // Instructions executed since reset.

	channel Channel // Trap channel.
}

// NewCpu creates a new, zeroed, CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	return
}

// Reset clears all machine state. The trap channel is kept.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Stack[:])
	clear(cpu.Register[:])
	cpu.Pc = 0
	cpu.Sp = 0
	cpu.Bp = 0
	cpu.Flags = 0
	cpu.Ticks = 0
}

// SetChannel sets the trap channel. A nil channel discards traps.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel gets the trap channel.
func (cpu *Cpu) GetChannel() Channel {
	return cpu.channel
}

// ReadWord reads a little-endian word from memory.
func (cpu *Cpu) ReadWord(addr uint16) uint16 {
	return uint16(cpu.Memory[addr]) | uint16(cpu.Memory[addr+1])<<8
}

// WriteWord writes a little-endian word to memory.
func (cpu *Cpu) WriteWord(addr uint16, value uint16) {
	cpu.Memory[addr] = uint8(value)
	cpu.Memory[addr+1] = uint8(value >> 8)
}

// Load copies instruction words into memory, starting at addr.
func (cpu *Cpu) Load(addr uint16, codes ...Code) {
	for _, code := range codes {
		cpu.WriteWord(addr, uint16(code))
		addr += 2
	}
}

// LoadBytes copies raw bytes into memory, starting at addr.
func (cpu *Cpu) LoadBytes(addr uint16, data []byte) {
	for _, b := range data {
		cpu.Memory[addr] = b
		addr++
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%5s: %04X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("%5s: %04X\n", "sp", cpu.Sp)
	text += fmt.Sprintf("%5s: %04X\n", "bp", cpu.Bp)
	text += fmt.Sprintf("%5s: %v\n", "flags", cpu.Flags)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("%5s: %04X\n", CodeReg(n).String(), val)
	}

	return
}

// Fetch fetches the instruction word at the program counter.
func (cpu *Cpu) Fetch() Code {
	return Code(cpu.ReadWord(cpu.Pc))
}

// Tick performs a single fetch, decode and execute cycle.
// ErrHalt is returned when the program halts; any other error is
// fatal, and is reported as an *ErrFault.
func (cpu *Cpu) Tick() (err error) {
	pc := cpu.Pc
	sp := cpu.Sp
	bp := cpu.Bp

	err = cpu.Execute(cpu.Fetch())
	if err == nil {
		cpu.Ticks++
		return
	}

	if errors.Is(err, ErrHalt) {
		err = ErrHalt
		return
	}

	fault := &ErrFault{Pc: pc, Sp: sp, Bp: bp, Err: err}
	var access *ErrStackAccess
	if errors.As(err, &access) {
		fault.Offset = access.Offset
	}
	err = fault

	return
}

// Run executes from start until the program halts, or a fatal error occurs.
// A halt returns a nil error.
func (cpu *Cpu) Run(start uint16) (err error) {
	cpu.Pc = start

	for {
		err = cpu.Tick()
		if err == ErrHalt {
			if cpu.Verbose {
				log.Printf("cpu: halt at 0x%04x after %d ticks", cpu.Pc, cpu.Ticks)
			}
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}
