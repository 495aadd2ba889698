// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"io"
	"log"

	"github.com/ezrec/vm16/cpu"
	vmio "github.com/ezrec/vm16/io"
)

// Emulator state. CPU + program image + trap console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the loaded program image.

	Console vmio.Console // Trap console.
	Start   uint16       // Execution start address.

	MaxTicks int // If non-zero, the run is stopped after this many ticks.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetChannel(&emu.Console)

	return
}

// LoadImage reads a raw little-endian program image to be placed at origin.
// The image is used by the next Reset.
func (emu *Emulator) LoadImage(r io.Reader, origin uint16) (err error) {
	prog, err := cpu.ReadProgram(r, origin)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Start = origin

	return
}

// Reset clears the machine, loads the program and sets the program
// counter to the start address.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.Cpu.LoadProgram(emu.Program)
	emu.Cpu.Pc = emu.Start

	if emu.Verbose {
		for _, line := range emu.Program.Disassemble() {
			log.Printf("emulator: %v", line)
		}
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// Code returns the instruction word at the program counter.
func (emu *Emulator) Code() cpu.Code {
	return emu.Cpu.Fetch()
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Pc()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
	}
	if err != nil {
		return
	}

	err = emu.Console.Err()

	return
}

// Run ticks the emulator until the program halts, or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
