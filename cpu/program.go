package cpu

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
)

// Program is a raw program image: instruction words placed at an origin.
type Program struct {
	Origin uint16
	Codes  []Code
}

// ReadProgram reads a little-endian program image. A trailing odd byte
// is kept as the low byte of a final word. The image must fit between
// origin and the top of memory.
func ReadProgram(r io.Reader, origin uint16) (prog *Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(data)%2 != 0 {
		data = append(data, 0)
	}

	if int(origin)+len(data) > MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	prog = &Program{Origin: origin}
	for n := 0; n < len(data); n += 2 {
		prog.Codes = append(prog.Codes, Code(binary.LittleEndian.Uint16(data[n:])))
	}

	return
}

// Binary returns the little-endian image of the program.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, 0, 2*len(prog.Codes))
	for _, code := range prog.Codes {
		bins = binary.LittleEndian.AppendUint16(bins, uint16(code))
	}

	return
}

// Words returns each instruction word with its memory address.
func (prog *Program) Words() iter.Seq2[uint16, Code] {
	return func(yield func(addr uint16, code Code) bool) {
		addr := prog.Origin
		for _, code := range prog.Codes {
			if !yield(addr, code) {
				return
			}
			addr += 2
		}
	}
}

// Disassemble returns a listing of the program, one line per word.
func (prog *Program) Disassemble() (lines []string) {
	for addr, code := range prog.Words() {
		lines = append(lines, fmt.Sprintf("%04x: %04x  %v", addr, uint16(code), code))
	}

	return
}

// LoadProgram copies the program into memory at its origin.
func (cpu *Cpu) LoadProgram(prog *Program) {
	cpu.Load(prog.Origin, prog.Codes...)
}
