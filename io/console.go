package io

import (
	"io"

	"golang.org/x/text/message"
)

// Console writes a text line for every trap, and one line per register
// for each register dump.
type Console struct {
	Output  io.Writer        // Destination of the trap text.
	Printer *message.Printer // If nil, the translate printer is used.

	err error // First write error.
}

var _ Channel = (*Console)(nil)

func (con *Console) printf(key message.Reference, args ...any) {
	if con.Output == nil || con.err != nil {
		return
	}

	var text string
	if con.Printer != nil {
		text = con.Printer.Sprintf(key, args...)
	} else {
		text = f(key, args...)
	}

	_, con.err = io.WriteString(con.Output, text)
}

func (con *Console) Trap(user bool, code uint8) {
	if user {
		con.printf("Received user trap code 0x%02x\n", code)
	} else {
		con.printf("Received system trap code 0x%02x\n", code)
	}

	if code == 0 {
		con.printf("Halting program...\n")
	}
}

func (con *Console) Dump(registers [8]uint16) {
	for n, value := range registers {
		con.printf("Register %d contains 0x%04x\n", n, value)
	}
}

// Err returns the first error writing to Output.
func (con *Console) Err() error {
	return con.err
}
