// Package io provides trap channel implementations for the vm16 machine.
// A trap channel receives every TRAP a running program executes, and the
// register dumps that TRAP code 1 requests.
package io

// Channel defines the interface for trap channels.
type Channel interface {
	// Trap is called for every executed TRAP.
	Trap(user bool, code uint8)
	// Dump is called with the register bank after a register dump trap.
	Dump(registers [8]uint16)
}
