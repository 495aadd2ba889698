// Package cpu implements the decoder and interpreter for the vm16 instruction set.
//
// Every instruction is a single little-endian 16-bit word, with the opcode in
// the top nibble. The machine has eight 16-bit general-purpose registers
// (r0-r7), Zero/Negative/Overflow/Carry flags, a 64KiB code and data memory,
// and a separate 64KiB upward-growing stack addressed by a stack pointer (SP)
// and a frame base pointer (BP).
//
// The only way for a program to stop is a TRAP with code 0. Stack faults and
// unknown opcodes are fatal, and are returned to the caller as an *ErrFault.
package cpu
