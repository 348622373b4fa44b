// Package cpu implements the processor and assembler for the USCC system.
//
// The CPU decodes 32-bit instructions, given as strings of '0' and '1'
// characters, into an opcode, two source register addresses, a 10-bit store
// payload and a function code. It owns a bank of 22 number registers (r0 is
// the constant 0) and a ring of 10 history registers that record ALU results
// for later recall.
//
// The assembler provides a small assembly language for the USCC instruction
// set, supporting equates and compile-time expression evaluation.
package cpu
