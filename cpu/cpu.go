package cpu

import (
	"fmt"
	"iter"
	"log"
)

// Cpu is the simulation context for the calculator processor.
//
// A Cpu is not safe for concurrent use; every Execute runs to completion
// against the register file before the next may start.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers Registers // Register file.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with zeroed registers.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset the CPU state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Ticks = 0
}

// Numbers returns a copy of the number registers.
func (cpu *Cpu) Numbers() []int {
	return append([]int(nil), cpu.Registers.Number[:]...)
}

// History returns a copy of the history registers, in slot order.
func (cpu *Cpu) History() []int {
	return append([]int(nil), cpu.Registers.History.Data[:]...)
}

// NumberRegisters iterates over the number register names and values.
func (cpu *Cpu) NumberRegisters() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for n, value := range cpu.Registers.Number {
			if !yield(fmt.Sprintf("r%d", n), value) {
				return
			}
		}
	}
}

// HistoryRegisters iterates over the history register names and values.
func (cpu *Cpu) HistoryRegisters() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for n, value := range cpu.Registers.History.Data {
			if !yield(fmt.Sprintf("h%d", n), value) {
				return
			}
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", "next", cpu.Registers.NextNumber())
	text += fmt.Sprintf("% 5s: %v\n", "hist", cpu.Registers.History.WriteIndex)
	for name, value := range cpu.NumberRegisters() {
		text += fmt.Sprintf("% 5s: %v\n", name, value)
	}
	for name, value := range cpu.HistoryRegisters() {
		text += fmt.Sprintf("% 5s: %v\n", name, value)
	}

	return
}

// Execute executes a single instruction. Failures are reported in the
// outcome, never returned.
func (cpu *Cpu) Execute(code Code) (outcome Outcome) {
	if cpu.Verbose {
		log.Printf("cpu: %v", code.Disassemble())
	}

	outcome, err := cpu.dispatch(code)
	if err != nil {
		outcome = Outcome{
			Kind: OUTCOME_FAILED,
			Func: outcome.Func,
			Err:  &ErrInstruction{Code: code, Err: err},
		}
		if cpu.Verbose {
			log.Printf("cpu: %v", outcome.Err)
		}
	}

	cpu.Ticks++

	return
}

// dispatch routes an instruction on its opcode and function code.
func (cpu *Cpu) dispatch(code Code) (outcome Outcome, err error) {
	rf := &cpu.Registers

	op, err := code.Opcode()
	if err != nil {
		return
	}

	switch op {
	case OP_STORE:
		var value uint32
		value, err = code.Store()
		if err != nil {
			return
		}
		slot := rf.StoreNumber(value)
		outcome = Outcome{Kind: OUTCOME_STORED, Value: int(value), Slot: slot}
	case OP_RECALL:
		var value int
		value, err = rf.RecallLast()
		if err != nil {
			return
		}
		outcome = Outcome{Kind: OUTCOME_RECALL, Value: value, Slot: rf.History.ReadIndex}
	case OP_ARITH:
		var fn CodeFunc
		fn, err = code.Function()
		if err != nil {
			return
		}
		outcome.Func = fn

		var src1, src2 uint32
		src1, src2, err = code.Sources()
		if err != nil {
			return
		}
		if cpu.Verbose {
			log.Printf("cpu: initiating %v r%d r%d", fn, src1, src2)
		}

		var a, b int
		a, err = rf.LoadNumber(src1)
		if err != nil {
			return
		}
		b, err = rf.LoadNumber(src2)
		if err != nil {
			return
		}

		var result int
		result, err = Alu(fn, a, b)
		if err != nil {
			return
		}
		slot := rf.StoreHistory(result)
		outcome = Outcome{Kind: OUTCOME_RESULT, Func: fn, Value: result, Slot: slot}
	default:
		err = ErrOpcode(op.String())
	}

	return
}
