// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"

	"github.com/ezrec/uscc/cpu"
	"github.com/ezrec/uscc/internal"
)

// Emulator state. CPU + program + display.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Name     string       // Owner of the calculator, shown in the greeting.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Display io.Writer // Receives one message per executed instruction.

	index int // Index of the next program line to run.
}

// NewEmulator creates a new emulator with zeroed registers.
func NewEmulator(name string) (emu *Emulator) {
	emu = &Emulator{
		Name:    name,
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Greeting returns the welcome message for the calculator owner.
func (emu *Emulator) Greeting() string {
	return f("Welcome to %v's Calculator!", emu.Name)
}

// Registers returns an iterator over all number then history registers.
func (emu *Emulator) Registers() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(
		emu.Cpu.NumberRegisters(),
		emu.Cpu.HistoryRegisters(),
	)
}

// Reset the registers and rewind the program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.index = 0
}

// Execute decodes and executes a single instruction string.
// The outcome is also written to the Display, if there is one.
func (emu *Emulator) Execute(text string) (outcome cpu.Outcome) {
	outcome = emu.execute(text)

	// The display is a one-way sink.
	err := emu.show(outcome)
	if err != nil && emu.Verbose {
		log.Printf("emulator: display: %v", err)
	}

	return
}

// execute composes decode and dispatch.
func (emu *Emulator) execute(text string) (outcome cpu.Outcome) {
	emu.Cpu.Verbose = emu.Verbose

	code, err := cpu.Decode(text)
	if err != nil {
		if emu.Verbose {
			log.Printf("emulator: %q: %v", text, err)
		}
		outcome = cpu.Outcome{Kind: cpu.OUTCOME_FAILED, Err: err}
		return
	}

	outcome = emu.Cpu.Execute(code)
	return
}

// show writes an outcome to the Display.
func (emu *Emulator) show(outcome cpu.Outcome) (err error) {
	if emu.Display == nil {
		return
	}

	_, err = fmt.Fprintln(emu.Display, outcome.String())
	return
}

// Code returns the source line number and instruction string of the next
// program line.
func (emu *Emulator) Code() (lineno int, text string, ok bool) {
	index := 0
	for lineno, text = range emu.Program.Codes() {
		if index == emu.index {
			return lineno, text, true
		}
		index++
	}

	return 0, "", false
}

// LineNo returns the source line number of the next program line.
func (emu *Emulator) LineNo() int {
	lineno, _, _ := emu.Code()
	return lineno
}

// Tick executes the next program line.
func (emu *Emulator) Tick() (outcome cpu.Outcome, done bool, err error) {
	lineno, text, ok := emu.Code()
	if !ok {
		done = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	emu.index++

	outcome = emu.execute(text)

	err = emu.show(outcome)

	return
}
