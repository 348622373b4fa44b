package cpu

import (
	"iter"
)

// Line is a line of assembled source with the instruction it produced.
type Line struct {
	LineNo int
	Words  []string
	Code   string
}

type Program struct {
	Lines []Line
}

// Codes iterates over the source line numbers and instruction strings.
func (prog *Program) Codes() iter.Seq2[int, string] {
	return func(yield func(lineno int, code string) bool) {
		for _, line := range prog.Lines {
			if !yield(line.LineNo, line.Code) {
				return
			}
		}
	}
}
