// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":        "0",
	"NUMBER_LIMIT":  fmt.Sprintf("%d", NUMBER_LIMIT),
	"HISTORY_LIMIT": fmt.Sprintf("%d", HISTORY_LIMIT),
	"STORE_MAX":     fmt.Sprintf("%d", 1<<STORE_WIDTH-1),
}

// funcMap maps arithmetic mnemonics to function codes.
var funcMap = map[string]CodeFunc{
	"add": FUNC_ADD,
	"sub": FUNC_SUB,
	"mul": FUNC_MUL,
	"div": FUNC_DIV,
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass assembler for the USCC system.
//
// Each line is a mnemonic (store, add, sub, mul, div, recall), an .equ
// directive, or raw instruction bits. Raw bits may be broken up with
// spaces or underscores, and are passed through unchecked.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated lines.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	if equate, ok := asm.Equate[word]; ok {
		word = equate
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval evaluates a $() expression over the integer equates.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key := range asm.Equate {
		var v int64
		v, err = asm.valueOf(key)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// register returns the address of a register word: rN, or a number.
func (asm *Assembler) register(word string) (address uint32, err error) {
	if equate, ok := asm.Equate[word]; ok {
		word = equate
	}

	var value int64
	if len(word) > 1 && word[0] == 'r' {
		value, err = strconv.ParseInt(word[1:], 10, 64)
		if err != nil {
			err = ErrRegisterInvalid
			return
		}
	} else {
		value, err = asm.valueOf(word)
		if err != nil {
			return
		}
	}

	if value < 0 || value >= 1<<SOURCE_WIDTH {
		err = ErrRegisterInvalid
		return
	}

	address = uint32(value)
	return
}

// parseLine expands expressions and splits a line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	return
}

// parseWords assembles the words of a line into an instruction.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	var code string
	defer func() {
		if err != nil {
			return
		}
		asm.Lines = append(asm.Lines, Line{LineNo: lineno, Words: words, Code: code})
	}()

	mnemonic := strings.ToLower(words[0])
	args := words[1:]

	if fn, ok := funcMap[mnemonic]; ok {
		if len(args) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var src [2]uint32
		for n, arg := range args {
			src[n], err = asm.register(arg)
			if err != nil {
				return
			}
		}
		code = MakeCodeArith(fn, src[0], src[1]).String()
		return
	}

	switch mnemonic {
	case "store":
		if len(args) < 1 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		var value int64
		value, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		if value < 0 || value >= 1<<STORE_WIDTH {
			err = ErrStoreRange
			return
		}
		code = MakeCodeStore(uint32(value)).String()
	case "recall":
		if len(args) > 0 {
			err = ErrOpcodeExtraArgs
			return
		}
		code = MakeCodeRecall().String()
	default:
		// Raw bits, validated by the CPU at execution time.
		code = strings.ReplaceAll(strings.Join(words, ""), "_", "")
	}

	return
}

// Parse parses an input stream into a Program of instruction strings.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Lines = asm.Lines[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, text)
		}

		if n := strings.IndexAny(text, ";#"); n >= 0 {
			text = text[:n]
		}
		line = strings.TrimSpace(text)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
	}

	return
}
