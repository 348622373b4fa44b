package cpu

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Instruction field widths, in bits.
const (
	CODE_BITS      = 32 // Total instruction width.
	OPCODE_WIDTH   = 6  // Opcode field width.
	SOURCE_WIDTH   = 5  // Source register address field width.
	STORE_WIDTH    = 10 // Store payload field width.
	FUNCTION_WIDTH = 6  // Function code field width.
)

// The field widths must cover the instruction exactly.
var (
	_ [CODE_BITS - (OPCODE_WIDTH + 2*SOURCE_WIDTH + STORE_WIDTH + FUNCTION_WIDTH)]struct{}
	_ [(OPCODE_WIDTH + 2*SOURCE_WIDTH + STORE_WIDTH + FUNCTION_WIDTH) - CODE_BITS]struct{}
)

// CodeField identifies a bit field of an instruction.
type CodeField int

//go:generate go tool stringer -linecomment -type=CodeField
const (
	FIELD_OPCODE     = CodeField(0) // opcode
	FIELD_SOURCE_ONE = CodeField(1) // source_one
	FIELD_SOURCE_TWO = CodeField(2) // source_two
	FIELD_STORE      = CodeField(3) // store
	FIELD_FUNCTION   = CodeField(4) // function_code
)

// _field_layout is the offset and width of each field, in field order.
var _field_layout = [...]struct{ offset, width int }{
	FIELD_OPCODE:     {0, OPCODE_WIDTH},
	FIELD_SOURCE_ONE: {OPCODE_WIDTH, SOURCE_WIDTH},
	FIELD_SOURCE_TWO: {OPCODE_WIDTH + SOURCE_WIDTH, SOURCE_WIDTH},
	FIELD_STORE:      {OPCODE_WIDTH + 2*SOURCE_WIDTH, STORE_WIDTH},
	FIELD_FUNCTION:   {OPCODE_WIDTH + 2*SOURCE_WIDTH + STORE_WIDTH, FUNCTION_WIDTH},
}

// Offset returns the index of the first character of the field.
func (fld CodeField) Offset() int {
	return _field_layout[fld].offset
}

// Width returns the width of the field in bits.
func (fld CodeField) Width() int {
	return _field_layout[fld].width
}

// CodeOp is an opcode. Unknown opcodes print as their bits.
type CodeOp uint32

const (
	OP_ARITH  = CodeOp(0b000000) // arith
	OP_STORE  = CodeOp(0b000001) // store
	OP_RECALL = CodeOp(0b100001) // recall
)

func (op CodeOp) String() string {
	switch op {
	case OP_ARITH:
		return "arith"
	case OP_STORE:
		return "store"
	case OP_RECALL:
		return "recall"
	}
	return fmt.Sprintf("%06b", uint32(op))
}

// CodeFunc is an arithmetic function code. Unknown codes print as their bits.
type CodeFunc uint32

const (
	FUNC_ADD = CodeFunc(0b100000) // add
	FUNC_SUB = CodeFunc(0b100010) // sub
	FUNC_MUL = CodeFunc(0b011000) // mul
	FUNC_DIV = CodeFunc(0b011010) // div
)

func (fn CodeFunc) String() string {
	switch fn {
	case FUNC_ADD:
		return "add"
	case FUNC_SUB:
		return "sub"
	case FUNC_MUL:
		return "mul"
	case FUNC_DIV:
		return "div"
	}
	return fmt.Sprintf("%06b", uint32(fn))
}

// Opcodes and function codes are matched on their characters, not their
// value, so any unknown field is invalid rather than malformed.
var (
	_opcode_bits = map[string]CodeOp{
		fmt.Sprintf("%0*b", OPCODE_WIDTH, uint32(OP_ARITH)):  OP_ARITH,
		fmt.Sprintf("%0*b", OPCODE_WIDTH, uint32(OP_STORE)):  OP_STORE,
		fmt.Sprintf("%0*b", OPCODE_WIDTH, uint32(OP_RECALL)): OP_RECALL,
	}
	_function_bits = map[string]CodeFunc{
		fmt.Sprintf("%0*b", FUNCTION_WIDTH, uint32(FUNC_ADD)): FUNC_ADD,
		fmt.Sprintf("%0*b", FUNCTION_WIDTH, uint32(FUNC_SUB)): FUNC_SUB,
		fmt.Sprintf("%0*b", FUNCTION_WIDTH, uint32(FUNC_MUL)): FUNC_MUL,
		fmt.Sprintf("%0*b", FUNCTION_WIDTH, uint32(FUNC_DIV)): FUNC_DIV,
	}
)

// Code is a single undecoded instruction of exactly CODE_BITS characters.
//
// Fields are only converted to integers when they are asked for, so a
// malformed field is reported by the accessor that reads it.
type Code [CODE_BITS]rune

// Decode checks the length of an instruction string and splits it into a Code.
// The length is measured in characters, not bytes.
func Decode(text string) (code Code, err error) {
	if n := utf8.RuneCountInString(text); n != CODE_BITS {
		err = ErrLength(n)
		return
	}

	copy(code[:], []rune(text))

	return
}

// makeCode encodes the fields of an instruction.
func makeCode(op CodeOp, src1, src2, store uint32, fn CodeFunc) Code {
	text := fmt.Sprintf("%0*b%0*b%0*b%0*b%0*b",
		OPCODE_WIDTH, uint32(op)&(1<<OPCODE_WIDTH-1),
		SOURCE_WIDTH, src1&(1<<SOURCE_WIDTH-1),
		SOURCE_WIDTH, src2&(1<<SOURCE_WIDTH-1),
		STORE_WIDTH, store&(1<<STORE_WIDTH-1),
		FUNCTION_WIDTH, uint32(fn)&(1<<FUNCTION_WIDTH-1))

	var code Code
	copy(code[:], []rune(text))
	return code
}

// MakeCodeArith creates an arithmetic instruction over two source registers.
func MakeCodeArith(fn CodeFunc, src1, src2 uint32) Code {
	return makeCode(OP_ARITH, src1, src2, 0, fn)
}

// MakeCodeStore creates an instruction storing a value to the next register.
func MakeCodeStore(value uint32) Code {
	return makeCode(OP_STORE, 0, 0, value, 0)
}

// MakeCodeRecall creates an instruction recalling the previous calculation.
func MakeCodeRecall() Code {
	return makeCode(OP_RECALL, 0, 0, 0, 0)
}

// Bits returns the raw characters of a field.
func (code Code) Bits(fld CodeField) string {
	return string(code[fld.Offset() : fld.Offset()+fld.Width()])
}

// Field converts a field to its unsigned value.
func (code Code) Field(fld CodeField) (value uint32, err error) {
	bits := code.Bits(fld)
	v64, err := strconv.ParseUint(bits, 2, fld.Width())
	if err != nil {
		err = ErrField{Field: fld, Bits: bits}
		return
	}

	value = uint32(v64)
	return
}

// Opcode returns the opcode field.
func (code Code) Opcode() (op CodeOp, err error) {
	bits := code.Bits(FIELD_OPCODE)
	op, ok := _opcode_bits[bits]
	if !ok {
		err = ErrOpcode(bits)
	}
	return
}

// Function returns the arithmetic function code field.
func (code Code) Function() (fn CodeFunc, err error) {
	bits := code.Bits(FIELD_FUNCTION)
	fn, ok := _function_bits[bits]
	if !ok {
		err = ErrFunction(bits)
	}
	return
}

// Sources returns both source register address fields.
func (code Code) Sources() (src1, src2 uint32, err error) {
	src1, err = code.Field(FIELD_SOURCE_ONE)
	if err != nil {
		return
	}
	src2, err = code.Field(FIELD_SOURCE_TWO)
	return
}

// Store returns the store payload field.
func (code Code) Store() (value uint32, err error) {
	return code.Field(FIELD_STORE)
}

// String returns the instruction characters.
func (code Code) String() string {
	return string(code[:])
}

// Disassemble returns the assembly language representation of the
// instruction, or the raw fields when it does not decode.
func (code Code) Disassemble() (out string) {
	raw := fmt.Sprintf("%v %v %v %v %v",
		code.Bits(FIELD_OPCODE), code.Bits(FIELD_SOURCE_ONE), code.Bits(FIELD_SOURCE_TWO),
		code.Bits(FIELD_STORE), code.Bits(FIELD_FUNCTION))

	op, err := code.Opcode()
	if err != nil {
		return raw
	}

	switch op {
	case OP_STORE:
		value, err := code.Store()
		if err != nil {
			return raw
		}
		out = fmt.Sprintf("store %d", value)
	case OP_RECALL:
		out = "recall"
	case OP_ARITH:
		fn, err := code.Function()
		if err != nil {
			return raw
		}
		src1, src2, err := code.Sources()
		if err != nil {
			return raw
		}
		out = fmt.Sprintf("%v r%d r%d", fn, src1, src2)
	default:
		out = raw
	}

	return
}
