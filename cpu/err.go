package cpu

import (
	"errors"

	"github.com/ezrec/uscc/translate"
)

var f = translate.From

var (
	// Instruction errors
	ErrInvalidLength      = errors.New(f("invalid instruction length"))
	ErrMalformedBits      = errors.New(f("malformed bits"))
	ErrInvalidOpcode      = errors.New(f("invalid opcode"))
	ErrInvalidFunction    = errors.New(f("invalid function"))
	ErrRegisterOutOfRange = errors.New(f("register out of range"))
	ErrDivisionByZero     = errors.New(f("division by zero"))
	ErrNoHistory          = errors.New(f("no further calculations stored"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrStoreRange         = errors.New(f("store value out of range"))
)

// ErrLength is the character count of an instruction of the wrong length.
type ErrLength int

func (el ErrLength) Error() string {
	return f("instruction length %d, expected %d", int(el), CODE_BITS)
}

func (el ErrLength) Is(err error) bool {
	return err == ErrInvalidLength
}

// ErrField is a field that could not be converted to an integer.
type ErrField struct {
	Field CodeField
	Bits  string
}

func (err ErrField) Error() string {
	return f("%v '%v' is not binary", err.Field.String(), err.Bits)
}

func (err ErrField) Is(target error) bool {
	return target == ErrMalformedBits
}

// ErrOpcode is the text of an opcode field not in the opcode table.
type ErrOpcode string

func (eo ErrOpcode) Error() string {
	return f("bad opcode '%v'", string(eo))
}

func (eo ErrOpcode) Is(err error) bool {
	return err == ErrInvalidOpcode
}

// ErrFunction is the text of a function code field not in the function table.
type ErrFunction string

func (ef ErrFunction) Error() string {
	return f("bad function '%v'", string(ef))
}

func (ef ErrFunction) Is(err error) bool {
	return err == ErrInvalidFunction
}

// ErrRegister is a number register address beyond the bank.
type ErrRegister uint32

func (er ErrRegister) Error() string {
	return f("register r%d out of range", uint32(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrRegisterOutOfRange
}

// ErrDivide is a division by a zero divisor.
type ErrDivide struct {
	Dividend int
	Divisor  int
}

func (err ErrDivide) Error() string {
	return f("Division by 0 error: %v / %v.", translate.Value(err.Dividend), translate.Value(err.Divisor))
}

func (err ErrDivide) Is(target error) bool {
	return target == ErrDivisionByZero
}

// ErrInstruction records the instruction that failed.
type ErrInstruction struct {
	Code Code
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("%v %v", err.Code.String(), err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
