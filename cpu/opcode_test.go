package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		length int
	}){
		{"zero", strings.Repeat("0", 32), 0},
		{"short", strings.Repeat("0", 31), 31},
		{"long", strings.Repeat("1", 33), 33},
		{"empty", "", 0},
		{"runes", strings.Repeat("é", 32), 0},
		{"bytes", strings.Repeat("é", 16), 16},
	}

	for _, entry := range table {
		code, err := Decode(entry.text)
		if entry.length != 0 || entry.text == "" {
			assert.ErrorIs(err, ErrInvalidLength, entry.name)
			assert.Equal(ErrLength(entry.length), err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.text, code.String(), entry.name)
	}
}

func TestCodeField(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		field  CodeField
		offset int
		width  int
		name   string
	}){
		{FIELD_OPCODE, 0, 6, "opcode"},
		{FIELD_SOURCE_ONE, 6, 5, "source_one"},
		{FIELD_SOURCE_TWO, 11, 5, "source_two"},
		{FIELD_STORE, 16, 10, "store"},
		{FIELD_FUNCTION, 26, 6, "function_code"},
	}

	total := 0
	for _, entry := range table {
		assert.Equal(entry.offset, entry.field.Offset(), entry.name)
		assert.Equal(entry.width, entry.field.Width(), entry.name)
		assert.Equal(entry.name, entry.field.String())
		assert.Equal(total, entry.field.Offset(), entry.name)
		total += entry.field.Width()
	}
	assert.Equal(CODE_BITS, total)
}

func TestCodeFields(t *testing.T) {
	assert := assert.New(t)

	code, err := Decode("00000000001000100000000000100000")
	assert.NoError(err)

	op, err := code.Opcode()
	assert.NoError(err)
	assert.Equal(OP_ARITH, op)

	src1, src2, err := code.Sources()
	assert.NoError(err)
	assert.Equal(uint32(1), src1)
	assert.Equal(uint32(2), src2)

	store, err := code.Store()
	assert.NoError(err)
	assert.Equal(uint32(0), store)

	fn, err := code.Function()
	assert.NoError(err)
	assert.Equal(FUNC_ADD, fn)

	code, err = Decode("00000111111111111111111111000000")
	assert.NoError(err)
	store, err = code.Store()
	assert.NoError(err)
	assert.Equal(uint32(1023), store)
}

func TestCodeMalformed(t *testing.T) {
	assert := assert.New(t)

	code, err := Decode("00000078123456781234567812345678")
	assert.NoError(err)

	op, err := code.Opcode()
	assert.NoError(err)
	assert.Equal(OP_ARITH, op)

	// Function codes are matched on their bits, not converted.
	_, err = code.Function()
	assert.ErrorIs(err, ErrInvalidFunction)
	assert.False(errors.Is(err, ErrMalformedBits))
	assert.Equal(ErrFunction("345678"), err)

	_, _, err = code.Sources()
	assert.ErrorIs(err, ErrMalformedBits)

	_, err = code.Store()
	assert.ErrorIs(err, ErrMalformedBits)

	code, err = Decode("0000+1000000000000000000000000000")
	assert.ErrorIs(err, ErrInvalidLength)

	code, err = Decode("000+0100000000000000000000000000")
	assert.NoError(err)
	_, err = code.Opcode()
	assert.ErrorIs(err, ErrInvalidOpcode)
	assert.False(errors.Is(err, ErrMalformedBits))
	assert.Equal(ErrOpcode("000+01"), err)

	// Digits other than 0 and 1 are never read as another base.
	code, err = Decode("00000200000000000000000000000000")
	assert.NoError(err)
	_, err = code.Opcode()
	assert.ErrorIs(err, ErrInvalidOpcode)

	code, err = Decode("00000000001000100000000000200000")
	assert.NoError(err)
	_, err = code.Function()
	assert.ErrorIs(err, ErrInvalidFunction)
}

func TestMakeCode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code   Code
		text   string
		disasm string
	}){
		{MakeCodeStore(5), "00000100000000000000000101000000", "store 5"},
		{MakeCodeStore(10), "00000100000000000000001010000000", "store 10"},
		{MakeCodeArith(FUNC_ADD, 1, 2), "00000000001000100000000000100000", "add r1 r2"},
		{MakeCodeArith(FUNC_SUB, 1, 2), "00000000001000100000000000100010", "sub r1 r2"},
		{MakeCodeArith(FUNC_MUL, 1, 2), "00000000001000100000000000011000", "mul r1 r2"},
		{MakeCodeArith(FUNC_DIV, 1, 2), "00000000001000100000000000011010", "div r1 r2"},
		{MakeCodeArith(FUNC_DIV, 3, 0), "00000000011000000000000000011010", "div r3 r0"},
		{MakeCodeRecall(), "10000100000000000000000000000000", "recall"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String(), entry.disasm)
		assert.Equal(entry.disasm, entry.code.Disassemble())

		code, err := Decode(entry.text)
		assert.NoError(err)
		assert.Equal(entry.code, code, entry.disasm)
	}
}

func TestDisassembleRaw(t *testing.T) {
	assert := assert.New(t)

	code, err := Decode("00000078123456781234567812345678")
	assert.NoError(err)
	assert.Equal("000000 78123 45678 1234567812 345678", code.Disassemble())

	code, err = Decode("01111100000000000000000000000000")
	assert.NoError(err)
	assert.Equal("011111 00000 00000 0000000000 000000", code.Disassemble())
}

func TestCodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("arith", OP_ARITH.String())
	assert.Equal("store", OP_STORE.String())
	assert.Equal("recall", OP_RECALL.String())
	assert.Equal("011111", CodeOp(0b011111).String())

	assert.Equal("add", FUNC_ADD.String())
	assert.Equal("sub", FUNC_SUB.String())
	assert.Equal("mul", FUNC_MUL.String())
	assert.Equal("div", FUNC_DIV.String())
	assert.Equal("111111", CodeFunc(0b111111).String())

	assert.Equal("function_code", FIELD_FUNCTION.String())
	assert.Equal("CodeField(5)", CodeField(5).String())

	assert.Equal("stored", OUTCOME_STORED.String())
	assert.Equal("result", OUTCOME_RESULT.String())
	assert.Equal("recall", OUTCOME_RECALL.String())
	assert.Equal("failed", OUTCOME_FAILED.String())
	assert.Equal("OutcomeKind(4)", OutcomeKind(4).String())
}
