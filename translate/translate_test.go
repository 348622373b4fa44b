package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value int
		text  string
	}){
		{0, "0"},
		{15, "15"},
		{-5, "-5"},
		{1023, "1023"},
		{1046529, "1046529"},
		{-1046529, "-1046529"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, Value(entry.value))
		assert.Equal("The result is: "+entry.text, From("The result is: %v", Value(entry.value)))
	}
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Welcome to John's Calculator!", From("Welcome to %v's Calculator!", "John"))
	assert.Equal("Invalid OPCODE", From("Invalid OPCODE"))
}
