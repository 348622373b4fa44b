package cpu

import (
	"errors"

	"github.com/ezrec/uscc/translate"
)

// OutcomeKind classifies the result of executing one instruction.
type OutcomeKind int

//go:generate go tool stringer -linecomment -type=OutcomeKind
const (
	OUTCOME_STORED = OutcomeKind(0) // stored
	OUTCOME_RESULT = OutcomeKind(1) // result
	OUTCOME_RECALL = OutcomeKind(2) // recall
	OUTCOME_FAILED = OutcomeKind(3) // failed
)

// Outcome is the result of executing one instruction.
type Outcome struct {
	Kind  OutcomeKind
	Func  CodeFunc // ALU function, for OUTCOME_RESULT.
	Value int      // Stored, computed or recalled value.
	Slot  int      // Number register stored to, or history register written.
	Err   error    // Failure, for OUTCOME_FAILED.
}

// String returns the message shown on the display for this outcome.
func (oc Outcome) String() string {
	switch oc.Kind {
	case OUTCOME_STORED:
		return f("Value: %v stored in Register: %d.", translate.Value(oc.Value), oc.Slot)
	case OUTCOME_RESULT:
		return f("The result is: %v", translate.Value(oc.Value))
	case OUTCOME_RECALL:
		return f("The last calculated value was: %v", translate.Value(oc.Value))
	}

	var divide ErrDivide
	switch {
	case oc.Err == nil:
		return f("Unknown outcome")
	case errors.As(oc.Err, &divide):
		return divide.Error()
	case errors.Is(oc.Err, ErrNoHistory):
		return f("No further calculations stored.")
	case errors.Is(oc.Err, ErrInvalidLength):
		return f("Invalid Instruction Length")
	case errors.Is(oc.Err, ErrMalformedBits):
		return f("Malformed Instruction: %v", oc.Err)
	case errors.Is(oc.Err, ErrInvalidOpcode):
		return f("Invalid OPCODE")
	case errors.Is(oc.Err, ErrInvalidFunction):
		return f("Invalid Function")
	case errors.Is(oc.Err, ErrRegisterOutOfRange):
		return f("Invalid Register: %v", oc.Err)
	}

	return f("Error: %v", oc.Err)
}
