package cpu

// Alu performs the requested arithmetic function on two register values.
// Division truncates toward zero.
func Alu(fn CodeFunc, a, b int) (output int, err error) {
	switch fn {
	case FUNC_ADD: // add
		output = a + b
	case FUNC_SUB: // sub
		output = a - b
	case FUNC_MUL: // mul
		output = a * b
	case FUNC_DIV: // div
		if b == 0 {
			err = ErrDivide{Dividend: a, Divisor: b}
			return
		}
		output = a / b
	default:
		err = ErrFunction(fn.String())
	}

	return
}
