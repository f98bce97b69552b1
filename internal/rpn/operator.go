package rpn

import "math"

// Precedence returns the binding strength of a binary operator, -1 for
// anything that is not one.
func Precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return -1
	}
}

// Apply computes a op b. Results that overflow to ±Inf or NaN are rejected
// with ErrNonFinite.
func Apply(a, b float64, op string) (float64, error) {
	var v float64
	switch op {
	case "+":
		v = a + b
	case "-":
		v = a - b
	case "*":
		v = a * b
	case "/":
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		v = a / b
	default:
		return 0, ErrInvalidOperator
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNonFinite
	}
	return v, nil
}
