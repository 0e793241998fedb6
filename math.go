package calc

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Operators lists the supported operator symbols.
var Operators = []string{"+", "-", "*", "/"}

// Evaluate applies op to a and b. Division fails with ErrDivisionByZero when
// b == 0 regardless of a; NaN and Inf are otherwise left to IEEE-754.
func Evaluate(a float64, op string, b float64) (float64, error) {
	return Apply(a, op, b)
}

// Apply is Evaluate for any Number. The divisor is checked before dividing, so
// integer instantiations never panic.
func Apply[T Number](a T, op string, b T) (T, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivisionByZero()
		}
		return a / b, nil
	default:
		return 0, ErrUnsupportedOperator(op)
	}
}
