package calc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedInput      = Error(errMalformedInput)
	ErrInvalidNumber       = Error(errInvalidNumber)
	ErrUnsupportedOperator = Error(errUnsupportedOperator)
	ErrDivisionByZero      = Error(errDivisionByZero)
	ErrUnexpected          = Error(errUnexpected)
)

// Error is a sentinel that can also build a detailed version of itself.
// ErrX() (or ErrX used directly) is the bare error; ErrX(details...) wraps
// it, so errors.Is(err, ErrX) matches either form.
type Error func(...any) error

func (e Error) Error() string {
	return e().Error()
}

func (e Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return target.Error() == e().Error()
}

type calcError string

func (ce calcError) Error() string {
	return string(ce)
}

func (ce calcError) Is(target error) bool {
	return target != nil && string(ce) == target.Error()
}

func errMalformedInput(args ...any) error {
	switch len(args) {
	case 1:
		return fmt.Errorf("%w: expected 3 tokens, got %v", errMalformedInput(), args[0])
	default:
		return calcError("malformed input")
	}
}

func errInvalidNumber(args ...any) error {
	switch len(args) {
	case 1:
		return fmt.Errorf("%w %q", errInvalidNumber(), args[0])
	case 2:
		return fmt.Errorf("%w %q and %q", errInvalidNumber(), args[0], args[1])
	default:
		return calcError("invalid number")
	}
}

func errUnsupportedOperator(args ...any) error {
	switch len(args) {
	case 1:
		return fmt.Errorf("%w %q, supported operators are %s", errUnsupportedOperator(), args[0], strings.Join(Operators, " "))
	default:
		return calcError("unsupported operator")
	}
}

func errDivisionByZero(args ...any) error {
	return calcError("division by zero")
}

func errUnexpected(args ...any) error {
	switch len(args) {
	case 1:
		return fmt.Errorf("%w: %v", errUnexpected(), args[0])
	default:
		return calcError("unexpected error")
	}
}

// Kind classifies an error returned by Parse, Evaluate or a Session.
type Kind int

const (
	KindNone Kind = iota
	KindMalformedInput
	KindInvalidNumber
	KindUnsupportedOperator
	KindDivisionByZero
	KindUnexpected
)

var kindMap = map[Kind]string{
	KindNone:                "none",
	KindMalformedInput:      "malformed input",
	KindInvalidNumber:       "invalid number",
	KindUnsupportedOperator: "unsupported operator",
	KindDivisionByZero:      "division by zero",
	KindUnexpected:          "unexpected",
}

func (k Kind) String() string {
	return kindMap[k]
}

// KindOf returns the Kind of err. Errors that match none of the sentinels
// are KindUnexpected.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	case errors.Is(err, ErrInvalidNumber):
		return KindInvalidNumber
	case errors.Is(err, ErrUnsupportedOperator):
		return KindUnsupportedOperator
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	}
	return KindUnexpected
}
