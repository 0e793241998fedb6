package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// State is where a Session is in its read-dispatch loop.
type State int

const (
	StateReading State = iota
	StateDispatching
	StateExited
)

var stateMap = map[State]string{
	StateReading:     "reading",
	StateDispatching: "dispatching",
	StateExited:      "exited",
}

func (st State) String() string {
	return stateMap[st]
}

// Evaluator computes a op b. Evaluate is the default.
type Evaluator func(a float64, op string, b float64) (float64, error)

// Session is the read-print loop: it reads lines from Lines, evaluates them and
// writes the outcome to Stdout until the user exits or input runs out.
type Session struct {
	Stdout    io.Writer
	Lines     LineReader
	Format    *Formatter
	Evaluator Evaluator
	Prompt    string
	state     State
}

func NewSession(r LineReader, w io.Writer, f *Formatter) *Session {
	if f == nil {
		f = NewFormatter(false)
	}
	return &Session{
		Stdout:    w,
		Lines:     r,
		Format:    f,
		Evaluator: Evaluate,
		Prompt:    "=> ",
	}
}

func (s *Session) State() State {
	return s.state
}

// Run prints the banner and loops until exit/quit or end of input, both of which
// return nil. A failing reader ends the loop with an ErrUnexpected.
func (s *Session) Run() error {
	s.state = StateReading
	fmt.Fprintln(s.Stdout, s.Format.Banner())
	for {
		fmt.Fprint(s.Stdout, "\n")
		line, err := s.Lines.ReadLine(s.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Stdout)
			s.state = StateExited
			return nil
		}
		if err != nil {
			err = ErrUnexpected(err)
			fmt.Fprintln(s.Stdout, s.Format.Error(err))
			s.state = StateExited
			return err
		}
		if s.Handle(line) == StateExited {
			return nil
		}
	}
}

// Handle processes one line of input and returns the resulting state.
func (s *Session) Handle(line string) State {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		s.state = StateReading
	case strings.EqualFold(trimmed, "exit"), strings.EqualFold(trimmed, "quit"):
		fmt.Fprintln(s.Stdout, s.Format.Goodbye())
		s.state = StateExited
	default:
		s.Dispatch(line)
	}
	return s.state
}

// Dispatch parses and evaluates line, writes the outcome and returns it. Errors,
// including a panicking Evaluator, are reported and never escape as panics.
func (s *Session) Dispatch(line string) (result float64, err error) {
	s.state = StateDispatching
	defer func() {
		if r := recover(); r != nil {
			result, err = 0, ErrUnexpected(r)
		}
		if err != nil && KindOf(err) == KindUnexpected && !errors.Is(err, ErrUnexpected) {
			err = ErrUnexpected(err)
		}
		if err != nil {
			fmt.Fprintln(s.Stdout, s.Format.Error(err))
		} else {
			fmt.Fprintln(s.Stdout, s.Format.Result(result))
		}
		s.state = StateReading
	}()

	expr, err := Parse(line)
	if err != nil {
		return 0, err
	}

	if s.Evaluator == nil {
		return expr.Eval()
	}
	return s.Evaluator(expr.Left, expr.Op, expr.Right)
}
