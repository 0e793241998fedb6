package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const usage = "<number> <operator> <number> (e.g. 10 + 5)"

// Formatter renders session output. Colour is applied here and nowhere else.
type Formatter struct {
	rule    *color.Color
	title   *color.Color
	result  *color.Color
	warning *color.Color
	failure *color.Color
}

// NewFormatter returns a Formatter. When colored is false the output carries
// no escape sequences, whatever the terminal or NO_COLOR say.
func NewFormatter(colored bool) *Formatter {
	f := &Formatter{
		rule:    color.New(color.FgCyan),
		title:   color.New(color.FgCyan, color.Bold),
		result:  color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{f.rule, f.title, f.result, f.warning, f.failure} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

func (f *Formatter) Banner() string {
	rule := f.rule.Sprint(strings.Repeat("-", 42))
	return strings.Join([]string{
		rule,
		f.title.Sprint("Simple Math REPL (Read-Eval-Print Loop)"),
		"Enter expressions like: 10 + 5, 4 * 2.5",
		"Type 'exit' or 'quit' to close the app.",
		rule,
	}, "\n")
}

func (f *Formatter) Result(v float64) string {
	return f.result.Sprint("Result: " + FormatNumber(v))
}

// Error renders err as a single line. Malformed input gets a usage hint
// instead of the "Error:" prefix.
func (f *Formatter) Error(err error) string {
	switch KindOf(err) {
	case KindNone:
		return ""
	case KindMalformedInput:
		return f.warning.Sprint(err.Error() + ". Use: " + usage)
	default:
		return f.failure.Sprint("Error:") + " " + err.Error()
	}
}

func (f *Formatter) Goodbye() string {
	return "Exiting. Goodbye!"
}

// FormatNumber renders v with the fewest digits that round-trip. Magnitudes in
// [1e-5, 1e21) are written plainly, everything else in exponent form. Unlike
// %v, results such as 1e6 print as 1000000.
func FormatNumber(v float64) string {
	abs := math.Abs(v)
	if math.IsInf(v, 0) || math.IsNaN(v) || (abs != 0 && (abs < 1e-5 || abs >= 1e21)) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
