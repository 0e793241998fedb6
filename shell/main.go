package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sparques/calc"
)

func main() {
	stdout := color.Output
	format := calc.NewFormatter(!color.NoColor)

	var lines calc.LineReader
	if readline.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Stdout:          stdout,
			InterruptPrompt: "^C",
		})
		if err != nil {
			showError(stdout, err)
			lines = calc.NewScanReader(os.Stdin, stdout)
		} else {
			defer rl.Close()
			lines = &lineEditor{rl: rl}
		}
	} else {
		lines = calc.NewScanReader(os.Stdin, stdout)
	}

	session := calc.NewSession(lines, stdout, format)
	// errors have already been reported by the session; the exit status stays 0.
	_ = session.Run()
}

// editor is the part of *readline.Instance the shell uses.
type editor interface {
	SetPrompt(string)
	Readline() (string, error)
}

// lineEditor adapts a readline.Instance to calc.LineReader. Ctrl-C abandons
// the current line.
type lineEditor struct {
	rl editor
}

func (le *lineEditor) ReadLine(prompt string) (string, error) {
	le.rl.SetPrompt(prompt)
	line, err := le.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

func showError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", color.RedString("Error:"), err)
}
