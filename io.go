package calc

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/sparques/calc/parser"
)

// LineReader hands a Session one line of input at a time. ReadLine returns
// io.EOF once no more lines are available.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ScanReader is a LineReader over any io.Reader. The prompt is written to
// Prompt before each read.
type ScanReader struct {
	Prompt  io.Writer
	scanner *bufio.Scanner
}

func NewScanReader(r io.Reader, prompt io.Writer) *ScanReader {
	lineScanner := bufio.NewScanner(r)
	// line length is bounded by memory only
	lineScanner.Buffer(make([]byte, 0, 4096), math.MaxInt)
	lineScanner.Split(parser.LineSplit)
	if prompt == nil {
		prompt = io.Discard
	}
	return &ScanReader{
		Prompt:  prompt,
		scanner: lineScanner,
	}
}

func (sr *ScanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(sr.Prompt, prompt)
	if sr.scanner.Scan() {
		return sr.scanner.Text(), nil
	}
	if err := sr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
