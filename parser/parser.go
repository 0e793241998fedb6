package parser

import (
	"unicode"
	"unicode/utf8"
)

// dropCR drops a terminal \r from the data.
func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1]
	}
	return data
}

// LineSplit is a bufio.Scanner SplitFunc. It splits a stream into lines on \n,
// dropping a trailing \r. A final line without a newline is still returned.
func LineSplit(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			return i + 1, dropCR(data[0:i]), nil
		}
	}

	// If we're at EOF, we have a final, non-terminated line. Return it.
	if atEOF {
		return len(data), dropCR(data), nil
	}

	// Request more data.
	return 0, nil, nil
}

// IsSpace reports whether r separates tokens. Any Unicode white space does,
// including U+00A0 and U+3000.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// TokenSplit is a bufio.Scanner SplitFunc that returns runs of non-space runes.
// Runs of whitespace never produce empty tokens.
func TokenSplit(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	// Skip leading spaces.
	start := 0
	for width := 0; start < len(data); start += width {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !IsSpace(r) {
			break
		}
	}

	for width, i := 0, start; i < len(data); i += width {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return start, nil, nil
		}
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if IsSpace(r) {
			return i + width, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data, dropping any leading space already skipped.
	return start, nil, nil
}
