package calc

import (
	"bufio"
	"errors"
	"strconv"
	"strings"

	"github.com/sparques/calc/parser"
)

// Token is a single whitespace-delimited piece of an input line. Data caches
// the parsed value once the token has been interpreted.
type Token struct {
	String string
	Data   any
}

var EmptyToken = &Token{}

func NewTokenString(str string) *Token {
	return &Token{
		String: str,
	}
}

func NewTokenBytes(str []byte) *Token {
	return &Token{
		String: string(str),
	}
}

func NewTokenFloat(f float64) *Token {
	return &Token{
		String: FormatNumber(f),
		Data:   f,
	}
}

// AsFloat parses the token as a decimal float64. Literals too large or too
// small to represent come back as ±Inf or zero rather than as an error.
// Go-only literal forms (hex mantissas, digit separators) are rejected.
func (tok *Token) AsFloat() (float64, error) {
	if val, ok := tok.Data.(float64); ok {
		return val, nil
	}
	if !isDecimal(tok.String) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: tok.String, Err: strconv.ErrSyntax}
	}
	val, err := strconv.ParseFloat(tok.String, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	tok.Data = val
	return val, nil
}

func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	s = strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X")
}

type List []*Token

func (l List) Len() int {
	return len(l)
}

// Index returns the idx'th token, or EmptyToken when idx is out of range.
func (l List) Index(idx int) *Token {
	if idx < 0 || idx >= len(l) {
		return EmptyToken
	}
	return l[idx]
}

func (l List) String() string {
	strs := make([]string, len(l))
	for i := range l {
		strs[i] = l[i].String
	}
	return strings.Join(strs, " ")
}

// Lex splits line into tokens on runs of whitespace.
func Lex(line string) List {
	list := make(List, 0, 3)
	tokScanner := bufio.NewScanner(strings.NewReader(line))
	tokScanner.Buffer(make([]byte, 0, 64), len(line)+1)
	tokScanner.Split(parser.TokenSplit)
	for tokScanner.Scan() {
		list = append(list, NewTokenBytes(tokScanner.Bytes()))
	}
	return list
}
