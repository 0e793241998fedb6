package calc

import (
	"math"
	"testing"
)

func Test_Lex(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"10 + 5", []string{"10", "+", "5"}},
		{"   10    +    5   ", []string{"10", "+", "5"}},
		{"a\tb\r\nc", []string{"a", "b", "c"}},
		{"   ", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got := Lex(tt.line)
		if got.Len() != len(tt.expected) {
			t.Errorf("%q: expected %d tokens, got %d (%s)", tt.line, len(tt.expected), got.Len(), got)
			continue
		}
		for i := range tt.expected {
			if got[i].String != tt.expected[i] {
				t.Errorf("%q: token %d: expected %q, got %q", tt.line, i, tt.expected[i], got[i].String)
			}
		}
	}
}

func Test_ListIndexOutOfRange(t *testing.T) {
	l := Lex("1 2")
	if l.Index(5) != EmptyToken || l.Index(-1) != EmptyToken {
		t.Errorf("expected EmptyToken for out of range index")
	}
}

func Test_TokenAsFloat(t *testing.T) {
	tok := NewTokenString("4.5")
	f, err := tok.AsFloat()
	if err != nil || f != 4.5 {
		t.Fatalf("expected 4.5, nil; got %v, %v", f, err)
	}
	if cached, ok := tok.Data.(float64); !ok || cached != 4.5 {
		t.Errorf("expected parsed value cached in Data, got %v", tok.Data)
	}

	f, err = NewTokenString("-1e999").AsFloat()
	if err != nil || !math.IsInf(f, -1) {
		t.Errorf("expected -Inf, nil; got %v, %v", f, err)
	}

	for _, str := range []string{"ten", "0x10", "+0x1p4", "1_000"} {
		if _, err := NewTokenString(str).AsFloat(); err == nil {
			t.Errorf("expected error parsing %q", str)
		}
	}

	f, err = NewTokenString("-Inf").AsFloat()
	if err != nil || !math.IsInf(f, -1) {
		t.Errorf("expected -Inf, nil; got %v, %v", f, err)
	}
}
