package domain

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Class markers recognized as digit ranges. Any other label is a literal.
const (
	ClassNonZeroDigit = "1-9"
	ClassDigit        = "0-9"
)

// Symbol is a transition label. It is either a Literal or a DigitRange.
type Symbol interface {
	// Matches reports whether the symbol accepts the input character c.
	Matches(c string) bool
	// String returns the label the symbol was declared with.
	String() string

	symbol()
}

// Literal matches an input character by exact equality.
type Literal string

func (l Literal) Matches(c string) bool { return string(l) == c }
func (l Literal) String() string        { return string(l) }
func (Literal) symbol()                 {}

// DigitRange matches a single decimal digit within [Low, High]. Any Unicode
// decimal digit (category Nd) counts, with its numeric value: '٣' is 3.
type DigitRange struct {
	Low  int
	High int
}

func (d DigitRange) Matches(c string) bool {
	r, size := utf8.DecodeRuneInString(c)
	if size == 0 || size != len(c) {
		return false
	}
	v, ok := DigitValue(r)
	return ok && d.Low <= v && v <= d.High
}

// DigitValue returns the value of a Unicode decimal digit. Nd digits come in
// contiguous runs of ten starting at zero, so the value is the offset from the
// start of the enclosing range, modulo ten.
func DigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return int(r-rune(rg.Lo)) % 10, true
		}
	}
	return 0, false
}

func (d DigitRange) String() string { return fmt.Sprintf("%d-%d", d.Low, d.High) }
func (DigitRange) symbol()          {}

// ParseSymbol resolves a declared label into its Symbol variant.
// Only the "1-9" and "0-9" markers are classes.
func ParseSymbol(label string) Symbol {
	switch label {
	case ClassNonZeroDigit:
		return DigitRange{Low: 1, High: 9}
	case ClassDigit:
		return DigitRange{Low: 0, High: 9}
	default:
		return Literal(label)
	}
}

// Overlaps reports whether some single character is matched by both a and b.
func Overlaps(a, b Symbol) bool {
	if la, ok := a.(Literal); ok {
		return b.Matches(string(la))
	}
	if lb, ok := b.(Literal); ok {
		return a.Matches(string(lb))
	}
	ra, aOK := a.(DigitRange)
	rb, bOK := b.(DigitRange)
	return aOK && bOK && ra.Low <= rb.High && rb.Low <= ra.High
}
