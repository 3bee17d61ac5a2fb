package puzzle

import "strconv"

// Answer is the value a solution part produces: a number or free text.
type Answer struct {
	number  uint64
	text    string
	numeric bool
}

// NumberAnswer creates a numeric Answer.
func NumberAnswer(n uint64) Answer {
	return Answer{number: n, numeric: true}
}

// TextAnswer creates a textual Answer.
func TextAnswer(s string) Answer {
	return Answer{text: s}
}

// IsNumber reports whether the answer is numeric.
func (a Answer) IsNumber() bool { return a.numeric }

// Number returns the numeric value, zero for text answers.
func (a Answer) Number() uint64 { return a.number }

// String renders the answer for display.
func (a Answer) String() string {
	if a.numeric {
		return strconv.FormatUint(a.number, 10)
	}
	return a.text
}
