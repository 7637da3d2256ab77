package rgtree

import "fmt"

// A Span describes a contiguous, half-open range of codepoint offsets in a
// source input: [Start, End). End is exclusive.
type Span struct {
	Start int
	End   int
}

// Len reports the number of codepoints covered by s.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }
