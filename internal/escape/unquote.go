// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes and encodes the backslash-escape sequences used in
// string literals: t, b, n, r, f, ', ", and \\. Unlike JSON, there is no
// \uXXXX escape in this grammar and an unrecognized escape character is a
// lexer error rather than something this package has to tolerate, so
// Unquote can assume its input was already validated by the lexer.
package escape

import (
	"errors"

	"go4.org/mem"
)

// ErrIncompleteEscape is returned by Unquote if src ends with a trailing,
// unterminated backslash. The lexer rejects this case itself (an unclosed
// string error), so a caller handing Unquote already-lexed token source
// should never observe it; it exists for callers decoding text from some
// other source.
var ErrIncompleteEscape = errors.New("escape: incomplete escape sequence")

// Unquote decodes a string literal's interior, with the enclosing
// double-quotes already removed. Each recognized escape is replaced by its
// unescaped byte.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncompleteEscape
		}

		switch esc := src.At(0); esc {
		case 't':
			dec = append(dec, '\t')
		case 'b':
			dec = append(dec, '\b')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 'f':
			dec = append(dec, '\f')
		case '\'', '"', '\\':
			dec = append(dec, esc)
		default:
			// The lexer never produces this: every escape reaching here was
			// already validated against the same permitted set.
			dec = append(dec, '\\', esc)
		}
		src = src.SliceFrom(1)

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}
