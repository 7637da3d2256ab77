// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// Quote encodes src for inclusion between double quotes in a string
// literal, escaping the control characters, quote characters, and
// backslashes this grammar recognizes.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b == '"' || b == '\\' || b == '\'':
			buf = append(buf, '\\', b)
		case b < byte(len(controlEsc)) && controlEsc[b] != 0:
			buf = append(buf, '\\', controlEsc[b])
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
