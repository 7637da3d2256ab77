package rgtree

import (
	"fmt"

	"go4.org/mem"

	"github.com/orionql/rgtree/internal/escape"
)

// StringValue decodes a StringLiteral token's source into the value it
// denotes: the enclosing double quotes are stripped and every escape
// sequence (already validated by the lexer) is replaced by the character it
// denotes. It is an error to call StringValue on a Token whose Kind is not
// StringLiteral.
func (t Token) StringValue() (string, error) {
	if t.Kind != StringLiteral {
		return "", fmt.Errorf("rgtree: StringValue called on a %s token", t.Kind)
	}
	inner := t.Source[1 : len(t.Source)-1]
	dec, err := escape.Unquote(mem.S(inner))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
