package green

import "unicode/utf8"

// A GreenToken is an immutable leaf of a green tree: a (kind, source text)
// pair. GreenTokens are shared by reference; the GreenCache guarantees at
// most one live instance per (kind, source) value for tokens that pass
// through it.
type GreenToken struct {
	kind   SyntaxKind
	source string
	width  int // codepoints, precomputed since it is read on every width query
}

func newGreenToken(kind SyntaxKind, source string) *GreenToken {
	return &GreenToken{kind: kind, source: source, width: utf8.RuneCountInString(source)}
}

// Kind returns the token's syntax kind.
func (t *GreenToken) Kind() SyntaxKind { return t.kind }

// Source returns the token's exact source text.
func (t *GreenToken) Source() string { return t.source }

// Width returns the length of Source in codepoints.
func (t *GreenToken) Width() int { return t.width }
