package rgtree

// TokenKind identifies the lexical category of a Token. It is a closed,
// extensible enumeration: new kinds may be appended, but existing numeric
// values must never be reused or reordered once published.
type TokenKind uint16

// Token kind constants. Grouped by category: trivia first, then
// punctuation, then literals, then identifiers.
const (
	Invalid TokenKind = iota // invalid token; never produced by the lexer

	// --- Trivia ---
	Whitespace // run of ' ' and '\t'
	Newline    // run of '\n'
	Comment    // reserved: no comment syntax is defined by this grammar yet

	// --- Keywords ---
	// Reserved. Keyword recognition is currently folded into Identifier; see
	// the keyword-or-identifier step of Lexer.TryNextToken.

	// --- Punctuation ---
	Dot
	Plus
	Minus
	Asterisk
	Slash
	Percent

	// --- Boolean literal ---
	BooleanLiteral

	// --- String literal ---
	StringLiteral

	// --- Exact numeric literals ---
	IntLiteral
	BigIntLiteral
	SmallIntLiteral
	TinyIntLiteral

	// --- Approximate numeric literals ---
	FloatLiteral
	DoubleLit
	BigDecimalLiteral

	// --- Other ---
	Identifier

	// --- Special ---
	EOF // reserved; TryNextToken signals end of input with a nil *Token, not this kind
)

var tokenKindStr = [...]string{
	Invalid:           "invalid",
	Whitespace:        "whitespace",
	Newline:           "newline",
	Comment:           "comment",
	Dot:               "dot",
	Plus:              "plus",
	Minus:             "minus",
	Asterisk:          "asterisk",
	Slash:             "slash",
	Percent:           "percent",
	BooleanLiteral:    "boolean literal",
	StringLiteral:     "string literal",
	IntLiteral:        "integer literal",
	BigIntLiteral:     "bigint literal",
	SmallIntLiteral:   "smallint literal",
	TinyIntLiteral:    "tinyint literal",
	FloatLiteral:      "float literal",
	DoubleLit:         "double literal",
	BigDecimalLiteral: "bigdecimal literal",
	Identifier:        "identifier",
	EOF:               "eof",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindStr) {
		return tokenKindStr[k]
	}
	return tokenKindStr[Invalid]
}

// A Token is a single lexical token produced by the Lexer. Source is the
// exact slice of the input covered by Span; Source is always non-empty (an
// empty input produces no tokens at all).
//
// Invariant: len(Source) == Span.Len(), in codepoints, and concatenating the
// Source of every Token the lexer emits for an input reproduces that input
// exactly (losslessness, spec.md §8 property 1).
type Token struct {
	Kind   TokenKind
	Span   Span
	Source string
}

func (t Token) String() string { return t.Kind.String() + " " + t.Span.String() + " " + quoteForDebug(t.Source) }

func quoteForDebug(s string) string {
	const maxLen = 40
	if len(s) > maxLen {
		s = s[:maxLen] + "…"
	}
	return "`" + s + "`"
}
