package rgtree

import (
	"strconv"
	"unicode"

	"go4.org/mem"
)

const asciiMax = 0x7F

var trueWord = mem.S("true")
var falseWord = mem.S("false")

// A Lexer scans a decoded Unicode codepoint sequence into a lossless stream
// of Tokens. A Lexer is single-owner, single-task state: it is a pull
// iterator with no internal concurrency and must not be shared across
// goroutines while scanning.
type Lexer struct {
	src        []rune
	start, end int
}

// NewLexer constructs a Lexer over src. UTF-8 decoding happens once, at
// construction; the caller is responsible for ensuring src is valid UTF-8
// (decoding correctness is outside the scope of this package).
func NewLexer(src string) *Lexer { return NewLexerRunes([]rune(src)) }

// NewLexerRunes constructs a Lexer directly over an already-decoded codepoint
// sequence.
func NewLexerRunes(src []rune) *Lexer { return &Lexer{src: src} }

// TryNextToken returns the next token of the input, or (nil, nil) when the
// input has been fully consumed. A non-nil error is always paired with a nil
// token.
func (l *Lexer) TryNextToken() (*Token, error) {
	if l.end == len(l.src) {
		return nil, nil
	}
	l.start = l.end

	ch := l.current()

	// 1. Whitespace trivia.
	if ch == ' ' || ch == '\t' {
		l.consumeWhile(func(r rune) bool { return r == ' ' || r == '\t' })
		return l.emit(Whitespace), nil
	}

	// 2. Newline trivia.
	if ch == '\n' {
		l.consumeWhile(func(r rune) bool { return r == '\n' })
		return l.emit(Newline), nil
	}

	// 3. Operators.
	if kind, ok := operatorKind(ch); ok {
		l.consume(1)
		return l.emit(kind), nil
	}

	// 4. Boolean literals (must be tried before identifiers).
	if l.hasPrefix(trueWord) {
		l.consume(4)
		return l.emit(BooleanLiteral), nil
	}
	if l.hasPrefix(falseWord) {
		l.consume(5)
		return l.emit(BooleanLiteral), nil
	}

	// 5. Keyword-or-identifier.
	if isIdentStart(ch) {
		l.consumeWhile(isIdentCont)
		return l.emit(Identifier), nil
	}

	// 6. Dot-prefixed numeric, or bare Dot.
	if ch == '.' {
		if l.isDigitAt(1) {
			return l.scanNumeric(false)
		}
		l.consume(1)
		return l.emit(Dot), nil
	}

	// 7. Numeric literal.
	if unicode.IsDigit(ch) {
		return l.scanNumeric(true)
	}

	// 8. String literal.
	if ch == '"' {
		return l.scanString()
	}

	return nil, &LexError{Offset: l.start, Kind: UnrecognizedCharacter, Msg: "unrecognized character " + strconv.QuoteRune(ch)}
}

func operatorKind(ch rune) (TokenKind, bool) {
	switch ch {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '*':
		return Asterisk, true
	case '/':
		return Slash, true
	case '%':
		return Percent, true
	default:
		return Invalid, false
	}
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch > asciiMax
}

func isIdentCont(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch > asciiMax
}

// scanNumeric implements the numeric literal grammar of spec.md §4.1.
//
//	numeric := integer_part ( '.' fraction )? exponent? suffix?
//
// consumeDigits controls whether the leading integer_part still needs to be
// consumed (true), or whether the caller already determined the token begins
// with '.' followed by a digit (false, the dot-prefixed entry point).
func (l *Lexer) scanNumeric(consumeDigits bool) (*Token, error) {
	if consumeDigits {
		l.consumeDigitRun() // integer_part; guaranteed to match by the caller
		if l.atEnd() {
			return l.emit(IntLiteral), nil
		}
	}

	var hasFraction bool
	if l.current() == '.' {
		l.consume(1) // eat '.'
		hasFraction = true
		if err := l.consumeRequiredDigits("fraction digit"); err != nil {
			return nil, err
		}
	}
	if err := l.consumeOptionalExponent(); err != nil {
		return nil, err
	}

	if kind, n, ok := l.numericSuffix(); ok {
		l.consume(n)
		return l.emit(kind), nil
	}

	// No suffix: exponent-without-fraction classifies as IntLiteral, matching
	// the original lexer's behavior verbatim (spec.md §9, open question 3).
	if hasFraction {
		return l.emit(FloatLiteral), nil
	}
	return l.emit(IntLiteral), nil
}

// numericSuffix tests the suffix table of spec.md §4.1 at the current
// position. The two-character BD/bd form is tried before the one-character
// D/d form, and matching is case-insensitive within each form.
func (l *Lexer) numericSuffix() (TokenKind, int, bool) {
	c0, ok0 := l.peek(0)
	if !ok0 {
		return Invalid, 0, false
	}
	switch {
	case eqFold(c0, 'f'):
		return FloatLiteral, 1, true
	case eqFold(c0, 'b'):
		if c1, ok1 := l.peek(1); ok1 && eqFold(c1, 'd') {
			return BigDecimalLiteral, 2, true
		}
		return Invalid, 0, false
	case eqFold(c0, 'd'):
		return DoubleLit, 1, true
	case eqFold(c0, 'l'):
		return BigIntLiteral, 1, true
	case eqFold(c0, 's'):
		return SmallIntLiteral, 1, true
	case eqFold(c0, 'y'):
		return TinyIntLiteral, 1, true
	default:
		return Invalid, 0, false
	}
}

func eqFold(ch, lower rune) bool { return unicode.ToLower(ch) == lower }

// consumeOptionalExponent implements: exponent := [Ee] [+-]? DIGIT+
func (l *Lexer) consumeOptionalExponent() error {
	ch, ok := l.peek(0)
	if !ok || (ch != 'e' && ch != 'E') {
		return nil
	}
	l.consume(1) // eat 'E'/'e'
	if s, ok := l.peek(0); ok && (s == '+' || s == '-') {
		l.consume(1)
	}
	return l.consumeRequiredDigits("exponent digit")
}

// consumeDigitRun consumes a maximal run of digits without requiring any;
// used only where the caller has already verified at least one digit is
// present.
func (l *Lexer) consumeDigitRun() {
	l.consumeWhile(unicode.IsDigit)
}

// consumeRequiredDigits consumes a maximal run of digits, failing with
// InvalidNumeric if zero digits are consumed.
func (l *Lexer) consumeRequiredDigits(label string) error {
	before := l.end
	l.consumeDigitRun()
	if l.end == before {
		return &LexError{Offset: l.end, Kind: InvalidNumeric, Msg: "expected at least one " + label}
	}
	return nil
}

// scanString implements the string literal grammar of spec.md §4.1.
func (l *Lexer) scanString() (*Token, error) {
	l.consume(1) // eat opening '"'
	for {
		if l.atEnd() {
			return nil, &LexError{Offset: l.end, Kind: UnclosedString, Msg: "unterminated string literal"}
		}
		ch := l.current()
		if ch == '"' {
			l.consume(1)
			return l.emit(StringLiteral), nil
		}
		if ch == '\\' {
			l.consume(1)
			if l.atEnd() {
				return nil, &LexError{Offset: l.end, Kind: UnclosedString, Msg: "unterminated string literal"}
			}
			esc := l.current()
			if !isPermittedEscape(esc) {
				return nil, &LexError{Offset: l.end, Kind: InvalidEscape, Msg: "invalid escape character " + strconv.QuoteRune(esc)}
			}
			l.consume(1)
			continue
		}
		l.consume(1)
	}
}

func isPermittedEscape(ch rune) bool {
	switch ch {
	case 't', 'b', 'n', 'r', 'f', '\'', '"', '\\':
		return true
	default:
		return false
	}
}

// -- cursor primitives, grounded on jtree.Scanner's rune/unrune/readWhile --

func (l *Lexer) atEnd() bool { return l.end >= len(l.src) }

func (l *Lexer) current() rune { return l.src[l.end] }

// peek returns the codepoint at offset positions past the current cursor, or
// (0, false) if that position is at or beyond the end of input.
func (l *Lexer) peek(offset int) (rune, bool) {
	i := l.end + offset
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) isDigitAt(offset int) bool {
	ch, ok := l.peek(offset)
	return ok && unicode.IsDigit(ch)
}

func (l *Lexer) consume(n int) { l.end += n }

func (l *Lexer) consumeWhile(pred func(rune) bool) {
	for l.end < len(l.src) && pred(l.src[l.end]) {
		l.end++
	}
}

func (l *Lexer) hasPrefix(word mem.RO) bool {
	n := word.Len()
	if l.end+n > len(l.src) {
		return false
	}
	candidate := mem.S(string(l.src[l.end : l.end+n]))
	return candidate.Equal(word)
}

func (l *Lexer) emit(kind TokenKind) *Token {
	tok := &Token{
		Kind:   kind,
		Span:   Span{Start: l.start, End: l.end},
		Source: string(l.src[l.start:l.end]),
	}
	l.start = l.end
	return tok
}
