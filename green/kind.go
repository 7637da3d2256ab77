// Package green implements the immutable, hash-consed green tree: the
// red/green syntax tree's value-semantic substrate, plus the stack-based
// GreenBuilder a parser drives to construct one.
//
// Grounded on the rgtree/green/* originals (green_node.{h,cc},
// green_token.h, green_element.h, green_cache.{h,cc}, green_builder.{h,cc})
// and, for Go idiom, on github.com/creachadair/jtree/ast (a package built
// atop a lexical scanner, the way green is built atop rgtree's Lexer).
package green

// SyntaxKind identifies the grammatical category of a GreenNode or
// GreenToken. It is distinct from rgtree.TokenKind: a parser built on this
// package owns the mapping from lexical TokenKind to grammatical SyntaxKind.
// Like TokenKind, it is a closed-but-extensible enumeration: new kinds may be
// appended by a caller, but published numeric values must never be reused.
type SyntaxKind uint16

// Predeclared SyntaxKinds. KindInvalid is the zero value and never appears
// in a well-formed tree. KindError marks a subtree a parser recovered
// around without being able to classify, and KindRoot is the conventional
// kind for a whole-document root node. Callers building a grammar on this
// package should declare their own SyntaxKind constants starting above
// these; published numeric values must never be reused.
const (
	KindInvalid SyntaxKind = iota
	KindError
	KindRoot
)
