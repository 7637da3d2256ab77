package green

import "strings"

// A GreenElement is a tagged union of a GreenNode, a GreenToken, or Empty.
// Empty exists only as the zero value for uninitialised cache slots; no
// well-formed tree contains one. The zero GreenElement is Empty.
type GreenElement struct {
	node  *GreenNode
	token *GreenToken
}

// NodeElement wraps n as a GreenElement.
func NodeElement(n *GreenNode) GreenElement { return GreenElement{node: n} }

// TokenElement wraps t as a GreenElement.
func TokenElement(t *GreenToken) GreenElement { return GreenElement{token: t} }

// IsNode reports whether e holds a GreenNode.
func (e GreenElement) IsNode() bool { return e.node != nil }

// IsToken reports whether e holds a GreenToken.
func (e GreenElement) IsToken() bool { return e.token != nil }

// IsEmpty reports whether e is the Empty sentinel.
func (e GreenElement) IsEmpty() bool { return e.node == nil && e.token == nil }

// Node returns e's GreenNode and true, or (nil, false) if e does not hold one.
func (e GreenElement) Node() (*GreenNode, bool) { return e.node, e.node != nil }

// Token returns e's GreenToken and true, or (nil, false) if e does not hold one.
func (e GreenElement) Token() (*GreenToken, bool) { return e.token, e.token != nil }

// Kind returns the kind of the held node or token, or KindInvalid if e is Empty.
func (e GreenElement) Kind() SyntaxKind {
	switch {
	case e.node != nil:
		return e.node.Kind()
	case e.token != nil:
		return e.token.Kind()
	default:
		return KindInvalid
	}
}

// Width returns the codepoint width of the held node or token, or 0 if e is
// Empty.
func (e GreenElement) Width() int {
	switch {
	case e.node != nil:
		return e.node.Width()
	case e.token != nil:
		return e.token.Width()
	default:
		return 0
	}
}

// Text returns the concatenated source text covered by e.
func (e GreenElement) Text() string {
	switch {
	case e.token != nil:
		return e.token.Source()
	case e.node != nil:
		var sb strings.Builder
		for _, c := range e.node.children {
			sb.WriteString(c.Text())
		}
		return sb.String()
	default:
		return ""
	}
}

// Equal reports whether e and other hold the same element. Nodes and tokens
// compare by pointer identity (the cache makes structurally equal tokens and
// cacheable small nodes reference-equal; nodes over the cache's size limit
// are never shared); two Empty elements are equal.
func (e GreenElement) Equal(other GreenElement) bool {
	switch {
	case e.IsNode() && other.IsNode():
		return e.node == other.node
	case e.IsToken() && other.IsToken():
		return e.token == other.token
	default:
		return e.IsEmpty() && other.IsEmpty()
	}
}
