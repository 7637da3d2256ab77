// Package red implements the red layer: a lazy, offset-bearing cursor over
// an immutable green tree. Unlike the green layer, red values are never
// interned or cached; every navigation step builds a fresh view carrying its
// own absolute offset, the way github.com/creachadair/jtree/ast/cursor
// builds a fresh stack frame on every Down rather than memoizing the path.
package red

import (
	"github.com/orionql/rgtree"
	"github.com/orionql/rgtree/green"
)

// A Node is a view onto a green.GreenNode at a particular absolute offset in
// the source, with an optional parent view. Nodes are cheap and disposable:
// Children constructs new Nodes (and Tokens) on every call rather than
// caching them, since the same green subtree may be reached from many
// offsets if it is shared (interned) across the tree.
type Node struct {
	green  *green.GreenNode
	offset int
	parent *Node
}

// NewRoot returns a Node viewing g as the root of a tree, at offset 0 with
// no parent.
func NewRoot(g *green.GreenNode) *Node {
	return &Node{green: g, offset: 0}
}

// Parent returns n's parent and true, or (nil, false) if n is a root.
func (n *Node) Parent() (*Node, bool) {
	return n.parent, n.parent != nil
}

// Kind returns the syntax kind of n's underlying green node.
func (n *Node) Kind() green.SyntaxKind { return n.green.Kind() }

// Span returns n's absolute span in the source.
func (n *Node) Span() rgtree.Span {
	return rgtree.Span{Start: n.offset, End: n.offset + n.green.Width()}
}

// Text returns the concatenated source text covered by n. By the lexer's
// losslessness invariant this always equals the corresponding slice of the
// original source.
func (n *Node) Text() string { return green.NodeElement(n.green).Text() }

// Children returns fresh Element views of n's immediate children, each
// carrying its own absolute offset derived by walking n's green children in
// order and accumulating width.
func (n *Node) Children() []Element {
	greenChildren := n.green.Children()
	out := make([]Element, 0, len(greenChildren))
	offset := n.offset
	for _, gc := range greenChildren {
		out = append(out, newElement(gc, offset, n))
		offset += gc.Width()
	}
	return out
}

// Tokens returns every leaf token under n, depth-first, each carrying its
// own absolute span.
func (n *Node) Tokens() []Token {
	var out []Token
	n.collectTokens(&out)
	return out
}

func (n *Node) collectTokens(out *[]Token) {
	for _, c := range n.Children() {
		switch {
		case c.IsToken():
			tok, _ := c.Token()
			*out = append(*out, *tok)
		case c.IsNode():
			node, _ := c.Node()
			node.collectTokens(out)
		}
	}
}

// A Token is a view onto a green.GreenToken at a particular absolute offset,
// with an optional parent Node.
type Token struct {
	green  *green.GreenToken
	offset int
	parent *Node
}

// Parent returns t's parent and true, or (nil, false) if t has none (only
// possible for a degenerate single-token tree with no enclosing node).
func (t Token) Parent() (*Node, bool) { return t.parent, t.parent != nil }

// Kind returns the syntax kind of t's underlying green token.
func (t Token) Kind() green.SyntaxKind { return t.green.Kind() }

// Span returns t's absolute span in the source.
func (t Token) Span() rgtree.Span {
	return rgtree.Span{Start: t.offset, End: t.offset + t.green.Width()}
}

// Text returns t's exact source text.
func (t Token) Text() string { return t.green.Source() }

// An Element is a tagged union of a Node or a Token, the red-layer analogue
// of green.GreenElement, additionally carrying an absolute offset and
// parent.
type Element struct {
	node  *Node
	token *Token
}

func newElement(ge green.GreenElement, offset int, parent *Node) Element {
	if gn, ok := ge.Node(); ok {
		return Element{node: &Node{green: gn, offset: offset, parent: parent}}
	}
	gt, _ := ge.Token()
	return Element{token: &Token{green: gt, offset: offset, parent: parent}}
}

// IsNode reports whether e holds a Node.
func (e Element) IsNode() bool { return e.node != nil }

// IsToken reports whether e holds a Token.
func (e Element) IsToken() bool { return e.token != nil }

// Node returns e's Node and true, or (nil, false) if e does not hold one.
func (e Element) Node() (*Node, bool) { return e.node, e.node != nil }

// Token returns e's Token and true, or (nil, false) if e does not hold one.
func (e Element) Token() (*Token, bool) {
	if e.token == nil {
		return nil, false
	}
	return e.token, true
}

// Kind returns the syntax kind of the held node or token.
func (e Element) Kind() green.SyntaxKind {
	switch {
	case e.node != nil:
		return e.node.Kind()
	case e.token != nil:
		return e.token.Kind()
	default:
		return green.KindInvalid
	}
}

// Span returns the absolute span of the held node or token.
func (e Element) Span() rgtree.Span {
	switch {
	case e.node != nil:
		return e.node.Span()
	case e.token != nil:
		return e.token.Span()
	default:
		return rgtree.Span{}
	}
}

// Text returns the source text covered by the held node or token.
func (e Element) Text() string {
	switch {
	case e.node != nil:
		return e.node.Text()
	case e.token != nil:
		return e.token.Text()
	default:
		return ""
	}
}
