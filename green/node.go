package green

// A GreenNode is an immutable interior node of a green tree: a (kind, width,
// children) triple. GreenNodes are shared by reference; width is derived and
// always equals the sum of the children's widths.
type GreenNode struct {
	kind     SyntaxKind
	width    int
	children []GreenElement
}

func newGreenNode(kind SyntaxKind, children []GreenElement) *GreenNode {
	width := 0
	for _, c := range children {
		width += c.Width()
	}
	return &GreenNode{kind: kind, width: width, children: children}
}

// Kind returns the node's syntax kind.
func (n *GreenNode) Kind() SyntaxKind { return n.kind }

// Width returns the number of codepoints of source text covered by n,
// the sum of its children's widths.
func (n *GreenNode) Width() int { return n.width }

// Children returns n's children in order. The returned slice must not be
// mutated; green nodes are immutable for their entire life.
func (n *GreenNode) Children() []GreenElement { return n.children }

// structurallyEqual reports whether n has the given kind and child sequence,
// where child equality is element-wise GreenElement.Equal (pointer identity
// for already-interned sub-nodes and tokens). Used only by GreenCache to
// confirm a hash hit is a genuine match and not a collision.
func (n *GreenNode) structurallyEqual(kind SyntaxKind, children []GreenElement) bool {
	if n.kind != kind || len(n.children) != len(children) {
		return false
	}
	for i, c := range children {
		if !n.children[i].Equal(c) {
			return false
		}
	}
	return true
}
