package red_test

import (
	"testing"

	"github.com/orionql/rgtree/green"
	"github.com/orionql/rgtree/red"
)

const (
	kindPlus green.SyntaxKind = iota + 100
	kindNum
	kindBinExpr
)

func buildTree(t *testing.T) *green.GreenNode {
	t.Helper()
	b := green.NewGreenBuilder()
	b.StartNode(kindBinExpr)
	b.Token(kindNum, "12")
	b.Token(kindPlus, "+")
	b.Token(kindNum, "345")
	if err := b.FinishNode(); err != nil {
		t.Fatalf("FinishNode: %v", err)
	}
	root, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return root
}

func TestNode_RootHasNoParent(t *testing.T) {
	root := red.NewRoot(buildTree(t))
	if _, ok := root.Parent(); ok {
		t.Errorf("root.Parent() reported a parent")
	}
	if root.Kind() != kindBinExpr {
		t.Errorf("root.Kind() = %v, want %v", root.Kind(), kindBinExpr)
	}
}

func TestNode_SpanAndTextMatchSource(t *testing.T) {
	const source = "12+345"
	root := red.NewRoot(buildTree(t))

	if got := root.Text(); got != source {
		t.Errorf("root.Text() = %q, want %q", got, source)
	}
	span := root.Span()
	if span.Start != 0 || span.End != len([]rune(source)) {
		t.Errorf("root.Span() = %v, want [0,%d)", span, len([]rune(source)))
	}
}

func TestNode_ChildrenHaveAbutingAbsoluteOffsets(t *testing.T) {
	root := red.NewRoot(buildTree(t))
	children := root.Children()
	if len(children) != 3 {
		t.Fatalf("len(children) = %d, want 3", len(children))
	}

	wantSpans := []struct{ start, end int }{
		{0, 2}, // "12"
		{2, 3}, // "+"
		{3, 6}, // "345"
	}
	for i, c := range children {
		if !c.IsToken() {
			t.Errorf("child %d: IsToken() = false, want true", i)
			continue
		}
		span := c.Span()
		if span.Start != wantSpans[i].start || span.End != wantSpans[i].end {
			t.Errorf("child %d span = %v, want [%d,%d)", i, span, wantSpans[i].start, wantSpans[i].end)
		}
		tok, ok := c.Token()
		if !ok {
			t.Fatalf("child %d: Token() ok = false", i)
		}
		parent, ok := tok.Parent()
		if !ok || parent.Kind() != kindBinExpr {
			t.Errorf("child %d: Parent() = (%v, %v), want the bin-expr root", i, parent, ok)
		}
	}
}

func TestNode_TokensIsDepthFirst(t *testing.T) {
	root := red.NewRoot(buildTree(t))
	toks := root.Tokens()
	if len(toks) != 3 {
		t.Fatalf("len(Tokens()) = %d, want 3", len(toks))
	}
	wantText := []string{"12", "+", "345"}
	for i, tok := range toks {
		if tok.Text() != wantText[i] {
			t.Errorf("Tokens()[%d].Text() = %q, want %q", i, tok.Text(), wantText[i])
		}
	}
}

func TestNode_NestedChildOffsetsAccumulate(t *testing.T) {
	b := green.NewGreenBuilder()
	b.StartNode(kindBinExpr)
	b.Token(kindNum, "1")
	b.StartNode(kindBinExpr)
	b.Token(kindPlus, "+")
	b.Token(kindNum, "2")
	if err := b.FinishNode(); err != nil {
		t.Fatalf("FinishNode (inner): %v", err)
	}
	if err := b.FinishNode(); err != nil {
		t.Fatalf("FinishNode (outer): %v", err)
	}
	gnode, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	root := red.NewRoot(gnode)
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	inner, ok := children[1].Node()
	if !ok {
		t.Fatalf("children[1] is not a node")
	}
	if span := inner.Span(); span.Start != 1 || span.End != 3 {
		t.Errorf("inner.Span() = %v, want [1,3)", span)
	}
	if got := inner.Text(); got != "+2" {
		t.Errorf("inner.Text() = %q, want %q", got, "+2")
	}
}
