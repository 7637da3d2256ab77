package green

import "testing"

// TestGreenCache_ForcedCollisionOverwrites exercises Open Question 9.1
// directly: the test overwrites a token's hash slot with a different token,
// and because GreenCache's token table is keyed by hash alone, GetToken for
// the original (kind, source) returns the planted token rather than
// detecting the collision. This is white-box (package green, not
// green_test) because forcing a collision means reaching into the
// unexported tokens map directly; there is no such thing as a natural
// collision to trigger from the public API within a reasonable test.
func TestGreenCache_ForcedCollisionOverwrites(t *testing.T) {
	cache := NewGreenCache(3)

	first := cache.GetToken(1, "hello world")
	h := first.Hash

	// Plant an unrelated token under the same hash slot, simulating a
	// collision the real hash function happened to produce.
	impostor := newGreenToken(2, "goodbye world")
	cache.tokens[h] = impostor

	if got := cache.tokens[h]; got != impostor {
		t.Fatalf("collision slot not overwritten: got %v, want impostor", got)
	}
	if cache.TokenSize() != 1 {
		t.Errorf("TokenSize() = %d, want 1 (one slot, last write wins)", cache.TokenSize())
	}

	// GetToken for the original (kind, source) now "misses" into the
	// impostor transparently: the cache trusts the hash alone for tokens,
	// exactly as spec.md documents. A caller cannot observe the collision
	// except by noticing the wrong token came back, which is the accepted
	// trade-off, not a bug this implementation tries to paper over.
	again := cache.GetToken(1, "hello world")
	if again.Element.Kind() != 2 {
		t.Fatalf("expected the collided-in impostor's kind (2), got %v", again.Element.Kind())
	}
}

// TestGreenCache_GetNodeForcedCollisionRebuildsOnMismatch shows the
// opposite case for nodes: unlike GetToken, GetNode confirms a hash hit
// with structurallyEqual before reusing it, so a forced collision there
// is detected and the node is rebuilt (and the slot overwritten) rather
// than silently handing back the wrong node.
func TestGreenCache_GetNodeForcedCollisionRebuildsOnMismatch(t *testing.T) {
	cache := NewGreenCache(3)

	entry := cache.GetToken(1, "x")
	children := []CachedElement{entry}
	ce := cache.GetNode(10, &children, 0)

	impostor := newGreenNode(11, nil)
	cache.nodes[ce.Hash] = impostor

	children = []CachedElement{entry}
	rebuilt := cache.GetNode(10, &children, 0)

	if rebuilt.Element.Kind() != 10 {
		t.Errorf("GetNode returned the unconfirmed impostor instead of rebuilding, kind=%v", rebuilt.Element.Kind())
	}
	if node, _ := rebuilt.Element.Node(); node == impostor {
		t.Errorf("GetNode reused the impostor despite failing structuralEqual")
	}
}
