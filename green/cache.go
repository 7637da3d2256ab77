package green

import "hash/maphash"

// A CachedElement pairs a GreenElement with the hash GreenCache computed for
// it. Builders thread CachedElements through construction so that GetNode
// never has to recompute a child's hash from scratch.
type CachedElement struct {
	Hash    uint64
	Element GreenElement
}

// GreenCache hash-conses GreenTokens and small GreenNodes so that structurally
// identical subtrees share a single instance. Lookups key on hash alone: the
// underlying maps are intentionally NoHash-style tables that never chain
// distinct entries under one key. On a collision (two distinct values whose
// hashes coincide) GetToken returns the token already in the slot, since it
// trusts the hash as a complete fingerprint; GetNode confirms a hit with a
// structural-equality check and, on a mismatch, builds a fresh node that
// replaces the previous occupant of the slot.
//
// A GreenCache has no internal locking; it must be used by one goroutine at
// a time.
//
// Grounded on green_cache.h/.cc. Zero value is not usable; construct with
// NewGreenCache.
type GreenCache struct {
	seed              maphash.Seed
	tokens            map[uint64]*GreenToken
	nodes             map[uint64]*GreenNode
	maxCachedNodeSize int
}

// NewGreenCache returns a GreenCache that will only attempt to intern nodes
// with at most maxCachedNodeSize children. Nodes larger than this are always
// built fresh and never consulted against the cache, bounding the cost of
// the structural-equality check on a hit.
func NewGreenCache(maxCachedNodeSize int) *GreenCache {
	return &GreenCache{
		seed:              maphash.MakeSeed(),
		tokens:            make(map[uint64]*GreenToken),
		nodes:             make(map[uint64]*GreenNode),
		maxCachedNodeSize: maxCachedNodeSize,
	}
}

// NodeSize returns the number of distinct nodes currently interned.
func (c *GreenCache) NodeSize() int { return len(c.nodes) }

// TokenSize returns the number of distinct tokens currently interned.
func (c *GreenCache) TokenSize() int { return len(c.tokens) }

// hashCombine folds x into the running hash h using the same mixing
// formula as boost::hash_combine. The token hashes it folds come from a
// randomly seeded maphash, so concrete hash values (and which values
// collide) differ from one GreenCache to the next.
func hashCombine(h uint64, x uint64) uint64 {
	return h ^ (x + 0x9e3779b979b9379e + (h << 6) + (h >> 2))
}

// hashToken computes the hash GreenCache uses to key a (kind, source) pair.
// The result is never 0: 0 is reserved to mean "not cached" throughout this
// package, so a genuine hash of 0 is bumped to 1.
func (c *GreenCache) hashToken(kind SyntaxKind, source string) uint64 {
	var mh maphash.Hash
	mh.SetSeed(c.seed)
	mh.WriteString(source)
	h := hashCombine(mh.Sum64(), uint64(kind))
	if h == 0 {
		h = 1
	}
	return h
}

// hashNode computes the hash GreenCache uses to key a (kind, children) tuple,
// given the children's already-computed hashes. If any child hash is 0 (the
// child was not itself cacheable), the node is not hash-eligible either: the
// caller must treat a 0 result as "build uncached", never look it up.
func (c *GreenCache) hashNode(kind SyntaxKind, childHashes []uint64) uint64 {
	h := uint64(kind)
	for _, ch := range childHashes {
		if ch == 0 {
			return 0
		}
		h = hashCombine(h, ch)
	}
	if h == 0 {
		h = 1
	}
	return h
}

// GetToken returns a CachedElement wrapping a GreenToken with the given kind
// and source text, reusing an existing interned token on a hash hit. The
// hash alone gates reuse: unlike GetNode, no structural comparison is made
// against the hit, since a token's only content is its (kind, source) pair
// and that pair is exactly what was hashed.
func (c *GreenCache) GetToken(kind SyntaxKind, source string) CachedElement {
	h := c.hashToken(kind, source)
	if tok, ok := c.tokens[h]; ok {
		return CachedElement{Hash: h, Element: TokenElement(tok)}
	}
	tok := newGreenToken(kind, source)
	c.tokens[h] = tok
	return CachedElement{Hash: h, Element: TokenElement(tok)}
}

// GetNode builds or reuses a GreenNode of the given kind over
// (*children)[firstChild:], then truncates *children back to firstChild
// (the builder's stack-popping convention: the children slice is a shared
// scratch stack, and this call consumes the frame it is given).
//
// Nodes with more than maxCachedNodeSize children, or with any non-hash-eligible child,
// are built and returned uncached (Hash: 0). Otherwise the node's hash is
// looked up; a hit is confirmed with structurallyEqual before being reused,
// and a miss (or a confirmed-different collision) inserts the freshly built
// node, overwriting whatever previously occupied that hash slot. Overwriting
// rather than chaining is deliberate: see the GreenCache doc comment.
func (c *GreenCache) GetNode(kind SyntaxKind, children *[]CachedElement, firstChild int) CachedElement {
	frame := (*children)[firstChild:]
	n := len(frame)

	elements := make([]GreenElement, n)
	childHashes := make([]uint64, n)
	for i, ce := range frame {
		elements[i] = ce.Element
		childHashes[i] = ce.Hash
	}
	*children = (*children)[:firstChild]

	if n > c.maxCachedNodeSize {
		return CachedElement{Hash: 0, Element: NodeElement(newGreenNode(kind, elements))}
	}

	h := c.hashNode(kind, childHashes)
	if h == 0 {
		return CachedElement{Hash: 0, Element: NodeElement(newGreenNode(kind, elements))}
	}

	if existing, ok := c.nodes[h]; ok && existing.structurallyEqual(kind, elements) {
		return CachedElement{Hash: h, Element: NodeElement(existing)}
	}

	fresh := newGreenNode(kind, elements)
	c.nodes[h] = fresh
	return CachedElement{Hash: h, Element: NodeElement(fresh)}
}
