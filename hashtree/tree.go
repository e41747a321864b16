package hashtree

import (
	"hash/maphash"
	"slices"

	"golang.org/x/text/cases"

	"github.com/guardeat/treekit/hashtree/arena"
)

const (
	// maxLoadFactor triggers table doubling when exceeded before an insert.
	maxLoadFactor = 0.9

	// minLoadFactor triggers halving and compaction when undershot after
	// an erase.
	minLoadFactor = 0.2

	// minTableSize is the floor for the bucket table. Halving clamps here;
	// without the clamp repeated shrinks would reach a zero-length table
	// and a mod-by-zero bucket computation.
	minTableSize = 2
)

// Tree is a hash-indexed tree of key/value pairs. See the package
// documentation for the structural model.
//
// A Tree must be created by one of the constructors; the zero value is not
// usable.
type Tree[K comparable, V any] struct {
	nodes *arena.Arena[node[K, V]]
	table []ref // bucket heads, nilRef when empty
	root  ref

	hash  Hasher[K]
	equal Equal[K]
}

// New creates a Tree hashing keys with a per-instance seeded maphash and
// comparing them with ==.
func New[K comparable, V any]() *Tree[K, V] {
	seed := maphash.MakeSeed()
	return NewFunc[K, V](
		func(k K) uint64 { return maphash.Comparable(seed, k) },
		func(a, b K) bool { return a == b },
	)
}

// NewFunc creates a Tree with a caller-supplied hash function and key
// equivalence. Keys that are equal under eq must hash identically.
func NewFunc[K comparable, V any](hash Hasher[K], eq Equal[K]) *Tree[K, V] {
	t := &Tree[K, V]{
		nodes: arena.New[node[K, V]](0),
		root:  nilRef,
		hash:  hash,
		equal: eq,
	}
	t.table = emptyTable(minTableSize)
	return t
}

// NewStrings creates a Tree for string keys using FNV-1a hashing and exact
// comparison.
func NewStrings[V any]() *Tree[string, V] {
	return NewFunc[string, V](fnv64a, func(a, b string) bool { return a == b })
}

// NewFoldedStrings creates a Tree for string keys with case-insensitive
// lookup: keys are Unicode case-folded before hashing and comparison, so
// "Services" and "SERVICES" address the same node. The key spelling stored
// first is the one reported by traversal.
func NewFoldedStrings[V any]() *Tree[string, V] {
	caser := cases.Fold()
	return NewFunc[string, V](
		func(s string) uint64 { return fnv64a(caser.String(s)) },
		func(a, b string) bool { return caser.String(a) == caser.String(b) },
	)
}

// Insert adds a new key under the default attachment rule: the first key
// becomes the root, every later one a trailing child of the current root.
// It fails with ErrKeyExists when the key is already present.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if _, ok := t.lookup(key); ok {
		return ErrKeyExists
	}
	t.insertDefault(key, value)
	return nil
}

// InsertChild adds a new key as the trailing child of an existing parent
// key. It fails with ErrParentNotFound when the parent is absent and with
// ErrKeyExists when the key is already present.
func (t *Tree[K, V]) InsertChild(key K, value V, parent K) error {
	if _, ok := t.lookup(key); ok {
		return ErrKeyExists
	}
	p, ok := t.lookup(parent)
	if !ok {
		return ErrParentNotFound
	}
	i := t.emplace(key, value)
	t.attach(i, p)
	return nil
}

// Size returns the number of live key/value pairs.
func (t *Tree[K, V]) Size() int { return t.nodes.Len() }

// TableSize returns the current bucket table length. It grows and shrinks
// geometrically and is independent of Size.
func (t *Tree[K, V]) TableSize() int { return len(t.table) }

// LoadFactor returns Size divided by TableSize.
func (t *Tree[K, V]) LoadFactor() float64 {
	return float64(t.nodes.Len()) / float64(len(t.table))
}

// Clear removes everything: the root is forgotten, the node store is
// reset, and the bucket table returns to its minimum size.
func (t *Tree[K, V]) Clear() {
	t.root = nilRef
	t.nodes.Reset()
	t.table = emptyTable(minTableSize)
}

// insertDefault emplaces a node and attaches it under the default rule.
func (t *Tree[K, V]) insertDefault(key K, value V) ref {
	i := t.emplace(key, value)
	if t.root == nilRef {
		t.root = i
	} else {
		t.attach(i, t.root)
	}
	return i
}

// emplace grows the table if needed, stores the node, and links it into
// its bucket chain. Tree attachment is the caller's job.
func (t *Tree[K, V]) emplace(key K, value V) ref {
	if t.LoadFactor() > maxLoadFactor {
		t.rehash(len(t.table) * 2)
	}
	h := t.hash(key)
	i := t.nodes.Emplace(node[K, V]{
		key:    key,
		value:  value,
		hash:   h,
		parent: nilRef,
		next:   nilRef,
	})
	t.chainAppend(t.bucket(h), i)
	return i
}

// lookup walks the bucket chain for key, comparing the cached hash before
// the key itself.
func (t *Tree[K, V]) lookup(key K) (ref, bool) {
	h := t.hash(key)
	for i := t.table[t.bucket(h)]; i != nilRef; {
		n := t.nodes.At(i)
		if n.hash == h && t.equal(n.key, key) {
			return i, true
		}
		i = n.next
	}
	return nilRef, false
}

// attach appends child to parent's child list and sets its parent link.
func (t *Tree[K, V]) attach(child, parent ref) {
	p := t.nodes.At(parent)
	p.children = append(p.children, child)
	t.nodes.At(child).parent = parent
}

// detach removes i from its parent's child list and clears its parent
// link. A node with no parent is left untouched.
func (t *Tree[K, V]) detach(i ref) {
	n := t.nodes.At(i)
	if n.parent == nilRef {
		return
	}
	siblings := &t.nodes.At(n.parent).children
	if k := slices.Index(*siblings, i); k >= 0 {
		*siblings = slices.Delete(*siblings, k, k+1)
	}
	n.parent = nilRef
}

// emptyTable returns a bucket table of n empty buckets.
func emptyTable(n int) []ref {
	table := make([]ref, n)
	for i := range table {
		table[i] = nilRef
	}
	return table
}
