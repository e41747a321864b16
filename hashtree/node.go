package hashtree

import "github.com/guardeat/treekit/hashtree/arena"

// ref addresses a node in the backing arena. nilRef marks an absent parent,
// an empty bucket, the end of a collision chain, or a missing root.
type ref = arena.Index

const nilRef = arena.None

// node is one stored element with its bookkeeping for both indices.
// The key is fixed at creation; only the value mutates afterwards.
type node[K comparable, V any] struct {
	key   K
	value V
	hash  uint64 // cached at insert, never recomputed

	parent   ref
	children []ref // ordered; traversal and printing follow this order
	next     ref   // intrusive hash-chain link
}
