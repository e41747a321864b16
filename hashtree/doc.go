// Package hashtree implements a container fusing hash-keyed lookup with a
// parent/child tree over the same element set.
//
// # Overview
//
// A Tree stores key/value pairs exactly once, but indexes them twice:
//
//   - A hash index gives O(1) amortized keyed access (At, Get, Put, Contains).
//   - A tree index links every node to a parent and an ordered child list,
//     giving hierarchical operations (InsertChild, SetParent, Erase of whole
//     subtrees) and level-order traversal (All, Keys, Values).
//
// Both indices reference nodes by stable integer index into a shared
// storage arena (see the arena subpackage); removing a node updates both
// structures within the same operation.
//
// # Structure
//
// The hash index is an array of bucket heads with intrusive collision
// chains: each node carries a "next" index, and colliding keys are appended
// at the chain tail, so the first-inserted of two colliding keys is found
// first. Each node caches its 64-bit hash; resizing re-buckets from the
// cache and never rehashes a key.
//
// The tree has a single root. A plain Insert makes the first node the root
// and attaches every later parentless node as a trailing child of the root;
// InsertChild attaches under an explicit existing parent. Erasing the root
// clears the container.
//
// # Resizing
//
// The bucket table doubles when the load factor exceeds 0.9 (checked before
// the insert lands) and halves, with arena compaction, when an erase drops
// it below 0.2. The table never shrinks below its functional minimum.
//
// # Concurrency
//
// A Tree is single-threaded: no operation may run concurrently with another
// on the same instance, and mutating the tree invalidates any in-flight
// traversal.
package hashtree
