package hashtree

import "iter"

// All iterates over every key/value pair in level order: the root, then its
// children in stored order, then grandchildren in the order their parents
// were visited. The sequence yields exactly Size() pairs.
//
// The traversal is single-pass and forward-only; call All again to restart.
// Mutating the tree during iteration is undefined.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nilRef {
			return
		}
		// The visit list doubles as the pending queue: each step appends
		// the current node's children before advancing.
		visit := make([]ref, 0, t.Size())
		visit = append(visit, t.root)
		for i := 0; i < len(visit); i++ {
			n := t.nodes.At(visit[i])
			visit = append(visit, n.children...)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys iterates over every key in level order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates over every value in level order.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Root returns the root key, or false when the tree is empty.
func (t *Tree[K, V]) Root() (K, bool) {
	if t.root == nilRef {
		var zero K
		return zero, false
	}
	return t.nodes.At(t.root).key, true
}

// Parent returns the parent key of key. The second result is false for the
// root, which has no parent. An absent key fails with ErrKeyNotFound.
func (t *Tree[K, V]) Parent(key K) (K, bool, error) {
	var zero K
	i, ok := t.lookup(key)
	if !ok {
		return zero, false, ErrKeyNotFound
	}
	p := t.nodes.At(i).parent
	if p == nilRef {
		return zero, false, nil
	}
	return t.nodes.At(p).key, true, nil
}

// Children returns the keys of key's children in stored order. An absent
// key fails with ErrKeyNotFound.
func (t *Tree[K, V]) Children(key K) ([]K, error) {
	i, ok := t.lookup(key)
	if !ok {
		return nil, ErrKeyNotFound
	}
	refs := t.nodes.At(i).children
	if len(refs) == 0 {
		return nil, nil
	}
	keys := make([]K, len(refs))
	for k, c := range refs {
		keys[k] = t.nodes.At(c).key
	}
	return keys, nil
}
