package hashtree

// Erase removes key and its entire subtree. Erasing the root is a full
// Clear. After a non-root erase, if the load factor drops below the
// shrink threshold the node store is compacted and the table halved.
// It fails with ErrKeyNotFound when the key is absent.
func (t *Tree[K, V]) Erase(key K) error {
	i, ok := t.lookup(key)
	if !ok {
		return ErrKeyNotFound
	}
	if i == t.root {
		t.Clear()
		return nil
	}

	t.detach(i)

	// Breadth-first purge: children are enqueued before the current node
	// is deleted, so every descendant is visited exactly once. Each node
	// leaves its bucket chain and the store in the same step.
	queue := append(make([]ref, 0, 8), i)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		queue = append(queue, t.nodes.At(cur).children...)
		t.chainUnlink(cur)
		t.nodes.Erase(cur)
	}

	if t.LoadFactor() < minLoadFactor {
		t.nodes.ShrinkToFit()
		// A subtree purge can shed many nodes at once, so one halving may
		// not be enough to restore the load bound.
		target := len(t.table)
		for target/2 >= minTableSize && float64(t.nodes.Len())/float64(target) < minLoadFactor {
			target /= 2
		}
		if target != len(t.table) {
			t.rehash(target)
		}
	}
	return nil
}
