package hashtree

// bucket maps a cached hash onto the current table.
func (t *Tree[K, V]) bucket(h uint64) int {
	return int(h % uint64(len(t.table)))
}

// chainAppend links node i at the tail of the given bucket's chain, so the
// first-inserted of two colliding keys stays first in lookup order.
func (t *Tree[K, V]) chainAppend(bucket int, i ref) {
	head := t.table[bucket]
	if head == nilRef {
		t.table[bucket] = i
		return
	}
	tail := head
	for {
		n := t.nodes.At(tail)
		if n.next == nilRef {
			n.next = i
			return
		}
		tail = n.next
	}
}

// chainUnlink removes node i from its bucket chain. The node's cached hash
// locates the bucket; the chain is then spliced around it.
func (t *Tree[K, V]) chainUnlink(i ref) {
	n := t.nodes.At(i)
	b := t.bucket(n.hash)
	if t.table[b] == i {
		t.table[b] = n.next
		n.next = nilRef
		return
	}
	for prev := t.table[b]; prev != nilRef; {
		p := t.nodes.At(prev)
		if p.next == i {
			p.next = n.next
			n.next = nilRef
			return
		}
		prev = p.next
	}
}

// rehash rebuilds all bucket chains for a table of n buckets using each
// node's cached hash; keys are never hashed again. Two passes: every chain
// link must be severed before any chain is rebuilt, otherwise a rebuilt
// chain could splice into a stale one.
func (t *Tree[K, V]) rehash(n int) {
	t.table = emptyTable(n)
	for _, nd := range t.nodes.All() {
		nd.next = nilRef
	}
	for i, nd := range t.nodes.All() {
		t.chainAppend(t.bucket(nd.hash), i)
	}
}
