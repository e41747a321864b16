package hashtree

import "slices"

// SetParent moves key under newParent as its trailing child. It fails with
// ErrKeyNotFound or ErrParentNotFound when either key is absent, and with
// ErrCycle when newParent is the moved node or one of its descendants
// (which covers moving the root, since every node descends from it).
func (t *Tree[K, V]) SetParent(key, newParent K) error {
	return t.setParent(key, newParent, -1)
}

// SetParentAt moves key under newParent at sibling position pos, where 0
// is the leading child and len(children) appends. Positions outside that
// range fail with ErrBadPosition; the range is evaluated against the child
// list as it will be after the node leaves its current parent.
func (t *Tree[K, V]) SetParentAt(key, newParent K, pos int) error {
	if pos < 0 {
		return ErrBadPosition
	}
	return t.setParent(key, newParent, pos)
}

// setParent implements both reparent forms; pos < 0 means "at the tail".
func (t *Tree[K, V]) setParent(key, newParent K, pos int) error {
	i, ok := t.lookup(key)
	if !ok {
		return ErrKeyNotFound
	}
	p, ok := t.lookup(newParent)
	if !ok {
		return ErrParentNotFound
	}
	if p == i || t.isDescendant(p, i) {
		return ErrCycle
	}

	// Validate the position before mutating anything. If the node already
	// sits under p, detaching will shorten the list by one.
	width := len(t.nodes.At(p).children)
	if t.nodes.At(i).parent == p {
		width--
	}
	if pos > width {
		return ErrBadPosition
	}

	t.detach(i)
	t.attachAt(i, p, pos)
	return nil
}

// attachAt inserts child into parent's child list at pos, or at the tail
// when pos < 0, and sets the parent link.
func (t *Tree[K, V]) attachAt(child, parent ref, pos int) {
	if pos < 0 {
		t.attach(child, parent)
		return
	}
	p := t.nodes.At(parent)
	p.children = slices.Insert(p.children, pos, child)
	t.nodes.At(child).parent = parent
}

// isDescendant reports whether node i sits somewhere below ancestor in the
// tree, by walking i's parent chain.
func (t *Tree[K, V]) isDescendant(i, ancestor ref) bool {
	for p := t.nodes.At(i).parent; p != nilRef; p = t.nodes.At(p).parent {
		if p == ancestor {
			return true
		}
	}
	return false
}
