package hashtree

// At returns the value stored for key, failing with ErrKeyNotFound when the
// key is absent. It never inserts.
func (t *Tree[K, V]) At(key K) (V, error) {
	i, ok := t.lookup(key)
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return t.nodes.At(i).value, nil
}

// Get returns the value stored for key and whether the key is present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	i, ok := t.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.nodes.At(i).value, true
}

// Put sets the value for key. A present key is updated in place without
// touching the table or the tree shape; an absent key is inserted under
// the default attachment rule.
func (t *Tree[K, V]) Put(key K, value V) {
	if i, ok := t.lookup(key); ok {
		t.nodes.At(i).value = value
		return
	}
	t.insertDefault(key, value)
}

// Ensure returns the value stored for key, inserting the zero value under
// the default attachment rule when the key is absent.
func (t *Tree[K, V]) Ensure(key K) V {
	if i, ok := t.lookup(key); ok {
		return t.nodes.At(i).value
	}
	var zero V
	return t.nodes.At(t.insertDefault(key, zero)).value
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.lookup(key)
	return ok
}
