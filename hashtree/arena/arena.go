package arena

import (
	"fmt"
	"iter"
	"slices"
)

// Index addresses a single element inside an Arena.
type Index = int32

// None is a reserved index that no live element ever occupies.
// Emplace never returns it; it is safe to use as an "absent" marker.
const None Index = -1

// slot is one storage cell. A dead slot keeps its position so that the
// indices of every other element stay valid.
type slot[T any] struct {
	value T
	live  bool
}

// Arena is a slot-stable store with LIFO reuse of freed slots.
// The zero value is ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  []Index // stack of dead slot indices, most recently freed on top
	live  int
}

// Stats reports arena occupancy, mirroring Len/Cap plus the free-slot count.
type Stats struct {
	Live int // live elements
	Free int // dead slots awaiting reuse
	Cap  int // capacity of the backing storage
}

// New creates an Arena with room for capacity elements before the first
// growth. A capacity of 0 is valid and defers all allocation.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Emplace stores v and returns its index. The most recently freed slot is
// reused first; otherwise the arena grows by one slot.
func (a *Arena[T]) Emplace(v T) Index {
	a.live++
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[i] = slot[T]{value: v, live: true}
		return i
	}
	a.slots = append(a.slots, slot[T]{value: v, live: true})
	return Index(len(a.slots) - 1)
}

// Erase frees the slot at i. It reports whether a live element was removed;
// erasing an out-of-range or already-dead index is a no-op. No other
// element's index is disturbed.
func (a *Arena[T]) Erase(i Index) bool {
	if int(i) < 0 || int(i) >= len(a.slots) || !a.slots[i].live {
		return false
	}
	var zero T
	a.slots[i] = slot[T]{value: zero} // drop references held by the element
	a.free = append(a.free, i)
	a.live--
	return true
}

// At returns a pointer to the element at i. The index must address a live
// element; At panics otherwise. Use Get when the index is not known-good.
// The pointer is valid until the next Emplace.
func (a *Arena[T]) At(i Index) *T {
	if int(i) < 0 || int(i) >= len(a.slots) || !a.slots[i].live {
		panic(fmt.Sprintf("arena: At(%d) on dead index", i))
	}
	return &a.slots[i].value
}

// Get returns a pointer to the element at i, or false when i does not
// address a live element.
func (a *Arena[T]) Get(i Index) (*T, bool) {
	if int(i) < 0 || int(i) >= len(a.slots) || !a.slots[i].live {
		return nil, false
	}
	return &a.slots[i].value, true
}

// Len returns the number of live elements.
func (a *Arena[T]) Len() int { return a.live }

// Cap returns the capacity of the backing storage in slots.
func (a *Arena[T]) Cap() int { return cap(a.slots) }

// All iterates over every live element in index order, yielding each
// element's index and a pointer to its value. The arena must not be
// mutated during iteration.
func (a *Arena[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		for i := range a.slots {
			if !a.slots[i].live {
				continue
			}
			if !yield(Index(i), &a.slots[i].value) {
				return
			}
		}
	}
}

// ShrinkToFit releases trailing dead slots and spare capacity. Live
// elements keep their indices; only storage past the last live element is
// reclaimed.
func (a *Arena[T]) ShrinkToFit() {
	n := len(a.slots)
	for n > 0 && !a.slots[n-1].live {
		n--
	}
	a.slots = slices.Clip(a.slots[:n])

	// Trimmed slots are gone from the storage, so the free stack must be
	// rebuilt from what remains.
	a.free = a.free[:0]
	for i := range a.slots {
		if !a.slots[i].live {
			a.free = append(a.free, Index(i))
		}
	}
	a.free = slices.Clip(a.free)
}

// Reset discards every element and frees the references they held.
// Capacity is retained for reuse.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.live = 0
}

// Stats returns current occupancy counters.
func (a *Arena[T]) Stats() Stats {
	return Stats{Live: a.live, Free: len(a.free), Cap: cap(a.slots)}
}
