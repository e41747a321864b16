// Package arena provides a slot-stable storage arena with index reuse.
//
// # Overview
//
// An Arena hands out a stable integer Index for every element placed in it.
// The index stays valid until that specific element is erased, regardless of
// how many other elements are added or removed in between. Freed slots are
// recycled by later Emplace calls, so the arena stays dense under churn.
//
// # Index Stability
//
// Operations never move a live element:
//
//   - Emplace fills the most recently freed slot, or appends a new one.
//   - Erase frees exactly the addressed slot; no other index changes.
//   - ShrinkToFit releases trailing free slots and spare capacity, but a
//     slot holding a live element is never touched.
//
// Pointers returned by At and All are only valid until the next Emplace,
// which may grow the backing storage.
//
// # Concurrency
//
// An Arena is not safe for concurrent use. Callers coordinate access
// externally, matching the single-threaded contract of the containers built
// on top of it.
package arena
