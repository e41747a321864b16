package hashtree

import "errors"

var (
	// ErrKeyNotFound indicates the addressed key is not in the container.
	ErrKeyNotFound = errors.New("hashtree: key not found")

	// ErrParentNotFound indicates the key named as parent doesn't exist.
	ErrParentNotFound = errors.New("hashtree: parent key not found")

	// ErrKeyExists indicates an insert collided with a present key.
	// Use Put to update the value of an existing key.
	ErrKeyExists = errors.New("hashtree: key already present")

	// ErrCycle indicates a reparent was rejected because the new parent is
	// the moved node itself or one of its descendants.
	ErrCycle = errors.New("hashtree: reparent would create a cycle")

	// ErrBadPosition indicates a sibling position outside the valid range
	// of the new parent's child list.
	ErrBadPosition = errors.New("hashtree: sibling position out of range")
)
