package ast

// Arena is an append-only store of nodes addressed by 1-based indices,
// with 0 reserved for "none".
type Arena[T any] struct {
	data []T
}

// NewArena allocates an arena with the given capacity hint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data)) //nolint:gosec // node counts bounded by source size
}

// Get returns a pointer to the stored node, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return &a.data[index-1]
}

// Slice exposes the backing storage; callers must treat it as read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data)) //nolint:gosec
}
