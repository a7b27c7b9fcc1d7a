package library

import (
	"iter"
	"slices"

	liberrors "github.com/lepinkainen/libris/internal/errors"
)

// View is a read-only, ordered view over a sequence owned by the catalog.
// Its mutators exist so callers get an explicit error instead of silently
// editing a copy; they never change the view.
type View[T any] struct {
	items []T
}

func newView[T any](items []T) View[T] {
	return View[T]{items: items}
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	return len(v.items)
}

// At returns the element at index i. It panics if i is out of range.
func (v View[T]) At(i int) T {
	return v.items[i]
}

// All yields index/element pairs in order.
func (v View[T]) All() iter.Seq2[int, T] {
	return slices.All(v.items)
}

// Values yields the elements in order.
func (v View[T]) Values() iter.Seq[T] {
	return slices.Values(v.items)
}

// Slice returns a newly allocated copy of the elements.
func (v View[T]) Slice() []T {
	return slices.Clone(v.items)
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (v View[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(v.items, f)
}

// Append always fails: views are read-only.
func (v View[T]) Append(_ ...T) error {
	return liberrors.NewUnsupportedOperationError("append")
}

// Insert always fails: views are read-only.
func (v View[T]) Insert(_ int, _ ...T) error {
	return liberrors.NewUnsupportedOperationError("insert")
}

// Set always fails: views are read-only.
func (v View[T]) Set(_ int, _ T) error {
	return liberrors.NewUnsupportedOperationError("set")
}

// Remove always fails: views are read-only.
func (v View[T]) Remove(_ int) error {
	return liberrors.NewUnsupportedOperationError("remove")
}

// Clear always fails: views are read-only.
func (v View[T]) Clear() error {
	return liberrors.NewUnsupportedOperationError("clear")
}
