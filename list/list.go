// Package list provides a plain growable sequence with no identifier
// semantics, used for scratch and temporary element runs by the layers
// above the ordered handle store.
package list

import (
	"fmt"
	"iter"
	"slices"
)

// List is a growable sequence of T. The zero value is empty and ready for
// use. Storage grows geometrically; pointers returned by At are valid only
// until the next mutation.
type List[T any] struct {
	elem []T
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.elem)
}

// At returns a pointer to the element at position i.
func (l *List[T]) At(i int) *T {
	return &l.elem[i]
}

// Add appends t.
func (l *List[T]) Add(t T) {
	l.elem = append(l.elem, t)
}

// AddToBeginning prepends t, shifting the rest up by one.
func (l *List[T]) AddToBeginning(t T) {
	l.elem = slices.Insert(l.elem, 0, t)
}

// All iterates the elements in order. The list must not be mutated during
// iteration.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range l.elem {
			if !yield(&l.elem[i]) {
				return
			}
		}
	}
}

// RemoveIf deletes every element for which remove returns true, in one
// order-preserving compaction pass. Backing capacity is kept.
func (l *List[T]) RemoveIf(remove func(*T) bool) {
	dest := 0
	for src := range l.elem {
		if remove(&l.elem[src]) {
			continue
		}
		if src != dest {
			l.elem[dest] = l.elem[src]
		}
		dest++
	}
	l.elem = l.elem[:dest]
}

// RemoveLast drops the last cnt elements. Dropping more elements than the
// list holds is an error and leaves the list unchanged.
func (l *List[T]) RemoveLast(cnt int) error {
	if cnt < 0 || cnt > len(l.elem) {
		return fmt.Errorf("list: cannot remove last %d of %d elements", cnt, len(l.elem))
	}
	l.elem = l.elem[:len(l.elem)-cnt]
	return nil
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	slices.Reverse(l.elem)
}

// Clear releases the backing storage and resets the list to empty.
func (l *List[T]) Clear() {
	l.elem = nil
}
