// Package store provides the ordered handle store: a generic container
// whose elements each carry a unique numeric handle, kept sorted ascending
// by handle so that lookup and insert-position search are O(log n) while
// bulk mutation stays a cheap linear pass.
//
// The document model indexes entities and parameters with it, and deletes
// in bulk by tagging elements and removing the tagged set in one
// compaction pass.
//
// A List serializes nothing and locks nothing: the owning document or
// solver context must serialize mutating access. Concurrent readers are
// safe only while no writer is active.
package store

import (
	"fmt"
	"iter"
	"slices"
)

// Handle is a small unique numeric identifier referencing an entity or
// parameter, stable across unrelated mutations of the store.
type Handle interface{ ~uint32 }

// Element is the per-element interface a List requires, implemented on the
// pointer type of the stored record: a handle field and an integer tag
// used only for transient batch-marking.
type Element[H Handle] interface {
	ID() H
	SetID(H)
	Tag() int
	SetTag(int)
}

// ElementPtr constrains PT to be both *T and an Element.
type ElementPtr[T any, H Handle] interface {
	*T
	Element[H]
}

// Cloner is implemented by element types that own nested resources and
// must be duplicated explicitly. DeepCopyInto calls it per element when
// present; plain value types need not implement it.
type Cloner[T any] interface {
	DeepCopy() T
}

// Clearer is implemented by element types with per-element cleanup.
// List.Clear calls it on every element before releasing storage.
type Clearer interface {
	Clear()
}

// ErrDuplicateHandle is returned by Add when an element with the same
// handle is already present. Handle uniqueness is a hard invariant of the
// store; this error means the caller's handle assignment is broken.
type ErrDuplicateHandle struct {
	Handle uint32
}

func (e *ErrDuplicateHandle) Error() string {
	return fmt.Sprintf("store: handle %08x is not unique", e.Handle)
}

// ErrHandleNotFound is returned when an operation requires a handle that
// is not present. For optional lookup use FindByID's ok result instead.
type ErrHandleNotFound struct {
	Handle uint32
}

func (e *ErrHandleNotFound) Error() string {
	return fmt.Sprintf("store: no element with handle %08x", e.Handle)
}

// List is an ordered handle store over element type T with handle type H.
// PT is *T and carries the Element methods. The zero value is an empty
// store ready for use.
//
// The store owns its backing storage exclusively and stores elements by
// value. Pointers returned by At, FindByID, and All are valid only until
// the next mutating operation; insertion, removal, or growth may relocate
// elements.
type List[T any, PT ElementPtr[T, H], H Handle] struct {
	elem []T
}

// Len returns the number of elements.
func (l *List[T, PT, H]) Len() int {
	return len(l.elem)
}

// At returns a pointer to the element at position i, in ascending handle
// order. Valid only until the next mutation.
func (l *List[T, PT, H]) At(i int) PT {
	return PT(&l.elem[i])
}

// All iterates the elements in ascending handle order. The yielded
// pointers are valid only until the next mutation; the store must not be
// mutated during iteration.
func (l *List[T, PT, H]) All() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for i := range l.elem {
			if !yield(PT(&l.elem[i])) {
				return
			}
		}
	}
}

// MaximumID returns the largest handle in the store, or zero when empty.
// The store is sorted, so this is the last element's handle.
func (l *List[T, PT, H]) MaximumID() H {
	if len(l.elem) == 0 {
		return 0
	}
	return PT(&l.elem[len(l.elem)-1]).ID()
}

// AddAndAssignID assigns t the handle one greater than the current maximum
// (or one, when empty), inserts it, and returns the assigned handle. Used
// when the caller does not pre-select an identifier.
func (l *List[T, PT, H]) AddAndAssignID(t PT) H {
	h := l.MaximumID() + 1
	t.SetID(h)
	// The new handle is the maximum, so it belongs at the end.
	l.elem = append(l.elem, *t)
	return h
}

// Add inserts t at its sorted position, found by binary search on t's
// handle. Returns *ErrDuplicateHandle if an element with that handle
// already exists; the store is unchanged in that case.
func (l *List[T, PT, H]) Add(t PT) error {
	h := t.ID()

	// Insert within the closed interval [first, last].
	first, last := 0, len(l.elem)
	for first != last {
		mid := (first + last) / 2
		hm := PT(&l.elem[mid]).ID()
		switch {
		case hm > h:
			last = mid
		case hm < h:
			first = mid + 1
		default:
			return &ErrDuplicateHandle{Handle: uint32(h)}
		}
	}

	l.elem = slices.Insert(l.elem, first, *t)
	return nil
}

// MustAdd is Add for callers that guarantee handle uniqueness upstream;
// it panics on a duplicate.
func (l *List[T, PT, H]) MustAdd(t PT) {
	if err := l.Add(t); err != nil {
		panic(err)
	}
}

// FindByID binary-searches for the element with handle h. The returned
// pointer is valid only until the next mutation.
func (l *List[T, PT, H]) FindByID(h H) (PT, bool) {
	first, last := 0, len(l.elem)-1
	for first <= last {
		mid := (first + last) / 2
		hm := PT(&l.elem[mid]).ID()
		switch {
		case hm > h:
			last = mid - 1
		case hm < h:
			first = mid + 1
		default:
			return PT(&l.elem[mid]), true
		}
	}
	return nil, false
}

// MustFindByID is FindByID for handles that are required to exist; a
// missing handle is a broken invariant and panics.
func (l *List[T, PT, H]) MustFindByID(h H) PT {
	t, ok := l.FindByID(h)
	if !ok {
		panic(fmt.Sprintf("store: failed to look up handle %08x, searched %d elements", uint32(h), len(l.elem)))
	}
	return t
}

// ClearTags resets every element's tag to zero. Call before a tagging pass
// to avoid stale marks.
func (l *List[T, PT, H]) ClearTags() {
	for i := range l.elem {
		PT(&l.elem[i]).SetTag(0)
	}
}

// Tag sets the tag on the (at most one) element with handle h.
func (l *List[T, PT, H]) Tag(h H, tag int) {
	for i := range l.elem {
		if PT(&l.elem[i]).ID() == h {
			PT(&l.elem[i]).SetTag(tag)
		}
	}
}

// TagSet sets the tag on every element whose handle is in s.
func (l *List[T, PT, H]) TagSet(s *Set[H], tag int) {
	for i := range l.elem {
		if s.Contains(PT(&l.elem[i]).ID()) {
			PT(&l.elem[i]).SetTag(tag)
		}
	}
}

// Handles returns the set of handles currently present.
func (l *List[T, PT, H]) Handles() *Set[H] {
	s := NewSet[H]()
	for i := range l.elem {
		s.Add(PT(&l.elem[i]).ID())
	}
	return s
}

// RemoveTagged deletes every element with a nonzero tag in one
// left-compaction pass, preserving order. Removal only deletes, so the
// sortedness invariant is untouched. Backing capacity is kept.
func (l *List[T, PT, H]) RemoveTagged() {
	dest := 0
	for src := range l.elem {
		if PT(&l.elem[src]).Tag() != 0 {
			continue
		}
		if src != dest {
			l.elem[dest] = l.elem[src]
		}
		dest++
	}
	l.elem = l.elem[:dest]
}

// RemoveByID deletes the element with handle h, returning
// *ErrHandleNotFound when it is absent.
func (l *List[T, PT, H]) RemoveByID(h H) error {
	t, ok := l.FindByID(h)
	if !ok {
		return &ErrHandleNotFound{Handle: uint32(h)}
	}
	l.ClearTags()
	t.SetTag(1)
	l.RemoveTagged()
	return nil
}

// RemoveSet deletes every element whose handle is in s.
func (l *List[T, PT, H]) RemoveSet(s *Set[H]) {
	l.ClearTags()
	l.TagSet(s, 1)
	l.RemoveTagged()
}

// MoveSelfInto transfers the backing storage to dst in constant time,
// leaving l empty. No elements are copied and no per-element cleanup runs;
// dst's prior contents are discarded.
func (l *List[T, PT, H]) MoveSelfInto(dst *List[T, PT, H]) {
	dst.elem = l.elem
	l.elem = nil
}

// DeepCopyInto duplicates every element into fresh backing storage in dst,
// discarding dst's prior contents. Element types owning nested resources
// must implement Cloner; it is called per element. Plain value types are
// copied directly. No per-element cleanup runs on dst's prior contents.
func (l *List[T, PT, H]) DeepCopyInto(dst *List[T, PT, H]) {
	dst.elem = make([]T, len(l.elem))
	for i := range l.elem {
		if c, ok := any(PT(&l.elem[i])).(Cloner[T]); ok {
			dst.elem[i] = c.DeepCopy()
		} else {
			dst.elem[i] = l.elem[i]
		}
	}
}

// Clear runs each element's Clearer hook, when implemented, then releases
// the backing storage and resets the store to empty.
func (l *List[T, PT, H]) Clear() {
	for i := range l.elem {
		if c, ok := any(PT(&l.elem[i])).(Clearer); ok {
			c.Clear()
		}
	}
	l.elem = nil
}
