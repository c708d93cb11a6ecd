// Package beap implements the bi-parental heap: an implicit priority
// queue embedded in a contiguous slice, laid out as triangular levels so
// that every non-boundary element has two parents and two children.
//
// Unlike a binary heap, a beap also supports membership search in
// O(sqrt(n)) time via a diagonal walk from the upper-right corner of the
// triangular layout (see Search), at the cost of insert and delete also
// costing O(sqrt(n)) instead of O(log n).
package beap

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/barnowlsnest/go-beap/pkg/layout"
)

// Beap is a generic max-beap: Peek and the element at index 0 are always
// the maximum of the stored multiset. Use a wrapper comparison (or a
// negated element type) to get min-beap behavior.
//
// Beap is not safe for concurrent use; callers sharing one instance across
// goroutines must synchronize externally.
type Beap[T cmp.Ordered] struct {
	arr      []T
	height   int
	stepHook func()
}

// New creates an empty Beap.
func New[T cmp.Ordered]() *Beap[T] {
	return &Beap[T]{}
}

// NewWithCapacity creates an empty Beap whose backing array is
// pre-allocated for the given number of elements.
func NewWithCapacity[T cmp.Ordered](capacity int) *Beap[T] {
	return &Beap[T]{arr: make([]T, 0, capacity)}
}

// FromSlice builds a Beap by inserting every element of s in order.
//
// This is a convenience constructor, not a bulk-build: each element goes
// through the ordinary O(sqrt(n)) Insert path, so building from n
// elements costs O(n*sqrt(n)) rather than the O(n) heapify a binary heap
// can do from an unsorted slice. The input slice is left untouched.
func FromSlice[T cmp.Ordered](s []T) *Beap[T] {
	b := NewWithCapacity[T](len(s))
	for _, v := range s {
		b.Insert(v)
	}
	return b
}

// Span returns the inclusive index range [start, end] of level h.
func Span(h int) (start, end int) {
	return layout.Span(h)
}

// Len returns the number of elements currently stored.
func (b *Beap[T]) Len() int {
	return len(b.arr)
}

// Height returns the level of the last element, or 0 when Len() <= 1.
func (b *Beap[T]) Height() int {
	return b.height
}

// IsEmpty reports whether the beap holds no elements.
func (b *Beap[T]) IsEmpty() bool {
	return len(b.arr) == 0
}

// Clear removes every element.
func (b *Beap[T]) Clear() {
	b.arr = b.arr[:0]
	b.height = 0
}

// ToSlice returns a copy of the backing array in beap order (not sorted
// order). Modifying the result does not affect the beap.
func (b *Beap[T]) ToSlice() []T {
	return slices.Clone(b.arr)
}

// Peek returns the maximum element without removing it, and false if the
// beap is empty.
func (b *Beap[T]) Peek() (T, bool) {
	if len(b.arr) == 0 {
		var zero T
		return zero, false
	}
	return b.arr[0], true
}

// Swap exchanges the elements at i and j directly, without restoring the
// heap invariant. It is a low-level primitive for callers that manage
// their own invariant (package verified's corruption tests use it to
// build known-bad beaps); ordinary callers want Insert/Delete instead.
// Panics with ErrIndexOutOfRange if either index is outside [0, Len()).
func (b *Beap[T]) Swap(i, j int) {
	n := len(b.arr)
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(ErrIndexOutOfRange)
	}
	b.arr[i], b.arr[j] = b.arr[j], b.arr[i]
}

// HookSteps installs fn to be called once per inner-loop iteration of
// Insert, Delete, and Search. It is an extension point for instrumenting
// the O(sqrt(n)) bound (see package verified) and is not part of the
// ordinary priority-queue API — most callers never need it.
func (b *Beap[T]) HookSteps(fn func()) {
	b.stepHook = fn
}

func (b *Beap[T]) step() {
	if b.stepHook != nil {
		b.stepHook()
	}
}

// Insert adds v and restores the heap invariant by sifting it up along a
// zig-zag path toward the root. At most ceil(sqrt(2n)) iterations.
func (b *Beap[T]) Insert(v T) {
	b.arr = append(b.arr, v)
	b.recomputeHeight()
	b.siftUp(len(b.arr) - 1)
}

// Delete removes the element at index i. h is the level of i, accepted to
// match the reference API (callers that already know it from a prior
// Search avoid recomputing it); the current implementation recomputes the
// level in O(1) regardless, so a stale or zero h never changes behavior.
// Panics with ErrIndexOutOfRange if i is outside [0, Len()).
func (b *Beap[T]) Delete(i, h int) {
	_ = h
	n := len(b.arr)
	if i < 0 || i >= n {
		panic(ErrIndexOutOfRange)
	}

	last := b.arr[n-1]
	b.arr = b.arr[:n-1]

	if i == n-1 {
		b.recomputeHeight()
		return
	}

	b.arr[i] = last
	b.recomputeHeight()

	li, hasL, ri, hasR := layout.Parents(i)
	if pi, ok := smallerOf(b.arr, li, hasL, ri, hasR); ok && b.arr[pi] < b.arr[i] {
		b.siftUp(i)
		return
	}
	b.siftDown(i)
}

// DeleteAt removes the element at index i, recomputing its level. It is
// equivalent to Delete(i, h) for the correct h, offered for callers that
// don't already have the level on hand.
func (b *Beap[T]) DeleteAt(i int) {
	if i < 0 || i >= len(b.arr) {
		panic(ErrIndexOutOfRange)
	}
	b.Delete(i, layout.LevelOf(i))
}

// Search performs a diagonal saddleback walk and reports the index and
// level of v, or false if v is not present. At most 2*ceil(sqrt(2n))
// iterations.
//
// The walk treats the beap as a matrix with row = column-within-level and
// col = level - row: every parent/child step moves along exactly one of
// those two axes, and both axes are sorted away from the root (row 0,
// col 0), the way a row-and-column-sorted matrix is sorted away from its
// corner. The walk starts at the opposite corner (row 0, col height), the
// first element of the deepest level, and, at each step, tries to
// move toward smaller values (row+1, i.e. descend to the right child in
// the same column) when the current element is too big, or toward larger
// values (col-1, i.e. ascend to the right parent in the same row) when
// it's too small — falling back to the other axis when the preferred one
// runs off the edge of the beap, so the walk steps around the staircase
// boundary of a partially-filled last level instead of stopping short.
//
// If duplicate values are present, Search may return any one occurrence.
func (b *Beap[T]) Search(v T) (index int, level int, found bool) {
	n := len(b.arr)
	if n == 0 {
		return 0, 0, false
	}

	row, col := 0, b.height
	for {
		b.step()

		idx, ok := b.cellIndex(row, col)
		if !ok {
			return 0, 0, false
		}

		switch {
		case b.arr[idx] == v:
			return idx, row + col, true

		case b.arr[idx] > v:
			if _, ok := b.cellIndex(row+1, col); ok {
				row++
				continue
			}
			if col > 0 {
				if _, ok := b.cellIndex(row, col-1); ok {
					col--
					continue
				}
			}
			return 0, 0, false

		default: // b.arr[idx] < v
			if col > 0 {
				if _, ok := b.cellIndex(row, col-1); ok {
					col--
					continue
				}
			}
			if _, ok := b.cellIndex(row+1, col); ok {
				row++
				continue
			}
			return 0, 0, false
		}
	}
}

// cellIndex returns the array index of the element at matrix position
// (row, col) — level row+col, column row within that level — and whether
// it exists in the current beap.
func (b *Beap[T]) cellIndex(row, col int) (int, bool) {
	if row < 0 || col < 0 {
		return 0, false
	}
	h := row + col
	start, end := layout.Span(h)
	idx := start + row
	if idx < start || idx > end || idx >= len(b.arr) {
		return 0, false
	}
	return idx, true
}

// Remove deletes one occurrence of v, found via Search. Reports whether a
// matching element was found and removed; removing an absent value is a
// no-op.
func (b *Beap[T]) Remove(v T) bool {
	i, h, found := b.Search(v)
	if !found {
		return false
	}
	b.Delete(i, h)
	return true
}

func (b *Beap[T]) recomputeHeight() {
	if len(b.arr) == 0 {
		b.height = 0
		return
	}
	b.height = layout.LevelOf(len(b.arr) - 1)
}

// siftUp moves the element at i toward the root, swapping with whichever
// existing parent is smaller, until the invariant holds or i reaches 0.
func (b *Beap[T]) siftUp(i int) int {
	for i > 0 {
		b.step()
		li, hasL, ri, hasR := layout.Parents(i)
		pi, ok := smallerOf(b.arr, li, hasL, ri, hasR)
		if !ok || !(b.arr[pi] < b.arr[i]) {
			break
		}
		b.arr[pi], b.arr[i] = b.arr[i], b.arr[pi]
		i = pi
	}
	return i
}

// siftDown moves the element at i toward the leaves, swapping with
// whichever existing child is larger, until the invariant holds or i has
// no more children.
func (b *Beap[T]) siftDown(i int) int {
	for {
		b.step()
		n := len(b.arr)
		li, hasL, ri, hasR := layout.Children(i, n)
		m, ok := largerOf(b.arr, li, hasL, ri, hasR)
		if !ok || !(b.arr[m] > b.arr[i]) {
			break
		}
		b.arr[i], b.arr[m] = b.arr[m], b.arr[i]
		i = m
	}
	return i
}

// smallerOf returns the index of whichever of the two optional indices
// holds the smaller value, used to pick which existing parent to swap
// with during sift-up.
func smallerOf[T cmp.Ordered](arr []T, li int, hasL bool, ri int, hasR bool) (int, bool) {
	switch {
	case hasL && hasR:
		if arr[li] < arr[ri] {
			return li, true
		}
		return ri, true
	case hasL:
		return li, true
	case hasR:
		return ri, true
	default:
		return 0, false
	}
}

// largerOf returns the index of whichever of the two optional indices
// holds the larger value, used to pick which existing child to swap
// with during sift-down.
func largerOf[T cmp.Ordered](arr []T, li int, hasL bool, ri int, hasR bool) (int, bool) {
	switch {
	case hasL && hasR:
		if arr[li] > arr[ri] {
			return li, true
		}
		return ri, true
	case hasL:
		return li, true
	case hasR:
		return ri, true
	default:
		return 0, false
	}
}
