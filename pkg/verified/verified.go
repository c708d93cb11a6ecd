// Package verified wraps pkg/beap's Beap with an iteration counter and a
// full structural invariant check, for driving the complexity-bound and
// heap-property tests described alongside the beap itself. It is test
// tooling, not an alternate priority-queue API: production callers that
// don't need either of those should use pkg/beap directly.
package verified

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/barnowlsnest/go-beap/pkg/beap"
	"github.com/barnowlsnest/go-beap/pkg/layout"
)

// Verified wraps a *beap.Beap[T] by embedding it, so the beap's methods
// are promoted alongside the ones overridden here. Every mutating or searching
// operation resets the iteration counter before delegating, so Iters
// always reports the step count of the most recent call rather than a
// running lifetime total.
type Verified[T cmp.Ordered] struct {
	*beap.Beap[T]
	iters int
}

// New creates an empty Verified beap.
func New[T cmp.Ordered]() *Verified[T] {
	v := &Verified[T]{Beap: beap.New[T]()}
	v.Beap.HookSteps(func() { v.iters++ })
	return v
}

// FromSlice builds a Verified beap by inserting every element of s, the
// same way beap.FromSlice does.
func FromSlice[T cmp.Ordered](s []T) *Verified[T] {
	v := New[T]()
	for _, val := range s {
		v.Insert(val)
	}
	return v
}

// Iters reports the number of inner-loop steps taken by the most recent
// Insert, Delete, DeleteAt, Search, or Remove call.
func (v *Verified[T]) Iters() int {
	return v.iters
}

// Insert delegates to the wrapped beap, resetting Iters beforehand.
func (v *Verified[T]) Insert(val T) {
	v.iters = 0
	v.Beap.Insert(val)
}

// Delete delegates to the wrapped beap, resetting Iters beforehand.
func (v *Verified[T]) Delete(i, h int) {
	v.iters = 0
	v.Beap.Delete(i, h)
}

// DeleteAt delegates to the wrapped beap, resetting Iters beforehand.
func (v *Verified[T]) DeleteAt(i int) {
	v.iters = 0
	v.Beap.DeleteAt(i)
}

// Search delegates to the wrapped beap, resetting Iters beforehand.
func (v *Verified[T]) Search(val T) (index int, level int, found bool) {
	v.iters = 0
	return v.Beap.Search(val)
}

// Remove delegates to the wrapped beap, resetting Iters beforehand.
func (v *Verified[T]) Remove(val T) bool {
	v.iters = 0
	return v.Beap.Remove(val)
}

// CheckInvariants walks the whole beap and panics at the first violation
// of the universal invariants: the height counter must agree with the
// recomputed level of the last element, and every element must be no
// greater than each of its existing parents. A failed check is a
// programming error, not a recoverable condition — callers that expect
// it to fail (the invariant-detector tests) should wrap the call in
// recover or testify's require.Panics.
func (v *Verified[T]) CheckInvariants() {
	n := v.Len()
	if n == 0 {
		return
	}

	if got, want := layout.LevelOf(n-1), v.Height(); got != want {
		panic(fmt.Errorf("%w: height is %d, recomputed level of index %d is %d", ErrHeightMismatch, want, n-1, got))
	}

	arr := v.ToSlice()
	for i := 1; i < n; i++ {
		left, hasLeft, right, hasRight := layout.Parents(i)
		if hasLeft && arr[i] > arr[left] {
			panic(fmt.Errorf("%w: arr[%d]=%v exceeds left parent arr[%d]=%v", ErrHeapViolation, i, arr[i], left, arr[left]))
		}
		if hasRight && arr[i] > arr[right] {
			panic(fmt.Errorf("%w: arr[%d]=%v exceeds right parent arr[%d]=%v", ErrHeapViolation, i, arr[i], right, arr[right]))
		}
	}
}

// IterBound returns ceil(sqrt(2n)), the bound that Insert and Delete must
// not exceed, measured just before the mutating call.
func IterBound[N constraints.Integer](n N) int {
	return int(math.Ceil(math.Sqrt(2 * float64(n))))
}

// SearchIterBound returns 2*ceil(sqrt(2n)), the bound that Search must
// not exceed.
func SearchIterBound[N constraints.Integer](n N) int {
	return 2 * IterBound(n)
}
