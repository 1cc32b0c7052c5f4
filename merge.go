package textq

import (
	"github.com/mgnsk/textq/ring"
)

// Merge merges the sorted queue other into q, which must be sorted in
// the same order, and leaves other empty. Elements move by relinking
// only. Returns the resulting size of q; when q is nil, returns the
// size of other unchanged.
//
// On equal values the ascending merge prefers the element already in q
// while the descending merge prefers the element from other. The
// asymmetry is a fixed tie-break policy kept for reproducibility.
func (q *Queue) Merge(other *Queue, descend bool) int {
	if q == nil {
		return other.Len()
	}
	if other == nil || other == q || other.l.Empty() {
		return q.Len()
	}
	if q.l.Empty() {
		q.l.Splice(&other.l)
		return q.Len()
	}

	var acc ring.Ring[string]
	acc.Init()

	for !q.l.Empty() && !other.l.Empty() {
		a, b := q.l.Front(), other.l.Front()

		win := a
		if descend {
			if b.Value >= a.Value {
				win = b
			}
		} else if b.Value < a.Value {
			win = b
		}

		acc.MoveToBack(win)
	}

	acc.Splice(&q.l)
	acc.Splice(&other.l)
	q.l.Splice(&acc)

	return q.Len()
}

// Sort sorts the queue by an iterative bottom-up merge sort: runs of
// doubling length are cut from the front and merged pairwise until a
// single run remains. O(n log n) time, no recursion and no value
// copies.
func (q *Queue) Sort(descend bool) {
	if q == nil {
		return
	}

	n := q.Len()
	if n < 2 {
		return
	}

	for width := 1; width < n; width *= 2 {
		var acc ring.Ring[string]
		acc.Init()

		for !q.l.Empty() {
			var left, right Queue
			left.l.Init()
			right.l.Init()

			cutRun(&q.l, &left.l, width)
			cutRun(&q.l, &right.l, width)

			left.Merge(&right, descend)
			acc.Splice(&left.l)
		}

		q.l.Splice(&acc)
	}
}

// cutRun moves up to width elements from the front of src into the
// empty ring dst.
func cutRun(src, dst *ring.Ring[string], width int) {
	if src.Empty() {
		return
	}

	e := src.Front()
	for i := 1; i < width && e.Next() != src.End(); i++ {
		e = e.Next()
	}

	src.Cut(dst, e)
}
