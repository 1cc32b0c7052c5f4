package textq

import (
	"github.com/mgnsk/textq/ring"
)

// Dedup removes every element that participates in a run of two or more
// equal adjacent values; no element of such a run survives. The queue
// must already be sorted. Returns false when q is nil.
func (q *Queue) Dedup() bool {
	if q == nil {
		return false
	}

	dup := false
	for e := q.l.Front(); e != q.l.End(); {
		next := e.Next()
		switch {
		case next != q.l.End() && e.Value == next.Value:
			e.Unlink()
			dup = true
		case dup:
			e.Unlink()
			dup = false
		}
		e = next
	}

	return true
}

// SwapPairs exchanges the elements at positions (0,1), (2,3) and so on.
// With an odd length the last element stays in place.
func (q *Queue) SwapPairs() {
	if q == nil || q.l.Empty() {
		return
	}

	for e := q.l.Front(); e != q.l.End() && e.Next() != q.l.End(); e = e.Next() {
		n := e.Next()
		e.Unlink()
		n.Link(e)
	}
}

// Reverse reverses the element order in place.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	reverseRing(&q.l)
}

func reverseRing(l *ring.Ring[string]) {
	for e := l.Front(); e != l.End(); {
		next := e.Next()
		l.MoveToFront(e)
		e = next
	}
}

// ReverseGroups reverses each consecutive run of k elements
// independently, keeping the runs in their original order. A trailing
// run shorter than k keeps its element order.
func (q *Queue) ReverseGroups(k int) {
	if q == nil || k <= 1 || q.l.Empty() || q.l.Singleton() {
		return
	}

	var acc, run ring.Ring[string]
	acc.Init()
	run.Init()

	n := 0
	for e := q.l.Front(); e != q.l.End(); e = e.Next() {
		n++
		if n == k {
			q.l.Cut(&run, e)
			reverseRing(&run)
			acc.Splice(&run)

			// The counted prefix is gone; restart from the new front.
			e = q.l.End()
			n = 0
		}
	}

	// Leftover run shorter than k, unreversed.
	acc.Splice(&q.l)
	q.l.Splice(&acc)
}
