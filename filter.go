package textq

// Ascend removes every element that has a strictly smaller value
// somewhere to its right, leaving a non-decreasing sequence. Returns
// the number of surviving elements.
func (q *Queue) Ascend() int {
	return q.filterDominated(func(v, bound string) bool {
		return v > bound
	})
}

// Descend removes every element that has a strictly greater value
// somewhere to its right, leaving a non-increasing sequence. Returns
// the number of surviving elements.
func (q *Queue) Descend() int {
	return q.filterDominated(func(v, bound string) bool {
		return v < bound
	})
}

// filterDominated scans right to left keeping bound at the value of the
// nearest survivor; elements dominated by the bound are dropped.
func (q *Queue) filterDominated(dominated func(v, bound string) bool) int {
	if q == nil || q.l.Empty() {
		return 0
	}

	last := q.l.Back()
	bound := last.Value
	count := 1

	for e := last.Prev(); e != q.l.End(); {
		prev := e.Prev()
		if dominated(e.Value, bound) {
			e.Unlink()
		} else {
			bound = e.Value
			count++
		}
		e = prev
	}

	return count
}
