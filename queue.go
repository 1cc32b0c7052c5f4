/*
Package textq implements a double-ended queue of text records on a
circular, sentinel-terminated doubly linked list, together with
whole-queue transformations: reversal, group reversal, adjacent
duplicate elimination, dominance filters, two-way and k-way merging of
sorted queues, bottom-up merge sort and unbiased shuffling.

Every transformation reorders elements by relinking ring nodes; values
are never copied into auxiliary storage. All methods tolerate a nil
receiver and treat it as an empty queue that cannot be mutated. The
package is not safe for concurrent use.
*/
package textq

import (
	"github.com/mgnsk/textq/ring"
)

// Element is one queue member owning a single text value.
type Element = ring.Element[string]

// Queue is a deque of text records. Create queues with New; the zero
// value is not ready for use.
type Queue struct {
	l ring.Ring[string]
}

// New creates an empty queue.
func New() *Queue {
	q := &Queue{}
	q.l.Init()
	return q
}

// Clear removes every element from the queue.
func (q *Queue) Clear() {
	if q == nil {
		return
	}
	q.l.Init()
}

// PushFront inserts a new element holding s at the head of the queue.
// Returns false when q is nil.
func (q *Queue) PushFront(s string) bool {
	if q == nil {
		return false
	}
	q.l.PushFront(ring.NewElement(s))
	return true
}

// PushBack inserts a new element holding s at the tail of the queue.
// Returns false when q is nil.
func (q *Queue) PushBack(s string) bool {
	if q == nil {
		return false
	}
	q.l.PushBack(ring.NewElement(s))
	return true
}

// PopFront unlinks and returns the head element, or nil when q is nil
// or empty. Ownership of the element transfers to the caller. If buf is
// non-empty, at most len(buf)-1 bytes of the value are copied into it,
// followed by a terminating zero byte.
func (q *Queue) PopFront(buf []byte) *Element {
	if q == nil || q.l.Empty() {
		return nil
	}

	e := q.l.Front()
	e.Unlink()
	copyValue(buf, e.Value)

	return e
}

// PopBack unlinks and returns the tail element, or nil when q is nil or
// empty. Ownership of the element transfers to the caller. If buf is
// non-empty, at most len(buf)-1 bytes of the value are copied into it,
// followed by a terminating zero byte.
func (q *Queue) PopBack(buf []byte) *Element {
	if q == nil || q.l.Empty() {
		return nil
	}

	e := q.l.Back()
	e.Unlink()
	copyValue(buf, e.Value)

	return e
}

func copyValue(buf []byte, s string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
}

// Do calls f on each value in queue order until f returns false.
// f must not modify the queue.
func (q *Queue) Do(f func(s string) bool) {
	if q == nil {
		return
	}
	q.l.Do(func(e *Element) bool {
		return f(e.Value)
	})
}

// Len counts the elements in the queue by traversal. Returns 0 when q
// is nil or empty.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}

	n := 0
	q.l.Do(func(*Element) bool {
		n++
		return true
	})

	return n
}

// DeleteMiddle removes the element at index floor(n/2), advancing a
// pair of pointers inward from both ends until they meet. Returns false
// when q is nil or empty.
func (q *Queue) DeleteMiddle() bool {
	if q == nil || q.l.Empty() {
		return false
	}

	front, tail := q.l.Front(), q.l.Back()
	for front != tail && tail.Next() != front {
		front = front.Next()
		tail = tail.Prev()
	}
	front.Unlink()

	return true
}
