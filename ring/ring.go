/*
Package ring implements a circular doubly linked list terminated by a
non-data sentinel node.

Iteration runs from Front until End; Front and Back return the sentinel
when the ring is empty. Elements move between rings by relinking only.
*/
package ring

// Ring is a circular list whose sentinel marks both ends.
// A Ring must be initialized with Init before use.
type Ring[V any] struct {
	head Element[V]
}

// Init resets r to an empty ring.
func (r *Ring[V]) Init() {
	r.head.next = &r.head
	r.head.prev = &r.head
}

// End returns the sentinel.
func (r *Ring[V]) End() *Element[V] {
	return &r.head
}

// Empty reports whether the ring has no elements.
func (r *Ring[V]) Empty() bool {
	return r.head.next == &r.head
}

// Singleton reports whether the ring has exactly one element.
func (r *Ring[V]) Singleton() bool {
	return r.head.next != &r.head && r.head.next == r.head.prev
}

// Front returns the first element, or the sentinel when empty.
func (r *Ring[V]) Front() *Element[V] {
	return r.head.next
}

// Back returns the last element, or the sentinel when empty.
func (r *Ring[V]) Back() *Element[V] {
	return r.head.prev
}

// PushFront inserts e at the front of the ring.
func (r *Ring[V]) PushFront(e *Element[V]) {
	r.head.Link(e)
}

// PushBack inserts e at the back of the ring.
func (r *Ring[V]) PushBack(e *Element[V]) {
	r.head.prev.Link(e)
}

// MoveToFront unlinks e from whichever ring holds it and inserts it at
// the front of r.
func (r *Ring[V]) MoveToFront(e *Element[V]) {
	e.Unlink()
	r.PushFront(e)
}

// MoveToBack unlinks e from whichever ring holds it and inserts it at
// the back of r.
func (r *Ring[V]) MoveToBack(e *Element[V]) {
	e.Unlink()
	r.PushBack(e)
}

// Splice moves every element of src to the back of r, leaving src
// empty. Splicing a ring into itself is a no-op.
func (r *Ring[V]) Splice(src *Ring[V]) {
	if src == r || src.Empty() {
		return
	}

	first := src.head.next
	last := src.head.prev
	src.Init()

	at := r.head.prev
	at.next = first
	first.prev = at
	last.next = &r.head
	r.head.prev = last
}

// Cut moves the contiguous range from the front of r through last into
// dst, which must be an initialized empty ring. last must be an element
// of r.
func (r *Ring[V]) Cut(dst *Ring[V], last *Element[V]) {
	if r.Empty() {
		return
	}

	first := r.head.next
	r.head.next = last.next
	last.next.prev = &r.head

	dst.head.next = first
	first.prev = &dst.head
	dst.head.prev = last
	last.next = &dst.head
}

// Do calls f on each element in forward order until f returns false.
// f must not modify the ring.
func (r *Ring[V]) Do(f func(e *Element[V]) bool) {
	for e := r.head.next; e != &r.head; e = e.next {
		if !f(e) {
			return
		}
	}
}
