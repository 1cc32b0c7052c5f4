package ring

// Element is a ring node holding one value.
type Element[V any] struct {
	Value      V
	next, prev *Element[V]
}

// NewElement creates a detached element forming a singleton ring.
func NewElement[V any](v V) *Element[V] {
	e := &Element[V]{
		Value: v,
	}
	e.next = e
	e.prev = e
	return e
}

// Next returns the following element.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the preceding element.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// Link inserts s after this element.
func (e *Element[V]) Link(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// Unlink removes this element from its ring, leaving it a singleton.
func (e *Element[V]) Unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = e
	e.prev = e
}
