package ring_test

import (
	"testing"

	"github.com/mgnsk/textq/ring"
	. "github.com/onsi/gomega"
)

func TestInit(t *testing.T) {
	var r ring.Ring[string]

	g := NewWithT(t)

	r.Init()
	g.Expect(r.Empty()).To(BeTrue())
	g.Expect(r.Singleton()).To(BeFalse())
	g.Expect(r.Front()).To(Equal(r.End()))
	g.Expect(r.Back()).To(Equal(r.End()))
}

func TestPushFront(t *testing.T) {
	var r ring.Ring[string]

	g := NewWithT(t)

	r.Init()
	r.PushFront(ring.NewElement("one"))
	g.Expect(r.Singleton()).To(BeTrue())

	r.PushFront(ring.NewElement("two"))
	g.Expect(r.Singleton()).To(BeFalse())

	expectValidRing(g, &r, []string{"two", "one"})
}

func TestPushBack(t *testing.T) {
	var r ring.Ring[string]

	g := NewWithT(t)

	r.Init()
	r.PushBack(ring.NewElement("one"))
	r.PushBack(ring.NewElement("two"))

	expectValidRing(g, &r, []string{"one", "two"})
}

func TestUnlink(t *testing.T) {
	t.Run("unlinking the middle element", func(t *testing.T) {
		var r ring.Ring[string]

		g := NewWithT(t)

		r.Init()
		r.PushBack(ring.NewElement("one"))
		r.PushBack(ring.NewElement("two"))
		r.PushBack(ring.NewElement("three"))

		e := r.Front().Next()
		e.Unlink()

		g.Expect(e.Next()).To(Equal(e))
		g.Expect(e.Prev()).To(Equal(e))
		expectValidRing(g, &r, []string{"one", "three"})
	})

	t.Run("unlinking the only element", func(t *testing.T) {
		var r ring.Ring[string]

		g := NewWithT(t)

		r.Init()
		r.PushBack(ring.NewElement("one"))
		r.Front().Unlink()

		g.Expect(r.Empty()).To(BeTrue())
	})
}

func TestMoveToFront(t *testing.T) {
	var r ring.Ring[string]

	g := NewWithT(t)

	r.Init()
	r.PushBack(ring.NewElement("one"))
	r.PushBack(ring.NewElement("two"))
	r.MoveToFront(r.Back())

	expectValidRing(g, &r, []string{"two", "one"})
}

func TestMoveToBack(t *testing.T) {
	var src, dst ring.Ring[string]

	g := NewWithT(t)

	src.Init()
	dst.Init()
	src.PushBack(ring.NewElement("one"))
	src.PushBack(ring.NewElement("two"))

	dst.MoveToBack(src.Front())

	expectValidRing(g, &src, []string{"two"})
	expectValidRing(g, &dst, []string{"one"})
}

func TestSplice(t *testing.T) {
	t.Run("both non-empty", func(t *testing.T) {
		var dst, src ring.Ring[string]

		g := NewWithT(t)

		dst.Init()
		src.Init()
		dst.PushBack(ring.NewElement("one"))
		src.PushBack(ring.NewElement("two"))
		src.PushBack(ring.NewElement("three"))

		dst.Splice(&src)

		g.Expect(src.Empty()).To(BeTrue())
		expectValidRing(g, &dst, []string{"one", "two", "three"})
	})

	t.Run("empty source", func(t *testing.T) {
		var dst, src ring.Ring[string]

		g := NewWithT(t)

		dst.Init()
		src.Init()
		dst.PushBack(ring.NewElement("one"))

		dst.Splice(&src)

		expectValidRing(g, &dst, []string{"one"})
	})

	t.Run("empty destination", func(t *testing.T) {
		var dst, src ring.Ring[string]

		g := NewWithT(t)

		dst.Init()
		src.Init()
		src.PushBack(ring.NewElement("one"))

		dst.Splice(&src)

		g.Expect(src.Empty()).To(BeTrue())
		expectValidRing(g, &dst, []string{"one"})
	})

	t.Run("splicing into itself", func(t *testing.T) {
		var r ring.Ring[string]

		g := NewWithT(t)

		r.Init()
		r.PushBack(ring.NewElement("one"))

		r.Splice(&r)

		expectValidRing(g, &r, []string{"one"})
	})
}

func TestCut(t *testing.T) {
	t.Run("cutting a prefix", func(t *testing.T) {
		var r, dst ring.Ring[string]

		g := NewWithT(t)

		r.Init()
		dst.Init()
		r.PushBack(ring.NewElement("one"))
		r.PushBack(ring.NewElement("two"))
		r.PushBack(ring.NewElement("three"))

		r.Cut(&dst, r.Front().Next())

		expectValidRing(g, &r, []string{"three"})
		expectValidRing(g, &dst, []string{"one", "two"})
	})

	t.Run("cutting the whole ring", func(t *testing.T) {
		var r, dst ring.Ring[string]

		g := NewWithT(t)

		r.Init()
		dst.Init()
		r.PushBack(ring.NewElement("one"))
		r.PushBack(ring.NewElement("two"))

		r.Cut(&dst, r.Back())

		g.Expect(r.Empty()).To(BeTrue())
		expectValidRing(g, &dst, []string{"one", "two"})
	})
}

func TestDo(t *testing.T) {
	var r ring.Ring[string]

	g := NewWithT(t)

	r.Init()
	r.PushBack(ring.NewElement("one"))
	r.PushBack(ring.NewElement("two"))
	r.PushBack(ring.NewElement("three"))

	var elems []string
	r.Do(func(e *ring.Element[string]) bool {
		elems = append(elems, e.Value)
		return true
	})
	g.Expect(elems).To(Equal([]string{"one", "two", "three"}))

	elems = nil
	r.Do(func(e *ring.Element[string]) bool {
		elems = append(elems, e.Value)
		return false
	})
	g.Expect(elems).To(Equal([]string{"one"}))
}

func expectValidRing(g *WithT, r *ring.Ring[string], values []string) {
	g.Expect(r.Empty()).To(BeFalse())
	g.Expect(r.Front().Prev()).To(Equal(r.End()))
	g.Expect(r.Back().Next()).To(Equal(r.End()))

	var forward []string
	for e := r.Front(); e != r.End(); e = e.Next() {
		forward = append(forward, e.Value)
	}
	g.Expect(forward).To(Equal(values))

	var backward []string
	for e := r.Back(); e != r.End(); e = e.Prev() {
		backward = append([]string{e.Value}, backward...)
	}
	g.Expect(backward).To(Equal(values))
}
