package textq

import (
	"github.com/mgnsk/textq/ring"
)

// Chain is a ring of contexts, each referencing one sorted queue. It is
// the input structure for k-way merging. Create chains with NewChain;
// the zero value is not ready for use.
type Chain struct {
	l ring.Ring[*Queue]
}

// NewChain creates an empty context chain.
func NewChain() *Chain {
	c := &Chain{}
	c.l.Init()
	return c
}

// Add appends a context referencing q to the chain.
func (c *Chain) Add(q *Queue) {
	if c == nil {
		return
	}
	c.l.PushBack(ring.NewElement(q))
}

// Merge merges every queue in the chain into the first context's queue,
// one queue at a time, leaving all other queues empty. Each queue must
// be pre-sorted in the requested order. Returns the final element
// count, or 0 when c is nil or empty; a single-context chain is
// returned as is.
func (c *Chain) Merge(descend bool) int {
	if c == nil || c.l.Empty() {
		return 0
	}

	first := c.l.Front()
	for e := first.Next(); e != c.l.End(); e = e.Next() {
		first.Value.Merge(e.Value, descend)
	}

	return first.Value.Len()
}

// MergeTree merges the chain as a tournament: each round merges
// contexts at distance stride pairwise and doubles the stride,
// finishing in log2(k) rounds. The value sequence matches Merge;
// queues contributing equal values may interleave them differently
// between the two strategies.
func (c *Chain) MergeTree(descend bool) int {
	if c == nil || c.l.Empty() {
		return 0
	}

	var ctxs []*ring.Element[*Queue]
	c.l.Do(func(e *ring.Element[*Queue]) bool {
		ctxs = append(ctxs, e)
		return true
	})

	for stride := 1; stride < len(ctxs); stride *= 2 {
		for i := 0; i+stride < len(ctxs); i += 2 * stride {
			ctxs[i].Value.Merge(ctxs[i+stride].Value, descend)
		}
	}

	return ctxs[0].Value.Len()
}
