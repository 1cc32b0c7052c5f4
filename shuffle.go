package textq

import (
	"github.com/mgnsk/textq/randv"
	"github.com/mgnsk/textq/ring"
)

// Shuffle permutes the queue uniformly at random, drawing randomness
// from src. For each step a position is drawn from the remaining
// unshuffled prefix with randv.Uint32n, which rejects biased raw draws
// before reduction, so every permutation is equally likely.
func (q *Queue) Shuffle(src randv.Source) {
	if q == nil || q.l.Empty() || q.l.Singleton() {
		return
	}

	var acc ring.Ring[string]
	acc.Init()

	for i := q.Len(); i >= 1; i-- {
		e := q.l.Front()
		for j := randv.Uint32n(src, uint32(i)); j > 0; j-- {
			e = e.Next()
		}
		acc.MoveToBack(e)
	}

	q.l.Splice(&acc)
}
