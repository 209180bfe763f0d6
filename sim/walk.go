package sim

import (
	"math/rand"

	"github.com/ecranney/eng-village-circuit/lts"
)

// A Walker plays one random execution of a machine: at each step it fires a
// pseudo-randomly chosen enabled action. It explores nothing and proves
// nothing; it exists to produce concrete, replayable traces of a model the
// checkers have already verified.
type Walker struct {
	m    lts.Machine
	rand *rand.Rand
}

// NewWalker creates a walker over the machine. Walks with the same seed
// visit the same actions in the same order.
func NewWalker(m lts.Machine, seed int64) *Walker {
	return &Walker{
		m:    m,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Walk fires up to steps actions starting from the initial state and
// returns the trace. It stops early if no action is enabled.
func (w *Walker) Walk(steps int) []lts.Action {
	trace := []lts.Action{}
	s := w.m.Initial()
	for i := 0; i < steps; i++ {
		enabled := lts.Enabled(w.m, s)
		if len(enabled) == 0 {
			break
		}
		a := enabled[w.rand.Intn(len(enabled))]
		next, ok := w.m.Next(s, a)
		if !ok {
			break
		}
		trace = append(trace, a)
		s = next
	}
	return trace
}
