package compose

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ecranney/eng-village-circuit/lts"
)

// A Rename substitutes one action label for another.
type Rename struct {
	From lts.Action
	To   lts.Action
}

type relabeled struct {
	inner    lts.Machine
	alphabet []lts.Action
	// toInner maps an external label back to the action the inner machine
	// transitions on.
	toInner map[string]lts.Action
}

// Relabel applies a pure label rewrite to a machine before composition.
// Actions named in the renames are replaced in the machine's alphabet and
// transitions; everything else is untouched. Relabelling is how a process
// template such as a train is wired to the shared actions of its neighbours.
//
// Two distinct actions may not collapse onto the same label: that would
// merge transitions and silently change the behaviour of the machine.
func Relabel(m lts.Machine, renames ...Rename) (lts.Machine, error) {
	rewrite := map[string]lts.Action{}
	for _, r := range renames {
		rewrite[r.From.String()] = r.To
	}
	alphabet := []lts.Action{}
	toInner := map[string]lts.Action{}
	for _, a := range m.Alphabet() {
		outer := a
		if to, ok := rewrite[a.String()]; ok {
			outer = to
		}
		if _, ok := toInner[outer.String()]; ok {
			return nil, fmt.Errorf("compose: relabelling %v maps two actions onto %v", m.Name(), outer)
		}
		toInner[outer.String()] = a
		alphabet = append(alphabet, outer)
	}
	lts.SortActions(alphabet)
	return &relabeled{
		inner:    m,
		alphabet: alphabet,
		toInner:  toInner,
	}, nil
}

func (r *relabeled) Name() string {
	return r.inner.Name()
}

func (r *relabeled) Alphabet() []lts.Action {
	return slices.Clone(r.alphabet)
}

func (r *relabeled) Initial() lts.State {
	return r.inner.Initial()
}

func (r *relabeled) Next(s lts.State, a lts.Action) (lts.State, bool) {
	inner, ok := r.toInner[a.String()]
	if !ok {
		return nil, false
	}
	return r.inner.Next(s, inner)
}
