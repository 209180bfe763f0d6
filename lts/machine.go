package lts

// A Machine is a finite-state automaton: an alphabet of actions it may
// participate in, an initial state, and a deterministic partial transition
// function. Atomic processes and composed products both implement Machine,
// which is what makes composition recursive.
type Machine interface {
	// The name of the machine, used in error reports and violation traces.
	Name() string

	// The full set of actions the machine may ever participate in, in a
	// deterministic order and without duplicates. The alphabet may contain
	// actions with no transition anywhere: a composition treats such an
	// action as permanently blocked by this machine, not as a free pass.
	Alphabet() []Action

	// The initial state of the machine.
	Initial() State

	// Next returns the successor state reached by firing the action in the
	// given state. The second return value is false if the action is not
	// enabled there.
	Next(s State, a Action) (State, bool)
}

// Enabled returns the subset of the machine's alphabet that has an enabled
// transition from the given state, in alphabet order.
func Enabled(m Machine, s State) []Action {
	out := []Action{}
	for _, a := range m.Alphabet() {
		if _, ok := m.Next(s, a); ok {
			out = append(out, a)
		}
	}
	return out
}
