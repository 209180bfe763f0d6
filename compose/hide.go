package compose

import (
	"github.com/ecranney/eng-village-circuit/lts"
)

type hider struct {
	lts.Machine
	hidden map[string]bool
}

// Hide removes actions from the externally visible alphabet of a machine
// without changing its transition semantics: hidden actions still fire and
// still synchronize, they are just no longer observable. Hiding matters when
// behaviour is compared or progress is checked over observable actions only.
func Hide(m lts.Machine, actions ...lts.Action) lts.Machine {
	hidden := map[string]bool{}
	if h, ok := m.(*hider); ok {
		// Hiding an already partially hidden machine accumulates.
		for label := range h.hidden {
			hidden[label] = true
		}
		m = h.Machine
	}
	for _, a := range actions {
		hidden[a.String()] = true
	}
	return &hider{Machine: m, hidden: hidden}
}

// Visible returns the observable alphabet of a machine: its full alphabet
// minus any hidden actions.
func Visible(m lts.Machine) []lts.Action {
	h, ok := m.(*hider)
	if !ok {
		return m.Alphabet()
	}
	out := []lts.Action{}
	for _, a := range h.Machine.Alphabet() {
		if !h.hidden[a.String()] {
			out = append(out, a)
		}
	}
	return out
}

// Hidden reports whether the action is hidden in the machine.
func Hidden(m lts.Machine, a lts.Action) bool {
	h, ok := m.(*hider)
	if !ok {
		return false
	}
	return h.hidden[a.String()]
}
