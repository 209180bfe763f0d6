package lts

import "strings"

// A State is one machine's local state. Atomic machines use Atom states,
// composed machines nest the states of their components in a Vector.
//
// Two states are equal iff their keys are equal. Keys are canonical, so they
// can be used to deduplicate states in maps.
type State interface {
	Key() string
}

// An Atom is an explicit named local state, e.g. "occupied".
type Atom string

func (a Atom) Key() string {
	return string(a)
}

func (a Atom) String() string {
	return string(a)
}

// A Vector is the ordered composed state of a product machine: one entry per
// component, in component order.
type Vector []State

func (v Vector) Key() string {
	keys := make([]string, 0, len(v))
	for _, s := range v {
		keys = append(keys, s.Key())
	}
	return "(" + strings.Join(keys, " ") + ")"
}

func (v Vector) String() string {
	return v.Key()
}

// StatesEqual compares two states structurally.
func StatesEqual(a, b State) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key()
}
