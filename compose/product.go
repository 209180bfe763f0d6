// Package compose combines machines into product machines using synchronous
// rendezvous: an action shared between components fires in all of them at
// once, an unshared action interleaves freely. Products are themselves
// machines, so subsystems can be composed recursively.
package compose

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ecranney/eng-village-circuit/lts"
)

// A Component is one named participant of a product.
type Component struct {
	Name string
	M    lts.Machine
}

// A Product is the parallel composition of its components.
//
// The state of a product is an lts.Vector with one entry per component, in
// component order. An action is enabled iff every component whose alphabet
// contains it has an enabled transition for it; firing advances exactly
// those components and leaves the others untouched. A component that
// declares an action without ever enabling it therefore blocks that action
// for the whole product.
type Product struct {
	name       string
	components []Component
	alphabet   []lts.Action
	// members maps an action label to the indices of the components that
	// carry the action in their alphabet.
	members map[string][]int
}

// New composes the components into a product machine.
func New(name string, components ...Component) (*Product, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("compose: product %v has no components", name)
	}
	seen := map[string]bool{}
	byLabel := map[string]lts.Action{}
	members := map[string][]int{}
	for i, c := range components {
		if seen[c.Name] {
			return nil, fmt.Errorf("compose: product %v has two components named %v", name, c.Name)
		}
		seen[c.Name] = true
		for _, a := range c.M.Alphabet() {
			byLabel[a.String()] = a
			members[a.String()] = append(members[a.String()], i)
		}
	}
	alphabet := maps.Values(byLabel)
	lts.SortActions(alphabet)
	return &Product{
		name:       name,
		components: slices.Clone(components),
		alphabet:   alphabet,
		members:    members,
	}, nil
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Alphabet() []lts.Action {
	return slices.Clone(p.alphabet)
}

func (p *Product) Components() []Component {
	return slices.Clone(p.components)
}

func (p *Product) Initial() lts.State {
	vec := make(lts.Vector, 0, len(p.components))
	for _, c := range p.components {
		vec = append(vec, c.M.Initial())
	}
	return vec
}

// Next fires the action in every component that shares it. It returns false
// if any sharing component blocks the action.
func (p *Product) Next(s lts.State, a lts.Action) (lts.State, bool) {
	vec, ok := s.(lts.Vector)
	if !ok || len(vec) != len(p.components) {
		return nil, false
	}
	idxs, ok := p.members[a.String()]
	if !ok {
		return nil, false
	}
	out := slices.Clone(vec)
	for _, i := range idxs {
		next, ok := p.components[i].M.Next(vec[i], a)
		if !ok {
			return nil, false
		}
		out[i] = next
	}
	return out, true
}

// LocalState returns the named component's entry of a composed state.
func (p *Product) LocalState(s lts.State, component string) (lts.State, bool) {
	vec, ok := s.(lts.Vector)
	if !ok || len(vec) != len(p.components) {
		return nil, false
	}
	for i, c := range p.components {
		if c.Name == component {
			return vec[i], true
		}
	}
	return nil, false
}
