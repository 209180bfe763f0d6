package graph

import (
	"fmt"

	"github.com/ecranney/eng-village-circuit/lts"
)

// DefaultMaxStates bounds exploration when no explicit cap is configured.
// It is far above the state count of any sane valley configuration and
// protects against parameter misuse rather than ordinary growth.
const DefaultMaxStates = 1 << 20

// StateExplosionError reports that exploration was aborted because the
// visited set exceeded the configured cap. No partial graph is returned.
type StateExplosionError struct {
	Machine string
	Limit   int
}

func (e *StateExplosionError) Error() string {
	return fmt.Sprintf("graph: exploring %v exceeded the cap of %v states", e.Machine, e.Limit)
}

// An Option configures exploration.
type Option interface {
	exploreOption()
}

type maxStatesOption struct {
	n int
}

func (maxStatesOption) exploreOption() {}

// WithMaxStates caps the number of states exploration may visit.
func WithMaxStates(n int) Option {
	return maxStatesOption{n: n}
}

// Explore walks the machine breadth first from its initial state and returns
// the graph of every reachable state. Visited states are deduplicated by
// structural key, which guarantees termination for any finite machine.
// Exploration is deterministic: actions fire in alphabet order and nodes are
// numbered in discovery order.
func Explore(m lts.Machine, opts ...Option) (*Graph, error) {
	maxStates := DefaultMaxStates
	for _, opt := range opts {
		switch t := opt.(type) {
		case maxStatesOption:
			maxStates = t.n
		}
	}

	alphabet := m.Alphabet()
	g := &Graph{
		nodes: []*Node{},
		index: map[string]int{},
	}
	add := func(s lts.State, parent int, via lts.Action) int {
		id := len(g.nodes)
		g.nodes = append(g.nodes, &Node{
			ID:     id,
			State:  s,
			Edges:  []Edge{},
			parent: parent,
			via:    via,
		})
		g.index[s.Key()] = id
		return id
	}

	add(m.Initial(), -1, lts.Action{})
	for next := 0; next < len(g.nodes); next++ {
		node := g.nodes[next]
		for _, a := range alphabet {
			successor, ok := m.Next(node.State, a)
			if !ok {
				continue
			}
			id, seen := g.index[successor.Key()]
			if !seen {
				if len(g.nodes) >= maxStates {
					return nil, &StateExplosionError{Machine: m.Name(), Limit: maxStates}
				}
				id = add(successor, node.ID, a)
			}
			node.Edges = append(node.Edges, Edge{Action: a, To: id})
		}
	}
	return g, nil
}
