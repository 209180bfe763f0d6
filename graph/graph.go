// Package graph builds and analyses the reachable-state graph of a machine:
// nodes are composed states deduplicated by structural key, edges are fired
// actions. The graph is built once per check and never mutated afterwards.
package graph

import (
	"github.com/ecranney/eng-village-circuit/lts"
)

// A Node is one reachable composed state.
type Node struct {
	// ID is the node's index in BFS discovery order. The root has ID 0.
	ID    int
	State lts.State
	Edges []Edge

	// Parent edge recorded during exploration, used to reconstruct the
	// action trace from the root. The root has parent -1.
	parent int
	via    lts.Action
}

// An Edge is one fired transition.
type Edge struct {
	Action lts.Action
	To     int
}

// A Graph is the reachable-state graph of a machine, rooted at its initial
// state.
type Graph struct {
	nodes []*Node
	index map[string]int
}

// Root returns the node of the initial state.
func (g *Graph) Root() *Node {
	return g.nodes[0]
}

// Len returns the number of reachable states.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns the nodes in BFS discovery order. The slice is shared: the
// caller must not modify it.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) *Node {
	return g.nodes[id]
}

// Lookup returns the node holding the given state, if it is reachable.
func (g *Graph) Lookup(s lts.State) (*Node, bool) {
	id, ok := g.index[s.Key()]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// Trace returns the sequence of actions fired on the BFS path from the root
// to the node. Because discovery is breadth first this is a shortest trace.
func (g *Graph) Trace(id int) []lts.Action {
	trace := []lts.Action{}
	for n := g.nodes[id]; n.parent >= 0; n = g.nodes[n.parent] {
		trace = append(trace, n.via)
	}
	// The walk collected the trace back to front.
	for i, j := 0, len(trace)-1; i < j; i, j = i+1, j-1 {
		trace[i], trace[j] = trace[j], trace[i]
	}
	return trace
}
