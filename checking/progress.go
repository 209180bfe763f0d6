package checking

import (
	"github.com/ecranney/eng-village-circuit/graph"
	"github.com/ecranney/eng-village-circuit/lts"
)

// CheckProgress looks for an infinite execution that never performs any of
// the target actions: a terminal, non-trivial strongly connected component
// of the reachable graph with no edge labelled by the target set. If one
// exists the system can starve, and a witness cycle is returned; otherwise
// the result is nil.
func CheckProgress(g *graph.Graph, target []lts.Action) *Witness {
	wanted := map[string]bool{}
	for _, a := range target {
		wanted[a.String()] = true
	}

	for _, scc := range graph.SCCs(g) {
		if scc.Trivial || !scc.Terminal {
			continue
		}
		if componentFires(g, scc, wanted) {
			continue
		}
		entry := scc.Nodes[0]
		lead, cycle := cycleTrace(g, entry)
		return &Witness{
			Path:  append(g.Trace(entry), lead...),
			Cycle: cycle,
		}
	}
	return nil
}

// componentFires reports whether any edge inside the component carries one
// of the wanted actions. Edges of a terminal component never leave it, so
// every edge of a member node counts.
func componentFires(g *graph.Graph, scc graph.SCC, wanted map[string]bool) bool {
	for _, id := range scc.Nodes {
		for _, e := range g.Node(id).Edges {
			if wanted[e.Action.String()] {
				return true
			}
		}
	}
	return false
}

// cycleTrace walks forward from the entry node, always following the first
// edge, until a state repeats. The actions before the first revisit lead
// into the loop, the actions between the two visits close it.
func cycleTrace(g *graph.Graph, entry int) (lead, cycle []lts.Action) {
	seenAt := map[int]int{}
	trace := []lts.Action{}
	node := entry
	for {
		if at, ok := seenAt[node]; ok {
			return trace[:at], trace[at:]
		}
		seenAt[node] = len(trace)
		e := g.Node(node).Edges[0]
		trace = append(trace, e.Action)
		node = e.To
	}
}
