package graph

import (
	"golang.org/x/exp/slices"
)

// An SCC is one strongly connected component of a reachable-state graph.
type SCC struct {
	// Nodes holds the member node ids, sorted.
	Nodes []int
	// Terminal is true when no edge leaves the component: once entered, the
	// system stays inside forever.
	Terminal bool
	// Trivial is true for a single node without a self-loop. A trivial
	// component carries no infinite execution.
	Trivial bool
}

// SCCs computes the strongly connected components of the graph with an
// iterative Tarjan walk. Components are returned in a deterministic order
// sorted by their smallest node id.
func SCCs(g *Graph) []SCC {
	n := g.Len()
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	stack := []int{}
	components := [][]int{}
	counter := 0

	// The explicit frame stack replaces recursion: deep graphs would
	// otherwise nest one call per state.
	type frame struct {
		node int
		edge int
	}
	for root := 0; root < n; root++ {
		if index[root] >= 0 {
			continue
		}
		frames := []frame{{node: root}}
		index[root] = counter
		lowlink[root] = counter
		counter++
		stack = append(stack, root)
		onStack[root] = true

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			node := g.Node(f.node)
			if f.edge < len(node.Edges) {
				to := node.Edges[f.edge].To
				f.edge++
				if index[to] < 0 {
					index[to] = counter
					lowlink[to] = counter
					counter++
					stack = append(stack, to)
					onStack[to] = true
					frames = append(frames, frame{node: to})
				} else if onStack[to] {
					if index[to] < lowlink[f.node] {
						lowlink[f.node] = index[to]
					}
				}
				continue
			}

			// All successors handled: pop the frame, fold the lowlink into
			// the parent, and emit a component if this node is its root.
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[f.node] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[f.node]
				}
			}
			if lowlink[f.node] == index[f.node] {
				members := []int{}
				for {
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[top] = false
					members = append(members, top)
					if top == f.node {
						break
					}
				}
				slices.Sort(members)
				components = append(components, members)
			}
		}
	}

	slices.SortFunc(components, func(a, b []int) bool {
		return a[0] < b[0]
	})

	out := make([]SCC, 0, len(components))
	member := make([]int, n)
	for i, c := range components {
		for _, id := range c {
			member[id] = i
		}
	}
	for i, c := range components {
		scc := SCC{Nodes: c, Terminal: true, Trivial: len(c) == 1}
		for _, id := range c {
			for _, e := range g.Node(id).Edges {
				if member[e.To] != i {
					scc.Terminal = false
				} else if e.To == id {
					scc.Trivial = false
				}
			}
		}
		// A multi-node component always contains a cycle.
		if len(c) > 1 {
			scc.Trivial = false
		}
		out = append(out, scc)
	}
	return out
}
