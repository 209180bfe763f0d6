package graph

import (
	"fmt"
	"io"
)

// Export writes the graph in graphviz DOT format, one node per reachable
// state and one labelled edge per fired action. Handy for eyeballing small
// configurations; large ones are better summarized than drawn.
func (g *Graph) Export(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph reachable {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=circle];")
	fmt.Fprintln(w, "  start [shape=point];")
	fmt.Fprintf(w, "  start -> n0;\n")
	for _, node := range g.Nodes() {
		fmt.Fprintf(w, "  n%d [label=%q];\n", node.ID, node.State.Key())
	}
	for _, node := range g.Nodes() {
		for _, e := range node.Edges {
			fmt.Fprintf(w, "  n%d -> n%d [label=%q];\n", node.ID, e.To, e.Action)
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
