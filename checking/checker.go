// Package checking verifies safety and progress properties of a composed
// machine and reports full counterexample traces: the contract is that a
// failed check always surfaces the complete ordered action sequence a
// consumer needs to replay it.
package checking

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/ecranney/eng-village-circuit/lts"
)

// A Violation is a failed safety property: the domain reached a state where
// it can fire an action the property automaton cannot follow.
type Violation struct {
	// Property is the name of the violated property machine.
	Property string
	// Trace is the shortest action sequence from the initial state up to and
	// including the offending action.
	Trace []lts.Action
}

func (v Violation) String() string {
	return fmt.Sprintf("property %v violated after %v", v.Property, lts.Labels(v.Trace))
}

// A Witness is a failed progress property: a closed cycle the system can
// loop in forever without ever performing a required action.
type Witness struct {
	// Path leads from the initial state to the entry of the cycle.
	Path []lts.Action
	// Cycle is the sequence of actions of the starving loop.
	Cycle []lts.Action
}

func (w *Witness) String() string {
	return fmt.Sprintf("progress violated: after %v the system can cycle on %v forever",
		lts.Labels(w.Path), lts.Labels(w.Cycle))
}

// Report renders a safety verdict and a human readable description,
// including one trace per violated property.
func Report(violations []Violation) (bool, string) {
	if len(violations) == 0 {
		return true, "All safety properties hold"
	}
	var buffer bytes.Buffer
	wrt := tabwriter.NewWriter(&buffer, 4, 4, 0, ' ', 0)
	fmt.Fprintf(wrt, "%v safety properties broken.\n", len(violations))
	for _, v := range violations {
		fmt.Fprintf(wrt, "%v:\n", v.Property)
		for _, a := range v.Trace {
			fmt.Fprintf(wrt, "\t-> %v\n", a)
		}
	}
	wrt.Flush()
	return false, buffer.String()
}
