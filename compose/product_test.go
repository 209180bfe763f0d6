package compose

import (
	"testing"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ecranney/eng-village-circuit/lts"
)

func buildProcess(t *testing.T, b *lts.Builder) *lts.Process {
	t.Helper()
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Unexpected error building process: %v", err)
	}
	return p
}

// A gate opens and shuts; a visitor passes through an open gate.
// "pass" is shared, "open"/"shut" belong to the gate alone.
func gateAndVisitor(t *testing.T) *Product {
	gate := buildProcess(t, lts.NewProcess("GATE", "shut").
		Transition("shut", lts.Act("open"), "open").
		Transition("open", lts.Act("shut"), "shut").
		Transition("open", lts.Act("pass"), "open"))
	visitor := buildProcess(t, lts.NewProcess("VISITOR", "outside").
		Transition("outside", lts.Act("pass"), "inside"))
	p, err := New("SYSTEM",
		Component{Name: "gate", M: gate},
		Component{Name: "visitor", M: visitor},
	)
	if err != nil {
		t.Fatalf("Unexpected error composing: %v", err)
	}
	return p
}

func TestProductRendezvous(t *testing.T) {
	p := gateAndVisitor(t)

	initial := p.Initial()
	if got := lts.Labels(lts.Enabled(p, initial)); !slices.Equal(got, []string{"open"}) {
		t.Errorf("Expected the shared action to be blocked while the gate is shut. Got %v", got)
	}

	open, ok := p.Next(initial, lts.Act("open"))
	if !ok {
		t.Fatalf("Expected the unshared action to interleave freely")
	}
	if got, _ := p.LocalState(open, "visitor"); !lts.StatesEqual(got, lts.Atom("outside")) {
		t.Errorf("Expected an unshared action to leave the other component untouched. Got %v", got)
	}

	after, ok := p.Next(open, lts.Act("pass"))
	if !ok {
		t.Fatalf("Expected the shared action to be enabled once every participant enables it")
	}
	gateState, _ := p.LocalState(after, "gate")
	visitorState, _ := p.LocalState(after, "visitor")
	if !lts.StatesEqual(gateState, lts.Atom("open")) || !lts.StatesEqual(visitorState, lts.Atom("inside")) {
		t.Errorf("Expected the shared action to advance every sharing component. Got %v, %v", gateState, visitorState)
	}

	if _, ok := p.Next(after, lts.Act("pass")); ok {
		t.Errorf("Expected pass to be blocked once the visitor is inside")
	}
}

func TestDeclaredActionBlocksProduct(t *testing.T) {
	worker := buildProcess(t, lts.NewProcess("WORKER", "idle").
		Transition("idle", lts.Act("work"), "idle"))
	// The guard declares "work" but never enables it, so the product must
	// treat it as a genuine block rather than an auto-pass.
	guard := buildProcess(t, lts.NewProcess("GUARD", "watch").
		Declare(lts.Act("work")))
	p, err := New("SYSTEM",
		Component{Name: "worker", M: worker},
		Component{Name: "guard", M: guard},
	)
	if err != nil {
		t.Fatalf("Unexpected error composing: %v", err)
	}
	if got := lts.Enabled(p, p.Initial()); len(got) != 0 {
		t.Errorf("Expected a declared-but-never-enabled action to block the product. Got %v", got)
	}
}

func TestRecursiveComposition(t *testing.T) {
	inner := gateAndVisitor(t)
	logger := buildProcess(t, lts.NewProcess("LOGGER", "ready").
		Transition("ready", lts.Act("pass"), "logged"))
	outer, err := New("OUTER",
		Component{Name: "system", M: inner},
		Component{Name: "logger", M: logger},
	)
	if err != nil {
		t.Fatalf("Unexpected error composing recursively: %v", err)
	}

	s, ok := outer.Next(outer.Initial(), lts.Act("open"))
	if !ok {
		t.Fatalf("Expected open to be enabled in the nested product")
	}
	s, ok = outer.Next(s, lts.Act("pass"))
	if !ok {
		t.Fatalf("Expected pass to synchronize across nesting levels")
	}
	loggerState, _ := outer.LocalState(s, "logger")
	if !lts.StatesEqual(loggerState, lts.Atom("logged")) {
		t.Errorf("Expected the outer participant to advance on the shared action. Got %v", loggerState)
	}
	if s.Key() != "((open inside) logged)" {
		t.Errorf("Unexpected nested state key. Got %v", s.Key())
	}
}

func TestComposeErrors(t *testing.T) {
	gate := buildProcess(t, lts.NewProcess("GATE", "shut").
		Transition("shut", lts.Act("open"), "open"))
	if _, err := New("EMPTY"); err == nil {
		t.Errorf("Expected an error composing zero components")
	}
	_, err := New("DUP",
		Component{Name: "a", M: gate},
		Component{Name: "a", M: gate},
	)
	if err == nil {
		t.Errorf("Expected an error composing duplicate component names")
	}
}

func TestRelabel(t *testing.T) {
	train := buildProcess(t, lts.NewProcess("TRAIN", "empty").
		Transition("empty", lts.Act("start.leave"), "loaded").
		Transition("loaded", lts.Act("dst.enter"), "empty"))
	m, err := Relabel(train,
		Rename{From: lts.Act("start.leave"), To: lts.Act("village[1].leave")},
		Rename{From: lts.Act("dst.enter"), To: lts.Act("village[2].enter")},
	)
	if err != nil {
		t.Fatalf("Unexpected error relabelling: %v", err)
	}

	got := lts.Labels(m.Alphabet())
	expected := []string{"village[1].leave", "village[2].enter"}
	if !slices.Equal(got, expected) {
		t.Errorf("Unexpected relabelled alphabet. Got %v. Expected %v", got, expected)
	}
	s, ok := m.Next(m.Initial(), lts.Act("village[1].leave"))
	if !ok || !lts.StatesEqual(s, lts.Atom("loaded")) {
		t.Errorf("Expected the relabelled action to drive the original transition. Got %v, %v", s, ok)
	}
	if _, ok := m.Next(m.Initial(), lts.Act("start.leave")); ok {
		t.Errorf("Expected the original label to be gone after relabelling")
	}

	_, err = Relabel(train,
		Rename{From: lts.Act("start.leave"), To: lts.Act("clash")},
		Rename{From: lts.Act("dst.enter"), To: lts.Act("clash")},
	)
	if err == nil {
		t.Errorf("Expected an error when two actions collapse onto one label")
	}
}

func TestHide(t *testing.T) {
	gate := buildProcess(t, lts.NewProcess("GATE", "shut").
		Transition("shut", lts.Act("open"), "open").
		Transition("open", lts.Act("shut"), "shut"))
	m := Hide(gate, lts.Act("shut"))

	if got := lts.Labels(Visible(m)); !slices.Equal(got, []string{"open"}) {
		t.Errorf("Unexpected visible alphabet. Got %v", got)
	}
	if got := lts.Labels(m.Alphabet()); !slices.Equal(got, []string{"open", "shut"}) {
		t.Errorf("Expected hiding to leave the stepping alphabet untouched. Got %v", got)
	}
	if s, ok := m.Next(lts.Atom("open"), lts.Act("shut")); !ok || !lts.StatesEqual(s, lts.Atom("shut")) {
		t.Errorf("Expected hidden actions to keep firing. Got %v, %v", s, ok)
	}
	if !Hidden(m, lts.Act("shut")) || Hidden(m, lts.Act("open")) {
		t.Errorf("Unexpected hidden set")
	}

	// Hiding accumulates across wrappers.
	m = Hide(m, lts.Act("open"))
	if got := Visible(m); len(got) != 0 {
		t.Errorf("Expected everything hidden. Got %v", got)
	}
}

// Composing a process with a disjointly relabelled copy of itself and hiding
// the copy's alphabet must be behaviourally equivalent to the original:
// the sets of observable action sequences coincide at every depth.
func TestRelabelHideRoundTrip(t *testing.T) {
	village := buildProcess(t, lts.NewProcess("VILLAGE", "empty").
		Transition("empty", lts.Act("enter"), "occupied").
		Transition("occupied", lts.Act("leave"), "empty"))

	shadow, err := Relabel(village,
		Rename{From: lts.Act("enter"), To: lts.Act("shadow.enter")},
		Rename{From: lts.Act("leave"), To: lts.Act("shadow.leave")},
	)
	if err != nil {
		t.Fatalf("Unexpected error relabelling: %v", err)
	}
	pair, err := New("PAIR",
		Component{Name: "original", M: village},
		Component{Name: "shadow", M: shadow},
	)
	if err != nil {
		t.Fatalf("Unexpected error composing: %v", err)
	}
	hidden := Hide(pair, lts.Act("shadow.enter"), lts.Act("shadow.leave"))

	const depth = 5
	got := visibleTraces(hidden, depth)
	expected := visibleTraces(village, depth)
	if !slices.Equal(got, expected) {
		t.Errorf("Unexpected observable traces. Got %v. Expected %v", got, expected)
	}
}

// visibleTraces collects the set of observable action sequences of length at
// most depth steps, sorted, with hidden actions contributing a step but no
// observation.
func visibleTraces(m lts.Machine, depth int) []string {
	traces := map[string]bool{}
	var walk func(s lts.State, trace []string, steps int)
	walk = func(s lts.State, trace []string, steps int) {
		traces[joinTrace(trace)] = true
		if steps == 0 {
			return
		}
		for _, a := range m.Alphabet() {
			next, ok := m.Next(s, a)
			if !ok {
				continue
			}
			if Hidden(m, a) {
				walk(next, trace, steps-1)
			} else {
				walk(next, append(trace, a.String()), steps-1)
			}
		}
	}
	walk(m.Initial(), []string{}, depth)
	out := maps.Keys(traces)
	slices.Sort(out)
	return out
}

func joinTrace(trace []string) string {
	out := ""
	for _, label := range trace {
		out += " " + label
	}
	return out
}
