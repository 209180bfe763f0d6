package sim

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/ecranney/eng-village-circuit/lts"
	"github.com/ecranney/eng-village-circuit/valley"
)

func TestLapseBounds(t *testing.T) {
	p := NewParams(1)
	for i := 0; i < 100; i++ {
		if l := p.ArrivalLapse(); l < 0 || l >= p.MaxArriveInterval {
			t.Fatalf("Arrival lapse out of bounds: %v", l)
		}
		if l := p.DepartureLapse(); l < 0 || l >= p.MaxDepartInterval {
			t.Fatalf("Departure lapse out of bounds: %v", l)
		}
		if l := p.OperateLapse(); l < 0 || l >= p.MaxOperateInterval {
			t.Fatalf("Operate lapse out of bounds: %v", l)
		}
	}
}

func TestLapseReproducible(t *testing.T) {
	a, b := NewParams(42), NewParams(42)
	for i := 0; i < 20; i++ {
		if a.ArrivalLapse() != b.ArrivalLapse() {
			t.Fatalf("Expected identical lapses for identical seeds")
		}
	}
}

func TestWalkFiresOnlyEnabledActions(t *testing.T) {
	s, err := valley.New(valley.Config{Villages: 2})
	if err != nil {
		t.Fatalf("Unexpected error building system: %v", err)
	}
	m := s.Machine()

	trace := NewWalker(m, 7).Walk(200)
	if len(trace) != 200 {
		t.Fatalf("Expected the valley to never deadlock during the walk. Got %v steps", len(trace))
	}
	state := m.Initial()
	for step, a := range trace {
		next, ok := m.Next(state, a)
		if !ok {
			t.Fatalf("Step %v: Walk fired disabled action %v", step, a)
		}
		state = next
	}
}

func TestWalkReproducible(t *testing.T) {
	s, err := valley.New(valley.Config{Villages: 1})
	if err != nil {
		t.Fatalf("Unexpected error building system: %v", err)
	}
	first := NewWalker(s.Machine(), 3).Walk(50)
	second := NewWalker(s.Machine(), 3).Walk(50)
	if !slices.EqualFunc(first, second, lts.Action.Equals) {
		t.Errorf("Expected identical walks for identical seeds")
	}
}
