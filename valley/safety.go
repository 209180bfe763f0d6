package valley

import (
	"fmt"

	"github.com/ecranney/eng-village-circuit/compose"
	"github.com/ecranney/eng-village-circuit/lts"
)

// The property machines shadow the domain processes: each one accepts
// exactly the traces the matching invariant allows, and the safety checker
// flags any reachable state where the domain can fire an action a property
// cannot follow.

// safeVillage accepts at most one enter before a leave: mutual exclusion on
// the village.
func safeVillage(i int) (*lts.Process, error) {
	return lts.NewProcess(fmt.Sprintf("SAFE_VILLAGE[%d]", i), "free").
		Transition("free", villageEnter(i), "held").
		Transition("held", villageLeave(i), "free").
		Build()
}

// safeTrain accepts a boarding before an alighting, exactly once per cycle.
func safeTrain(i, villages int) (*lts.Process, error) {
	return lts.NewProcess(fmt.Sprintf("SAFE_TRAIN[%d]", i), "free").
		Transition("free", boardAction(i), "held").
		Transition("held", alightAction(i, villages), "free").
		Build()
}

// safeCar bundles the cable car rules: boarding and unloading only at the
// end of the car's track that matches the group's phase, one circuit per
// group before a mandatory exit, and never more groups in the valley than
// the capacity bound. The capacity guard counts arrivals against
// Capacity(villages) regardless of how the domain counter was configured,
// which is exactly what catches a misconfigured bound.
func safeCar(villages int) (lts.Machine, error) {
	phase, err := cableCar()
	if err != nil {
		return nil, err
	}
	guard, err := counter("CAPACITY", Capacity(villages))
	if err != nil {
		return nil, err
	}
	return compose.New("SAFE_CAR",
		compose.Component{Name: "phase", M: phase},
		compose.Component{Name: "capacity", M: guard},
	)
}

// properties builds the full shadow set for an n-village valley.
func properties(villages int) ([]lts.Machine, error) {
	out := []lts.Machine{}
	for i := 1; i <= villages; i++ {
		p, err := safeVillage(i)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	for i := 1; i <= villages+1; i++ {
		p, err := safeTrain(i, villages)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	car, err := safeCar(villages)
	if err != nil {
		return nil, err
	}
	out = append(out, car)
	return out, nil
}
