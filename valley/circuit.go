package valley

import (
	"fmt"

	"github.com/ecranney/eng-village-circuit/compose"
	"github.com/ecranney/eng-village-circuit/lts"
)

// The circuit chains n villages with n+1 trains. Train i carries groups
// from village i-1 to village i; the first train boards where the cable car
// unloads and the last train returns groups to the car. Each interior
// village is shared by exactly two adjacent trains, which the relabelling
// table below encodes: a train's generic start/destination actions become
// the shared actions of its two endpoints.
//
//	car --Enter--> train[1] --> village[1] --> train[2] --> ... --> village[n] --> train[n+1] --Leave--> car

// boardAction is the post-relabelling action on which train i picks a group
// up at the start of its leg.
func boardAction(i int) lts.Action {
	if i == 1 {
		return Enter
	}
	return villageLeave(i - 1)
}

// alightAction is the post-relabelling action on which train i drops its
// group at the destination of its leg.
func alightAction(i, villages int) lts.Action {
	if i == villages+1 {
		return Leave
	}
	return villageEnter(i)
}

// circuit composes the trains and villages of an n-village valley.
func circuit(n int) (lts.Machine, error) {
	components := []compose.Component{}
	for i := 1; i <= n+1; i++ {
		t, err := train(i)
		if err != nil {
			return nil, err
		}
		wired, err := compose.Relabel(t,
			compose.Rename{From: lts.Act("start.leave"), To: boardAction(i)},
			compose.Rename{From: lts.Act("dst.enter"), To: alightAction(i, n)},
		)
		if err != nil {
			return nil, err
		}
		components = append(components, compose.Component{
			Name: fmt.Sprintf("train[%d]", i),
			M:    wired,
		})
	}
	for i := 1; i <= n; i++ {
		v, err := village(i)
		if err != nil {
			return nil, err
		}
		components = append(components, compose.Component{
			Name: fmt.Sprintf("village[%d]", i),
			M:    v,
		})
	}
	return compose.New("CIRCUIT", components...)
}
