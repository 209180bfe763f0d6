package valley

import (
	"fmt"

	"github.com/ecranney/eng-village-circuit/lts"
)

// The actions at the system boundary. Enter and Leave are the cable car's
// side of the circuit: Enter fires when a group steps off the car onto the
// first train, Leave when the last train hands a group back to the car.
var (
	Arrive  = lts.Act("arrive")
	Depart  = lts.Act("depart")
	Operate = lts.Act("operate")
	Enter   = lts.Act("enter")
	Leave   = lts.Act("leave")
)

// Cable car states: the car's position (terminus or valley) crossed with its
// load (idle, a group outbound for its tour, a group inbound home). These
// are the six reachable combinations of {occupied, inValley, returning};
// the impossible tuples are simply not represented.
const (
	carIdleTerminus     lts.Atom = "idle.terminus"
	carIdleValley       lts.Atom = "idle.valley"
	carOutboundTerminus lts.Atom = "outbound.terminus"
	carOutboundValley   lts.Atom = "outbound.valley"
	carInboundValley    lts.Atom = "inbound.valley"
	carInboundTerminus  lts.Atom = "inbound.terminus"
)

// cableCar builds the single-slot cable car. Groups board at the terminus,
// step off into the circuit from the valley, board again in the valley after
// their tour, and exit at the terminus; each group makes exactly one circuit
// before it must exit. The operator may move the car at any time, loaded or
// not, so an occupied car in the valley can either unload or be hauled back
// up: both branches are deliberate.
func cableCar() (*lts.Process, error) {
	return lts.NewProcess("CAR", carIdleTerminus).
		Transition(carIdleTerminus, Operate, carIdleValley).
		Transition(carIdleValley, Operate, carIdleTerminus).
		Transition(carOutboundTerminus, Operate, carOutboundValley).
		Transition(carOutboundValley, Operate, carOutboundTerminus).
		Transition(carInboundValley, Operate, carInboundTerminus).
		Transition(carInboundTerminus, Operate, carInboundValley).
		Transition(carIdleTerminus, Arrive, carOutboundTerminus).
		Transition(carOutboundValley, Enter, carIdleValley).
		Transition(carIdleValley, Leave, carInboundValley).
		Transition(carInboundTerminus, Depart, carIdleTerminus).
		Build()
}

// counter bounds the number of groups in the valley: arrive increments and
// blocks at max, depart decrements and blocks at zero.
func counter(name string, max int) (*lts.Process, error) {
	b := lts.NewProcess(name, countState(0))
	for n := 0; n < max; n++ {
		b.Transition(countState(n), Arrive, countState(n+1))
		b.Transition(countState(n+1), Depart, countState(n))
	}
	return b.Build()
}

func countState(n int) lts.Atom {
	return lts.Atom(fmt.Sprintf("count[%d]", n))
}

// village is a single-slot stop on the circuit: one group in, that group
// out, nothing else.
func village(i int) (*lts.Process, error) {
	return lts.NewProcess(fmt.Sprintf("VILLAGE[%d]", i), "empty").
		Transition("empty", villageEnter(i), "occupied").
		Transition("occupied", villageLeave(i), "empty").
		Build()
}

func villageEnter(i int) lts.Action {
	return lts.Actf("village[%d].enter", i)
}

func villageLeave(i int) lts.Action {
	return lts.Actf("village[%d].leave", i)
}

// train is the single-slot shuttle template: a group boards at the start of
// the leg and alights at its destination, exactly once per cycle. Instances
// are wired into the circuit by relabelling the two actions.
func train(i int) (*lts.Process, error) {
	return lts.NewProcess(fmt.Sprintf("TRAIN[%d]", i), "empty").
		Transition("empty", lts.Act("start.leave"), "loaded").
		Transition("loaded", lts.Act("dst.enter"), "empty").
		Build()
}

// The producer, consumer and operator stand in for the outside world: new
// groups keep arriving, finished groups keep departing, and the operator
// keeps the car moving. When an action of theirs never fires again, that is
// the starvation the progress checker looks for.
func producer() (*lts.Process, error) {
	return lts.NewProcess("PRODUCER", "run").
		Transition("run", Arrive, "run").
		Build()
}

func consumer() (*lts.Process, error) {
	return lts.NewProcess("CONSUMER", "run").
		Transition("run", Depart, "run").
		Build()
}

func operator() (*lts.Process, error) {
	return lts.NewProcess("OPERATOR", "run").
		Transition("run", Operate, "run").
		Build()
}
