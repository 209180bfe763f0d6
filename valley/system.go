package valley

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ecranney/eng-village-circuit/checking"
	"github.com/ecranney/eng-village-circuit/compose"
	"github.com/ecranney/eng-village-circuit/graph"
	"github.com/ecranney/eng-village-circuit/lts"
)

// A System is the composed valley for one configuration, ready to be
// verified. Verification is exhaustive and deterministic: running the same
// check twice on the same system yields identical results.
type System struct {
	cfg        Config
	domain     *compose.Product
	properties []lts.Machine
	maxStates  int
}

// An Option tunes a System.
type Option interface {
	systemOption()
}

type maxStatesOption struct {
	n int
}

func (maxStatesOption) systemOption() {}

// WithMaxStates caps the number of states any single check may explore.
// The default cap is graph.DefaultMaxStates.
func WithMaxStates(n int) Option {
	return maxStatesOption{n: n}
}

// New validates the configuration and builds the composed system together
// with its safety properties.
func New(cfg Config, opts ...Option) (*System, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	maxStates := graph.DefaultMaxStates
	for _, opt := range opts {
		switch t := opt.(type) {
		case maxStatesOption:
			maxStates = t.n
		}
	}

	car, err := cableCar()
	if err != nil {
		return nil, err
	}
	domain, err := assemble(cfg, car)
	if err != nil {
		return nil, err
	}
	props, err := properties(cfg.Villages)
	if err != nil {
		return nil, err
	}
	return &System{
		cfg:        cfg,
		domain:     domain,
		properties: props,
		maxStates:  maxStates,
	}, nil
}

// assemble wires the domain: the group counter, the cable car, the three
// outside-world processes and the village circuit, all synchronizing on the
// boundary actions. The car is a parameter so that tests can wire in a
// deliberately broken variant.
func assemble(cfg Config, car lts.Machine) (*compose.Product, error) {
	count, err := counter("COUNT", cfg.MaxGroups)
	if err != nil {
		return nil, err
	}
	prod, err := producer()
	if err != nil {
		return nil, err
	}
	cons, err := consumer()
	if err != nil {
		return nil, err
	}
	op, err := operator()
	if err != nil {
		return nil, err
	}
	circ, err := circuit(cfg.Villages)
	if err != nil {
		return nil, err
	}
	return compose.New("CONCURRENCIA",
		compose.Component{Name: "count", M: count},
		compose.Component{Name: "car", M: car},
		compose.Component{Name: "producer", M: prod},
		compose.Component{Name: "consumer", M: cons},
		compose.Component{Name: "operator", M: op},
		compose.Component{Name: "circuit", M: circ},
	)
}

// Config returns the effective configuration, defaults applied.
func (s *System) Config() Config {
	return s.cfg
}

// Machine exposes the composed domain, e.g. for exploration or DOT export.
func (s *System) Machine() lts.Machine {
	return s.domain
}

// VerifySafety checks every safety property of the valley and returns the
// violations found, each with its minimal counterexample trace. An empty
// slice means the configuration is safe.
func (s *System) VerifySafety() ([]checking.Violation, error) {
	return checking.CheckSafety(s.domain, s.properties, graph.WithMaxStates(s.maxStates))
}

// VerifyProgress checks the named progress target against the composed
// system. It returns nil if no execution starves the target, otherwise a
// witness for the starving cycle. Target names are listed by Targets.
func (s *System) VerifyProgress(target string) (*checking.Witness, error) {
	actions, ok := s.Targets()[target]
	if !ok {
		names := maps.Keys(s.Targets())
		slices.Sort(names)
		return nil, fmt.Errorf("valley: unknown progress target %q, have %v", target, names)
	}
	g, err := graph.Explore(s.domain, graph.WithMaxStates(s.maxStates))
	if err != nil {
		return nil, err
	}
	return checking.CheckProgress(g, actions), nil
}

// Targets names the progress action sets of the valley: groups keep
// arriving, groups keep departing, trains keep being boarded, and trains
// keep being left.
func (s *System) Targets() map[string][]lts.Action {
	board := []lts.Action{}
	alight := []lts.Action{}
	for i := 1; i <= s.cfg.Villages+1; i++ {
		board = append(board, boardAction(i))
		alight = append(alight, alightAction(i, s.cfg.Villages))
	}
	return map[string][]lts.Action{
		"arrive": {Arrive},
		"depart": {Depart},
		"board":  board,
		"alight": alight,
	}
}
