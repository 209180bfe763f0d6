package checking

import (
	"github.com/ecranney/eng-village-circuit/compose"
	"github.com/ecranney/eng-village-circuit/graph"
	"github.com/ecranney/eng-village-circuit/lts"
)

// CheckSafety verifies the domain against shadow property machines. Each
// property is composed with the domain and the product is explored; a
// reachable state in which the domain can fire an action the property cannot
// follow violates the property. Properties only share actions the domain
// also accepts, so "the property has no transition here" is the one failure
// mode.
//
// Every property is checked in its own composition: a property that blocks
// the product early must not mask later violations of another property.
// At most one violation is reported per property, and nodes are visited in
// BFS order, so each reported trace is a minimal counterexample.
func CheckSafety(domain lts.Machine, properties []lts.Machine, opts ...graph.Option) ([]Violation, error) {
	violations := []Violation{}
	for _, prop := range properties {
		v, err := checkProperty(domain, prop, opts...)
		if err != nil {
			return nil, err
		}
		if v != nil {
			violations = append(violations, *v)
		}
	}
	return violations, nil
}

func checkProperty(domain lts.Machine, prop lts.Machine, opts ...graph.Option) (*Violation, error) {
	product, err := compose.New("check",
		compose.Component{Name: domain.Name(), M: domain},
		compose.Component{Name: prop.Name(), M: prop},
	)
	if err != nil {
		return nil, err
	}
	g, err := graph.Explore(product, opts...)
	if err != nil {
		return nil, err
	}

	for _, node := range g.Nodes() {
		vec, ok := node.State.(lts.Vector)
		if !ok {
			continue
		}
		domainState, propState := vec[0], vec[1]
		for _, a := range prop.Alphabet() {
			if _, ok := prop.Next(propState, a); ok {
				continue
			}
			if _, ok := domain.Next(domainState, a); !ok {
				continue
			}
			// The domain behaviour stepped outside the trace set the
			// property allows.
			return &Violation{
				Property: prop.Name(),
				Trace:    append(g.Trace(node.ID), a),
			}, nil
		}
	}
	return nil, nil
}
