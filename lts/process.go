package lts

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Process is an atomic finite-state automaton built from explicit guarded
// transitions. Processes are immutable once built and purely functional over
// their own local state.
type Process struct {
	name     string
	initial  Atom
	alphabet map[string]Action
	next     map[step]Atom
}

type step struct {
	state  string
	action string
}

// AmbiguousTransitionError reports a process definition that maps the same
// (state, action) pair to two different successor states, breaking the
// determinism invariant. It is surfaced at build time, before any
// exploration can run on the malformed model.
type AmbiguousTransitionError struct {
	Process string
	From    State
	Action  Action
}

func (e *AmbiguousTransitionError) Error() string {
	return fmt.Sprintf("lts: process %v has two successors for action %v in state %v", e.Process, e.Action, e.From)
}

// A Builder assembles a Process transition by transition.
//
// The first error encountered is remembered and returned by Build; the
// intermediate calls can therefore be chained without error handling.
type Builder struct {
	name     string
	initial  Atom
	alphabet map[string]Action
	next     map[step]Atom
	err      error
}

// NewProcess creates a builder for a process with the given name and initial
// state. The name is only used in error reports and property violations.
func NewProcess(name string, initial Atom) *Builder {
	return &Builder{
		name:     name,
		initial:  initial,
		alphabet: map[string]Action{},
		next:     map[step]Atom{},
	}
}

// Transition adds a guarded transition from one state to another. The action
// is added to the alphabet.
func (b *Builder) Transition(from Atom, act Action, to Atom) *Builder {
	if b.err != nil {
		return b
	}
	key := step{state: from.Key(), action: act.String()}
	if prev, ok := b.next[key]; ok && prev != to {
		b.err = &AmbiguousTransitionError{Process: b.name, From: from, Action: act}
		return b
	}
	b.alphabet[act.String()] = act
	b.next[key] = to
	return b
}

// Declare extends the alphabet with actions the process never transitions
// on. A declared action with no transition blocks every composition the
// process takes part in; this is how a property process forbids an action.
func (b *Builder) Declare(actions ...Action) *Builder {
	if b.err != nil {
		return b
	}
	for _, a := range actions {
		b.alphabet[a.String()] = a
	}
	return b
}

// Build finalizes the process, returning the first definition error if one
// occurred.
func (b *Builder) Build() (*Process, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Process{
		name:     b.name,
		initial:  b.initial,
		alphabet: maps.Clone(b.alphabet),
		next:     maps.Clone(b.next),
	}, nil
}

func (p *Process) Name() string {
	return p.name
}

func (p *Process) Initial() State {
	return p.initial
}

func (p *Process) Alphabet() []Action {
	out := maps.Values(p.alphabet)
	SortActions(out)
	return out
}

// Next returns the successor of firing the action in the given state, or
// false if no guarded rule matches.
func (p *Process) Next(s State, a Action) (State, bool) {
	to, ok := p.next[step{state: s.Key(), action: a.String()}]
	if !ok {
		return nil, false
	}
	return to, true
}

// States returns every state that appears in the transition table, sorted.
// Mostly useful for inspecting small processes in tests and error reports.
func (p *Process) States() []Atom {
	seen := map[Atom]bool{p.initial: true}
	for key, to := range p.next {
		seen[Atom(key.state)] = true
		seen[to] = true
	}
	out := maps.Keys(seen)
	slices.Sort(out)
	return out
}
