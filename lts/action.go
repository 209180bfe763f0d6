package lts

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// An Action is an instantaneous, named event that machines synchronize on.
// Actions are compared structurally: two actions are the same iff their path
// and name are equal. The path carries indexed prefixes such as
// "train[2].dst" so that instances of the same process template fire
// distinct labels.
type Action struct {
	Path []string
	Name string
}

// Act creates an action from its dotted label.
//
// The last segment is the action name, everything before it is the path:
// Act("train[2].dst.leave") has path ["train[2]", "dst"] and name "leave".
func Act(label string) Action {
	segments := strings.Split(label, ".")
	return Action{
		Path: segments[:len(segments)-1],
		Name: segments[len(segments)-1],
	}
}

// Actf creates an action from a fmt-style dotted label, e.g.
// Actf("village[%d].enter", i).
func Actf(format string, args ...any) Action {
	return Act(fmt.Sprintf(format, args...))
}

// The dotted label of the action. Rendering is injective for labels built
// with Act, so the string form doubles as the canonical key of the action.
func (a Action) String() string {
	if len(a.Path) == 0 {
		return a.Name
	}
	return strings.Join(a.Path, ".") + "." + a.Name
}

// Equals compares two actions structurally.
func (a Action) Equals(b Action) bool {
	return a.Name == b.Name && slices.Equal(a.Path, b.Path)
}

// SortActions sorts a slice of actions by label, in place.
// Used wherever a deterministic iteration order over an action set is needed.
func SortActions(actions []Action) {
	slices.SortFunc(actions, func(a, b Action) bool {
		return a.String() < b.String()
	})
}

// Labels renders a sequence of actions to their dotted labels.
func Labels(actions []Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.String())
	}
	return out
}
