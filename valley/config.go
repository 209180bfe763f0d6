// Package valley models the Concurrencia valley: tour groups ride a
// single-slot cable car into the valley, tour a fixed circuit of villages
// chained by single-slot trains, and ride the car home. The package builds
// the composed transition system for a configuration and verifies its
// safety and progress properties.
package valley

import "fmt"

// DefaultVillages is the number of villages of the original system.
const DefaultVillages = 6

// Capacity returns the group bound that keeps the valley safe: enough
// groups to fill every village and train, but never one more than the cable
// car's single slot can drain.
func Capacity(villages int) int {
	return 2*villages + 1
}

// Config selects the size of the valley.
type Config struct {
	// Villages is the number of villages in the circuit. Zero selects
	// DefaultVillages.
	Villages int

	// MaxGroups caps the number of tour groups in the valley at once. Zero
	// selects Capacity(Villages). A bound above the capacity is accepted
	// here: it is the safety check, not configuration validation, that
	// proves it wrong, complete with a counterexample trace.
	MaxGroups int
}

// ConfigError reports a configuration no system can be built from.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("valley: invalid %v %v: %v", e.Field, e.Value, e.Reason)
}

func (c Config) withDefaults() Config {
	if c.Villages == 0 {
		c.Villages = DefaultVillages
	}
	if c.MaxGroups == 0 {
		c.MaxGroups = Capacity(c.Villages)
	}
	return c
}

func (c Config) validate() error {
	if c.Villages < 1 {
		return &ConfigError{Field: "villages", Value: c.Villages, Reason: "the circuit needs at least one village"}
	}
	if c.MaxGroups < 1 {
		return &ConfigError{Field: "max groups", Value: c.MaxGroups, Reason: "at least one group must be admitted"}
	}
	return nil
}
