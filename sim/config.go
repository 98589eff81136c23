package sim

import "fmt"

// Config groups everything needed to assemble a Simulator. The zero value is
// not runnable: at least one line count must be set.
type Config struct {
	// LineCounts maps each category to how many lines of it the store opens
	// with. Absent categories get no lines.
	LineCounts map[LineCategory]int

	// Policy names the line-selection policy ("" = least-person).
	Policy string

	// Model names the checkout-duration model ("" = deterministic).
	Model string

	// Seed drives the random policy and the stochastic model. Runs with equal
	// configs, seeds and initial events are identical.
	Seed int64

	// CountFirst makes least-time projections include the customer currently
	// in service.
	CountFirst bool
}

// Validate checks the by-name fields so construction fails with an error
// instead of a panic from the factories.
func (c Config) Validate() error {
	if !IsValidSelectionPolicy(c.Policy) {
		return fmt.Errorf("unknown selection policy %q, valid policies are %v", c.Policy, AvailableSelectionPolicies())
	}
	if !IsValidCheckoutModel(c.Model) {
		return fmt.Errorf("unknown checkout model %q, valid models are %v", c.Model, AvailableCheckoutModels())
	}
	return nil
}
