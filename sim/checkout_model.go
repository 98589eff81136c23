package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// CheckoutModel estimates how many ticks a customer's checkout takes at a
// given line. Implementations must return a non-negative duration and must
// panic on line categories they have no parameters for, since an unknown
// category can only come from a miswired store.
type CheckoutModel interface {
	Duration(c *Customer, line *CheckoutLine) int64
}

// DefaultCheckoutWeights returns the per-item scan cost per category.
// Self-checkout customers scan slowly, so the weight doubles.
func DefaultCheckoutWeights() map[LineCategory]int64 {
	return map[LineCategory]int64{
		CategoryCashier: 1,
		CategoryExpress: 1,
		CategorySelf:    2,
	}
}

// DefaultCheckoutBiases returns the fixed payment overhead per category.
// Staffed registers handle cash and small talk; self-checkout is card-only.
func DefaultCheckoutBiases() map[LineCategory]int64 {
	return map[LineCategory]int64{
		CategoryCashier: 7,
		CategoryExpress: 4,
		CategorySelf:    1,
	}
}

// DefaultCheckoutStdDevs returns the per-category sigma used by the
// stochastic model.
func DefaultCheckoutStdDevs() map[LineCategory]float64 {
	return map[LineCategory]float64{
		CategoryCashier: 2,
		CategoryExpress: 1,
		CategorySelf:    3,
	}
}

// DeterministicModel computes checkout duration as an affine function of the
// basket size: weight * items + bias, with per-category parameters. The same
// customer at the same line always yields the same duration.
type DeterministicModel struct {
	Weights map[LineCategory]int64
	Biases  map[LineCategory]int64
}

// NewDeterministicModel returns the model with the default parameters.
func NewDeterministicModel() *DeterministicModel {
	return &DeterministicModel{
		Weights: DefaultCheckoutWeights(),
		Biases:  DefaultCheckoutBiases(),
	}
}

func (m *DeterministicModel) Duration(c *Customer, line *CheckoutLine) int64 {
	weight, okW := m.Weights[line.Category()]
	bias, okB := m.Biases[line.Category()]
	if !okW || !okB {
		panic(fmt.Sprintf("checkout model: no parameters for line category %q", line.Category()))
	}
	return weight*int64(c.NumItems()) + bias
}

// StochasticModel draws durations from a normal distribution centered on the
// deterministic affine value, with a per-category standard deviation. Samples
// are rounded to whole ticks and clamped at zero. Two models built from the
// same seed produce identical draw sequences.
type StochasticModel struct {
	Mean    *DeterministicModel
	StdDevs map[LineCategory]float64
	rng     *rand.Rand
}

// NewStochasticModel returns a stochastic model with the default parameters,
// seeded for reproducibility.
func NewStochasticModel(seed int64) *StochasticModel {
	return &StochasticModel{
		Mean:    NewDeterministicModel(),
		StdDevs: DefaultCheckoutStdDevs(),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (m *StochasticModel) Duration(c *Customer, line *CheckoutLine) int64 {
	sigma, ok := m.StdDevs[line.Category()]
	if !ok {
		panic(fmt.Sprintf("checkout model: no sigma for line category %q", line.Category()))
	}
	mean := float64(m.Mean.Duration(c, line))
	duration := int64(math.Round(m.rng.NormFloat64()*sigma + mean))
	if duration < 0 {
		return 0
	}
	return duration
}

// NewCheckoutModel creates a checkout-duration model from its name. The empty
// string defaults to the deterministic model. Panics on unknown names;
// callers coming from user input should gate on IsValidCheckoutModel first.
func NewCheckoutModel(name string, seed int64) CheckoutModel {
	switch name {
	case "", "deterministic":
		return NewDeterministicModel()
	case "stochastic":
		return NewStochasticModel(seed)
	default:
		panic(fmt.Sprintf("unknown checkout model: %s. Valid models are: %v", name, AvailableCheckoutModels()))
	}
}

// IsValidCheckoutModel reports whether name maps to a known model ("" counts,
// it aliases the default).
func IsValidCheckoutModel(name string) bool {
	switch name {
	case "", "deterministic", "stochastic":
		return true
	}
	return false
}

// AvailableCheckoutModels returns the valid model names.
func AvailableCheckoutModels() []string {
	return []string{"deterministic", "stochastic"}
}
