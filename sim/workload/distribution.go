package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// ItemSampler draws basket sizes.
type ItemSampler interface {
	// Sample returns a positive item count (>= 1).
	Sample(rng *rand.Rand) int
}

// UniformSampler draws item counts uniformly from [min, max], inclusive.
type UniformSampler struct {
	min, max int
}

func (s *UniformSampler) Sample(rng *rand.Rand) int {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Intn(s.max-s.min+1)
}

// GaussianSampler draws clamped Gaussian item counts.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	result := int(math.Round(clamped))
	if result < 1 {
		return 1
	}
	return result
}

// ConstantSampler always returns the same item count.
type ConstantSampler struct {
	value int
}

func (s *ConstantSampler) Sample(rng *rand.Rand) int {
	return s.value
}

func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewItemSampler creates an ItemSampler from a DistSpec.
func NewItemSampler(spec DistSpec) (ItemSampler, error) {
	switch spec.Type {
	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		min, max := int(spec.Params["min"]), int(spec.Params["max"])
		if min < 1 {
			return nil, fmt.Errorf("uniform distribution: min must be >= 1, got %d", min)
		}
		if max < min {
			return nil, fmt.Errorf("uniform distribution: max %d is below min %d", max, min)
		}
		return &UniformSampler{min: min, max: max}, nil

	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev", "min", "max"); err != nil {
			return nil, err
		}
		min, max := int(spec.Params["min"]), int(spec.Params["max"])
		if min < 1 {
			return nil, fmt.Errorf("gaussian distribution: min must be >= 1, got %d", min)
		}
		if max < min {
			return nil, fmt.Errorf("gaussian distribution: max %d is below min %d", max, min)
		}
		return &GaussianSampler{
			mean:   spec.Params["mean"],
			stdDev: spec.Params["std_dev"],
			min:    min,
			max:    max,
		}, nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		value := int(spec.Params["value"])
		if value < 1 {
			return nil, fmt.Errorf("constant distribution: value must be >= 1, got %d", value)
		}
		return &ConstantSampler{value: value}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q (valid: uniform, gaussian, constant)", spec.Type)
	}
}
