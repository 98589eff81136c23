package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec is the top-level arrival-generation configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	// Seed makes generation reproducible; the same spec and seed always
	// produce the same event text.
	Seed     int64         `yaml:"seed"`
	Segments []SegmentSpec `yaml:"segments"`
}

// SegmentSpec describes one stretch of the day: how many customers arrive in
// [start, end) and how their basket sizes are distributed. Segments model
// distinct traffic regimes, like a quiet morning and a rush hour.
type SegmentSpec struct {
	Start     int64    `yaml:"start"`
	End       int64    `yaml:"end"`
	Customers int      `yaml:"customers"`
	Items     DistSpec `yaml:"items"`
}

// DistSpec parameterizes a basket-size distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// LoadWorkloadSpec reads and validates a YAML workload spec. Unknown fields
// are rejected so typos fail loudly instead of silently defaulting.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks that the spec can actually be generated from.
func (s *WorkloadSpec) Validate() error {
	if len(s.Segments) == 0 {
		return fmt.Errorf("workload spec needs at least one segment")
	}
	for i, seg := range s.Segments {
		if seg.End <= seg.Start {
			return fmt.Errorf("segment %d: end %d must be after start %d", i, seg.End, seg.Start)
		}
		if seg.Customers < 0 {
			return fmt.Errorf("segment %d: customers must be >= 0, got %d", i, seg.Customers)
		}
		if _, err := NewItemSampler(seg.Items); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return nil
}
