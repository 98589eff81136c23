package workload

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grocery-sim/grocery-sim/sim"
)

// Generate renders a WorkloadSpec into the textual event encoding consumed by
// the simulator: one "<timestamp>,join,<items>" line per customer.
// Deterministic given the same spec and seed. Within each segment the arrival
// timestamps are drawn uniformly from [start, end) and sorted, so the output
// is in chronological order as long as the segments themselves are.
func Generate(spec *WorkloadSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", fmt.Errorf("invalid workload spec: %w", err)
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed)).ForSubsystem(sim.SubsystemWorkload)

	var b strings.Builder
	for _, seg := range spec.Segments {
		sampler, err := NewItemSampler(seg.Items)
		if err != nil {
			// Validate has already vetted every segment.
			return "", err
		}

		arrivals := make([]int64, seg.Customers)
		for i := range arrivals {
			arrivals[i] = seg.Start + rng.Int63n(seg.End-seg.Start)
		}
		sort.Slice(arrivals, func(i, j int) bool { return arrivals[i] < arrivals[j] })

		for _, t := range arrivals {
			fmt.Fprintf(&b, "%d,join,%d\n", t, sampler.Sample(rng))
		}
	}
	return b.String(), nil
}
