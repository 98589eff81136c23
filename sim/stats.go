package sim

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Criterion selects which per-customer duration a statistics query measures.
type Criterion string

const (
	// CriterionWait is begin - join: time spent standing in line.
	CriterionWait Criterion = "wait"
	// CriterionCheckout is finish - begin: time spent scanning and paying.
	CriterionCheckout Criterion = "checkout"
	// CriterionTotal is finish - join: the whole stay in the checkout zone.
	CriterionTotal Criterion = "total"
)

// FilterField selects which lifecycle timestamp the query window tests.
type FilterField string

const (
	FilterJoin   FilterField = "join"
	FilterBegin  FilterField = "begin"
	FilterFinish FilterField = "finish"
)

// StatsQuery parameterizes QueryStatistics. The zero value measures wait
// times of every served customer: criterion defaults to wait, FilterBy to
// join, End 0 means unbounded, and nil LineIDs means all lines.
type StatsQuery struct {
	Criterion Criterion

	// Start and End bound the half-open window [Start, End) applied to the
	// FilterBy timestamp. End 0 leaves the window unbounded above.
	Start int64
	End   int64

	// LineIDs restricts the scan to the given lines. Nil scans every line;
	// an explicit empty slice matches nothing.
	LineIDs []int

	FilterBy FilterField
}

// Summary aggregates one criterion over the selected customers. A query that
// selects nobody yields the zero value, Count 0 included; callers must check
// Count before trusting Min and Max.
type Summary struct {
	Count  int     `json:"count"`
	Sum    int64   `json:"sum"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // population sigma, not the sample estimate
}

// StatsResult is a summary plus the raw per-customer values behind it, in
// line-id-then-completion order. Raw lets callers build their own histograms
// or percentiles without rerunning the simulation.
type StatsResult struct {
	Summary Summary
	Raw     []int64
}

// QueryStatistics scans the served customers of the selected lines and
// aggregates the requested criterion over those whose FilterBy timestamp
// falls in [Start, End). Only customers who completed checkout are visible;
// it returns an error before the run finishes because anyone still waiting
// would silently be missing from the aggregate.
func (s *Simulator) QueryStatistics(q StatsQuery) (*StatsResult, error) {
	if !s.finished {
		return nil, errors.New("statistics are only available after the run completes")
	}
	if q.Criterion == "" {
		q.Criterion = CriterionWait
	}
	if q.FilterBy == "" {
		q.FilterBy = FilterJoin
	}
	switch q.Criterion {
	case CriterionWait, CriterionCheckout, CriterionTotal:
	default:
		return nil, fmt.Errorf("unknown criterion %q, valid criteria are [%s %s %s]", q.Criterion, CriterionWait, CriterionCheckout, CriterionTotal)
	}
	switch q.FilterBy {
	case FilterJoin, FilterBegin, FilterFinish:
	default:
		return nil, fmt.Errorf("unknown filter field %q, valid fields are [%s %s %s]", q.FilterBy, FilterJoin, FilterBegin, FilterFinish)
	}

	end := q.End
	if end == 0 {
		end = math.MaxInt64
	}

	var lineFilter map[int]bool
	if q.LineIDs != nil {
		lineFilter = make(map[int]bool, len(q.LineIDs))
		for _, id := range q.LineIDs {
			lineFilter[id] = true
		}
	}

	var raw []int64
	for _, line := range s.store.Lines() {
		if lineFilter != nil && !lineFilter[line.ID()] {
			continue
		}
		for _, c := range line.Served() {
			var ts int64
			switch q.FilterBy {
			case FilterJoin:
				ts = c.JoinTime()
			case FilterBegin:
				ts = c.BeginTime()
			case FilterFinish:
				ts = c.FinishTime()
			}
			if ts < q.Start || ts >= end {
				continue
			}
			switch q.Criterion {
			case CriterionWait:
				raw = append(raw, c.BeginTime()-c.JoinTime())
			case CriterionCheckout:
				raw = append(raw, c.FinishTime()-c.BeginTime())
			case CriterionTotal:
				raw = append(raw, c.FinishTime()-c.JoinTime())
			}
		}
	}

	return &StatsResult{Summary: summarize(raw), Raw: raw}, nil
}

// summarize folds the raw values into a Summary. Empty input yields the zero
// value rather than NaNs.
func summarize(raw []int64) Summary {
	if len(raw) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(raw), Min: raw[0], Max: raw[0]}
	values := make([]float64, len(raw))
	for i, v := range raw {
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		values[i] = float64(v)
	}
	s.Mean = stat.Mean(values, nil)
	s.StdDev = stat.PopStdDev(values, nil)
	return s
}
