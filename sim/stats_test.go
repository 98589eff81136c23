package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statsFixture runs a small two-line scenario with fully known timelines:
//
//	line 0 (cashier): customer 0 joins at 0 (3 items), begins 0, finishes 10
//	                  customer 2 joins at 2 (4 items), begins 10, finishes 21
//	line 1 (express): customer 1 joins at 1 (2 items), begins 1, finishes 7
//	                  customer 3 joins at 3 (1 item),  begins 7, finishes 12
//
// Waits are [0 8 0 4], checkouts [10 11 6 5], totals [10 19 6 9].
func statsFixture(t *testing.T) *Simulator {
	t.Helper()
	cfg := Config{LineCounts: map[LineCategory]int{CategoryCashier: 1, CategoryExpress: 1}}
	return runEvents(t, cfg, "0,join,3\n1,join,2\n2,join,4\n3,join,1")
}

func TestQueryStatistics_WaitOverEveryLine(t *testing.T) {
	s := statsFixture(t)

	res, err := s.QueryStatistics(StatsQuery{Criterion: CriterionWait})
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 8, 0, 4}, res.Raw, "raw values scan lines in id order")
	assert.Equal(t, 4, res.Summary.Count)
	assert.Equal(t, int64(12), res.Summary.Sum)
	assert.Equal(t, int64(0), res.Summary.Min)
	assert.Equal(t, int64(8), res.Summary.Max)
	assert.InDelta(t, 3.0, res.Summary.Mean, 1e-9)
	// Population sigma of [0 8 0 4]: sqrt(44/4).
	assert.InDelta(t, math.Sqrt(11), res.Summary.StdDev, 1e-9)
}

func TestQueryStatistics_Criteria(t *testing.T) {
	s := statsFixture(t)

	tests := []struct {
		criterion Criterion
		wantRaw   []int64
		wantSum   int64
	}{
		{CriterionWait, []int64{0, 8, 0, 4}, 12},
		{CriterionCheckout, []int64{10, 11, 6, 5}, 32},
		{CriterionTotal, []int64{10, 19, 6, 9}, 44},
	}
	for _, tt := range tests {
		t.Run(string(tt.criterion), func(t *testing.T) {
			res, err := s.QueryStatistics(StatsQuery{Criterion: tt.criterion})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRaw, res.Raw)
			assert.Equal(t, tt.wantSum, res.Summary.Sum)
		})
	}
}

func TestQueryStatistics_ZeroValueDefaultsToWaitByJoin(t *testing.T) {
	s := statsFixture(t)

	res, err := s.QueryStatistics(StatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 8, 0, 4}, res.Raw)
}

func TestQueryStatistics_LineFilter(t *testing.T) {
	s := statsFixture(t)

	res, err := s.QueryStatistics(StatsQuery{Criterion: CriterionWait, LineIDs: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 4}, res.Raw)

	// Nil scans everything; an explicit empty slice matches nothing.
	empty, err := s.QueryStatistics(StatsQuery{Criterion: CriterionWait, LineIDs: []int{}})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Summary.Count)
	assert.Empty(t, empty.Raw)
}

func TestQueryStatistics_WindowIsHalfOpen(t *testing.T) {
	s := statsFixture(t)

	// Joins are at 0,1,2,3. [2,4) keeps customers 2 and 3 only.
	res, err := s.QueryStatistics(StatsQuery{Criterion: CriterionWait, Start: 2, End: 4})
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 4}, res.Raw)

	// End is exclusive: [0,2) drops the join at tick 2.
	res, err = s.QueryStatistics(StatsQuery{Criterion: CriterionWait, Start: 0, End: 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, res.Raw)
}

func TestQueryStatistics_FilterByOtherTimestamps(t *testing.T) {
	s := statsFixture(t)

	// Finishes are 10,21,7,12. [10,22) keeps customers 0, 2 and 3.
	byFinish, err := s.QueryStatistics(StatsQuery{Criterion: CriterionWait, Start: 10, End: 22, FilterBy: FilterFinish})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 8, 4}, byFinish.Raw)

	// Begins are 0,10,1,7. [0,1) keeps customer 0 only.
	byBegin, err := s.QueryStatistics(StatsQuery{Criterion: CriterionWait, Start: 0, End: 1, FilterBy: FilterBegin})
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, byBegin.Raw)
	assert.Equal(t, 1, byBegin.Summary.Count)
	assert.Equal(t, 0.0, byBegin.Summary.StdDev, "a single value has zero spread")
}

func TestQueryStatistics_EndZeroMeansUnbounded(t *testing.T) {
	s := statsFixture(t)

	res, err := s.QueryStatistics(StatsQuery{Criterion: CriterionTotal, Start: 2})
	require.NoError(t, err)
	// Joins at and after tick 2: customers 2 and 3.
	assert.Equal(t, []int64{19, 9}, res.Raw)
}

func TestQueryStatistics_EmptySelectionIsZeroValued(t *testing.T) {
	s := statsFixture(t)

	res, err := s.QueryStatistics(StatsQuery{Criterion: CriterionWait, Start: 1000})
	require.NoError(t, err)
	assert.Equal(t, Summary{}, res.Summary)
	assert.Empty(t, res.Raw)
}

func TestQueryStatistics_BeforeRunFails(t *testing.T) {
	s, err := NewSimulator(singleCashier())
	require.NoError(t, err)

	_, err = s.QueryStatistics(StatsQuery{Criterion: CriterionWait})
	assert.Error(t, err)
}

func TestQueryStatistics_RejectsUnknownParameters(t *testing.T) {
	s := statsFixture(t)

	_, err := s.QueryStatistics(StatsQuery{Criterion: Criterion("median")})
	assert.ErrorContains(t, err, "unknown criterion")

	_, err = s.QueryStatistics(StatsQuery{FilterBy: FilterField("paid")})
	assert.ErrorContains(t, err, "unknown filter field")
}

func TestSummarize_SingleValue(t *testing.T) {
	got := summarize([]int64{7})
	assert.Equal(t, Summary{Count: 1, Sum: 7, Min: 7, Max: 7, Mean: 7, StdDev: 0}, got)
}
