package sim

import (
	"fmt"
	"sort"
)

// GroceryStore holds the fixed checkout-line topology for one simulation run.
// Lines are created once, at construction; opening and closing during a run
// toggles availability but never adds or removes lines.
type GroceryStore struct {
	lines []*CheckoutLine

	// lastLineID is the round-robin cursor: the id of the line that received
	// the most recent round-robin assignment. It starts at the highest id so
	// the first assignment wraps to line 0.
	lastLineID int
}

// NewGroceryStore builds a store from per-category line counts. Categories
// are instantiated in lexicographic order and lines get ascending ids from 0,
// so a {cashier: 2, express: 1, self: 1} store has cashier lines 0-1, express
// line 2 and self-checkout line 3. Every line starts open and empty.
func NewGroceryStore(lineCounts map[LineCategory]int) (*GroceryStore, error) {
	categories := make([]LineCategory, 0, len(lineCounts))
	for category := range lineCounts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var lines []*CheckoutLine
	for _, category := range categories {
		if !validCategory(category) {
			return nil, fmt.Errorf("unknown line category %q", category)
		}
		count := lineCounts[category]
		if count < 0 {
			return nil, fmt.Errorf("category %s: line count must be >= 0, got %d", category, count)
		}
		for i := 0; i < count; i++ {
			lines = append(lines, NewCheckoutLine(len(lines), category))
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("store must have at least one checkout line")
	}
	return &GroceryStore{lines: lines, lastLineID: len(lines) - 1}, nil
}

// Line returns the line with the given id. Ids are dense, so anything outside
// [0, TotalLines) is a programming error and panics.
func (s *GroceryStore) Line(id int) *CheckoutLine {
	if id < 0 || id >= len(s.lines) {
		panic(fmt.Sprintf("store: no line with id %d (store has %d lines)", id, len(s.lines)))
	}
	return s.lines[id]
}

// Lines returns every line in ascending id order. Callers must not mutate
// the returned slice.
func (s *GroceryStore) Lines() []*CheckoutLine { return s.lines }

func (s *GroceryStore) TotalLines() int { return len(s.lines) }

// LastLineID returns the round-robin cursor.
func (s *GroceryStore) LastLineID() int { return s.lastLineID }

func (s *GroceryStore) setLastLineID(id int) { s.lastLineID = id }
