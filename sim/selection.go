package sim

import (
	"fmt"
	"math/rand"
)

// SelectionPolicy picks the checkout line an arriving customer joins. Pick is
// evaluated exactly once per customer, at join time; later openings, closings
// or faster lines never move a customer who already chose.
//
// Policies only consider eligible lines (see Eligible). They panic when no
// line is eligible: a store where someone can be turned away from every line
// is a configuration error, not a runtime condition to recover from.
type SelectionPolicy interface {
	Pick(c *Customer, store *GroceryStore) *CheckoutLine
}

// Eligible reports whether a customer may join a line: the line must be open,
// and express lines only take baskets of at most ExpressItemLimit items.
func Eligible(c *Customer, line *CheckoutLine) bool {
	if line.Closed() {
		return false
	}
	return line.Category() != CategoryExpress || c.NumItems() <= ExpressItemLimit
}

func noEligibleLine(c *Customer) string {
	return fmt.Sprintf("selection: no eligible line for customer %d with %d items", c.ID(), c.NumItems())
}

// PureRandom picks uniformly among the eligible lines. Two policies built
// from the same seed make identical pick sequences.
type PureRandom struct {
	rng *rand.Rand
}

func NewPureRandom(seed int64) *PureRandom {
	return &PureRandom{rng: rand.New(rand.NewSource(seed))}
}

func (p *PureRandom) Pick(c *Customer, store *GroceryStore) *CheckoutLine {
	var eligible []*CheckoutLine
	for _, line := range store.Lines() {
		if Eligible(c, line) {
			eligible = append(eligible, line)
		}
	}
	if len(eligible) == 0 {
		panic(noEligibleLine(c))
	}
	return eligible[p.rng.Intn(len(eligible))]
}

// LeastPerson picks the eligible line with the fewest waiting customers.
// Ties go to the lowest line id.
type LeastPerson struct{}

func (LeastPerson) Pick(c *Customer, store *GroceryStore) *CheckoutLine {
	var best *CheckoutLine
	for _, line := range store.Lines() {
		if !Eligible(c, line) {
			continue
		}
		if best == nil || line.Size() < best.Size() {
			best = line
		}
	}
	if best == nil {
		panic(noEligibleLine(c))
	}
	return best
}

// LeastItem picks the eligible line with the fewest total waiting items.
// Ties go to the lowest line id.
type LeastItem struct{}

func (LeastItem) Pick(c *Customer, store *GroceryStore) *CheckoutLine {
	var best *CheckoutLine
	for _, line := range store.Lines() {
		if !Eligible(c, line) {
			continue
		}
		if best == nil || line.TotalItems() < best.TotalItems() {
			best = line
		}
	}
	if best == nil {
		panic(noEligibleLine(c))
	}
	return best
}

// LeastTime picks the eligible line with the smallest projected wait under
// Model. CountFirst decides whether the customer currently in service counts
// toward the projection; leaving them out models a shopper who cannot tell
// how far along the head of the line is.
type LeastTime struct {
	Model      CheckoutModel
	CountFirst bool
}

func (p *LeastTime) Pick(c *Customer, store *GroceryStore) *CheckoutLine {
	var best *CheckoutLine
	var bestWait int64
	for _, line := range store.Lines() {
		if !Eligible(c, line) {
			continue
		}
		wait := line.ProjectedWait(p.Model, p.CountFirst)
		if best == nil || wait < bestWait {
			best, bestWait = line, wait
		}
	}
	if best == nil {
		panic(noEligibleLine(c))
	}
	return best
}

// RoundRobin hands customers to lines in ascending id order, wrapping around
// and skipping ineligible lines. The cursor lives on the store, so the
// rotation continues correctly across customers.
type RoundRobin struct{}

func (RoundRobin) Pick(c *Customer, store *GroceryStore) *CheckoutLine {
	total := store.TotalLines()
	for offset := 1; offset <= total; offset++ {
		line := store.Line((store.LastLineID() + offset) % total)
		if Eligible(c, line) {
			store.setLastLineID(line.ID())
			return line
		}
	}
	panic(noEligibleLine(c))
}

// PolicyOptions carries the knobs individual policies need. Policies ignore
// fields they have no use for.
type PolicyOptions struct {
	// Seed drives the random policy's rng.
	Seed int64
	// Model is the duration model least-time projects with; nil falls back to
	// the deterministic default.
	Model CheckoutModel
	// CountFirst is passed through to LeastTime.
	CountFirst bool
}

// NewSelectionPolicy creates a line-selection policy from its name. The empty
// string defaults to least-person. Panics on unknown names; callers coming
// from user input should gate on IsValidSelectionPolicy first.
func NewSelectionPolicy(name string, opts PolicyOptions) SelectionPolicy {
	switch name {
	case "", "least-person":
		return LeastPerson{}
	case "random":
		return NewPureRandom(opts.Seed)
	case "least-item":
		return LeastItem{}
	case "least-time":
		model := opts.Model
		if model == nil {
			model = NewDeterministicModel()
		}
		return &LeastTime{Model: model, CountFirst: opts.CountFirst}
	case "round-robin":
		return RoundRobin{}
	default:
		panic(fmt.Sprintf("unknown selection policy: %s. Valid policies are: %v", name, AvailableSelectionPolicies()))
	}
}

// IsValidSelectionPolicy reports whether name maps to a known policy (""
// counts, it aliases the default).
func IsValidSelectionPolicy(name string) bool {
	switch name {
	case "", "least-person", "random", "least-item", "least-time", "round-robin":
		return true
	}
	return false
}

// AvailableSelectionPolicies returns the valid policy names.
func AvailableSelectionPolicies() []string {
	return []string{"random", "least-person", "least-item", "least-time", "round-robin"}
}
