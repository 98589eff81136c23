package sim

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrFinished is returned by Run on a simulator whose run already completed.
// Simulators are single-shot; build a fresh one per run.
var ErrFinished = errors.New("simulator has already run to completion")

// Simulator drives one simulation run: it drains the event queue in timestamp
// order, advancing the logical clock to each event as it executes. Everything
// is single-threaded; determinism comes from the queue's total order and the
// seeded rngs inside the policy and model.
type Simulator struct {
	store  *GroceryStore
	policy SelectionPolicy
	model  CheckoutModel
	queue  *EventQueue

	clock    int64
	executed int
	finished bool
}

// NewSimulator assembles an engine from a validated Config. The policy and
// the model get seeds derived for their own subsystems, so extra draws in one
// never shift the other.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store, err := NewGroceryStore(cfg.LineCounts)
	if err != nil {
		return nil, err
	}
	key := NewSimulationKey(cfg.Seed)
	model := NewCheckoutModel(cfg.Model, key.SeedFor(SubsystemCheckout))
	policy := NewSelectionPolicy(cfg.Policy, PolicyOptions{
		Seed:       key.SeedFor(SubsystemSelection),
		Model:      model,
		CountFirst: cfg.CountFirst,
	})
	return &Simulator{
		store:  store,
		policy: policy,
		model:  model,
		queue:  NewEventQueue(),
	}, nil
}

// Run schedules the initial events and drains the queue to exhaustion. Each
// popped event sets the clock to its timestamp, executes, and has its
// follow-on events scheduled. The run ends when no event remains; there is no
// horizon, so a run with pending work never reports done.
func (s *Simulator) Run(initial []Event) error {
	if s.finished {
		return ErrFinished
	}
	for _, ev := range initial {
		s.queue.Schedule(ev)
	}

	for s.queue.Len() > 0 {
		ev := s.queue.PopNext()
		s.clock = ev.Timestamp()
		logrus.Debugf("[tick %07d] executing %T", s.clock, ev)
		for _, next := range ev.Execute(s) {
			s.queue.Schedule(next)
		}
		s.executed++
	}

	s.finished = true
	logrus.Infof("[tick %07d] queue drained after %d events", s.clock, s.executed)
	return nil
}

// Clock returns the timestamp of the most recently executed event.
func (s *Simulator) Clock() int64 { return s.clock }

// Finished reports whether Run has completed. A finished simulator only
// answers statistics queries.
func (s *Simulator) Finished() bool { return s.finished }

// ExecutedEvents returns how many events the run processed, spawned events
// included.
func (s *Simulator) ExecutedEvents() int { return s.executed }

// Store exposes the line topology, for inspection and tests.
func (s *Simulator) Store() *GroceryStore { return s.store }
