package sim

import "testing"

// newTestSimulator builds a simulator without running it, so individual
// events can be executed by hand.
func newTestSimulator(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("building simulator: %v", err)
	}
	return s
}

func TestJoinCheckoutEvent_EmptyLineBeginsImmediately(t *testing.T) {
	// GIVEN a store with a single empty cashier line
	s := newTestSimulator(t, Config{LineCounts: map[LineCategory]int{CategoryCashier: 1}})
	c := NewCustomer(0, 3)

	// WHEN the join event executes at tick 5
	next := NewJoinCheckoutEvent(5, c).Execute(s)

	// THEN the customer is stamped, enqueued, and begins checkout at once
	if c.JoinTime() != 5 {
		t.Errorf("expected join time 5, got %d", c.JoinTime())
	}
	if s.Store().Line(0).ServeNext() != c {
		t.Errorf("expected the customer at the head of line 0")
	}
	if len(next) != 1 {
		t.Fatalf("expected one follow-on event, got %d", len(next))
	}
	begin, ok := next[0].(*BeginCheckoutEvent)
	if !ok {
		t.Fatalf("expected a BeginCheckoutEvent, got %T", next[0])
	}
	if begin.Timestamp() != 5 {
		t.Errorf("begin must fire at the join tick, got %d", begin.Timestamp())
	}
}

func TestJoinCheckoutEvent_BusyLineJustWaits(t *testing.T) {
	s := newTestSimulator(t, Config{LineCounts: map[LineCategory]int{CategoryCashier: 1}})
	s.Store().Line(0).Enqueue(NewCustomer(0, 1))

	c := NewCustomer(1, 3)
	next := NewJoinCheckoutEvent(5, c).Execute(s)

	if len(next) != 0 {
		t.Errorf("joining a busy line must not spawn events, got %d", len(next))
	}
	if s.Store().Line(0).Size() != 2 {
		t.Errorf("expected 2 waiting customers, got %d", s.Store().Line(0).Size())
	}
	if c.BeginTime() != TimeUnset {
		t.Errorf("checkout must not begin while someone is ahead")
	}
}

func TestBeginCheckoutEvent_SchedulesFinishAfterDuration(t *testing.T) {
	s := newTestSimulator(t, Config{LineCounts: map[LineCategory]int{CategoryCashier: 1}})
	c := NewCustomer(0, 3) // cashier duration 1*3+7 = 10
	c.setJoined(5)
	s.Store().Line(0).Enqueue(c)

	next := NewBeginCheckoutEvent(5, c, 0).Execute(s)

	if c.BeginTime() != 5 {
		t.Errorf("expected begin time 5, got %d", c.BeginTime())
	}
	if len(next) != 1 {
		t.Fatalf("expected one follow-on event, got %d", len(next))
	}
	finish, ok := next[0].(*FinishCheckoutEvent)
	if !ok {
		t.Fatalf("expected a FinishCheckoutEvent, got %T", next[0])
	}
	if finish.Timestamp() != 15 {
		t.Errorf("expected finish at 5+10=15, got %d", finish.Timestamp())
	}
}

func TestFinishCheckoutEvent_RetiresHeadAndStartsNext(t *testing.T) {
	// GIVEN a line where customer 0 is in service and customer 1 waits
	s := newTestSimulator(t, Config{LineCounts: map[LineCategory]int{CategoryCashier: 1}})
	line := s.Store().Line(0)
	first := NewCustomer(0, 3)
	first.setJoined(0)
	first.setBegan(0)
	second := NewCustomer(1, 5)
	second.setJoined(2)
	line.Enqueue(first)
	line.Enqueue(second)

	// WHEN the head finishes at tick 10
	next := NewFinishCheckoutEvent(10, first, 0).Execute(s)

	// THEN the head is retired and the next customer begins at the same tick
	if first.FinishTime() != 10 {
		t.Errorf("expected finish time 10, got %d", first.FinishTime())
	}
	if len(line.Served()) != 1 || line.Served()[0] != first {
		t.Errorf("expected customer 0 in the served history")
	}
	if line.ServeNext() != second {
		t.Errorf("expected customer 1 at the head now")
	}
	if len(next) != 1 {
		t.Fatalf("expected one follow-on event, got %d", len(next))
	}
	begin, ok := next[0].(*BeginCheckoutEvent)
	if !ok {
		t.Fatalf("expected a BeginCheckoutEvent, got %T", next[0])
	}
	if begin.Timestamp() != 10 {
		t.Errorf("the next checkout must begin at the finish tick, got %d", begin.Timestamp())
	}
	if begin.customer != second {
		t.Errorf("the next checkout must belong to customer 1")
	}
}

func TestFinishCheckoutEvent_LastCustomerLeavesLineIdle(t *testing.T) {
	s := newTestSimulator(t, Config{LineCounts: map[LineCategory]int{CategoryCashier: 1}})
	c := NewCustomer(0, 3)
	c.setJoined(0)
	c.setBegan(0)
	s.Store().Line(0).Enqueue(c)

	next := NewFinishCheckoutEvent(10, c, 0).Execute(s)

	if len(next) != 0 {
		t.Errorf("an emptied line must not spawn events, got %d", len(next))
	}
	if !s.Store().Line(0).IsEmpty() {
		t.Errorf("expected the line to be empty")
	}
}

func TestFinishCheckoutEvent_WrongCustomerPanics(t *testing.T) {
	s := newTestSimulator(t, Config{LineCounts: map[LineCategory]int{CategoryCashier: 1}})
	head := NewCustomer(0, 1)
	head.setJoined(0)
	head.setBegan(0)
	s.Store().Line(0).Enqueue(head)

	stranger := NewCustomer(1, 1)
	stranger.setJoined(0)
	stranger.setBegan(0)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when the finishing customer is not the head")
		}
	}()
	NewFinishCheckoutEvent(5, stranger, 0).Execute(s)
}

func TestLineOpenCloseEvents_ToggleAvailability(t *testing.T) {
	s := newTestSimulator(t, Config{LineCounts: map[LineCategory]int{CategoryCashier: 2}})

	if next := NewLineCloseEvent(3, 1).Execute(s); len(next) != 0 {
		t.Errorf("close must not spawn events")
	}
	if !s.Store().Line(1).Closed() {
		t.Errorf("expected line 1 closed")
	}

	if next := NewLineOpenEvent(8, 1).Execute(s); len(next) != 0 {
		t.Errorf("open must not spawn events")
	}
	if s.Store().Line(1).Closed() {
		t.Errorf("expected line 1 open again")
	}
}
