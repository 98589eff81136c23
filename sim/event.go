package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Event is one scheduled state transition. Execute mutates store and customer
// state as of the event's timestamp and returns follow-on events for the
// engine to schedule. Executed events are discarded, never reused.
//
// The five concrete kinds below are the complete vocabulary of a run:
// customers join, begin and finish checkout; the operator opens and closes
// lines.
type Event interface {
	Timestamp() int64
	Execute(sim *Simulator) []Event
}

// JoinCheckoutEvent is a customer arriving at the checkout zone. Which line
// they join is decided when the event executes, not when it is scheduled, so
// the policy sees the store exactly as it is at arrival time.
type JoinCheckoutEvent struct {
	time     int64
	customer *Customer
}

func NewJoinCheckoutEvent(time int64, c *Customer) *JoinCheckoutEvent {
	return &JoinCheckoutEvent{time: time, customer: c}
}

func (e *JoinCheckoutEvent) Timestamp() int64 {
	return e.time
}

// Execute stamps the join time, picks a line under the active policy and
// enqueues the customer. Joining an empty line begins checkout immediately.
func (e *JoinCheckoutEvent) Execute(sim *Simulator) []Event {
	e.customer.setJoined(e.time)
	line := sim.policy.Pick(e.customer, sim.store)
	logrus.Debugf("customer %d (%d items) joins line %d", e.customer.ID(), e.customer.NumItems(), line.ID())

	// The line must be inspected before the enqueue: the new customer starts
	// checkout now only if nobody was there ahead of them.
	wasEmpty := line.IsEmpty()
	line.Enqueue(e.customer)
	if wasEmpty {
		return []Event{NewBeginCheckoutEvent(e.time, e.customer, line.ID())}
	}
	return nil
}

// BeginCheckoutEvent is a customer starting to scan items at a line.
type BeginCheckoutEvent struct {
	time     int64
	customer *Customer
	lineID   int
}

func NewBeginCheckoutEvent(time int64, c *Customer, lineID int) *BeginCheckoutEvent {
	return &BeginCheckoutEvent{time: time, customer: c, lineID: lineID}
}

func (e *BeginCheckoutEvent) Timestamp() int64 {
	return e.time
}

// Execute stamps the begin time and schedules the matching finish at
// now + duration under the active checkout model.
func (e *BeginCheckoutEvent) Execute(sim *Simulator) []Event {
	e.customer.setBegan(e.time)
	line := sim.store.Line(e.lineID)
	duration := sim.model.Duration(e.customer, line)
	logrus.Debugf("customer %d begins checkout at line %d, duration %d", e.customer.ID(), e.lineID, duration)
	return []Event{NewFinishCheckoutEvent(e.time+duration, e.customer, e.lineID)}
}

// FinishCheckoutEvent is a customer completing payment and leaving the store.
type FinishCheckoutEvent struct {
	time     int64
	customer *Customer
	lineID   int
}

func NewFinishCheckoutEvent(time int64, c *Customer, lineID int) *FinishCheckoutEvent {
	return &FinishCheckoutEvent{time: time, customer: c, lineID: lineID}
}

func (e *FinishCheckoutEvent) Timestamp() int64 {
	return e.time
}

// Execute stamps the finish time, retires the customer into the line's served
// history and, if anyone is still waiting, begins their checkout at the same
// tick. The finishing customer must be the head of the line; anything else
// means FCFS order was violated somewhere.
func (e *FinishCheckoutEvent) Execute(sim *Simulator) []Event {
	line := sim.store.Line(e.lineID)
	if head := line.ServeNext(); head != e.customer {
		panic(fmt.Sprintf("line %d: customer %d finished but customer %d is at the head", e.lineID, e.customer.ID(), head.ID()))
	}
	e.customer.setFinished(e.time)
	line.finishHead()
	logrus.Debugf("customer %d finishes checkout at line %d", e.customer.ID(), e.lineID)

	if !line.IsEmpty() {
		return []Event{NewBeginCheckoutEvent(e.time, line.ServeNext(), e.lineID)}
	}
	return nil
}

// LineOpenEvent reopens a line for new arrivals.
type LineOpenEvent struct {
	time   int64
	lineID int
}

func NewLineOpenEvent(time int64, lineID int) *LineOpenEvent {
	return &LineOpenEvent{time: time, lineID: lineID}
}

func (e *LineOpenEvent) Timestamp() int64 {
	return e.time
}

func (e *LineOpenEvent) Execute(sim *Simulator) []Event {
	logrus.Debugf("line %d opens", e.lineID)
	sim.store.Line(e.lineID).Open()
	return nil
}

// LineCloseEvent closes a line to new arrivals. Customers already waiting
// keep their place and are served to completion.
type LineCloseEvent struct {
	time   int64
	lineID int
}

func NewLineCloseEvent(time int64, lineID int) *LineCloseEvent {
	return &LineCloseEvent{time: time, lineID: lineID}
}

func (e *LineCloseEvent) Timestamp() int64 {
	return e.time
}

func (e *LineCloseEvent) Execute(sim *Simulator) []Event {
	logrus.Debugf("line %d closes", e.lineID)
	sim.store.Line(e.lineID).Close()
	return nil
}
