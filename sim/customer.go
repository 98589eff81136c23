package sim

import (
	"fmt"
	"math"
)

// TimeUnset marks a lifecycle timestamp that has not been recorded yet. The
// engine never produces it as a clock value, so it is safe even for runs that
// schedule events at negative ticks.
const TimeUnset int64 = math.MinInt64

// Customer is a single shopper moving through the checkout zone. The three
// lifecycle timestamps are stamped by the engine exactly once each, in order:
// join (arrival at the chosen line), begin (first item scanned), finish
// (payment done). All derived statistics are differences of these three.
type Customer struct {
	id       int
	numItems int

	joinTime   int64
	beginTime  int64
	finishTime int64
}

// NewCustomer creates a customer with all lifecycle timestamps unset.
// Panics when numItems is not positive.
func NewCustomer(id, numItems int) *Customer {
	if numItems < 1 {
		panic(fmt.Sprintf("customer %d: item count must be >= 1, got %d", id, numItems))
	}
	return &Customer{
		id:         id,
		numItems:   numItems,
		joinTime:   TimeUnset,
		beginTime:  TimeUnset,
		finishTime: TimeUnset,
	}
}

func (c *Customer) ID() int       { return c.id }
func (c *Customer) NumItems() int { return c.numItems }

// JoinTime returns when the customer joined a line, or TimeUnset.
func (c *Customer) JoinTime() int64 { return c.joinTime }

// BeginTime returns when the customer's checkout began, or TimeUnset.
func (c *Customer) BeginTime() int64 { return c.beginTime }

// FinishTime returns when the customer's checkout finished, or TimeUnset.
func (c *Customer) FinishTime() int64 { return c.finishTime }

// setJoined stamps the join time. Each stamp is one-shot and ordered;
// violating that means the event plumbing is broken, so it panics.
func (c *Customer) setJoined(t int64) {
	if c.joinTime != TimeUnset {
		panic(fmt.Sprintf("customer %d: join time already set", c.id))
	}
	c.joinTime = t
}

func (c *Customer) setBegan(t int64) {
	if c.joinTime == TimeUnset {
		panic(fmt.Sprintf("customer %d: checkout began before joining a line", c.id))
	}
	if c.beginTime != TimeUnset {
		panic(fmt.Sprintf("customer %d: begin time already set", c.id))
	}
	c.beginTime = t
}

func (c *Customer) setFinished(t int64) {
	if c.beginTime == TimeUnset {
		panic(fmt.Sprintf("customer %d: checkout finished before beginning", c.id))
	}
	if c.finishTime != TimeUnset {
		panic(fmt.Sprintf("customer %d: finish time already set", c.id))
	}
	c.finishTime = t
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer{id=%d, items=%d, join=%d, begin=%d, finish=%d}",
		c.id, c.numItems, c.joinTime, c.beginTime, c.finishTime)
}
