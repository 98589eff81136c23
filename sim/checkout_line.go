package sim

import "fmt"

// LineCategory identifies the service class of a checkout line. The set is
// closed: stores are built from these three categories only.
type LineCategory string

const (
	CategoryCashier LineCategory = "cashier"
	CategoryExpress LineCategory = "express"
	CategorySelf    LineCategory = "self"
)

// ExpressItemLimit is the largest basket an express line accepts.
const ExpressItemLimit = 10

// Categories returns every line category in lexicographic order, the order
// in which NewGroceryStore instantiates lines.
func Categories() []LineCategory {
	return []LineCategory{CategoryCashier, CategoryExpress, CategorySelf}
}

func validCategory(c LineCategory) bool {
	switch c {
	case CategoryCashier, CategoryExpress, CategorySelf:
		return true
	}
	return false
}

// CheckoutLine is a strictly FCFS waiting line plus the history of customers
// it has finished serving. Closing a line only blocks new arrivals: customers
// already waiting keep their place and are served to completion.
type CheckoutLine struct {
	id       int
	category LineCategory
	closed   bool

	waiting []*Customer
	served  []*Customer
}

// NewCheckoutLine creates an open, empty line.
func NewCheckoutLine(id int, category LineCategory) *CheckoutLine {
	if !validCategory(category) {
		panic(fmt.Sprintf("line %d: unknown category %q", id, category))
	}
	return &CheckoutLine{id: id, category: category}
}

func (l *CheckoutLine) ID() int                { return l.id }
func (l *CheckoutLine) Category() LineCategory { return l.category }
func (l *CheckoutLine) Closed() bool           { return l.closed }

// Open makes the line accept new customers again.
func (l *CheckoutLine) Open() { l.closed = false }

// Close stops the line from accepting new customers. Waiting customers stay.
func (l *CheckoutLine) Close() { l.closed = true }

// Enqueue appends a customer to the back of the waiting line. Panics when the
// line is closed; eligibility is checked at selection time, so an enqueue
// into a closed line means the caller bypassed the policy.
func (l *CheckoutLine) Enqueue(c *Customer) {
	if l.closed {
		panic(fmt.Sprintf("line %d: cannot enqueue customer %d, line is closed", l.id, c.ID()))
	}
	l.waiting = append(l.waiting, c)
}

// ServeNext returns the customer at the head of the waiting line without
// removing them. The head leaves only when their checkout finishes.
// Panics when the line is empty.
func (l *CheckoutLine) ServeNext() *Customer {
	if l.IsEmpty() {
		panic(fmt.Sprintf("line %d: cannot serve from an empty line", l.id))
	}
	return l.waiting[0]
}

// finishHead removes the head of the waiting line and records it as served.
func (l *CheckoutLine) finishHead() *Customer {
	if l.IsEmpty() {
		panic(fmt.Sprintf("line %d: cannot finish checkout on an empty line", l.id))
	}
	head := l.waiting[0]
	l.waiting = l.waiting[1:]
	l.served = append(l.served, head)
	return head
}

// Size returns the number of waiting customers, including the one in service.
func (l *CheckoutLine) Size() int { return len(l.waiting) }

func (l *CheckoutLine) IsEmpty() bool { return len(l.waiting) == 0 }

// TotalItems sums the basket sizes of every waiting customer.
func (l *CheckoutLine) TotalItems() int {
	total := 0
	for _, c := range l.waiting {
		total += c.NumItems()
	}
	return total
}

// ProjectedWait estimates how long a new arrival would wait at this line by
// summing the model's duration for every waiting customer. countFirst
// controls whether the customer currently in service is included; excluding
// them treats their remaining service time as unknowable.
func (l *CheckoutLine) ProjectedWait(model CheckoutModel, countFirst bool) int64 {
	start := 0
	if !countFirst {
		start = 1
	}
	var wait int64
	for i := start; i < len(l.waiting); i++ {
		wait += model.Duration(l.waiting[i], l)
	}
	return wait
}

// Waiting returns the waiting customers in queue order. Callers must not
// mutate the returned slice.
func (l *CheckoutLine) Waiting() []*Customer { return l.waiting }

// Served returns every customer this line finished, in completion order.
// Callers must not mutate the returned slice.
func (l *CheckoutLine) Served() []*Customer { return l.served }

func (l *CheckoutLine) String() string {
	return fmt.Sprintf("CheckoutLine{id=%d, category=%s, closed=%v, waiting=%d, served=%d}",
		l.id, l.category, l.closed, len(l.waiting), len(l.served))
}
