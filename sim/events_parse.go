package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Event verbs accepted by ParseEvents.
const (
	verbJoin  = "join"
	verbOpen  = "open"
	verbClose = "close"
)

// ParseEvents converts the textual event encoding into typed initial events.
// One event per line, three comma-separated fields:
//
//	<timestamp>,join,<itemCount>
//	<timestamp>,open,<lineId>
//	<timestamp>,close,<lineId>
//
// Customers get sequential ids starting at 0, in file order, so the n-th join
// line always describes customer n regardless of timestamps. Fields tolerate
// surrounding whitespace. Any malformed line fails the whole load with an
// error naming its zero-based index; nothing is partially applied.
func ParseEvents(text string, store *GroceryStore) ([]Event, error) {
	var events []Event
	nextCustomerID := 0
	for idx, raw := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Split(raw, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("parse error on line %d: want 3 comma-separated fields, got %d", idx, len(fields))
		}
		timestamp, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse error on line %d: bad timestamp %q", idx, strings.TrimSpace(fields[0]))
		}

		switch verb := strings.TrimSpace(fields[1]); verb {
		case verbJoin:
			items, err := strconv.Atoi(strings.TrimSpace(fields[2]))
			if err != nil {
				return nil, fmt.Errorf("parse error on line %d: bad item count %q", idx, strings.TrimSpace(fields[2]))
			}
			if items < 1 {
				return nil, fmt.Errorf("parse error on line %d: item count must be >= 1, got %d", idx, items)
			}
			events = append(events, NewJoinCheckoutEvent(timestamp, NewCustomer(nextCustomerID, items)))
			nextCustomerID++

		case verbOpen, verbClose:
			lineID, err := strconv.Atoi(strings.TrimSpace(fields[2]))
			if err != nil {
				return nil, fmt.Errorf("parse error on line %d: bad line id %q", idx, strings.TrimSpace(fields[2]))
			}
			if lineID < 0 || lineID >= store.TotalLines() {
				return nil, fmt.Errorf("parse error on line %d: no line with id %d", idx, lineID)
			}
			if verb == verbOpen {
				events = append(events, NewLineOpenEvent(timestamp, lineID))
			} else {
				events = append(events, NewLineCloseEvent(timestamp, lineID))
			}

		default:
			return nil, fmt.Errorf("parse error on line %d: unknown event type %q", idx, verb)
		}
	}
	return events, nil
}
