package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusSubmitted  TicketStatus = "submitted"
	StatusAssigned   TicketStatus = "assigned"
	StatusInProgress TicketStatus = "in_progress"
	StatusComplete   TicketStatus = "complete"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusSubmitted:  true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusComplete:   true,
	StatusClosed:     true,
}

// ticketStatusTransitions is the fixed lifecycle: strictly linear, no
// skipping, no going backward, closed is terminal. The table stays a slice
// per state so future branching does not change the API.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusSubmitted:  {StatusAssigned},
	StatusAssigned:   {StatusInProgress},
	StatusInProgress: {StatusComplete},
	StatusComplete:   {StatusClosed},
	StatusClosed:     {},
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[ts] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// ValidNextStatuses returns a copy of the permitted successor statuses.
func (ts TicketStatus) ValidNextStatuses() []TicketStatus {
	allowed := ticketStatusTransitions[ts]
	next := make([]TicketStatus, len(allowed))
	copy(next, allowed)
	return next
}

func (ts TicketStatus) IsSubmitted() bool {
	return ts == StatusSubmitted
}

func (ts TicketStatus) IsAssigned() bool {
	return ts == StatusAssigned
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsComplete() bool {
	return ts == StatusComplete
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// IsOpen reports whether the status counts against a property's open-ticket
// total; everything except closed is open.
func (ts TicketStatus) IsOpen() bool {
	return ts != StatusClosed
}

// AllStatuses returns every valid status, for validation and filtering.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusSubmitted, StatusAssigned, StatusInProgress, StatusComplete, StatusClosed}
}
