package ticket

import (
	"fmt"
	"time"

	"homeward/internal/domain/shared/events"
	vo "homeward/internal/domain/ticket/valueobjects"
	uservo "homeward/internal/domain/user/valueobjects"
	"homeward/internal/shared/biztime"
)

// Ticket is the aggregate for a warranty request against a property. It owns
// the status state machine and the assignment rules; tickets always enter
// the system at "submitted".
type Ticket struct {
	id          uint
	propertyID  uint
	submitterID uint
	assigneeID  *uint
	areaOfIssue string
	description string
	imagePath   string
	status      vo.TicketStatus
	createdAt   time.Time
	updatedAt   time.Time

	pendingEvents []events.DomainEvent
}

func NewTicket(propertyID, submitterID uint, areaOfIssue, description, imagePath string) (*Ticket, error) {
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if submitterID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}
	if len(areaOfIssue) == 0 {
		return nil, fmt.Errorf("area of issue is required")
	}
	if len(areaOfIssue) > 255 {
		return nil, fmt.Errorf("area of issue exceeds maximum length of 255 characters")
	}
	if len(description) < 10 {
		return nil, fmt.Errorf("description must be at least 10 characters")
	}

	now := biztime.NowUTC()
	t := &Ticket{
		propertyID:  propertyID,
		submitterID: submitterID,
		areaOfIssue: areaOfIssue,
		description: description,
		imagePath:   imagePath,
		status:      vo.StatusSubmitted,
		createdAt:   now,
		updatedAt:   now,
	}
	return t, nil
}

func ReconstructTicket(
	id uint,
	propertyID uint,
	submitterID uint,
	assigneeID *uint,
	areaOfIssue string,
	description string,
	imagePath string,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}
	if submitterID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:          id,
		propertyID:  propertyID,
		submitterID: submitterID,
		assigneeID:  assigneeID,
		areaOfIssue: areaOfIssue,
		description: description,
		imagePath:   imagePath,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) PropertyID() uint {
	return t.propertyID
}

func (t *Ticket) SubmitterID() uint {
	return t.submitterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) AreaOfIssue() string {
	return t.areaOfIssue
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) ImagePath() string {
	return t.imagePath
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	t.recordEvent(NewTicketCreatedEvent(t.id, t.propertyID, t.submitterID, t.areaOfIssue, biztime.NowUTC()))
	return nil
}

// SetImagePath attaches or replaces the uploaded image reference. Storage is
// handled by the adapter layer; the path is opaque here.
func (t *Ticket) SetImagePath(path string) {
	t.imagePath = path
	t.updatedAt = biztime.NowUTC()
}

// CanTransitionTo checks the fixed transition table.
func (t *Ticket) CanTransitionTo(target vo.TicketStatus) bool {
	return t.status.CanTransitionTo(target)
}

// ValidNextStatuses returns the permitted successors of the current status.
func (t *Ticket) ValidNextStatuses() []vo.TicketStatus {
	return t.status.ValidNextStatuses()
}

// TransitionTo advances the ticket to target, failing with
// KindInvalidTransition when the table does not permit it.
func (t *Ticket) TransitionTo(target vo.TicketStatus) error {
	if !t.CanTransitionTo(target) {
		return NewInvalidTransitionError(t.status, target)
	}

	old := t.status
	t.status = target
	t.updatedAt = biztime.NowUTC()
	t.recordEvent(NewTicketStatusChangedEvent(t.id, old.String(), target.String(), t.updatedAt))
	return nil
}

// AssignTo sets the assignee and performs the submitted->assigned transition
// as one operation; they cannot be decoupled. The assignee must hold a role
// that can be assigned tickets, and the ticket must still be submitted.
func (t *Ticket) AssignTo(assigneeID uint, assigneeRole uservo.Role) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if !assigneeRole.CanBeAssignedTickets() {
		return NewAssigneeNotAuthorizedError(assigneeRole)
	}
	if !t.status.IsSubmitted() {
		return NewNotInValidStateError(t.status)
	}

	t.assigneeID = &assigneeID
	if err := t.TransitionTo(vo.StatusAssigned); err != nil {
		return err
	}
	t.recordEvent(NewTicketAssignedEvent(t.id, assigneeID, t.updatedAt))
	return nil
}

// ReassignTo changes the assignee of an already-assigned ticket without
// touching the status.
func (t *Ticket) ReassignTo(assigneeID uint, assigneeRole uservo.Role) error {
	if !t.IsAssigned() {
		return NewNotYetAssignedError()
	}
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if !assigneeRole.CanBeAssignedTickets() {
		return NewAssigneeNotAuthorizedError(assigneeRole)
	}

	t.assigneeID = &assigneeID
	t.updatedAt = biztime.NowUTC()
	t.recordEvent(NewTicketAssignedEvent(t.id, assigneeID, t.updatedAt))
	return nil
}

// StartProgress advances assigned -> in_progress.
func (t *Ticket) StartProgress() error {
	return t.TransitionTo(vo.StatusInProgress)
}

// MarkAsComplete advances in_progress -> complete.
func (t *Ticket) MarkAsComplete() error {
	return t.TransitionTo(vo.StatusComplete)
}

// Close advances complete -> closed.
func (t *Ticket) Close() error {
	return t.TransitionTo(vo.StatusClosed)
}

func (t *Ticket) IsOpen() bool {
	return t.status.IsOpen()
}

func (t *Ticket) IsAssigned() bool {
	return t.assigneeID != nil
}

func (t *Ticket) IsInProgress() bool {
	return t.status.IsInProgress()
}

func (t *Ticket) IsComplete() bool {
	return t.status.IsComplete()
}

func (t *Ticket) IsClosed() bool {
	return t.status.IsClosed()
}

func (t *Ticket) IsSubmittedBy(userID uint) bool {
	return t.submitterID == userID
}

func (t *Ticket) recordEvent(event events.DomainEvent) {
	t.pendingEvents = append(t.pendingEvents, event)
}

// Events returns the events recorded since the last ClearEvents.
func (t *Ticket) Events() []events.DomainEvent {
	evts := make([]events.DomainEvent, len(t.pendingEvents))
	copy(evts, t.pendingEvents)
	return evts
}

func (t *Ticket) ClearEvents() {
	t.pendingEvents = nil
}
