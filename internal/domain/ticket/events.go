package ticket

import (
	"strconv"
	"time"

	"homeward/internal/domain/shared/events"
)

const (
	EventTypeTicketCreated       = "ticket.created"
	EventTypeTicketAssigned      = "ticket.assigned"
	EventTypeTicketStatusChanged = "ticket.status_changed"
	EventTypeCommentAdded        = "ticket.comment_added"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID    uint
	PropertyID  uint
	SubmitterID uint
	AreaOfIssue string
}

func NewTicketCreatedEvent(ticketID, propertyID, submitterID uint, areaOfIssue string, occurredAt time.Time) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTypeTicketCreated,
			OccurredAt:  occurredAt,
		},
		TicketID:    ticketID,
		PropertyID:  propertyID,
		SubmitterID: submitterID,
		AreaOfIssue: areaOfIssue,
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   uint
	AssigneeID uint
}

func NewTicketAssignedEvent(ticketID, assigneeID uint, occurredAt time.Time) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTypeTicketAssigned,
			OccurredAt:  occurredAt,
		},
		TicketID:   ticketID,
		AssigneeID: assigneeID,
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID  uint
	OldStatus string
	NewStatus string
}

func NewTicketStatusChangedEvent(ticketID uint, oldStatus, newStatus string, occurredAt time.Time) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTypeTicketStatusChanged,
			OccurredAt:  occurredAt,
		},
		TicketID:  ticketID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}
}

type CommentAddedEvent struct {
	events.BaseEvent
	TicketID   uint
	CommentID  uint
	AuthorID   uint
	IsInternal bool
}

func NewCommentAddedEvent(ticketID, commentID, authorID uint, isInternal bool, occurredAt time.Time) CommentAddedEvent {
	return CommentAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTypeCommentAdded,
			OccurredAt:  occurredAt,
		},
		TicketID:   ticketID,
		CommentID:  commentID,
		AuthorID:   authorID,
		IsInternal: isInternal,
	}
}
