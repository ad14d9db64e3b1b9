package ticket

import (
	"context"

	vo "homeward/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]*Ticket, error)
	ListBySubmitter(ctx context.Context, submitterID uint, filter Filter) ([]*Ticket, error)
	ListAll(ctx context.Context, filter Filter) ([]*Ticket, error)

	// CountOpenByProperty counts the property's tickets whose status is not
	// closed; the property aggregate's deletion precondition reads this.
	CountOpenByProperty(ctx context.Context, propertyID uint) (int, error)
}

type Filter struct {
	Status     *vo.TicketStatus
	PropertyID *uint
	AssigneeID *uint
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, commentID uint) error
	FindByID(ctx context.Context, commentID uint) (*Comment, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
}
