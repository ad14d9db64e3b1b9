package usecases

import (
	"context"

	"homeward/internal/application/ticket/dto"
	"homeward/internal/domain/ticket"
	vo "homeward/internal/domain/ticket/valueobjects"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor      authorization.Actor
	Status     string
	PropertyID *uint
	AssigneeID *uint
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO `json:"tickets"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute lists tickets visible to the actor. Builders and admins see the
// whole backlog, homeowners only what they submitted.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		PropertyID: query.PropertyID,
		AssigneeID: query.AssigneeID,
	}
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status: " + query.Status)
		}
		filter.Status = &status
	}

	var (
		tickets []*ticket.Ticket
		err     error
	)
	if query.Actor.Role.CanViewAllTickets() {
		tickets, err = uc.ticketRepo.ListAll(ctx, filter)
	} else {
		tickets, err = uc.ticketRepo.ListBySubmitter(ctx, query.Actor.ID, filter)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.Actor.ID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{Tickets: dto.FromTickets(tickets)}, nil
}
