package usecases

import (
	"context"

	"homeward/internal/application/ticket/dto"
	"homeward/internal/domain/ticket"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	policy      *authorization.TicketPolicy
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		policy:      authorization.NewTicketPolicy(),
		logger:      logger,
	}
}

// Execute returns the ticket with its comments. Internal comments are
// filtered out for actors who cannot view them.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !uc.policy.View(query.Actor, t) {
		uc.logger.Warnw("actor cannot view ticket", "ticket_id", query.TicketID, "user_id", query.Actor.ID)
		return nil, errors.NewForbiddenError("permission denied: cannot view this ticket")
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket comments")
	}

	visible := make([]*ticket.Comment, 0, len(comments))
	for _, c := range comments {
		if c.CanBeViewedBy(query.Actor.Role) {
			visible = append(visible, c)
		}
	}

	result := dto.FromTicket(t)
	result.Comments = dto.FromComments(visible)
	return result, nil
}
