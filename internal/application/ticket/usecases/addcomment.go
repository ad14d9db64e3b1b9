package usecases

import (
	"context"

	"homeward/internal/application/ticket/dto"
	"homeward/internal/domain/shared/events"
	"homeward/internal/domain/ticket"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/biztime"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor      authorization.Actor
	TicketID   uint
	Body       string
	IsInternal bool
}

type AddCommentUseCase struct {
	ticketRepo      ticket.Repository
	commentRepo     ticket.CommentRepository
	eventDispatcher events.EventDispatcher
	policy          *authorization.TicketPolicy
	logger          logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:      ticketRepo,
		commentRepo:     commentRepo,
		eventDispatcher: eventDispatcher,
		policy:          authorization.NewTicketPolicy(),
		logger:          logger,
	}
}

// Execute adds a comment to a ticket the actor can view. An internal flag
// from a role that cannot create internal comments is rejected here; the HTTP
// adapter coerces it to false before the command reaches this point.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !uc.policy.View(cmd.Actor, t) {
		uc.logger.Warnw("actor cannot comment on ticket", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("permission denied: cannot comment on this ticket")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.ID, cmd.Body, cmd.IsInternal, cmd.Actor.Role)
	if err != nil {
		uc.logger.Warnw("invalid comment", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to save comment")
	}

	event := ticket.NewCommentAddedEvent(comment.TicketID(), comment.ID(), comment.AuthorID(), comment.IsInternal(), biztime.NowUTC())
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to dispatch event", "event_type", event.GetEventType(), "error", err)
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", comment.TicketID())
	return dto.FromComment(comment), nil
}
