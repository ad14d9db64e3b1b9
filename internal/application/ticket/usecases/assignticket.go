package usecases

import (
	"context"

	"homeward/internal/application/ticket/dto"
	"homeward/internal/domain/shared/events"
	"homeward/internal/domain/ticket"
	"homeward/internal/domain/user"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type AssignTicketCommand struct {
	Actor      authorization.Actor
	TicketID   uint
	AssigneeID uint
}

type AssignTicketUseCase struct {
	ticketRepo      ticket.Repository
	userRepo        user.Repository
	eventDispatcher events.EventDispatcher
	policy          *authorization.TicketPolicy
	logger          logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		policy:          authorization.NewTicketPolicy(),
		logger:          logger,
	}
}

// Execute assigns a submitted ticket to a builder or admin. Assignment and
// the submitted->assigned transition happen as one step inside the aggregate.
func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !uc.policy.Update(cmd.Actor, t) {
		uc.logger.Warnw("actor cannot manage tickets", "user_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("permission denied: cannot manage tickets")
	}

	assignee, err := uc.userRepo.FindByID(ctx, cmd.AssigneeID)
	if err != nil {
		uc.logger.Warnw("assignee not found", "assignee_id", cmd.AssigneeID, "error", err)
		return nil, errors.NewNotFoundError("assignee not found")
	}

	if err := t.AssignTo(assignee.ID(), assignee.Role()); err != nil {
		uc.logger.Warnw("assignment rejected", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.publishEvents(t)

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "assignee_id", assignee.ID())
	return dto.FromTicket(t), nil
}

func (uc *AssignTicketUseCase) publishEvents(t *ticket.Ticket) {
	for _, event := range t.Events() {
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "event_type", event.GetEventType(), "error", err)
		}
	}
	t.ClearEvents()
}
