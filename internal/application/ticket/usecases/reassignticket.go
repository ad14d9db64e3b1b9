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

type ReassignTicketCommand struct {
	Actor      authorization.Actor
	TicketID   uint
	AssigneeID uint
}

type ReassignTicketUseCase struct {
	ticketRepo      ticket.Repository
	userRepo        user.Repository
	eventDispatcher events.EventDispatcher
	policy          *authorization.TicketPolicy
	logger          logger.Interface
}

func NewReassignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ReassignTicketUseCase {
	return &ReassignTicketUseCase{
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		policy:          authorization.NewTicketPolicy(),
		logger:          logger,
	}
}

// Execute swaps the assignee on an already-assigned ticket without touching
// its status.
func (uc *ReassignTicketUseCase) Execute(ctx context.Context, cmd ReassignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing reassign ticket use case", "ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID)

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

	if err := t.ReassignTo(assignee.ID(), assignee.Role()); err != nil {
		uc.logger.Warnw("reassignment rejected", "ticket_id", cmd.TicketID, "error", err)
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

	uc.logger.Infow("ticket reassigned", "ticket_id", t.ID(), "assignee_id", assignee.ID())
	return dto.FromTicket(t), nil
}

func (uc *ReassignTicketUseCase) publishEvents(t *ticket.Ticket) {
	for _, event := range t.Events() {
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "event_type", event.GetEventType(), "error", err)
		}
	}
	t.ClearEvents()
}
