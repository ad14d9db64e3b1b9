package usecases

import (
	"context"

	"homeward/internal/application/ticket/dto"
	"homeward/internal/domain/shared/events"
	"homeward/internal/domain/ticket"
	vo "homeward/internal/domain/ticket/valueobjects"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type ChangeTicketStatusCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Status   string
}

type ChangeTicketStatusUseCase struct {
	ticketRepo      ticket.Repository
	eventDispatcher events.EventDispatcher
	policy          *authorization.TicketPolicy
	logger          logger.Interface
}

func NewChangeTicketStatusUseCase(
	ticketRepo ticket.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo:      ticketRepo,
		eventDispatcher: eventDispatcher,
		policy:          authorization.NewTicketPolicy(),
		logger:          logger,
	}
}

// Execute advances a ticket along the fixed status chain. The target must be
// a recognized status and a permitted successor of the current one.
func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change ticket status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	target, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		uc.logger.Warnw("unrecognized status", "status", cmd.Status)
		return nil, errors.NewValidationError("invalid status: " + cmd.Status)
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !uc.policy.Update(cmd.Actor, t) {
		uc.logger.Warnw("actor cannot manage tickets", "user_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("permission denied: cannot manage tickets")
	}

	if err := t.TransitionTo(target); err != nil {
		uc.logger.Warnw("transition rejected",
			"ticket_id", cmd.TicketID, "from", t.Status(), "to", target, "error", err)
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.publishEvents(t)

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "status", t.Status())
	return dto.FromTicket(t), nil
}

func (uc *ChangeTicketStatusUseCase) publishEvents(t *ticket.Ticket) {
	for _, event := range t.Events() {
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "event_type", event.GetEventType(), "error", err)
		}
	}
	t.ClearEvents()
}
