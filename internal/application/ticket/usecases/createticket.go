package usecases

import (
	"context"

	"homeward/internal/application/ticket/dto"
	"homeward/internal/domain/property"
	"homeward/internal/domain/shared/events"
	"homeward/internal/domain/ticket"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authorization.Actor
	PropertyID  uint
	AreaOfIssue string
	Description string
	ImagePath   string
}

type CreateTicketUseCase struct {
	ticketRepo      ticket.Repository
	propertyRepo    property.Repository
	eventDispatcher events.EventDispatcher
	policy          *authorization.TicketPolicy
	logger          logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	propertyRepo property.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:      ticketRepo,
		propertyRepo:    propertyRepo,
		eventDispatcher: eventDispatcher,
		policy:          authorization.NewTicketPolicy(),
		logger:          logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "property_id", cmd.PropertyID, "user_id", cmd.Actor.ID)

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		uc.logger.Warnw("property not found", "property_id", cmd.PropertyID, "error", err)
		return nil, errors.NewNotFoundError("property not found")
	}

	if !uc.policy.CreateFor(cmd.Actor, prop) {
		uc.logger.Warnw("actor cannot create ticket for property",
			"property_id", cmd.PropertyID, "user_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("permission denied: you can only create tickets for your own properties")
	}

	// New tickets always start at "submitted"; the payload cannot override it.
	t, err := ticket.NewTicket(cmd.PropertyID, cmd.Actor.ID, cmd.AreaOfIssue, cmd.Description, cmd.ImagePath)
	if err != nil {
		uc.logger.Warnw("invalid ticket data", "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	uc.publishEvents(t)

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "property_id", t.PropertyID())
	return dto.FromTicket(t), nil
}

func (uc *CreateTicketUseCase) publishEvents(t *ticket.Ticket) {
	for _, event := range t.Events() {
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "event_type", event.GetEventType(), "error", err)
		}
	}
	t.ClearEvents()
}
