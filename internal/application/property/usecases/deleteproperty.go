package usecases

import (
	"context"

	"homeward/internal/domain/property"
	"homeward/internal/domain/ticket"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type DeletePropertyCommand struct {
	Actor      authorization.Actor
	PropertyID uint
}

type DeletePropertyResult struct {
	PropertyID uint `json:"property_id"`
}

type DeletePropertyUseCase struct {
	propertyRepo property.Repository
	ticketRepo   ticket.Repository
	policy       *authorization.PropertyPolicy
	logger       logger.Interface
}

func NewDeletePropertyUseCase(
	propertyRepo property.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo: propertyRepo,
		ticketRepo:   ticketRepo,
		policy:       authorization.NewPropertyPolicy(),
		logger:       logger,
	}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, cmd DeletePropertyCommand) (*DeletePropertyResult, error) {
	uc.logger.Infow("executing delete property use case", "property_id", cmd.PropertyID, "user_id", cmd.Actor.ID)

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		uc.logger.Warnw("property not found", "property_id", cmd.PropertyID, "error", err)
		return nil, errors.NewNotFoundError("property not found")
	}

	if !uc.policy.Delete(cmd.Actor, prop) {
		uc.logger.Warnw("actor cannot delete property", "property_id", cmd.PropertyID, "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("permission denied: cannot delete this property")
	}

	openTickets, err := uc.ticketRepo.CountOpenByProperty(ctx, cmd.PropertyID)
	if err != nil {
		uc.logger.Errorw("failed to count open tickets", "property_id", cmd.PropertyID, "error", err)
		return nil, errors.NewInternalError("failed to count open tickets")
	}

	if err := prop.EnsureCanBeDeleted(openTickets); err != nil {
		uc.logger.Warnw("property has open tickets", "property_id", cmd.PropertyID, "open_tickets", openTickets)
		return nil, err
	}

	if err := uc.propertyRepo.Delete(ctx, cmd.PropertyID); err != nil {
		uc.logger.Errorw("failed to delete property", "property_id", cmd.PropertyID, "error", err)
		return nil, errors.NewInternalError("failed to delete property")
	}

	uc.logger.Infow("property deleted", "property_id", cmd.PropertyID)
	return &DeletePropertyResult{PropertyID: cmd.PropertyID}, nil
}
