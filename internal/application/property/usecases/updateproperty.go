package usecases

import (
	"context"

	"homeward/internal/application/property/dto"
	"homeward/internal/domain/property"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type UpdatePropertyCommand struct {
	Actor      authorization.Actor
	PropertyID uint
	Address    *string
	City       *string
	State      *string
	ZipCode    *string
	Notes      *string
}

type UpdatePropertyUseCase struct {
	propertyRepo property.Repository
	policy       *authorization.PropertyPolicy
	logger       logger.Interface
}

func NewUpdatePropertyUseCase(
	propertyRepo property.Repository,
	logger logger.Interface,
) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{
		propertyRepo: propertyRepo,
		policy:       authorization.NewPropertyPolicy(),
		logger:       logger,
	}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, cmd UpdatePropertyCommand) (*dto.PropertyDTO, error) {
	uc.logger.Infow("executing update property use case", "property_id", cmd.PropertyID, "user_id", cmd.Actor.ID)

	prop, err := uc.propertyRepo.FindByID(ctx, cmd.PropertyID)
	if err != nil {
		uc.logger.Warnw("property not found", "property_id", cmd.PropertyID, "error", err)
		return nil, errors.NewNotFoundError("property not found")
	}

	if !uc.policy.Update(cmd.Actor, prop) {
		uc.logger.Warnw("actor cannot update property", "property_id", cmd.PropertyID, "user_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("permission denied: cannot update this property")
	}

	details := property.Details{
		Address: cmd.Address,
		City:    cmd.City,
		State:   cmd.State,
		ZipCode: cmd.ZipCode,
		Notes:   cmd.Notes,
	}
	if err := prop.UpdateDetails(details); err != nil {
		uc.logger.Warnw("invalid property details", "property_id", cmd.PropertyID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.propertyRepo.Update(ctx, prop); err != nil {
		uc.logger.Errorw("failed to update property", "property_id", cmd.PropertyID, "error", err)
		return nil, errors.NewInternalError("failed to update property")
	}

	uc.logger.Infow("property updated", "property_id", prop.ID())
	return dto.FromProperty(prop), nil
}
