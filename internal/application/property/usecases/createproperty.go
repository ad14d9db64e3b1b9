package usecases

import (
	"context"

	"homeward/internal/application/property/dto"
	"homeward/internal/domain/property"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type CreatePropertyCommand struct {
	Actor   authorization.Actor
	Address string
	City    string
	State   string
	ZipCode string
	Notes   string
}

type CreatePropertyUseCase struct {
	propertyRepo property.Repository
	policy       *authorization.PropertyPolicy
	logger       logger.Interface
}

func NewCreatePropertyUseCase(
	propertyRepo property.Repository,
	logger logger.Interface,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo: propertyRepo,
		policy:       authorization.NewPropertyPolicy(),
		logger:       logger,
	}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*dto.PropertyDTO, error) {
	uc.logger.Infow("executing create property use case", "owner_id", cmd.Actor.ID)

	if !uc.policy.Create(cmd.Actor) {
		uc.logger.Warnw("actor cannot create properties", "user_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("permission denied: cannot create properties")
	}

	prop, err := property.NewProperty(cmd.Actor.ID, cmd.Address, cmd.City, cmd.State, cmd.ZipCode, cmd.Notes)
	if err != nil {
		uc.logger.Warnw("invalid property data", "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.propertyRepo.Save(ctx, prop); err != nil {
		uc.logger.Errorw("failed to save property", "error", err)
		return nil, errors.NewInternalError("failed to save property")
	}

	uc.logger.Infow("property created", "property_id", prop.ID(), "owner_id", prop.OwnerID())
	return dto.FromProperty(prop), nil
}
