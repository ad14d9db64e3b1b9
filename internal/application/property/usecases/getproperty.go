package usecases

import (
	"context"

	"homeward/internal/application/property/dto"
	"homeward/internal/domain/property"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type GetPropertyQuery struct {
	Actor      authorization.Actor
	PropertyID uint
}

type GetPropertyUseCase struct {
	propertyRepo property.Repository
	policy       *authorization.PropertyPolicy
	logger       logger.Interface
}

func NewGetPropertyUseCase(
	propertyRepo property.Repository,
	logger logger.Interface,
) *GetPropertyUseCase {
	return &GetPropertyUseCase{
		propertyRepo: propertyRepo,
		policy:       authorization.NewPropertyPolicy(),
		logger:       logger,
	}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, query GetPropertyQuery) (*dto.PropertyDTO, error) {
	prop, err := uc.propertyRepo.FindByID(ctx, query.PropertyID)
	if err != nil {
		uc.logger.Warnw("property not found", "property_id", query.PropertyID, "error", err)
		return nil, errors.NewNotFoundError("property not found")
	}

	if !uc.policy.View(query.Actor, prop) {
		uc.logger.Warnw("actor cannot view property", "property_id", query.PropertyID, "user_id", query.Actor.ID)
		return nil, errors.NewForbiddenError("permission denied: cannot view this property")
	}

	return dto.FromProperty(prop), nil
}
