package usecases

import (
	"context"

	"homeward/internal/application/property/dto"
	"homeward/internal/domain/property"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type ListPropertiesQuery struct {
	Actor authorization.Actor
}

type ListPropertiesResult struct {
	Properties []*dto.PropertyDTO `json:"properties"`
}

type ListPropertiesUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewListPropertiesUseCase(
	propertyRepo property.Repository,
	logger logger.Interface,
) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Execute lists properties visible to the actor: admins see every property,
// everyone else sees only their own.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, query ListPropertiesQuery) (*ListPropertiesResult, error) {
	var (
		props []*property.Property
		err   error
	)
	if query.Actor.Role.IsAdmin() {
		props, err = uc.propertyRepo.ListAll(ctx)
	} else {
		props, err = uc.propertyRepo.ListByOwner(ctx, query.Actor.ID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list properties", "user_id", query.Actor.ID, "error", err)
		return nil, errors.NewInternalError("failed to list properties")
	}

	return &ListPropertiesResult{Properties: dto.FromProperties(props)}, nil
}
