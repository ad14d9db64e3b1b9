package usecases

import (
	"context"

	"homeward/internal/application/property/dto"
)

type CreatePropertyExecutor interface {
	Execute(ctx context.Context, cmd CreatePropertyCommand) (*dto.PropertyDTO, error)
}

type UpdatePropertyExecutor interface {
	Execute(ctx context.Context, cmd UpdatePropertyCommand) (*dto.PropertyDTO, error)
}

type DeletePropertyExecutor interface {
	Execute(ctx context.Context, cmd DeletePropertyCommand) (*DeletePropertyResult, error)
}

type GetPropertyExecutor interface {
	Execute(ctx context.Context, query GetPropertyQuery) (*dto.PropertyDTO, error)
}

type ListPropertiesExecutor interface {
	Execute(ctx context.Context, query ListPropertiesQuery) (*ListPropertiesResult, error)
}
