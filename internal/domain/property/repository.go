package property

import "context"

type Repository interface {
	Save(ctx context.Context, property *Property) error
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, propertyID uint) error
	FindByID(ctx context.Context, propertyID uint) (*Property, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*Property, error)
	ListAll(ctx context.Context) ([]*Property, error)
}
