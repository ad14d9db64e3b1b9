package usecases

import (
	"context"

	"homeward/internal/domain/property"
	"homeward/internal/domain/ticket"
)

type mockPropertyRepository struct {
	SaveFunc        func(ctx context.Context, p *property.Property) error
	UpdateFunc      func(ctx context.Context, p *property.Property) error
	DeleteFunc      func(ctx context.Context, propertyID uint) error
	FindByIDFunc    func(ctx context.Context, propertyID uint) (*property.Property, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uint) ([]*property.Property, error)
	ListAllFunc     func(ctx context.Context) ([]*property.Property, error)
}

func (m *mockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPropertyRepository) Delete(ctx context.Context, propertyID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, propertyID)
	}
	return nil
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, propertyID uint) (*property.Property, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, propertyID)
	}
	return nil, nil
}

func (m *mockPropertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPropertyRepository) ListAll(ctx context.Context) ([]*property.Property, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct {
	CountOpenByPropertyFunc func(ctx context.Context, propertyID uint) (int, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error    { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) ListByProperty(ctx context.Context, propertyID uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) ListBySubmitter(ctx context.Context, submitterID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) CountOpenByProperty(ctx context.Context, propertyID uint) (int, error) {
	if m.CountOpenByPropertyFunc != nil {
		return m.CountOpenByPropertyFunc(ctx, propertyID)
	}
	return 0, nil
}
