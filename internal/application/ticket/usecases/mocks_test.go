package usecases

import (
	"context"

	"homeward/internal/domain/property"
	"homeward/internal/domain/shared/events"
	"homeward/internal/domain/ticket"
	"homeward/internal/domain/user"
)

type mockTicketRepository struct {
	SaveFunc                func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc              func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc              func(ctx context.Context, ticketID uint) error
	FindByIDFunc            func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListByPropertyFunc      func(ctx context.Context, propertyID uint) ([]*ticket.Ticket, error)
	ListBySubmitterFunc     func(ctx context.Context, submitterID uint, filter ticket.Filter) ([]*ticket.Ticket, error)
	ListAllFunc             func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
	CountOpenByPropertyFunc func(ctx context.Context, propertyID uint) (int, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByProperty(ctx context.Context, propertyID uint) ([]*ticket.Ticket, error) {
	if m.ListByPropertyFunc != nil {
		return m.ListByPropertyFunc(ctx, propertyID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListBySubmitter(ctx context.Context, submitterID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListBySubmitterFunc != nil {
		return m.ListBySubmitterFunc(ctx, submitterID, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountOpenByProperty(ctx context.Context, propertyID uint) (int, error) {
	if m.CountOpenByPropertyFunc != nil {
		return m.CountOpenByPropertyFunc(ctx, propertyID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, c *ticket.Comment) error
	UpdateFunc       func(ctx context.Context, c *ticket.Comment) error
	DeleteFunc       func(ctx context.Context, commentID uint) error
	FindByIDFunc     func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockPropertyRepository struct {
	FindByIDFunc func(ctx context.Context, propertyID uint) (*property.Property, error)
}

func (m *mockPropertyRepository) Save(ctx context.Context, p *property.Property) error   { return nil }
func (m *mockPropertyRepository) Update(ctx context.Context, p *property.Property) error { return nil }
func (m *mockPropertyRepository) Delete(ctx context.Context, propertyID uint) error      { return nil }

func (m *mockPropertyRepository) FindByID(ctx context.Context, propertyID uint) (*property.Property, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, propertyID)
	}
	return nil, nil
}

func (m *mockPropertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	return nil, nil
}

func (m *mockPropertyRepository) ListAll(ctx context.Context) ([]*property.Property, error) {
	return nil, nil
}

type mockUserRepository struct {
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// mockEventDispatcher records every published event for assertions.
type mockEventDispatcher struct {
	published []events.DomainEvent
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) {}

func (m *mockEventDispatcher) eventTypes() []string {
	types := make([]string, 0, len(m.published))
	for _, e := range m.published {
		types = append(types, e.GetEventType())
	}
	return types
}
