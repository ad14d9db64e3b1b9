package authorization

import (
	"homeward/internal/domain/property"
	"homeward/internal/domain/ticket"
)

// TicketPolicy decides ticket access per actor.
type TicketPolicy struct{}

func NewTicketPolicy() *TicketPolicy {
	return &TicketPolicy{}
}

// ViewAny allows listing for everyone; homeowners get only their own tickets
// from the repository, builders and admins get all. That shaping is a query
// concern, not a policy concern.
func (p *TicketPolicy) ViewAny(actor Actor) bool {
	return true
}

func (p *TicketPolicy) View(actor Actor, t *ticket.Ticket) bool {
	if actor.Role.IsStaff() {
		return true
	}
	return t.IsSubmittedBy(actor.ID)
}

func (p *TicketPolicy) Create(actor Actor) bool {
	return actor.Role.CanCreateTickets()
}

// CreateFor is the single home of the "only on your own property" rule for
// ticket creation.
func (p *TicketPolicy) CreateFor(actor Actor, prop *property.Property) bool {
	if !p.Create(actor) {
		return false
	}
	return prop.IsOwnedBy(actor.ID)
}

func (p *TicketPolicy) Update(actor Actor, t *ticket.Ticket) bool {
	return actor.Role.IsStaff()
}

func (p *TicketPolicy) Delete(actor Actor, t *ticket.Ticket) bool {
	return actor.Role.IsAdmin()
}

func (p *TicketPolicy) Restore(actor Actor, t *ticket.Ticket) bool {
	return actor.Role.IsAdmin()
}

func (p *TicketPolicy) ForceDelete(actor Actor, t *ticket.Ticket) bool {
	return actor.Role.IsAdmin()
}
