package authorization

import "homeward/internal/domain/property"

// PropertyPolicy decides property access per actor.
type PropertyPolicy struct{}

func NewPropertyPolicy() *PropertyPolicy {
	return &PropertyPolicy{}
}

// ViewAny allows listing for everyone; the repository shapes the list to the
// actor's own properties unless they are an admin.
func (p *PropertyPolicy) ViewAny(actor Actor) bool {
	return true
}

func (p *PropertyPolicy) View(actor Actor, prop *property.Property) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	return prop.IsOwnedBy(actor.ID)
}

func (p *PropertyPolicy) Create(actor Actor) bool {
	return actor.Role.IsHomeowner()
}

func (p *PropertyPolicy) Update(actor Actor, prop *property.Property) bool {
	return prop.IsOwnedBy(actor.ID) || actor.Role.IsAdmin()
}

func (p *PropertyPolicy) Delete(actor Actor, prop *property.Property) bool {
	return prop.IsOwnedBy(actor.ID) || actor.Role.IsAdmin()
}

func (p *PropertyPolicy) Restore(actor Actor, prop *property.Property) bool {
	return actor.Role.IsAdmin()
}

func (p *PropertyPolicy) ForceDelete(actor Actor, prop *property.Property) bool {
	return actor.Role.IsAdmin()
}
