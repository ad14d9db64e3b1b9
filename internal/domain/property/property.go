package property

import (
	"fmt"
	"time"

	vo "homeward/internal/domain/property/valueobjects"
	uservo "homeward/internal/domain/user/valueobjects"
	"homeward/internal/shared/biztime"
)

// Property is the aggregate for a registered home. It owns address
// validation, ownership checks, and deletion eligibility. Tickets reference
// the property by ID; their counts reach the aggregate through the
// repository, never a direct association.
type Property struct {
	id        uint
	ownerID   uint
	address   string
	city      string
	state     vo.USState
	zipCode   vo.ZipCode
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// Details is the mutable field set for UpdateDetails. Nil pointers leave the
// corresponding field untouched.
type Details struct {
	Address *string
	City    *string
	State   *string
	ZipCode *string
	Notes   *string
}

func NewProperty(ownerID uint, address, city, state, zipCode, notes string) (*Property, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(address) == 0 {
		return nil, fmt.Errorf("address is required")
	}
	if len(address) > 255 {
		return nil, fmt.Errorf("address exceeds maximum length of 255 characters")
	}
	if len(city) == 0 {
		return nil, fmt.Errorf("city is required")
	}
	if len(city) > 255 {
		return nil, fmt.Errorf("city exceeds maximum length of 255 characters")
	}

	stateVO, ok := vo.NewUSState(state)
	if !ok {
		return nil, NewBadStateError(state)
	}
	zipVO, ok := vo.NewZipCode(zipCode)
	if !ok {
		return nil, NewBadZipError(zipCode)
	}

	now := biztime.NowUTC()
	return &Property{
		ownerID:   ownerID,
		address:   address,
		city:      city,
		state:     stateVO,
		zipCode:   zipVO,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProperty(
	id uint,
	ownerID uint,
	address string,
	city string,
	state vo.USState,
	zipCode vo.ZipCode,
	notes string,
	createdAt, updatedAt time.Time,
) (*Property, error) {
	if id == 0 {
		return nil, fmt.Errorf("property ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Property{
		id:        id,
		ownerID:   ownerID,
		address:   address,
		city:      city,
		state:     state,
		zipCode:   zipCode,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Property) ID() uint {
	return p.id
}

func (p *Property) OwnerID() uint {
	return p.ownerID
}

func (p *Property) Address() string {
	return p.address
}

func (p *Property) City() string {
	return p.city
}

func (p *Property) State() vo.USState {
	return p.state
}

func (p *Property) ZipCode() vo.ZipCode {
	return p.zipCode
}

func (p *Property) Notes() string {
	return p.notes
}

func (p *Property) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Property) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Property) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("property ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	p.id = id
	return nil
}

// Validate re-checks the stored state and ZIP code. Creation and update
// already validate through the value object constructors; this exists for
// callers that reconstruct from untrusted storage.
func (p *Property) Validate() error {
	if !p.state.IsValid() {
		return NewBadStateError(p.state.String())
	}
	if !p.zipCode.IsValid() {
		return NewBadZipError(p.zipCode.String())
	}
	return nil
}

func (p *Property) IsOwnedBy(userID uint) bool {
	return p.ownerID == userID
}

// CanBeModifiedBy allows the owner and admins.
func (p *Property) CanBeModifiedBy(userID uint, role uservo.Role) bool {
	return role.IsAdmin() || p.IsOwnedBy(userID)
}

// EnsureOwnedBy fails with KindNotOwned unless userID owns the property or
// holds the admin role.
func (p *Property) EnsureOwnedBy(userID uint, role uservo.Role) error {
	if !p.IsOwnedBy(userID) && !role.IsAdmin() {
		return NewNotOwnedError()
	}
	return nil
}

// CanBeDeleted is true when no open tickets reference the property. The
// caller fetches openTickets from the ticket repository.
func (p *Property) CanBeDeleted(openTickets int) bool {
	return openTickets == 0
}

// EnsureCanBeDeleted fails with KindHasOpenTickets carrying the exact count.
func (p *Property) EnsureCanBeDeleted(openTickets int) error {
	if openTickets > 0 {
		return NewHasOpenTicketsError(openTickets)
	}
	return nil
}

// UpdateDetails applies the non-nil fields of details. All inputs are
// validated before any field is assigned, so a failed update leaves the
// aggregate unchanged.
func (p *Property) UpdateDetails(details Details) error {
	if details.Address != nil {
		if len(*details.Address) == 0 {
			return fmt.Errorf("address is required")
		}
		if len(*details.Address) > 255 {
			return fmt.Errorf("address exceeds maximum length of 255 characters")
		}
	}
	if details.City != nil {
		if len(*details.City) == 0 {
			return fmt.Errorf("city is required")
		}
		if len(*details.City) > 255 {
			return fmt.Errorf("city exceeds maximum length of 255 characters")
		}
	}

	var stateVO vo.USState
	if details.State != nil {
		s, ok := vo.NewUSState(*details.State)
		if !ok {
			return NewBadStateError(*details.State)
		}
		stateVO = s
	}

	var zipVO vo.ZipCode
	if details.ZipCode != nil {
		z, ok := vo.NewZipCode(*details.ZipCode)
		if !ok {
			return NewBadZipError(*details.ZipCode)
		}
		zipVO = z
	}

	if details.Address != nil {
		p.address = *details.Address
	}
	if details.City != nil {
		p.city = *details.City
	}
	if details.State != nil {
		p.state = stateVO
	}
	if details.ZipCode != nil {
		p.zipCode = zipVO
	}
	if details.Notes != nil {
		p.notes = *details.Notes
	}

	p.updatedAt = biztime.NowUTC()
	return nil
}

// FullAddress formats the property as "address, city, ST zip".
func (p *Property) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", p.address, p.city, p.state, p.zipCode)
}
