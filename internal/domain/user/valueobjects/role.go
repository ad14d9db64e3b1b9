package valueobjects

import "fmt"

// Role is the closed set of user roles. Every policy decision in the system
// derives from it, so the capability methods below switch exhaustively over
// all three variants; adding a role must fail compilation at each site.
type Role string

const (
	RoleHomeowner Role = "homeowner"
	RoleBuilder   Role = "builder"
	RoleAdmin     Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleHomeowner, RoleBuilder, RoleAdmin:
		return true
	}
	return false
}

func (r Role) DisplayName() string {
	switch r {
	case RoleHomeowner:
		return "Homeowner"
	case RoleBuilder:
		return "Builder/Manager"
	case RoleAdmin:
		return "Administrator"
	}
	return string(r)
}

func (r Role) IsHomeowner() bool {
	return r == RoleHomeowner
}

func (r Role) IsBuilder() bool {
	return r == RoleBuilder
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role is builder or admin.
func (r Role) IsStaff() bool {
	return r == RoleBuilder || r == RoleAdmin
}

func (r Role) CanCreateProperties() bool {
	switch r {
	case RoleHomeowner, RoleAdmin:
		return true
	case RoleBuilder:
		return false
	}
	return false
}

func (r Role) CanCreateTickets() bool {
	switch r {
	case RoleHomeowner:
		return true
	case RoleBuilder, RoleAdmin:
		return false
	}
	return false
}

func (r Role) CanBeAssignedTickets() bool {
	switch r {
	case RoleBuilder, RoleAdmin:
		return true
	case RoleHomeowner:
		return false
	}
	return false
}

func (r Role) CanCreateInternalComments() bool {
	switch r {
	case RoleBuilder, RoleAdmin:
		return true
	case RoleHomeowner:
		return false
	}
	return false
}

func (r Role) CanViewAllTickets() bool {
	switch r {
	case RoleBuilder, RoleAdmin:
		return true
	case RoleHomeowner:
		return false
	}
	return false
}

func (r Role) CanManageUsers() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleHomeowner, RoleBuilder:
		return false
	}
	return false
}

// AllRoles returns every valid role, for validation and seeding.
func AllRoles() []Role {
	return []Role{RoleHomeowner, RoleBuilder, RoleAdmin}
}
