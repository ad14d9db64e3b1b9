package user

import (
	"fmt"
	"strings"
	"time"

	vo "homeward/internal/domain/user/valueobjects"
	"homeward/internal/shared/biztime"
)

// User is the actor identity the domain core operates on. The credential
// store owns authentication; the core only needs id, name, and role.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         vo.Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role vo.Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		name:         name,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role vo.Role,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsHomeowner() bool {
	return u.role.IsHomeowner()
}

func (u *User) IsBuilder() bool {
	return u.role.IsBuilder()
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}
