package dto

import (
	"homeward/internal/domain/user"
	"homeward/internal/shared/biztime"
)

type UserDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResultDTO struct {
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expires_at"`
	User      *UserDTO `json:"user"`
}

func FromUser(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: biztime.FormatRFC3339(u.CreatedAt()),
	}
}
