package usecases

import (
	"context"
	"time"

	"homeward/internal/application/auth/dto"
	"homeward/internal/domain/user"
)

// PasswordHasher abstracts credential hashing so use cases stay free of the
// bcrypt dependency.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(u *user.User) (token string, expiresAt time.Time, err error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error)
}
