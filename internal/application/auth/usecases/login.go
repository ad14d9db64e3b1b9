package usecases

import (
	"context"

	"homeward/internal/application/auth/dto"
	"homeward/internal/domain/user"
	"homeward/internal/shared/biztime"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

// Execute authenticates by email and password and issues an access token.
// Lookup and comparison failures return the same message so the response
// does not reveal which part was wrong.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Warnw("login failed, unknown email", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed, bad password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresAt, err := uc.issuer.Issue(u)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &dto.AuthResultDTO{
		Token:     token,
		ExpiresAt: biztime.FormatRFC3339(expiresAt),
		User:      dto.FromUser(u),
	}, nil
}
