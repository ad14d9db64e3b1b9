package usecases

import (
	"context"

	"homeward/internal/application/auth/dto"
	"homeward/internal/domain/user"
	uservo "homeward/internal/domain/user/valueobjects"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	role, err := uservo.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	if existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email); err == nil && existing != nil {
		uc.logger.Warnw("email already registered", "email", cmd.Email)
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process credentials")
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to save user")
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "role", u.Role())
	return dto.FromUser(u), nil
}
