package usecase

import (
	"context"
	"errors"

	"tourbook/internal/domain/user"
	"tourbook/internal/pkg/jwt"
	"tourbook/internal/pkg/password"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
}

type LoginResult struct {
	Token string
	Email string
	Role  string
}

type AuthUseCase interface {
	Login(ctx context.Context, email user.Email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email user.Email, plainPassword string) (*LoginResult, error) {
	u, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{
		Token: token,
		Email: u.Email().Value(),
		Role:  u.Role().String(),
	}, nil
}
