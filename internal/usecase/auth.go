// Package usecase orchestrates registration, login, profile and password
// reset flows on top of the repositories, the credential hasher and the
// token service. It defines the error taxonomy handlers map to HTTP codes.
package usecase

import (
	"context"
	"errors"

	"github.com/edalchemy/edalchemy-api/internal/auth"
	"github.com/edalchemy/edalchemy-api/internal/model"
	"github.com/edalchemy/edalchemy-api/internal/repository"
	"github.com/edalchemy/edalchemy-api/internal/security"
)

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("user already exists with this email")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable so callers
	// cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthUsecase defines the interface for registration and login.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
}

// RegisterParams defines the parameters for user registration. Fields are
// assumed to have passed payload validation; UserType falls back to student
// when absent or unknown.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	College  string
	Course   string
	Year     string
	UserType string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// AuthResult bundles a freshly issued bearer token with the public view of
// the authenticated user.
type AuthResult struct {
	Token string
	User  model.PublicUser
}

type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, tokens *auth.TokenService) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	_, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
		College:      params.College,
		Course:       params.Course,
		Year:         params.Year,
		UserType:     model.ParseUserType(params.UserType),
		Avatar:       model.DefaultAvatar,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race against a concurrent registration; the unique
			// index is the source of truth.
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	token, err := u.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user.Public()}, nil
}
