package usecase

import (
	"context"

	"github.com/edalchemy/edalchemy-api/internal/model"
	"github.com/edalchemy/edalchemy-api/internal/repository"
)

// ProfileUsecase defines profile read and update for an authenticated user.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*model.PublicUser, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*model.PublicUser, error)
}

// UpdateProfileParams defines the mutable profile fields. Nil means
// unchanged. Email, password and userType cannot be changed through this
// path.
type UpdateProfileParams struct {
	Name    *string
	College *string
	Course  *string
	Year    *string
}

type profileUsecase struct {
	userRepo repository.UserRepository
}

// NewProfileUsecase creates a new instance of ProfileUsecase.
func NewProfileUsecase(userRepo repository.UserRepository) ProfileUsecase {
	return &profileUsecase{userRepo: userRepo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*model.PublicUser, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := user.Public()

	return &view, nil
}

func (u *profileUsecase) UpdateProfile(
	ctx context.Context,
	userID string,
	params UpdateProfileParams,
) (*model.PublicUser, error) {
	user, err := u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		Name:    params.Name,
		College: params.College,
		Course:  params.Course,
		Year:    params.Year,
	})
	if err != nil {
		return nil, err
	}

	view := user.Public()

	return &view, nil
}
