package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edalchemy/edalchemy-api/internal/repository"
)

func TestProfileUsecase_GetProfile(t *testing.T) {
	repo := repository.NewUserInMemoryRepository()
	authUC := NewAuthUsecase(repo, newTestTokens())
	profileUC := NewProfileUsecase(repo)
	ctx := context.Background()

	registered, err := authUC.Register(ctx, registerParams("ada@x.com"))
	require.NoError(t, err)

	profile, err := profileUC.GetProfile(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", profile.Email)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestProfileUsecase_GetProfile_NotFound(t *testing.T) {
	profileUC := NewProfileUsecase(repository.NewUserInMemoryRepository())

	_, err := profileUC.GetProfile(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestProfileUsecase_UpdateProfile_PartialFields(t *testing.T) {
	repo := repository.NewUserInMemoryRepository()
	authUC := NewAuthUsecase(repo, newTestTokens())
	profileUC := NewProfileUsecase(repo)
	ctx := context.Background()

	params := registerParams("ada@x.com")
	params.Course = "Mathematics"
	params.Year = "1842"
	registered, err := authUC.Register(ctx, params)
	require.NoError(t, err)

	name := "Ada King"
	updated, err := profileUC.UpdateProfile(ctx, registered.User.ID, UpdateProfileParams{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ada King", updated.Name)
	assert.Equal(t, "Analytical College", updated.College)
	assert.Equal(t, "Mathematics", updated.Course)
	assert.Equal(t, "1842", updated.Year)

	// A subsequent GetProfile reflects the new name.
	profile, err := profileUC.GetProfile(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", profile.Name)
}

func TestProfileUsecase_UpdateProfile_ImmutableFieldsUntouched(t *testing.T) {
	repo := repository.NewUserInMemoryRepository()
	authUC := NewAuthUsecase(repo, newTestTokens())
	profileUC := NewProfileUsecase(repo)
	ctx := context.Background()

	registered, err := authUC.Register(ctx, registerParams("ada@x.com"))
	require.NoError(t, err)

	name := "Ada King"
	updated, err := profileUC.UpdateProfile(ctx, registered.User.ID, UpdateProfileParams{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, registered.User.Email, updated.Email)
	assert.Equal(t, registered.User.UserType, updated.UserType)
	assert.Equal(t, registered.User.ID, updated.ID)

	// Login still works with the original password.
	_, err = authUC.Login(ctx, LoginParams{Email: "ada@x.com", Password: "secret1"})
	require.NoError(t, err)
}
