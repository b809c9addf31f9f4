package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edalchemy/edalchemy-api/internal/model"
)

func newTestUser(email string) *model.User {
	return &model.User{
		Name:         "Ada Lovelace",
		Email:        email,
		PasswordHash: "$argon2id$stub",
		UserType:     model.UserTypeStudent,
		Avatar:       model.DefaultAvatar,
	}
}

func TestUserInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewUserInMemoryRepository()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, newTestUser("ada@x.com"))
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())
	require.False(t, created.CreatedAt.IsZero())

	byID, err := repo.GetUser(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", byID.Email)

	byEmail, err := repo.GetUserByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUserInMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserInMemoryRepository()
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, newTestUser("ada@x.com"))
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, newTestUser("ada@x.com"))
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserInMemoryRepository_EmailLookupIsCaseSensitive(t *testing.T) {
	repo := NewUserInMemoryRepository()
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, newTestUser("ada@x.com"))
	require.NoError(t, err)

	_, err = repo.GetUserByEmail(ctx, "Ada@x.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserInMemoryRepository_NotFound(t *testing.T) {
	repo := NewUserInMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetUser(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetUserByEmail(ctx, "ghost@x.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.UpdateUser(ctx, "missing", UpdateUserParams{})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserInMemoryRepository_PartialUpdate(t *testing.T) {
	repo := NewUserInMemoryRepository()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, &model.User{
		Name:         "Ada Lovelace",
		Email:        "ada@x.com",
		PasswordHash: "$argon2id$stub",
		College:      "Analytical College",
		Course:       "Mathematics",
	})
	require.NoError(t, err)

	name := "Ada King"
	updated, err := repo.UpdateUser(ctx, created.ID.Hex(), UpdateUserParams{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ada King", updated.Name)
	assert.Equal(t, "Analytical College", updated.College)
	assert.Equal(t, "Mathematics", updated.Course)
	assert.Equal(t, "$argon2id$stub", updated.PasswordHash)

	// An explicitly empty string clears the field; absent leaves it alone.
	empty := ""
	updated, err = repo.UpdateUser(ctx, created.ID.Hex(), UpdateUserParams{College: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.College)
	assert.Equal(t, "Ada King", updated.Name)
}

func TestPasswordResetTokenInMemoryRepository_Lifecycle(t *testing.T) {
	userRepo := NewUserInMemoryRepository()
	tokenRepo := NewPasswordResetTokenInMemoryRepository()
	ctx := context.Background()

	user, err := userRepo.CreateUser(ctx, newTestUser("ada@x.com"))
	require.NoError(t, err)

	created, err := tokenRepo.CreateToken(ctx, &model.PasswordResetToken{
		JTI:    "jti-1",
		UserID: user.ID,
		Email:  user.Email,
	})
	require.NoError(t, err)
	require.False(t, created.Used)

	fetched, err := tokenRepo.GetTokenByJTI(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.UserID)

	require.NoError(t, tokenRepo.MarkTokenAsUsed(ctx, "jti-1"))

	fetched, err = tokenRepo.GetTokenByJTI(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, fetched.Used)

	_, err = tokenRepo.GetTokenByJTI(ctx, "jti-missing")
	require.ErrorIs(t, err, ErrResetTokenNotFound)
}

func TestPasswordResetTokenInMemoryRepository_InvalidateUserTokens(t *testing.T) {
	userRepo := NewUserInMemoryRepository()
	tokenRepo := NewPasswordResetTokenInMemoryRepository()
	ctx := context.Background()

	user, err := userRepo.CreateUser(ctx, newTestUser("ada@x.com"))
	require.NoError(t, err)

	for _, jti := range []string{"jti-1", "jti-2"} {
		_, err := tokenRepo.CreateToken(ctx, &model.PasswordResetToken{
			JTI:    jti,
			UserID: user.ID,
			Email:  user.Email,
		})
		require.NoError(t, err)
	}

	require.NoError(t, tokenRepo.InvalidateUserTokens(ctx, user.ID.Hex()))

	for _, jti := range []string{"jti-1", "jti-2"} {
		token, err := tokenRepo.GetTokenByJTI(ctx, jti)
		require.NoError(t, err)
		assert.True(t, token.Used)
	}
}
