package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/edalchemy/edalchemy-api/internal/model"
)

// userInMemoryRepository is a mutex-guarded map implementation of
// UserRepository honoring the same contract as the MongoDB one, including
// email uniqueness. Used by tests and local development.
type userInMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]model.User
	byEmail map[string]string
}

// NewUserInMemoryRepository creates an empty in-memory user repository.
func NewUserInMemoryRepository() UserRepository {
	return &userInMemoryRepository{
		byID:    make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

func (r *userInMemoryRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, ErrDuplicateEmail
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byID[user.ID.Hex()] = *user
	r.byEmail[user.Email] = user.ID.Hex()

	return user, nil
}

func (r *userInMemoryRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	return &user, nil
}

func (r *userInMemoryRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}

	user := r.byID[id]

	return &user, nil
}

func (r *userInMemoryRepository) UpdateUser(
	_ context.Context,
	id string,
	params UpdateUserParams,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.College != nil {
		user.College = *params.College
	}
	if params.Course != nil {
		user.Course = *params.Course
	}
	if params.Year != nil {
		user.Year = *params.Year
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}

	user.UpdatedAt = time.Now()
	r.byID[id] = user

	return &user, nil
}

// passwordResetTokenInMemoryRepository mirrors the MongoDB reset token
// repository for tests and local development.
type passwordResetTokenInMemoryRepository struct {
	mu    sync.RWMutex
	byJTI map[string]model.PasswordResetToken
}

// NewPasswordResetTokenInMemoryRepository creates an empty in-memory reset
// token repository.
func NewPasswordResetTokenInMemoryRepository() PasswordResetTokenRepository {
	return &passwordResetTokenInMemoryRepository{
		byJTI: make(map[string]model.PasswordResetToken),
	}
}

func (r *passwordResetTokenInMemoryRepository) CreateToken(
	_ context.Context,
	token *model.PasswordResetToken,
) (*model.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	token.ID = bson.NewObjectID()
	token.CreatedAt = now
	token.UpdatedAt = now
	token.Used = false

	r.byJTI[token.JTI] = *token

	return token, nil
}

func (r *passwordResetTokenInMemoryRepository) GetTokenByJTI(
	_ context.Context,
	jti string,
) (*model.PasswordResetToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.byJTI[jti]
	if !ok {
		return nil, ErrResetTokenNotFound
	}

	return &token, nil
}

func (r *passwordResetTokenInMemoryRepository) MarkTokenAsUsed(_ context.Context, jti string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.byJTI[jti]
	if !ok {
		return ErrResetTokenNotFound
	}

	token.Used = true
	token.UpdatedAt = time.Now()
	r.byJTI[jti] = token

	return nil
}

func (r *passwordResetTokenInMemoryRepository) InvalidateUserTokens(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for jti, token := range r.byJTI {
		if token.UserID.Hex() == userID && !token.Used {
			token.Used = true
			token.UpdatedAt = time.Now()
			r.byJTI[jti] = token
		}
	}

	return nil
}
