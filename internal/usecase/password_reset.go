package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edalchemy/edalchemy-api/internal/auth"
	"github.com/edalchemy/edalchemy-api/internal/model"
	"github.com/edalchemy/edalchemy-api/internal/repository"
	"github.com/edalchemy/edalchemy-api/internal/security"
)

var (
	// ErrResetTokenAlreadyUsed means the token was already consumed.
	ErrResetTokenAlreadyUsed = errors.New("password reset token has already been used")

	// ErrResetTokenExpired means the token's validity window has passed.
	ErrResetTokenExpired = errors.New("password reset token has expired")
)

// Mailer sends the password reset email. Satisfied by mailer.Mailer.
type Mailer interface {
	SendHTML(to []string, subject, htmlBody string) error
}

// PasswordResetUsecase defines the business logic for password reset token operations.
type PasswordResetUsecase interface {
	// RequestPasswordReset initiates the password reset process for a given
	// email. Unknown emails succeed silently so the endpoint cannot be used
	// to enumerate accounts.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword verifies the reset token, then re-hashes and persists
	// the new password and consumes the token.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type passwordResetUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.PasswordResetTokenRepository
	tokens    *auth.TokenService
	mailer    Mailer
	resetURL  string
	resetTTL  time.Duration
}

// NewPasswordResetUsecase creates a new instance of PasswordResetUsecase.
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	tokenRepo repository.PasswordResetTokenRepository,
	tokens *auth.TokenService,
	mailer Mailer,
	resetURL string,
	resetTTL time.Duration,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		mailer:    mailer,
		resetURL:  resetURL,
		resetTTL:  resetTTL,
	}
}

func (u *passwordResetUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// To prevent email enumeration, do not reveal that the email
			// does not exist.
			return nil
		}

		return err
	}

	// Only one outstanding reset token per user.
	if err := u.tokenRepo.InvalidateUserTokens(ctx, user.ID.Hex()); err != nil {
		return err
	}

	tokenStr, jti, err := u.tokens.GenerateResetToken(user.ID.Hex())
	if err != nil {
		return err
	}

	resetToken := &model.PasswordResetToken{
		JTI:       jti,
		UserID:    user.ID,
		Email:     user.Email,
		Used:      false,
		ExpiresAt: time.Now().Add(u.resetTTL),
	}

	if _, err := u.tokenRepo.CreateToken(ctx, resetToken); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", u.resetURL, tokenStr)
	htmlBody := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received a request to reset the password for your account.</p>
		<p>If you made this request, please click the link below to create a new password:</p>

		<p><a href="%s">%s</a></p>

		<p>This link will expire in %s for your security.</p>
		<p>If you did not request a password reset, you can safely ignore this email.</p>

		<p>Thank you,</p>
		<p>The EdAlchemy Team</p>
	`, user.Name, resetLink, resetLink, u.resetTTL)

	return u.mailer.SendHTML([]string{user.Email}, "Password Reset Request", htmlBody)
}

func (u *passwordResetUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	jti, err := u.tokens.ParseResetToken(token)
	if err != nil {
		return err
	}

	resetToken, err := u.tokenRepo.GetTokenByJTI(ctx, jti)
	if err != nil {
		return err
	}

	if resetToken.Used {
		return ErrResetTokenAlreadyUsed
	}

	if time.Now().After(resetToken.ExpiresAt) {
		return ErrResetTokenExpired
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if _, err := u.userRepo.UpdateUser(ctx, resetToken.UserID.Hex(), repository.UpdateUserParams{
		PasswordHash: &passwordHash,
	}); err != nil {
		return err
	}

	return u.tokenRepo.MarkTokenAsUsed(ctx, jti)
}
