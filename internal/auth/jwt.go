// Package auth issues and verifies the signed bearer tokens that identify
// users between requests. Tokens are stateless: nothing is persisted, and
// rotating the signing secret invalidates everything outstanding.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid covers malformed tokens, wrong signing algorithms and
	// tampered signatures.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned for a well-signed token past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// TokenService mints and verifies HS256-signed JWTs. The auth token carries
// only the subject (user ID) plus issued-at and expiry claims; password reset
// tokens additionally carry a random JTI and are signed with a separate secret.
type TokenService struct {
	secret      []byte
	ttl         time.Duration
	resetSecret []byte
	resetTTL    time.Duration
}

// NewTokenService creates a TokenService. Secrets are process-wide
// configuration loaded once at startup; they must never live in source.
func NewTokenService(secret string, ttl time.Duration, resetSecret string, resetTTL time.Duration) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		ttl:         ttl,
		resetSecret: []byte(resetSecret),
		resetTTL:    resetTTL,
	}
}

// GenerateToken produces a signed auth token for the given subject, expiring
// after the configured validity window.
func (s *TokenService) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ParseToken verifies an auth token and returns its subject. Signature
// integrity is checked before expiry, so a tampered token is always
// ErrTokenInvalid regardless of its expiry claim.
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	return parseSubject(tokenStr, s.secret)
}

// GenerateResetToken produces a signed password reset token for the given
// subject and returns both the token and its JTI. The JTI is what gets
// persisted so the token can be consumed exactly once.
func (s *TokenService) GenerateResetToken(subject string) (token string, jti string, err error) {
	jti, err = generateJTI()
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        jti,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.resetTTL)),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.resetSecret)
	if err != nil {
		return "", "", err
	}

	return token, jti, nil
}

// ParseResetToken verifies a password reset token and returns its JTI.
func (s *TokenService) ParseResetToken(tokenStr string) (string, error) {
	claims, err := parseClaims(tokenStr, s.resetSecret)
	if err != nil {
		return "", err
	}

	if claims.ID == "" {
		return "", ErrTokenInvalid
	}

	return claims.ID, nil
}

func parseSubject(tokenStr string, secret []byte) (string, error) {
	claims, err := parseClaims(tokenStr, secret)
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}

func parseClaims(tokenStr string, secret []byte) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// generateJTI generates a unique JTI.
func generateJTI() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
