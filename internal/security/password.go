// Package security holds the one password-hashing primitive so cost tuning
// never touches orchestration code.
package security

import (
	"errors"

	"github.com/matthewhartstonge/argon2"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

var hashConfig = argon2.DefaultConfig()

// HashPassword produces a salted argon2id encoded hash of the plaintext
// password. The encoded form embeds the salt and cost parameters.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// encoded hash. The comparison is constant-time. A malformed stored hash
// counts as a mismatch rather than an error, so callers never have to treat
// corrupt hashes differently from wrong passwords.
func VerifyPassword(password, encodedHash string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, nil
	}

	return ok, nil
}
