package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserType classifies a user account. It is a flat tag, not a permission system.
type UserType string

const (
	UserTypeStudent  UserType = "student"
	UserTypeEducator UserType = "educator"
	UserTypeAdmin    UserType = "admin"
)

// DefaultAvatar is the avatar reference assigned to new accounts.
const DefaultAvatar = "default-avatar.png"

// ParseUserType maps a raw string to a UserType. Unknown or empty values fall
// back to UserTypeStudent.
func ParseUserType(s string) UserType {
	switch UserType(s) {
	case UserTypeStudent, UserTypeEducator, UserTypeAdmin:
		return UserType(s)
	default:
		return UserTypeStudent
	}
}

// User represents a user account in the authentication system.
//
// Emails are stored and compared exactly as given (case-sensitive); the unique
// index on the email field is the only serialization point for concurrent
// registrations. PasswordHash always holds an argon2id encoded hash, never a
// plaintext password.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	College      string        `bson:"college"`
	Course       string        `bson:"course"`
	Year         string        `bson:"year"`
	UserType     UserType      `bson:"user_type"`
	Avatar       string        `bson:"avatar"`
	IsVerified   bool          `bson:"is_verified"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

// PublicUser is the subset of a user record that is safe to return to clients.
// It never carries the password hash.
type PublicUser struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	College    string    `json:"college,omitempty"`
	Course     string    `json:"course,omitempty"`
	Year       string    `json:"year,omitempty"`
	UserType   UserType  `json:"userType"`
	Avatar     string    `json:"avatar"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		College:    u.College,
		Course:     u.Course,
		Year:       u.Year,
		UserType:   u.UserType,
		Avatar:     u.Avatar,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
