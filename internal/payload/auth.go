package payload

// RegisterRequest is the body of POST /api/auth/register. UserType values
// outside the known set silently fall back to "student".
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	College  string `json:"college"`
	Course   string `json:"course"`
	Year     string `json:"year"`
	UserType string `json:"userType"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body of PUT /api/auth/profile. Fields are
// pointers so an absent field leaves the stored value untouched while an
// explicitly empty string clears it. Email, password and userType are
// immutable through this path.
type UpdateProfileRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=50"`
	College *string `json:"college"`
	Course  *string `json:"course"`
	Year    *string `json:"year"`
}

// RequestPasswordResetRequest is the body of POST /api/auth/password-reset/request.
type RequestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body of POST /api/auth/password-reset.
type ResetPasswordRequest struct {
	Token       string `json:"token"       validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
