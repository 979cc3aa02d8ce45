// models/auth.go
package models

// LoginRequest is the login form payload.
type LoginRequest struct {
	Username   string `json:"username" form:"username" validate:"required,min=4,max=32"`
	Password   string `json:"password" form:"password" validate:"required,min=8,max=64"`
	RememberMe bool   `json:"-" form:"rememberMe"`
}

// RegisterRequest is the self-registration form payload. Registration always
// creates a ROLE_User account; collaborators and admins are created from the
// admin pages.
type RegisterRequest struct {
	Username        string `json:"username" form:"username" validate:"required,min=4,max=32"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	ConfirmEmail    string `json:"-" form:"confirmEmail" validate:"required,eqfield=Email"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"-" form:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstname" form:"firstname" validate:"required,max=64"`
	LastName        string `json:"lastname" form:"lastname" validate:"required,max=64"`
	BirthDate       string `json:"birthDate" form:"birthDate" validate:"omitempty,beforetoday"`
	PhoneNumber     string `json:"phoneNumber" form:"phoneNumber" validate:"omitempty,min=9,max=11,numeric"`
}

// ForgotPasswordRequest asks the backend to mail a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// LoginResult is the result block of a successful /auth/login or /auth/register.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
