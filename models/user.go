// models/user.go
package models

import "time"

// Role names as the backend issues them in the login result and the role claim.
const (
	RoleAdmin        = "ROLE_Admin"
	RoleCollaborator = "ROLE_Collaborator"
	RoleUser         = "ROLE_User"
)

// User model
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	FirstName   string    `json:"firstname"`
	LastName    string    `json:"lastname"`
	BirthDate   string    `json:"birthDate,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	DateJoined  time.Time `json:"dateJoined"`
	TotalSpent  float64   `json:"totalSpent"`
}

// FullName joins the name fields the way the console displays them.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// CreateUserRequest is the admin "create user" form payload.
type CreateUserRequest struct {
	Username        string `json:"username" form:"username" validate:"required,min=4,max=32"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	ConfirmEmail    string `json:"-" form:"confirmEmail" validate:"required,eqfield=Email"`
	Password        string `json:"password" form:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"-" form:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstname" form:"firstname" validate:"required,max=64"`
	LastName        string `json:"lastname" form:"lastname" validate:"required,max=64"`
	BirthDate       string `json:"birthDate" form:"birthDate" validate:"omitempty,beforetoday"`
	PhoneNumber     string `json:"phoneNumber" form:"phoneNumber" validate:"omitempty,min=9,max=11,numeric"`
	Role            string `json:"role" form:"role" validate:"required,oneof=ROLE_Admin ROLE_Collaborator ROLE_User"`
}

// UpdateUserRequest carries the editable user fields; empty fields stay unchanged.
type UpdateUserRequest struct {
	Email       string `json:"email,omitempty" form:"email" validate:"omitempty,email"`
	FirstName   string `json:"firstname,omitempty" form:"firstname" validate:"omitempty,max=64"`
	LastName    string `json:"lastname,omitempty" form:"lastname" validate:"omitempty,max=64"`
	BirthDate   string `json:"birthDate,omitempty" form:"birthDate" validate:"omitempty,beforetoday"`
	PhoneNumber string `json:"phoneNumber,omitempty" form:"phoneNumber" validate:"omitempty,min=9,max=11,numeric"`
	Role        string `json:"role,omitempty" form:"role" validate:"omitempty,oneof=ROLE_Admin ROLE_Collaborator ROLE_User"`
}

// DeleteManyRequest is the bulk-delete payload used by list-page checkboxes.
type DeleteManyRequest struct {
	IDs []string `json:"ids" form:"ids" validate:"required,min=1"`
}
