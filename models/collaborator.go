// models/collaborator.go
package models

// Collaborator wraps a User with the affiliate fields. CommissionRate is a
// fraction in [0, 1]; both endpoints are valid.
type Collaborator struct {
	ID                    string  `json:"id"`
	User                  User    `json:"user"`
	ReferralCode          string  `json:"referralCode"`
	CommissionRate        float64 `json:"commissionRate"`
	TotalOrdersHandled    int     `json:"totalOrdersHandled"`
	TotalSurveyHandled    int     `json:"totalSurveyHandled"`
	TotalCommissionEarned float64 `json:"totalCommissionEarned"`
}

// CreateCollaboratorRequest wraps a user creation with a commission rate.
type CreateCollaboratorRequest struct {
	CreateUserRequest
	CommissionRate float64 `json:"commissionRate" form:"commissionRate" validate:"gte=0,lte=1"`
}

// UpdateCollaboratorRequest mutates the commission rate independently of the
// embedded user.
type UpdateCollaboratorRequest struct {
	CommissionRate float64 `json:"commissionRate" form:"commissionRate" validate:"gte=0,lte=1"`
}
