// models/category.go
package models

// Category model
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryRequest is shared by the create and update forms.
type CategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=64"`
	Description string `json:"description" form:"description" validate:"max=500"`
}
