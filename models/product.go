// models/product.go
package models

import "strings"

// Product model. Category is carried as a name string, not an id — that is what
// the backend sends, so the console mirrors it even though renaming a category
// can orphan products. Raised with the API owners; do not normalize here.
type Product struct {
	ID                   string  `json:"id"`
	ProductName          string  `json:"productName"`
	Price                float64 `json:"price"`
	Description          string  `json:"description"`
	Stock                int     `json:"stock"`
	SubscriptionDuration int     `json:"subscriptionDuration"` // days
	Category             string  `json:"category"`
	ProductCode          string  `json:"productCode"`
	OriginalImageName    string  `json:"originalImageName"`
}

// TinyImageName derives the thumbnail filename by swapping the "original_"
// prefix the upload pipeline puts on every stored image.
func (p Product) TinyImageName() string {
	if p.OriginalImageName == "" {
		return ""
	}
	return strings.Replace(p.OriginalImageName, "original_", "tiny_", 1)
}

// CreateProductRequest is the product form payload; the image travels beside it
// as a multipart part.
type CreateProductRequest struct {
	ProductName          string  `json:"productName" form:"productName" validate:"required,min=2,max=128"`
	Price                float64 `json:"price" form:"price" validate:"gte=0"`
	Description          string  `json:"description" form:"description" validate:"max=2000"`
	Stock                int     `json:"stock" form:"stock" validate:"gte=0"`
	SubscriptionDuration int     `json:"subscriptionDuration" form:"subscriptionDuration" validate:"gte=1"`
	Category             string  `json:"category" form:"category" validate:"required"`
	ProductCode          string  `json:"productCode" form:"productCode" validate:"required,max=32"`
}

// UpdateProductRequest mirrors CreateProductRequest with every field optional.
type UpdateProductRequest struct {
	ProductName          string   `json:"productName,omitempty" form:"productName" validate:"omitempty,min=2,max=128"`
	Price                *float64 `json:"price,omitempty" form:"price" validate:"omitempty,gte=0"`
	Description          string   `json:"description,omitempty" form:"description" validate:"omitempty,max=2000"`
	Stock                *int     `json:"stock,omitempty" form:"stock" validate:"omitempty,gte=0"`
	SubscriptionDuration *int     `json:"subscriptionDuration,omitempty" form:"subscriptionDuration" validate:"omitempty,gte=1"`
	Category             string   `json:"category,omitempty" form:"category"`
	ProductCode          string   `json:"productCode,omitempty" form:"productCode" validate:"omitempty,max=32"`
}
