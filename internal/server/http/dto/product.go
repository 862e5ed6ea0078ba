package dto

import "time"

// ProductResponse mirrors a catalog row.
type ProductResponse struct {
	ID             int64     `json:"id"`
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Price          int64     `json:"price"`
	OriginalPrice  *int64    `json:"original_price,omitempty"`
	DurationMonths *int      `json:"duration_months,omitempty"`
	StarsAmount    *int      `json:"stars_amount,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	Rating         float64   `json:"rating"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateProductRequest adds a catalog item.
type CreateProductRequest struct {
	Type           string  `json:"type" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Price          int64   `json:"price" binding:"required"`
	OriginalPrice  *int64  `json:"original_price"`
	DurationMonths *int    `json:"duration_months"`
	StarsAmount    *int    `json:"stars_amount"`
	ImageURL       string  `json:"image_url"`
	Rating         float64 `json:"rating"`
}

// UpdateProductRequest applies a partial catalog edit; omitted fields stay
// untouched.
type UpdateProductRequest struct {
	ID          int64   `json:"id" binding:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}
