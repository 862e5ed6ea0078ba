package model

import "time"

// ProductType classifies catalog items.
type ProductType string

const (
	ProductTypePremium ProductType = "premium"
	ProductTypeStars   ProductType = "stars"
	ProductTypeNFT     ProductType = "nft"
)

// Product describes a purchasable catalog item. Prices are whole so'm units.
type Product struct {
	ID             int64
	Type           ProductType
	Name           string
	Description    string
	Price          int64
	OriginalPrice  *int64
	DurationMonths *int
	StarsAmount    *int
	ImageURL       string
	Rating         float64
	IsActive       bool
	CreatedAt      time.Time
}

// ProductUpdate carries a partial catalog edit; nil fields stay untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *int64
	ImageURL    *string
	IsActive    *bool
}
