package repository

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// ProductRepository describes catalog persistence.
type ProductRepository interface {
	ListActive(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, id int64, update model.ProductUpdate) error
	// Deactivate soft-deletes by clearing the active flag.
	Deactivate(ctx context.Context, id int64) error
}
