package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
)

// ProductUseCase manages the storefront catalog.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// ListActive returns active catalog items sorted by price.
func (u *ProductUseCase) ListActive(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

// Get fetches a single product.
func (u *ProductUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create adds a new catalog item.
func (u *ProductUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Price <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	switch product.Type {
	case model.ProductTypePremium, model.ProductTypeStars, model.ProductTypeNFT:
	default:
		return nil, domainErrors.ErrInvalidInput
	}
	return u.products.Create(ctx, product)
}

// Update applies a partial edit to a catalog item.
func (u *ProductUseCase) Update(ctx context.Context, id int64, update model.ProductUpdate) (*model.Product, error) {
	if update.Price != nil && *update.Price <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := u.products.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return u.products.GetByID(ctx, id)
}

// Deactivate hides a catalog item from the storefront without deleting rows
// that orders reference.
func (u *ProductUseCase) Deactivate(ctx context.Context, id int64) error {
	return u.products.Deactivate(ctx, id)
}
