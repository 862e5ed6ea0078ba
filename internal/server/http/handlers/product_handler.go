package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, *toProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "type, name and price required")
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), &model.Product{
		Type:           model.ProductType(req.Type),
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		DurationMonths: req.DurationMonths,
		StarsAmount:    req.StarsAmount,
		ImageURL:       req.ImageURL,
		Rating:         req.Rating,
		IsActive:       true,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PATCH /api/products.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "id required")
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), req.ID, model.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, "id")
	if !ok {
		badRequest(c, "id required")
		return
	}

	if err := h.facade.DeactivateProduct(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
