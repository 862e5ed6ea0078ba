package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// OrderHandler manages storefront and back-office order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "telegram_id and product_id required")
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.TelegramID, req.ProductID, req.Quantity, req.RecipientUsername)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	telegramID := c.Query("telegram_id")
	if telegramID == "" {
		badRequest(c, "telegram_id required")
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), telegramID)
	if err != nil {
		renderError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// AdminList handles GET /api/admin/orders.
func (h *OrderHandler) AdminList(c *gin.Context) {
	orders, err := h.facade.AdminOrders(
		c.Request.Context(),
		model.OrderStatus(c.Query("status")),
		queryInt(c, "limit", 100),
	)
	if err != nil {
		renderError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/admin/orders.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "order_id and status required")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), req.OrderID, model.OrderStatus(req.Status))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
