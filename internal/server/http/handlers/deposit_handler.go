package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// DepositHandler manages manual top-up endpoints.
type DepositHandler struct {
	facade DepositFacade
}

// NewDepositHandler constructs DepositHandler.
func NewDepositHandler(facade DepositFacade) *DepositHandler {
	return &DepositHandler{facade: facade}
}

// Create handles POST /api/deposits.
func (h *DepositHandler) Create(c *gin.Context) {
	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "telegram_id and amount required")
		return
	}

	deposit, err := h.facade.RequestDeposit(c.Request.Context(), req.TelegramID, req.Amount, req.ReceiptURL)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDepositResponse(*deposit))
}

// List handles GET /api/deposits.
func (h *DepositHandler) List(c *gin.Context) {
	deposits, err := h.facade.Deposits(
		c.Request.Context(),
		c.Query("telegram_id"),
		model.DepositStatus(c.Query("status")),
	)
	if err != nil {
		renderError(c, err)
		return
	}

	resp := make([]dto.DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		resp = append(resp, toDepositResponse(d))
	}
	c.JSON(http.StatusOK, resp)
}

// Resolve handles PATCH /api/deposits.
func (h *DepositHandler) Resolve(c *gin.Context) {
	var req dto.ResolveDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "deposit_id and status required")
		return
	}

	deposit, err := h.facade.ResolveDeposit(c.Request.Context(), req.DepositID, model.DepositStatus(req.Status), req.AdminNote)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDepositResponse(*deposit))
}
