package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// BalanceHandler manages wallet endpoints.
type BalanceHandler struct {
	facade UserFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade UserFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Get handles GET /api/balance.
func (h *BalanceHandler) Get(c *gin.Context) {
	telegramID := c.Query("telegram_id")
	if telegramID == "" {
		badRequest(c, "telegram_id required")
		return
	}

	user, err := h.facade.Balance(c.Request.Context(), telegramID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: user.Balance, TotalSpent: user.TotalSpent})
}

// Adjust handles POST /api/balance.
func (h *BalanceHandler) Adjust(c *gin.Context) {
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "telegram_id, amount and action required")
		return
	}

	balance, err := h.facade.AdjustBalance(c.Request.Context(), req.TelegramID, req.Amount, req.Action)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdjustBalanceResponse{Success: true, Balance: balance})
}
