package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// StatsHandler serves the aggregated counter endpoints.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// UserStats handles GET /api/user-stats.
func (h *StatsHandler) UserStats(c *gin.Context) {
	telegramID := c.Query("telegram_id")
	if telegramID == "" {
		badRequest(c, "telegram_id required")
		return
	}

	stats, err := h.facade.UserStats(c.Request.Context(), telegramID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserStatsResponse{
		User:            toUserResponse(stats.User),
		Balance:         stats.Balance,
		TotalSpent:      stats.TotalSpent,
		TotalOrders:     stats.TotalOrders,
		CompletedOrders: stats.CompletedOrders,
		PendingOrders:   stats.PendingOrders,
		ReferralCount:   stats.ReferralCount,
		NFTCount:        stats.NFTCount,
	})
}

// AdminStats handles GET /api/admin/stats.
func (h *StatsHandler) AdminStats(c *gin.Context) {
	stats, err := h.facade.AdminStats(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdminStatsResponse{
		TotalUsers:     stats.TotalUsers,
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		OrdersToday:    stats.OrdersToday,
		RevenueToday:   stats.RevenueToday,
		WeeklyRevenue:  stats.WeeklyRevenue,
		MonthlyRevenue: stats.MonthlyRevenue,
	})
}

// PublicStats handles GET /api/public-stats.
func (h *StatsHandler) PublicStats(c *gin.Context) {
	stats, err := h.facade.PublicStats(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PublicStatsResponse{Users: stats.Users, Orders: stats.Orders, Rating: stats.Rating})
}

// TopUsers handles GET /api/top-users.
func (h *StatsHandler) TopUsers(c *gin.Context) {
	top, err := h.facade.TopUsers(c.Request.Context(), queryInt(c, "limit", 30))
	if err != nil {
		renderError(c, err)
		return
	}

	resp := make([]dto.TopUserResponse, 0, len(top))
	for _, u := range top {
		resp = append(resp, dto.TopUserResponse{
			ID:         u.ID,
			TelegramID: u.TelegramID,
			Username:   u.Username,
			FirstName:  u.FirstName,
			TotalSpent: u.TotalSpent,
			PhotoURL:   u.PhotoURL,
		})
	}
	c.JSON(http.StatusOK, resp)
}
