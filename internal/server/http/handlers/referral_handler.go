package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// ReferralHandler manages referral program endpoints.
type ReferralHandler struct {
	facade ReferralFacade
}

// NewReferralHandler constructs ReferralHandler.
func NewReferralHandler(facade ReferralFacade) *ReferralHandler {
	return &ReferralHandler{facade: facade}
}

// Redeem handles POST /api/referrals.
func (h *ReferralHandler) Redeem(c *gin.Context) {
	var req dto.RedeemReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "telegram_id and code required")
		return
	}

	if err := h.facade.RedeemReferralCode(c.Request.Context(), req.TelegramID, req.Code); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Stats handles GET /api/referrals.
func (h *ReferralHandler) Stats(c *gin.Context) {
	telegramID := c.Query("telegram_id")
	if telegramID == "" {
		badRequest(c, "telegram_id required")
		return
	}

	stats, err := h.facade.ReferralStats(c.Request.Context(), telegramID)
	if err != nil {
		renderError(c, err)
		return
	}

	referrals := make([]dto.ReferralResponse, 0, len(stats.Referrals))
	for _, r := range stats.Referrals {
		referrals = append(referrals, dto.ReferralResponse{
			ID:           r.ID,
			ReferredID:   r.ReferredID,
			BonusEarned:  r.BonusEarned,
			CreatedAt:    r.CreatedAt,
			ReferredUser: toUserResponse(r.ReferredUser),
		})
	}
	c.JSON(http.StatusOK, dto.ReferralStatsResponse{
		ReferralCode:  stats.ReferralCode,
		Referrals:     referrals,
		TotalBonus:    stats.TotalBonus,
		ReferralCount: stats.ReferralCount,
	})
}
