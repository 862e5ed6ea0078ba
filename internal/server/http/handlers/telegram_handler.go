package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// TelegramHandler serves Bot API passthrough endpoints.
type TelegramHandler struct {
	facade TelegramFacade
}

// NewTelegramHandler constructs TelegramHandler.
func NewTelegramHandler(facade TelegramFacade) *TelegramHandler {
	return &TelegramHandler{facade: facade}
}

// Send handles POST /api/telegram/send.
func (h *TelegramHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "chat_id and text required")
		return
	}

	if err := h.facade.SendTelegramMessage(c.Request.Context(), req.ChatID, req.Text, req.ParseMode); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SendMessageResponse{Success: true})
}

// CheckSubscription handles POST /api/telegram/check-subscription.
func (h *TelegramHandler) CheckSubscription(c *gin.Context) {
	var req dto.CheckSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "user_id and channel_username required")
		return
	}

	subscribed, status, err := h.facade.CheckSubscription(c.Request.Context(), req.UserID, req.ChannelUsername)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckSubscriptionResponse{Subscribed: subscribed, Status: status})
}
