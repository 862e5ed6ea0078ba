package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// NotificationHandler manages broadcast back-office endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/admin/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.facade.Notifications(c.Request.Context(), queryInt(c, "limit", 50))
	if err != nil {
		renderError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, toNotificationResponse(n))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/admin/notifications.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "title and message required")
		return
	}

	notification, err := h.facade.CreateNotification(c.Request.Context(), req.Title, req.Message, req.ImageURL)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toNotificationResponse(*notification))
}

// MarkSent handles PATCH /api/admin/notifications.
func (h *NotificationHandler) MarkSent(c *gin.Context) {
	var req dto.MarkNotificationSentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "notification_id required")
		return
	}

	notification, err := h.facade.MarkNotificationSent(c.Request.Context(), req.NotificationID, req.IsSent, req.SendToTelegram)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNotificationResponse(*notification))
}
