package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// UserHandler manages user sync and lookup endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Sync handles POST /api/users.
func (h *UserHandler) Sync(c *gin.Context) {
	var req dto.SyncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "telegram_id required")
		return
	}

	user, created, err := h.facade.SyncUser(c.Request.Context(), model.UserProfile{
		TelegramID: req.TelegramID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, toUserResponse(user))
}

// Get handles GET /api/users.
func (h *UserHandler) Get(c *gin.Context) {
	telegramID := c.Query("telegram_id")
	if telegramID == "" {
		badRequest(c, "telegram_id required")
		return
	}

	user, err := h.facade.UserByTelegramID(c.Request.Context(), telegramID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// AdminList handles GET /api/admin/users.
func (h *UserHandler) AdminList(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context(), c.Query("search"), queryInt(c, "limit", 50))
	if err != nil {
		renderError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, *toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}
