package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// renderError maps domain sentinels onto HTTP statuses with the uniform
// {"error": "..."} envelope.
func renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidInput),
		errors.Is(err, domainErrors.ErrInvalidReferralCode),
		errors.Is(err, domainErrors.ErrSelfReferral):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrAlreadyReferred):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		status = http.StatusPaymentRequired
	case errors.Is(err, domainErrors.ErrNotifierUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}

// queryInt parses an optional integer query parameter, falling back on def.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// queryID parses a required int64 query parameter.
func queryID(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func toUserResponse(u *model.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		TelegramID:   u.TelegramID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PhotoURL:     u.PhotoURL,
		IsAdmin:      u.IsAdmin,
		Balance:      u.Balance,
		TotalSpent:   u.TotalSpent,
		ReferralCode: u.ReferralCode,
		ReferrerID:   u.ReferrerID,
		CreatedAt:    u.CreatedAt,
	}
}

func toProductResponse(p *model.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Type:           string(p.Type),
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		DurationMonths: p.DurationMonths,
		StarsAmount:    p.StarsAmount,
		ImageURL:       p.ImageURL,
		Rating:         p.Rating,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		ProductID:         o.ProductID,
		RecipientUsername: o.RecipientUsername,
		Quantity:          o.Quantity,
		TotalPrice:        o.TotalPrice,
		Status:            string(o.Status),
		PaymentMethod:     o.PaymentMethod,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Product:           toProductResponse(o.Product),
		User:              toUserResponse(o.User),
	}
}

func toDepositResponse(d model.DepositRequest) dto.DepositResponse {
	return dto.DepositResponse{
		ID:         d.ID,
		UserID:     d.UserID,
		Amount:     d.Amount,
		ReceiptURL: d.ReceiptURL,
		Status:     string(d.Status),
		AdminNote:  d.AdminNote,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		User:       toUserResponse(d.User),
	}
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		ImageURL:  n.ImageURL,
		IsSent:    n.IsSent,
		SentAt:    n.SentAt,
		CreatedAt: n.CreatedAt,
	}
}

func toCardResponse(card model.AdminCard) dto.CardResponse {
	return dto.CardResponse{
		ID:         card.ID,
		CardNumber: card.CardNumber,
		CardHolder: card.CardHolder,
		BankName:   card.BankName,
		IsActive:   card.IsActive,
		CreatedAt:  card.CreatedAt,
	}
}
