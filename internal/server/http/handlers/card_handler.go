package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arzonstar/storefront/internal/server/http/dto"
)

// CardHandler manages payout card endpoints.
type CardHandler struct {
	facade CardFacade
}

// NewCardHandler constructs CardHandler.
func NewCardHandler(facade CardFacade) *CardHandler {
	return &CardHandler{facade: facade}
}

// List handles GET /api/admin/cards.
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.facade.Cards(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	resp := make([]dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, toCardResponse(card))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/admin/cards.
func (h *CardHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "card_number and card_holder required")
		return
	}

	card, err := h.facade.CreateCard(c.Request.Context(), req.CardNumber, req.CardHolder, req.BankName)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCardResponse(*card))
}

// SetActive handles PATCH /api/admin/cards.
func (h *CardHandler) SetActive(c *gin.Context) {
	var req dto.SetCardActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "card_id required")
		return
	}

	if err := h.facade.SetCardActive(c.Request.Context(), req.CardID, req.IsActive); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /api/admin/cards.
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, "id")
	if !ok {
		badRequest(c, "id required")
		return
	}

	if err := h.facade.DeleteCard(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
