package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
)

// CardUseCase manages the bank cards shown to users for manual transfers.
type CardUseCase struct {
	cards repository.CardRepository
}

// NewCardUseCase constructs CardUseCase.
func NewCardUseCase(cards repository.CardRepository) *CardUseCase {
	return &CardUseCase{cards: cards}
}

// List returns all configured cards.
func (u *CardUseCase) List(ctx context.Context) ([]model.AdminCard, error) {
	return u.cards.List(ctx)
}

// Create registers a new payout card.
func (u *CardUseCase) Create(ctx context.Context, cardNumber, cardHolder, bankName string) (*model.AdminCard, error) {
	cardNumber = strings.TrimSpace(cardNumber)
	cardHolder = strings.TrimSpace(cardHolder)
	if cardNumber == "" || cardHolder == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.cards.Create(ctx, cardNumber, cardHolder, strings.TrimSpace(bankName))
}

// SetActive toggles card visibility in the Mini App.
func (u *CardUseCase) SetActive(ctx context.Context, id int64, active bool) error {
	return u.cards.SetActive(ctx, id, active)
}

// Delete removes a card.
func (u *CardUseCase) Delete(ctx context.Context, id int64) error {
	return u.cards.Delete(ctx, id)
}
