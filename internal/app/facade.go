package app

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
	"github.com/arzonstar/storefront/internal/notifier"
	"github.com/arzonstar/storefront/internal/usecase"
)

// StorefrontFacade aggregates use cases behind the single surface the HTTP
// layer talks to. Endpoints identify callers by Telegram ID; the facade
// resolves them to internal users.
type StorefrontFacade struct {
	users         *usecase.UserUseCase
	products      *usecase.ProductUseCase
	orders        *usecase.OrderUseCase
	deposits      *usecase.DepositUseCase
	referrals     *usecase.ReferralUseCase
	notifications *usecase.NotificationUseCase
	cards         *usecase.CardUseCase
	stats         *usecase.StatsUseCase
	notifier      notifier.Notifier
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(
	users *usecase.UserUseCase,
	products *usecase.ProductUseCase,
	orders *usecase.OrderUseCase,
	deposits *usecase.DepositUseCase,
	referrals *usecase.ReferralUseCase,
	notifications *usecase.NotificationUseCase,
	cards *usecase.CardUseCase,
	stats *usecase.StatsUseCase,
	n notifier.Notifier,
) *StorefrontFacade {
	return &StorefrontFacade{
		users:         users,
		products:      products,
		orders:        orders,
		deposits:      deposits,
		referrals:     referrals,
		notifications: notifications,
		cards:         cards,
		stats:         stats,
		notifier:      n,
	}
}

// SyncUser upserts the Mini App user; reports whether it was newly created.
func (f *StorefrontFacade) SyncUser(ctx context.Context, profile model.UserProfile) (*model.User, bool, error) {
	return f.users.Sync(ctx, profile)
}

// UserByTelegramID fetches a user by Telegram identifier.
func (f *StorefrontFacade) UserByTelegramID(ctx context.Context, telegramID string) (*model.User, error) {
	return f.users.GetByTelegramID(ctx, telegramID)
}

// Users lists users for the back office.
func (f *StorefrontFacade) Users(ctx context.Context, search string, limit int) ([]model.User, error) {
	return f.users.List(ctx, search, limit)
}

// Balance returns the wallet view for a Telegram ID.
func (f *StorefrontFacade) Balance(ctx context.Context, telegramID string) (*model.User, error) {
	return f.users.GetByTelegramID(ctx, telegramID)
}

// AdjustBalance applies a manual admin correction and returns the new balance.
func (f *StorefrontFacade) AdjustBalance(ctx context.Context, telegramID string, amount int64, action string) (int64, error) {
	return f.users.AdjustBalance(ctx, telegramID, amount, action)
}

// Products lists active catalog items.
func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.ListActive(ctx)
}

// CreateProduct adds a catalog item.
func (f *StorefrontFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.products.Create(ctx, product)
}

// UpdateProduct applies a partial catalog edit.
func (f *StorefrontFacade) UpdateProduct(ctx context.Context, id int64, update model.ProductUpdate) (*model.Product, error) {
	return f.products.Update(ctx, id, update)
}

// DeactivateProduct soft-deletes a catalog item.
func (f *StorefrontFacade) DeactivateProduct(ctx context.Context, id int64) error {
	return f.products.Deactivate(ctx, id)
}

// PlaceOrder settles a purchase from the caller's balance.
func (f *StorefrontFacade) PlaceOrder(ctx context.Context, telegramID string, productID int64, quantity int, recipientUsername string) (*model.Order, error) {
	usr, err := f.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return f.orders.Place(ctx, usr, productID, quantity, recipientUsername)
}

// Orders returns the caller's orders.
func (f *StorefrontFacade) Orders(ctx context.Context, telegramID string) ([]model.Order, error) {
	usr, err := f.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return f.orders.ListByUser(ctx, usr.ID)
}

// AdminOrders lists recent orders across users.
func (f *StorefrontFacade) AdminOrders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	return f.orders.ListAll(ctx, status, limit)
}

// UpdateOrderStatus moves an order through its lifecycle.
func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

// RequestDeposit registers a pending top-up for the caller.
func (f *StorefrontFacade) RequestDeposit(ctx context.Context, telegramID string, amount int64, receiptURL string) (*model.DepositRequest, error) {
	usr, err := f.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return f.deposits.Create(ctx, usr.ID, amount, receiptURL)
}

// Deposits lists deposit requests, optionally narrowed to a Telegram ID or a
// status.
func (f *StorefrontFacade) Deposits(ctx context.Context, telegramID string, status model.DepositStatus) ([]model.DepositRequest, error) {
	filter := repository.DepositFilter{Status: status}
	if telegramID != "" {
		usr, err := f.users.GetByTelegramID(ctx, telegramID)
		if err != nil {
			return nil, err
		}
		filter.UserID = &usr.ID
	}
	return f.deposits.List(ctx, filter)
}

// ResolveDeposit approves or rejects a pending top-up.
func (f *StorefrontFacade) ResolveDeposit(ctx context.Context, depositID int64, status model.DepositStatus, adminNote string) (*model.DepositRequest, error) {
	return f.deposits.Resolve(ctx, depositID, status, adminNote)
}

// RedeemReferralCode binds the caller to the code's owner.
func (f *StorefrontFacade) RedeemReferralCode(ctx context.Context, telegramID, code string) error {
	usr, err := f.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return err
	}
	return f.referrals.Apply(ctx, usr.ID, code)
}

// ReferralStats returns the caller's referral program view.
func (f *StorefrontFacade) ReferralStats(ctx context.Context, telegramID string) (*model.ReferralStats, error) {
	usr, err := f.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return f.referrals.Stats(ctx, usr.ID)
}

// Notifications lists broadcast messages.
func (f *StorefrontFacade) Notifications(ctx context.Context, limit int) ([]model.Notification, error) {
	return f.notifications.List(ctx, limit)
}

// CreateNotification stores a draft broadcast.
func (f *StorefrontFacade) CreateNotification(ctx context.Context, title, message, imageURL string) (*model.Notification, error) {
	return f.notifications.Create(ctx, title, message, imageURL)
}

// MarkNotificationSent flips the sent flag, optionally broadcasting first.
func (f *StorefrontFacade) MarkNotificationSent(ctx context.Context, id int64, sent, sendToTelegram bool) (*model.Notification, error) {
	return f.notifications.MarkSent(ctx, id, sent, sendToTelegram)
}

// Cards lists payout cards.
func (f *StorefrontFacade) Cards(ctx context.Context) ([]model.AdminCard, error) {
	return f.cards.List(ctx)
}

// CreateCard registers a payout card.
func (f *StorefrontFacade) CreateCard(ctx context.Context, cardNumber, cardHolder, bankName string) (*model.AdminCard, error) {
	return f.cards.Create(ctx, cardNumber, cardHolder, bankName)
}

// SetCardActive toggles card visibility.
func (f *StorefrontFacade) SetCardActive(ctx context.Context, id int64, active bool) error {
	return f.cards.SetActive(ctx, id, active)
}

// DeleteCard removes a payout card.
func (f *StorefrontFacade) DeleteCard(ctx context.Context, id int64) error {
	return f.cards.Delete(ctx, id)
}

// UserStats returns the caller's profile counters.
func (f *StorefrontFacade) UserStats(ctx context.Context, telegramID string) (*model.UserStats, error) {
	return f.stats.ForUser(ctx, telegramID)
}

// AdminStats returns platform-wide totals.
func (f *StorefrontFacade) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	return f.stats.ForAdmin(ctx)
}

// PublicStats returns the unauthenticated counters.
func (f *StorefrontFacade) PublicStats(ctx context.Context) (*model.PublicStats, error) {
	return f.stats.Public(ctx)
}

// TopUsers returns the spend leaderboard.
func (f *StorefrontFacade) TopUsers(ctx context.Context, limit int) ([]model.TopUser, error) {
	return f.stats.TopUsers(ctx, limit)
}

// SendTelegramMessage relays an arbitrary message through the bot.
func (f *StorefrontFacade) SendTelegramMessage(ctx context.Context, chat, text, parseMode string) error {
	return f.notifier.Send(ctx, chat, text, parseMode)
}

// CheckSubscription reports channel membership for a Telegram user.
func (f *StorefrontFacade) CheckSubscription(ctx context.Context, userID int64, channel string) (bool, string, error) {
	return f.notifier.CheckSubscription(ctx, userID, channel)
}
