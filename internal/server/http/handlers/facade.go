package handlers

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// UserFacade describes user sync and wallet operations required by handlers.
type UserFacade interface {
	SyncUser(ctx context.Context, profile model.UserProfile) (*model.User, bool, error)
	UserByTelegramID(ctx context.Context, telegramID string) (*model.User, error)
	Users(ctx context.Context, search string, limit int) ([]model.User, error)
	Balance(ctx context.Context, telegramID string) (*model.User, error)
	AdjustBalance(ctx context.Context, telegramID string, amount int64, action string) (int64, error)
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, update model.ProductUpdate) (*model.Product, error)
	DeactivateProduct(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, telegramID string, productID int64, quantity int, recipientUsername string) (*model.Order, error)
	Orders(ctx context.Context, telegramID string) ([]model.Order, error)
	AdminOrders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}

// DepositFacade encapsulates top-up operations exposed via HTTP.
type DepositFacade interface {
	RequestDeposit(ctx context.Context, telegramID string, amount int64, receiptURL string) (*model.DepositRequest, error)
	Deposits(ctx context.Context, telegramID string, status model.DepositStatus) ([]model.DepositRequest, error)
	ResolveDeposit(ctx context.Context, depositID int64, status model.DepositStatus, adminNote string) (*model.DepositRequest, error)
}

// ReferralFacade encapsulates referral operations exposed via HTTP.
type ReferralFacade interface {
	RedeemReferralCode(ctx context.Context, telegramID, code string) error
	ReferralStats(ctx context.Context, telegramID string) (*model.ReferralStats, error)
}

// NotificationFacade encapsulates broadcast back-office operations.
type NotificationFacade interface {
	Notifications(ctx context.Context, limit int) ([]model.Notification, error)
	CreateNotification(ctx context.Context, title, message, imageURL string) (*model.Notification, error)
	MarkNotificationSent(ctx context.Context, id int64, sent, sendToTelegram bool) (*model.Notification, error)
}

// CardFacade encapsulates payout card operations.
type CardFacade interface {
	Cards(ctx context.Context) ([]model.AdminCard, error)
	CreateCard(ctx context.Context, cardNumber, cardHolder, bankName string) (*model.AdminCard, error)
	SetCardActive(ctx context.Context, id int64, active bool) error
	DeleteCard(ctx context.Context, id int64) error
}

// StatsFacade encapsulates counter aggregation endpoints.
type StatsFacade interface {
	UserStats(ctx context.Context, telegramID string) (*model.UserStats, error)
	AdminStats(ctx context.Context) (*model.AdminStats, error)
	PublicStats(ctx context.Context) (*model.PublicStats, error)
	TopUsers(ctx context.Context, limit int) ([]model.TopUser, error)
}

// TelegramFacade encapsulates Bot API passthrough operations.
type TelegramFacade interface {
	SendTelegramMessage(ctx context.Context, chat, text, parseMode string) error
	CheckSubscription(ctx context.Context, userID int64, channel string) (bool, string, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	UserFacade
	CatalogFacade
	OrderFacade
	DepositFacade
	ReferralFacade
	NotificationFacade
	CardFacade
	StatsFacade
	TelegramFacade
}
