package test

import (
	"context"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
)

// StorefrontFacadeStub provides controllable behaviour for HTTP endpoints.
// Every method falls back to a benign default when its override is nil.
type StorefrontFacadeStub struct {
	SyncUserFn         func(context.Context, model.UserProfile) (*model.User, bool, error)
	UserByTelegramIDFn func(context.Context, string) (*model.User, error)
	UsersFn            func(context.Context, string, int) ([]model.User, error)
	BalanceFn          func(context.Context, string) (*model.User, error)
	AdjustBalanceFn    func(context.Context, string, int64, string) (int64, error)

	ProductsFn          func(context.Context) ([]model.Product, error)
	CreateProductFn     func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn     func(context.Context, int64, model.ProductUpdate) (*model.Product, error)
	DeactivateProductFn func(context.Context, int64) error

	PlaceOrderFn        func(context.Context, string, int64, int, string) (*model.Order, error)
	OrdersFn            func(context.Context, string) ([]model.Order, error)
	AdminOrdersFn       func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	RequestDepositFn func(context.Context, string, int64, string) (*model.DepositRequest, error)
	DepositsFn       func(context.Context, string, model.DepositStatus) ([]model.DepositRequest, error)
	ResolveDepositFn func(context.Context, int64, model.DepositStatus, string) (*model.DepositRequest, error)

	RedeemReferralCodeFn func(context.Context, string, string) error
	ReferralStatsFn      func(context.Context, string) (*model.ReferralStats, error)

	NotificationsFn        func(context.Context, int) ([]model.Notification, error)
	CreateNotificationFn   func(context.Context, string, string, string) (*model.Notification, error)
	MarkNotificationSentFn func(context.Context, int64, bool, bool) (*model.Notification, error)

	CardsFn         func(context.Context) ([]model.AdminCard, error)
	CreateCardFn    func(context.Context, string, string, string) (*model.AdminCard, error)
	SetCardActiveFn func(context.Context, int64, bool) error
	DeleteCardFn    func(context.Context, int64) error

	UserStatsFn   func(context.Context, string) (*model.UserStats, error)
	AdminStatsFn  func(context.Context) (*model.AdminStats, error)
	PublicStatsFn func(context.Context) (*model.PublicStats, error)
	TopUsersFn    func(context.Context, int) ([]model.TopUser, error)

	SendTelegramMessageFn func(context.Context, string, string, string) error
	CheckSubscriptionFn   func(context.Context, int64, string) (bool, string, error)
}

func (s *StorefrontFacadeStub) SyncUser(ctx context.Context, profile model.UserProfile) (*model.User, bool, error) {
	if s.SyncUserFn != nil {
		return s.SyncUserFn(ctx, profile)
	}
	return &model.User{ID: 1, TelegramID: profile.TelegramID, Username: profile.Username}, true, nil
}

func (s *StorefrontFacadeStub) UserByTelegramID(ctx context.Context, telegramID string) (*model.User, error) {
	if s.UserByTelegramIDFn != nil {
		return s.UserByTelegramIDFn(ctx, telegramID)
	}
	return &model.User{ID: 1, TelegramID: telegramID}, nil
}

func (s *StorefrontFacadeStub) Users(ctx context.Context, search string, limit int) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, search, limit)
	}
	return []model.User{{ID: 1, TelegramID: "42"}}, nil
}

func (s *StorefrontFacadeStub) Balance(ctx context.Context, telegramID string) (*model.User, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, telegramID)
	}
	return &model.User{ID: 1, TelegramID: telegramID, Balance: 100000, TotalSpent: 25000}, nil
}

func (s *StorefrontFacadeStub) AdjustBalance(ctx context.Context, telegramID string, amount int64, action string) (int64, error) {
	if s.AdjustBalanceFn != nil {
		return s.AdjustBalanceFn(ctx, telegramID, amount, action)
	}
	return amount, nil
}

func (s *StorefrontFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Stars 100", Type: model.ProductTypeStars, Price: 25000, IsActive: true}}, nil
}

func (s *StorefrontFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

func (s *StorefrontFacadeStub) UpdateProduct(ctx context.Context, id int64, update model.ProductUpdate) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, update)
	}
	return &model.Product{ID: id, Name: "Stars 100", Type: model.ProductTypeStars, Price: 25000, IsActive: true}, nil
}

func (s *StorefrontFacadeStub) DeactivateProduct(ctx context.Context, id int64) error {
	if s.DeactivateProductFn != nil {
		return s.DeactivateProductFn(ctx, id)
	}
	return nil
}

func (s *StorefrontFacadeStub) PlaceOrder(ctx context.Context, telegramID string, productID int64, quantity int, recipientUsername string) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, telegramID, productID, quantity, recipientUsername)
	}
	return &model.Order{ID: 1, ProductID: productID, Quantity: quantity, Status: model.OrderStatusPending}, nil
}

func (s *StorefrontFacadeStub) Orders(ctx context.Context, telegramID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, telegramID)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
}

func (s *StorefrontFacadeStub) AdminOrders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.AdminOrdersFn != nil {
		return s.AdminOrdersFn(ctx, status, limit)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
}

func (s *StorefrontFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

func (s *StorefrontFacadeStub) RequestDeposit(ctx context.Context, telegramID string, amount int64, receiptURL string) (*model.DepositRequest, error) {
	if s.RequestDepositFn != nil {
		return s.RequestDepositFn(ctx, telegramID, amount, receiptURL)
	}
	return &model.DepositRequest{ID: 1, Amount: amount, Status: model.DepositStatusPending}, nil
}

func (s *StorefrontFacadeStub) Deposits(ctx context.Context, telegramID string, status model.DepositStatus) ([]model.DepositRequest, error) {
	if s.DepositsFn != nil {
		return s.DepositsFn(ctx, telegramID, status)
	}
	return []model.DepositRequest{{ID: 1, Status: model.DepositStatusPending}}, nil
}

func (s *StorefrontFacadeStub) ResolveDeposit(ctx context.Context, depositID int64, status model.DepositStatus, adminNote string) (*model.DepositRequest, error) {
	if s.ResolveDepositFn != nil {
		return s.ResolveDepositFn(ctx, depositID, status, adminNote)
	}
	return &model.DepositRequest{ID: depositID, Status: status, AdminNote: adminNote}, nil
}

func (s *StorefrontFacadeStub) RedeemReferralCode(ctx context.Context, telegramID, code string) error {
	if s.RedeemReferralCodeFn != nil {
		return s.RedeemReferralCodeFn(ctx, telegramID, code)
	}
	return nil
}

func (s *StorefrontFacadeStub) ReferralStats(ctx context.Context, telegramID string) (*model.ReferralStats, error) {
	if s.ReferralStatsFn != nil {
		return s.ReferralStatsFn(ctx, telegramID)
	}
	return &model.ReferralStats{ReferralCode: "REF42AAAA"}, nil
}

func (s *StorefrontFacadeStub) Notifications(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx, limit)
	}
	return []model.Notification{{ID: 1, Title: "Aksiya", Message: "Chegirma"}}, nil
}

func (s *StorefrontFacadeStub) CreateNotification(ctx context.Context, title, message, imageURL string) (*model.Notification, error) {
	if s.CreateNotificationFn != nil {
		return s.CreateNotificationFn(ctx, title, message, imageURL)
	}
	return &model.Notification{ID: 1, Title: title, Message: message, ImageURL: imageURL}, nil
}

func (s *StorefrontFacadeStub) MarkNotificationSent(ctx context.Context, id int64, sent, sendToTelegram bool) (*model.Notification, error) {
	if s.MarkNotificationSentFn != nil {
		return s.MarkNotificationSentFn(ctx, id, sent, sendToTelegram)
	}
	return &model.Notification{ID: id, IsSent: sent}, nil
}

func (s *StorefrontFacadeStub) Cards(ctx context.Context) ([]model.AdminCard, error) {
	if s.CardsFn != nil {
		return s.CardsFn(ctx)
	}
	return []model.AdminCard{{ID: 1, CardNumber: "8600 1234 5678 9012", IsActive: true}}, nil
}

func (s *StorefrontFacadeStub) CreateCard(ctx context.Context, cardNumber, cardHolder, bankName string) (*model.AdminCard, error) {
	if s.CreateCardFn != nil {
		return s.CreateCardFn(ctx, cardNumber, cardHolder, bankName)
	}
	return &model.AdminCard{ID: 1, CardNumber: cardNumber, CardHolder: cardHolder, BankName: bankName, IsActive: true}, nil
}

func (s *StorefrontFacadeStub) SetCardActive(ctx context.Context, id int64, active bool) error {
	if s.SetCardActiveFn != nil {
		return s.SetCardActiveFn(ctx, id, active)
	}
	return nil
}

func (s *StorefrontFacadeStub) DeleteCard(ctx context.Context, id int64) error {
	if s.DeleteCardFn != nil {
		return s.DeleteCardFn(ctx, id)
	}
	return nil
}

func (s *StorefrontFacadeStub) UserStats(ctx context.Context, telegramID string) (*model.UserStats, error) {
	if s.UserStatsFn != nil {
		return s.UserStatsFn(ctx, telegramID)
	}
	return &model.UserStats{User: &model.User{ID: 1, TelegramID: telegramID}}, nil
}

func (s *StorefrontFacadeStub) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	if s.AdminStatsFn != nil {
		return s.AdminStatsFn(ctx)
	}
	return &model.AdminStats{TotalUsers: 10, TotalOrders: 5}, nil
}

func (s *StorefrontFacadeStub) PublicStats(ctx context.Context) (*model.PublicStats, error) {
	if s.PublicStatsFn != nil {
		return s.PublicStatsFn(ctx)
	}
	return &model.PublicStats{Users: 10, Orders: 5, Rating: 4.9}, nil
}

func (s *StorefrontFacadeStub) TopUsers(ctx context.Context, limit int) ([]model.TopUser, error) {
	if s.TopUsersFn != nil {
		return s.TopUsersFn(ctx, limit)
	}
	return []model.TopUser{{ID: 1, TelegramID: "42", TotalSpent: 100000}}, nil
}

func (s *StorefrontFacadeStub) SendTelegramMessage(ctx context.Context, chat, text, parseMode string) error {
	if s.SendTelegramMessageFn != nil {
		return s.SendTelegramMessageFn(ctx, chat, text, parseMode)
	}
	return nil
}

func (s *StorefrontFacadeStub) CheckSubscription(ctx context.Context, userID int64, channel string) (bool, string, error) {
	if s.CheckSubscriptionFn != nil {
		return s.CheckSubscriptionFn(ctx, userID, channel)
	}
	return true, "member", nil
}

// NotFoundUserFn is a ready-made override returning ErrNotFound.
func NotFoundUserFn(context.Context, string) (*model.User, error) {
	return nil, domainErrors.ErrNotFound
}
