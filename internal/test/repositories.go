package test

import (
	"context"
	"fmt"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByTelegramID map[string]*model.User
	ByID         map[int64]*model.User
	Next         int64
	Err          error

	AdjustBalanceFn func(context.Context, int64, int64) (int64, error)
	Adjustments     []BalanceAdjustment
}

// BalanceAdjustment records an AdjustBalance invocation.
type BalanceAdjustment struct {
	UserID int64
	Delta  int64
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByTelegramID: make(map[string]*model.User),
		ByID:         make(map[int64]*model.User),
		Next:         1,
	}
}

// Add seeds a user, assigning an ID when missing.
func (s *UserRepositoryStub) Add(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = s.Next
		s.Next++
	} else if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.ByTelegramID[user.TelegramID] = user
	s.ByID[user.ID] = user
	return user
}

// Upsert creates or updates the user following the sticky admin rule.
func (s *UserRepositoryStub) Upsert(ctx context.Context, profile model.UserProfile, referralCode string, isAdmin bool) (*model.User, bool, error) {
	if s.Err != nil {
		return nil, false, s.Err
	}
	if existing, ok := s.ByTelegramID[profile.TelegramID]; ok {
		existing.Username = profile.Username
		existing.FirstName = profile.FirstName
		existing.LastName = profile.LastName
		existing.PhotoURL = profile.PhotoURL
		existing.IsAdmin = existing.IsAdmin || isAdmin
		return existing, false, nil
	}
	user := &model.User{
		TelegramID:   profile.TelegramID,
		Username:     profile.Username,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		PhotoURL:     profile.PhotoURL,
		IsAdmin:      isAdmin,
		ReferralCode: referralCode,
	}
	s.Add(user)
	return user, true, nil
}

// GetByTelegramID fetches user by Telegram identifier or returns not found.
func (s *UserRepositoryStub) GetByTelegramID(ctx context.Context, telegramID string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByTelegramID[telegramID]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByReferralCode scans stored users for a matching code.
func (s *UserRepositoryStub) GetByReferralCode(ctx context.Context, code string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.ByID {
		if user.ReferralCode == code {
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored users ignoring search and limit.
func (s *UserRepositoryStub) List(ctx context.Context, search string, limit int) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, user := range s.ByID {
		users = append(users, *user)
	}
	return users, nil
}

// AllTelegramIDs returns identifiers of all stored users.
func (s *UserRepositoryStub) AllTelegramIDs(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ids := make([]string, 0, len(s.ByTelegramID))
	for id := range s.ByTelegramID {
		ids = append(ids, id)
	}
	return ids, nil
}

// AdjustBalance applies the delta with the non-negativity guard.
func (s *UserRepositoryStub) AdjustBalance(ctx context.Context, userID, delta int64) (int64, error) {
	s.Adjustments = append(s.Adjustments, BalanceAdjustment{UserID: userID, Delta: delta})
	if s.AdjustBalanceFn != nil {
		return s.AdjustBalanceFn(ctx, userID, delta)
	}
	user, ok := s.ByID[userID]
	if !ok {
		return 0, domainErrors.ErrNotFound
	}
	if user.Balance+delta < 0 {
		return 0, domainErrors.ErrInsufficientBalance
	}
	user.Balance += delta
	return user.Balance, nil
}

// ProductRepositoryStub serves a fixed catalog for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error

	UpdateFn func(context.Context, int64, model.ProductUpdate) error
	Updates  []ProductUpdateCall
}

// ProductUpdateCall records an Update invocation.
type ProductUpdateCall struct {
	ID     int64
	Update model.ProductUpdate
}

// NewProductRepositoryStub constructs stub with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Add seeds a product, assigning an ID when missing.
func (s *ProductRepositoryStub) Add(product *model.Product) *model.Product {
	if product.ID == 0 {
		product.ID = s.Next
		s.Next++
	} else if product.ID >= s.Next {
		s.Next = product.ID + 1
	}
	s.Products[product.ID] = product
	return product
}

// ListActive returns active products.
func (s *ProductRepositoryStub) ListActive(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Product
	for _, p := range s.Products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

// GetByID fetches product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Create stores the product.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Add(product), nil
}

// Update records the partial edit and applies it to stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, update model.ProductUpdate) error {
	s.Updates = append(s.Updates, ProductUpdateCall{ID: id, Update: update})
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.ImageURL != nil {
		p.ImageURL = *update.ImageURL
	}
	if update.IsActive != nil {
		p.IsActive = *update.IsActive
	}
	return nil
}

// Deactivate clears the active flag.
func (s *ProductRepositoryStub) Deactivate(ctx context.Context, id int64) error {
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	p.IsActive = false
	return nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	PlaceFn        func(context.Context, int64, int64, int, int64, string) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	ListAllFn      func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	Placed      []PlacedOrder
	Orders      []model.Order
	UpdateCalls []OrderUpdateCall
}

// PlacedOrder records a Place invocation.
type PlacedOrder struct {
	UserID            int64
	ProductID         int64
	Quantity          int
	TotalPrice        int64
	RecipientUsername string
}

// OrderUpdateCall records an UpdateStatus invocation.
type OrderUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// Place tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Place(ctx context.Context, userID, productID int64, quantity int, totalPrice int64, recipientUsername string) (*model.Order, error) {
	s.Placed = append(s.Placed, PlacedOrder{
		UserID: userID, ProductID: productID, Quantity: quantity,
		TotalPrice: totalPrice, RecipientUsername: recipientUsername,
	})
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, productID, quantity, totalPrice, recipientUsername)
	}
	return &model.Order{
		ID: 1, UserID: userID, ProductID: productID, Quantity: quantity,
		TotalPrice: totalPrice, RecipientUsername: recipientUsername,
		Status: model.OrderStatusPending,
	}, nil
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// ListAll returns orders from configured slice.
func (s *OrderRepositoryStub) ListAll(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx, status, limit)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: status})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// DepositRepositoryStub allows tests to customize deposit behaviour.
type DepositRepositoryStub struct {
	CreateFn  func(context.Context, int64, int64, string) (*model.DepositRequest, error)
	ListFn    func(context.Context, repository.DepositFilter) ([]model.DepositRequest, error)
	ResolveFn func(context.Context, int64, model.DepositStatus, string, int) (*model.DepositRequest, bool, bool, error)

	Deposits []model.DepositRequest
	Resolved []DepositResolveCall
}

// DepositResolveCall records a Resolve invocation.
type DepositResolveCall struct {
	DepositID    int64
	Status       model.DepositStatus
	AdminNote    string
	BonusPercent int
}

// Create returns configured response or a pending request echoing inputs.
func (s *DepositRepositoryStub) Create(ctx context.Context, userID, amount int64, receiptURL string) (*model.DepositRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, amount, receiptURL)
	}
	return &model.DepositRequest{
		ID: 1, UserID: userID, Amount: amount, ReceiptURL: receiptURL,
		Status: model.DepositStatusPending,
	}, nil
}

// List returns configured deposits.
func (s *DepositRepositoryStub) List(ctx context.Context, filter repository.DepositFilter) ([]model.DepositRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Deposits, nil
}

// Resolve records invocations and returns configured responses. The default
// behaves like a first-time claim: balances apply only on approval.
func (s *DepositRepositoryStub) Resolve(ctx context.Context, depositID int64, status model.DepositStatus, adminNote string, bonusPercent int) (*model.DepositRequest, bool, bool, error) {
	s.Resolved = append(s.Resolved, DepositResolveCall{
		DepositID: depositID, Status: status, AdminNote: adminNote, BonusPercent: bonusPercent,
	})
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, depositID, status, adminNote, bonusPercent)
	}
	applied := status == model.DepositStatusApproved
	return &model.DepositRequest{ID: depositID, Status: status, AdminNote: adminNote}, true, applied, nil
}

// ReferralRepositoryStub records referral links for tests.
type ReferralRepositoryStub struct {
	LinkFn func(context.Context, int64, int64) error
	ListFn func(context.Context, int64) ([]model.Referral, error)

	Links     []ReferralLink
	Referrals []model.Referral
}

// ReferralLink records a Link invocation.
type ReferralLink struct {
	ReferrerID int64
	ReferredID int64
}

// Link records the binding, rejecting duplicates for the referred user.
func (s *ReferralRepositoryStub) Link(ctx context.Context, referrerID, referredID int64) error {
	if s.LinkFn != nil {
		return s.LinkFn(ctx, referrerID, referredID)
	}
	for _, l := range s.Links {
		if l.ReferredID == referredID {
			return domainErrors.ErrAlreadyReferred
		}
	}
	s.Links = append(s.Links, ReferralLink{ReferrerID: referrerID, ReferredID: referredID})
	return nil
}

// ListByReferrer returns configured referrals.
func (s *ReferralRepositoryStub) ListByReferrer(ctx context.Context, referrerID int64) ([]model.Referral, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, referrerID)
	}
	return s.Referrals, nil
}

// NotificationRepositoryStub stores broadcast messages for tests.
type NotificationRepositoryStub struct {
	Notifications map[int64]*model.Notification
	Next          int64
	Err           error

	MarkedSent []int64
}

// NewNotificationRepositoryStub constructs stub with initialized map.
func NewNotificationRepositoryStub() *NotificationRepositoryStub {
	return &NotificationRepositoryStub{Notifications: make(map[int64]*model.Notification), Next: 1}
}

// List returns stored notifications.
func (s *NotificationRepositoryStub) List(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Notification, 0, len(s.Notifications))
	for _, n := range s.Notifications {
		out = append(out, *n)
	}
	return out, nil
}

// GetByID fetches a notification or returns not found.
func (s *NotificationRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if n, ok := s.Notifications[id]; ok {
		return n, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Create stores a draft notification.
func (s *NotificationRepositoryStub) Create(ctx context.Context, title, message, imageURL string) (*model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	n := &model.Notification{ID: s.Next, Title: title, Message: message, ImageURL: imageURL}
	s.Next++
	s.Notifications[n.ID] = n
	return n, nil
}

// MarkSent records the call and flips the flag on the stored notification.
func (s *NotificationRepositoryStub) MarkSent(ctx context.Context, id int64, sent bool) (*model.Notification, error) {
	s.MarkedSent = append(s.MarkedSent, id)
	n, ok := s.Notifications[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	n.IsSent = sent
	return n, nil
}

// CardRepositoryStub stores admin cards for tests.
type CardRepositoryStub struct {
	Cards map[int64]*model.AdminCard
	Next  int64
	Err   error
}

// NewCardRepositoryStub constructs stub with initialized map.
func NewCardRepositoryStub() *CardRepositoryStub {
	return &CardRepositoryStub{Cards: make(map[int64]*model.AdminCard), Next: 1}
}

// List returns stored cards.
func (s *CardRepositoryStub) List(ctx context.Context) ([]model.AdminCard, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.AdminCard, 0, len(s.Cards))
	for _, c := range s.Cards {
		out = append(out, *c)
	}
	return out, nil
}

// Create stores a card.
func (s *CardRepositoryStub) Create(ctx context.Context, cardNumber, cardHolder, bankName string) (*model.AdminCard, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c := &model.AdminCard{ID: s.Next, CardNumber: cardNumber, CardHolder: cardHolder, BankName: bankName, IsActive: true}
	s.Next++
	s.Cards[c.ID] = c
	return c, nil
}

// SetActive toggles the stored card.
func (s *CardRepositoryStub) SetActive(ctx context.Context, id int64, active bool) error {
	c, ok := s.Cards[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	c.IsActive = active
	return nil
}

// Delete removes the stored card.
func (s *CardRepositoryStub) Delete(ctx context.Context, id int64) error {
	if _, ok := s.Cards[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Cards, id)
	return nil
}

// ActivityRepositoryStub records audit entries.
type ActivityRepositoryStub struct {
	Entries []ActivityEntry
	Err     error
}

// ActivityEntry records a Log invocation.
type ActivityEntry struct {
	UserID  *int64
	Action  string
	Details map[string]any
}

// Log stores the entry.
func (s *ActivityRepositoryStub) Log(ctx context.Context, userID *int64, action string, details map[string]any) error {
	if s.Err != nil {
		return s.Err
	}
	s.Entries = append(s.Entries, ActivityEntry{UserID: userID, Action: action, Details: details})
	return nil
}

// Actions returns recorded action names in order.
func (s *ActivityRepositoryStub) Actions() []string {
	out := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, e.Action)
	}
	return out
}

// StatsRepositoryStub serves fixed aggregates.
type StatsRepositoryStub struct {
	UserStatsFn  func(context.Context, int64) (*model.UserStats, error)
	AdminStatsFn func(context.Context) (*model.AdminStats, error)

	User   *model.UserStats
	Admin  *model.AdminStats
	Public *model.PublicStats
	Top    []model.TopUser
	Err    error
}

// UserStats returns configured stats.
func (s *StatsRepositoryStub) UserStats(ctx context.Context, userID int64) (*model.UserStats, error) {
	if s.UserStatsFn != nil {
		return s.UserStatsFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.UserStats{}, nil
}

// AdminStats returns configured stats.
func (s *StatsRepositoryStub) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	if s.AdminStatsFn != nil {
		return s.AdminStatsFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Admin != nil {
		return s.Admin, nil
	}
	return &model.AdminStats{}, nil
}

// PublicStats returns configured stats.
func (s *StatsRepositoryStub) PublicStats(ctx context.Context) (*model.PublicStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Public != nil {
		return s.Public, nil
	}
	return &model.PublicStats{}, nil
}

// TopUsers returns configured leaderboard.
func (s *StatsRepositoryStub) TopUsers(ctx context.Context, limit int) ([]model.TopUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Top, nil
}

// Int64Ptr is a convenience for filter construction in tests.
func Int64Ptr(v int64) *int64 { return &v }

// StrPtr is a convenience for partial update construction in tests.
func StrPtr(v string) *string { return &v }

// FmtID renders an int64 as the decimal strings handlers accept.
func FmtID(v int64) string { return fmt.Sprintf("%d", v) }
