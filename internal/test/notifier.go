package test

import (
	"context"
	"sync"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// NotifierStub records notification events for tests.
type NotifierStub struct {
	mu sync.Mutex

	PlacedOrders     []*model.Order
	StatusChanges    []*model.Order
	CreatedDeposits  []*model.DepositRequest
	ResolvedDeposits []*model.DepositRequest
	Sent             []SentMessage

	SendErr         error
	Subscribed      bool
	MemberStatus    string
	SubscriptionErr error
}

// SentMessage records a Send invocation.
type SentMessage struct {
	Chat      string
	Text      string
	ParseMode string
}

func (s *NotifierStub) OrderPlaced(ctx context.Context, order *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PlacedOrders = append(s.PlacedOrders, order)
}

func (s *NotifierStub) OrderStatusChanged(ctx context.Context, order *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.StatusChanges = append(s.StatusChanges, order)
}

func (s *NotifierStub) DepositCreated(ctx context.Context, deposit *model.DepositRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CreatedDeposits = append(s.CreatedDeposits, deposit)
}

func (s *NotifierStub) DepositResolved(ctx context.Context, deposit *model.DepositRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ResolvedDeposits = append(s.ResolvedDeposits, deposit)
}

func (s *NotifierStub) Send(ctx context.Context, chat, text, parseMode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, SentMessage{Chat: chat, Text: text, ParseMode: parseMode})
	return s.SendErr
}

func (s *NotifierStub) CheckSubscription(ctx context.Context, userID int64, channel string) (bool, string, error) {
	return s.Subscribed, s.MemberStatus, s.SubscriptionErr
}

// SentCount returns the number of recorded Send calls.
func (s *NotifierStub) SentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Sent)
}
