package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
	testhelpers "github.com/arzonstar/storefront/internal/test"
	"github.com/arzonstar/storefront/internal/usecase"
)

type facadeFixture struct {
	facade   *StorefrontFacade
	users    *testhelpers.UserRepositoryStub
	products *testhelpers.ProductRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	deposits *testhelpers.DepositRepositoryStub
	notify   *testhelpers.NotifierStub
}

type broadcastRecorder struct {
	Texts []string
	IDs   [][]string
}

func (b *broadcastRecorder) Broadcast(text string, chatIDs []string) {
	b.Texts = append(b.Texts, text)
	b.IDs = append(b.IDs, chatIDs)
}

func newFacadeFixture() *facadeFixture {
	users := testhelpers.NewUserRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	orders := &testhelpers.OrderRepositoryStub{}
	deposits := &testhelpers.DepositRepositoryStub{}
	referrals := &testhelpers.ReferralRepositoryStub{}
	notifications := testhelpers.NewNotificationRepositoryStub()
	cards := testhelpers.NewCardRepositoryStub()
	activity := &testhelpers.ActivityRepositoryStub{}
	stats := &testhelpers.StatsRepositoryStub{}
	notify := &testhelpers.NotifierStub{}

	facade := NewStorefrontFacade(
		usecase.NewUserUseCase(users, activity, "1"),
		usecase.NewProductUseCase(products),
		usecase.NewOrderUseCase(orders, products, activity, notify),
		usecase.NewDepositUseCase(deposits, activity, notify, 2),
		usecase.NewReferralUseCase(referrals, users, activity),
		usecase.NewNotificationUseCase(notifications, users, &broadcastRecorder{}),
		usecase.NewCardUseCase(cards),
		usecase.NewStatsUseCase(stats, users),
		notify,
	)
	return &facadeFixture{
		facade:   facade,
		users:    users,
		products: products,
		orders:   orders,
		deposits: deposits,
		notify:   notify,
	}
}

func TestFacadeSyncUser(t *testing.T) {
	f := newFacadeFixture()
	user, created, err := f.facade.SyncUser(context.Background(), model.UserProfile{TelegramID: "777", Username: "alice"})
	if err != nil {
		t.Fatalf("sync returned error: %v", err)
	}
	if !created {
		t.Fatal("expected user to be created")
	}
	if user.ReferralCode == "" {
		t.Fatal("expected referral code to be assigned")
	}

	again, created, err := f.facade.SyncUser(context.Background(), model.UserProfile{TelegramID: "777", Username: "alice2"})
	if err != nil {
		t.Fatalf("second sync returned error: %v", err)
	}
	if created {
		t.Fatal("expected existing user on second sync")
	}
	if again.ID != user.ID || again.Username != "alice2" {
		t.Fatalf("unexpected user after resync: %+v", again)
	}
}

func TestFacadePlaceOrderResolvesCaller(t *testing.T) {
	f := newFacadeFixture()
	usr := f.users.Add(&model.User{TelegramID: "777", Balance: 100000})
	f.products.Add(&model.Product{Name: "Stars 100", Type: model.ProductTypeStars, Price: 25000, IsActive: true})

	order, err := f.facade.PlaceOrder(context.Background(), "777", 1, 2, "@bob")
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.TotalPrice != 50000 {
		t.Fatalf("expected total 50000, got %d", order.TotalPrice)
	}
	if len(f.orders.Placed) != 1 || f.orders.Placed[0].UserID != usr.ID {
		t.Fatalf("expected order placed for user %d, got %+v", usr.ID, f.orders.Placed)
	}
	if len(f.notify.PlacedOrders) != 1 {
		t.Fatalf("expected order notification, got %d", len(f.notify.PlacedOrders))
	}
	notified := f.notify.PlacedOrders[0]
	if notified.User == nil || notified.User.TelegramID != "777" {
		t.Fatalf("expected notified order to carry the buyer, got %+v", notified.User)
	}
	if notified.Product == nil || notified.Product.Name != "Stars 100" {
		t.Fatalf("expected notified order to carry the product, got %+v", notified.Product)
	}
}

func TestFacadePlaceOrderUnknownCaller(t *testing.T) {
	f := newFacadeFixture()
	if _, err := f.facade.PlaceOrder(context.Background(), "missing", 1, 1, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(f.orders.Placed) != 0 {
		t.Fatal("expected no order placed for unknown caller")
	}
}

func TestFacadeDepositsFilterByCaller(t *testing.T) {
	f := newFacadeFixture()
	usr := f.users.Add(&model.User{TelegramID: "777"})

	var gotFilter repository.DepositFilter
	f.deposits.ListFn = func(ctx context.Context, filter repository.DepositFilter) ([]model.DepositRequest, error) {
		gotFilter = filter
		return nil, nil
	}

	if _, err := f.facade.Deposits(context.Background(), "777", model.DepositStatusPending); err != nil {
		t.Fatalf("deposits returned error: %v", err)
	}
	if gotFilter.UserID == nil || *gotFilter.UserID != usr.ID {
		t.Fatalf("expected filter narrowed to user %d, got %+v", usr.ID, gotFilter)
	}
	if gotFilter.Status != model.DepositStatusPending {
		t.Fatalf("expected pending status filter, got %q", gotFilter.Status)
	}

	if _, err := f.facade.Deposits(context.Background(), "", ""); err != nil {
		t.Fatalf("unfiltered deposits returned error: %v", err)
	}
	if gotFilter.UserID != nil {
		t.Fatalf("expected no user filter without telegram id, got %+v", gotFilter)
	}
}

func TestFacadeRedeemReferralCode(t *testing.T) {
	f := newFacadeFixture()
	f.users.Add(&model.User{TelegramID: "100", ReferralCode: "REF000100AAAA"})
	f.users.Add(&model.User{TelegramID: "200", ReferralCode: "REF000200BBBB"})

	if err := f.facade.RedeemReferralCode(context.Background(), "200", "ref000100aaaa"); err != nil {
		t.Fatalf("redeem returned error: %v", err)
	}

	if err := f.facade.RedeemReferralCode(context.Background(), "100", "REF000100AAAA"); !errors.Is(err, domainErrors.ErrSelfReferral) {
		t.Fatalf("expected self referral error, got %v", err)
	}
}

func TestFacadeSendTelegramMessage(t *testing.T) {
	f := newFacadeFixture()
	if err := f.facade.SendTelegramMessage(context.Background(), "777", "hello", "HTML"); err != nil {
		t.Fatalf("send returned error: %v", err)
	}
	if f.notify.SentCount() != 1 {
		t.Fatalf("expected one sent message, got %d", f.notify.SentCount())
	}
}

func TestFacadeResolveDepositPassesBonusPercent(t *testing.T) {
	f := newFacadeFixture()
	if _, err := f.facade.ResolveDeposit(context.Background(), 5, model.DepositStatusApproved, "ok"); err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if len(f.deposits.Resolved) != 1 || f.deposits.Resolved[0].BonusPercent != 2 {
		t.Fatalf("expected resolve with bonus percent 2, got %+v", f.deposits.Resolved)
	}
}
