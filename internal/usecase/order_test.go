package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/test"
)

func newOrderFixture() (*OrderUseCase, *test.OrderRepositoryStub, *test.ProductRepositoryStub, *test.NotifierStub, *test.ActivityRepositoryStub) {
	orders := &test.OrderRepositoryStub{}
	products := test.NewProductRepositoryStub()
	notify := &test.NotifierStub{}
	activity := &test.ActivityRepositoryStub{}
	return NewOrderUseCase(orders, products, activity, notify), orders, products, notify, activity
}

func TestPlaceComputesTotalFromCatalogPrice(t *testing.T) {
	uc, orders, products, notify, _ := newOrderFixture()
	products.Add(&model.Product{ID: 5, Name: "Stars 100", Type: model.ProductTypeStars, Price: 25000, IsActive: true})
	buyer := &model.User{ID: 1, TelegramID: "42", Username: "alice"}

	order, err := uc.Place(context.Background(), buyer, 5, 3, "@bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.TotalPrice != 75000 {
		t.Errorf("total = %d, want 75000", order.TotalPrice)
	}
	if len(orders.Placed) != 1 {
		t.Fatalf("place calls = %d", len(orders.Placed))
	}
	if orders.Placed[0].UserID != buyer.ID {
		t.Errorf("placed user id = %d, want %d", orders.Placed[0].UserID, buyer.ID)
	}
	if orders.Placed[0].RecipientUsername != "bob" {
		t.Errorf("recipient = %q, @ prefix not stripped", orders.Placed[0].RecipientUsername)
	}
	if len(notify.PlacedOrders) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notify.PlacedOrders))
	}
	notified := notify.PlacedOrders[0]
	if notified.Product == nil || notified.Product.Name != "Stars 100" {
		t.Errorf("notified product = %+v, want catalog item attached", notified.Product)
	}
	if notified.User == nil || notified.User.Username != "alice" {
		t.Errorf("notified user = %+v, want buyer attached", notified.User)
	}
}

func TestPlaceDefaultsQuantityToOne(t *testing.T) {
	uc, orders, products, _, _ := newOrderFixture()
	products.Add(&model.Product{ID: 5, Price: 1000, Type: model.ProductTypePremium, IsActive: true})

	if _, err := uc.Place(context.Background(), &model.User{ID: 1}, 5, 0, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.Placed[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", orders.Placed[0].Quantity)
	}
}

func TestPlaceRejectsInactiveProduct(t *testing.T) {
	uc, orders, products, notify, _ := newOrderFixture()
	products.Add(&model.Product{ID: 5, Price: 1000, Type: model.ProductTypePremium, IsActive: false})

	_, err := uc.Place(context.Background(), &model.User{ID: 1}, 5, 1, "")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(orders.Placed) != 0 {
		t.Error("no order must be placed for inactive product")
	}
	if len(notify.PlacedOrders) != 0 {
		t.Error("no notification for failed placement")
	}
}

func TestPlacePropagatesInsufficientBalance(t *testing.T) {
	uc, orders, products, notify, _ := newOrderFixture()
	products.Add(&model.Product{ID: 5, Price: 1000, Type: model.ProductTypePremium, IsActive: true})
	orders.PlaceFn = func(context.Context, int64, int64, int, int64, string) (*model.Order, error) {
		return nil, domainErrors.ErrInsufficientBalance
	}

	_, err := uc.Place(context.Background(), &model.User{ID: 1}, 5, 1, "")
	if !errors.Is(err, domainErrors.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if len(notify.PlacedOrders) != 0 {
		t.Error("no notification for failed placement")
	}
}

func TestUpdateStatusValidatesStatus(t *testing.T) {
	uc, orders, _, _, _ := newOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), 1, "shipped")
	if !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(orders.UpdateCalls) != 0 {
		t.Error("repository must not be touched for invalid status")
	}
}

func TestUpdateStatusNotifies(t *testing.T) {
	uc, orders, _, notify, activity := newOrderFixture()

	order, err := uc.UpdateStatus(context.Background(), 9, model.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Errorf("status = %q", order.Status)
	}
	if len(orders.UpdateCalls) != 1 || orders.UpdateCalls[0].OrderID != 9 {
		t.Errorf("update calls = %v", orders.UpdateCalls)
	}
	if len(notify.StatusChanges) != 1 {
		t.Errorf("notifications = %d", len(notify.StatusChanges))
	}
	if got := activity.Actions(); len(got) != 1 || got[0] != "order_status_updated" {
		t.Errorf("activity = %v", got)
	}
}

func TestListAllValidatesStatusFilter(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()

	if _, err := uc.ListAll(context.Background(), "bogus", 10); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.ListAll(context.Background(), "", 10); err != nil {
		t.Fatalf("empty filter must pass, got %v", err)
	}
}
