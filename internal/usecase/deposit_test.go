package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
	"github.com/arzonstar/storefront/internal/test"
)

func newDepositFixture(bonusPercent int) (*DepositUseCase, *test.DepositRepositoryStub, *test.NotifierStub, *test.ActivityRepositoryStub) {
	deposits := &test.DepositRepositoryStub{}
	notify := &test.NotifierStub{}
	activity := &test.ActivityRepositoryStub{}
	return NewDepositUseCase(deposits, activity, notify, bonusPercent), deposits, notify, activity
}

func TestDepositCreate(t *testing.T) {
	uc, _, notify, activity := newDepositFixture(2)

	deposit, err := uc.Create(context.Background(), 1, 50000, "https://example.com/receipt.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deposit.Status != model.DepositStatusPending {
		t.Errorf("status = %q", deposit.Status)
	}
	if len(notify.CreatedDeposits) != 1 {
		t.Errorf("notifications = %d", len(notify.CreatedDeposits))
	}
	if got := activity.Actions(); len(got) != 1 || got[0] != "deposit_requested" {
		t.Errorf("activity = %v", got)
	}
}

func TestDepositCreateRejectsNonPositiveAmount(t *testing.T) {
	uc, _, notify, _ := newDepositFixture(2)

	for _, amount := range []int64{0, -100} {
		if _, err := uc.Create(context.Background(), 1, amount, ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Errorf("amount %d: expected ErrInvalidInput, got %v", amount, err)
		}
	}
	if len(notify.CreatedDeposits) != 0 {
		t.Error("no notifications for rejected creation")
	}
}

func TestDepositResolvePassesBonusPercent(t *testing.T) {
	uc, deposits, notify, _ := newDepositFixture(7)

	_, err := uc.Resolve(context.Background(), 3, model.DepositStatusApproved, "ok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deposits.Resolved) != 1 {
		t.Fatalf("resolve calls = %d", len(deposits.Resolved))
	}
	call := deposits.Resolved[0]
	if call.BonusPercent != 7 {
		t.Errorf("bonus percent = %d, want 7", call.BonusPercent)
	}
	if call.AdminNote != "ok" {
		t.Errorf("note = %q", call.AdminNote)
	}
	if len(notify.ResolvedDeposits) != 1 {
		t.Errorf("notifications = %d", len(notify.ResolvedDeposits))
	}
}

func TestDepositResolveRejectsInvalidStatus(t *testing.T) {
	uc, deposits, _, _ := newDepositFixture(2)

	for _, status := range []model.DepositStatus{model.DepositStatusPending, "refund", ""} {
		if _, err := uc.Resolve(context.Background(), 3, status, ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Errorf("status %q: expected ErrInvalidInput, got %v", status, err)
		}
	}
	if len(deposits.Resolved) != 0 {
		t.Error("repository must not be touched for invalid status")
	}
}

func TestDepositResolveRejectedStillNotifies(t *testing.T) {
	uc, _, notify, activity := newDepositFixture(2)

	deposit, err := uc.Resolve(context.Background(), 3, model.DepositStatusRejected, "blurry receipt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deposit.Status != model.DepositStatusRejected {
		t.Errorf("status = %q", deposit.Status)
	}
	if len(notify.ResolvedDeposits) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notify.ResolvedDeposits))
	}
	if notify.ResolvedDeposits[0].Status != model.DepositStatusRejected {
		t.Errorf("notified status = %q", notify.ResolvedDeposits[0].Status)
	}
	if got := activity.Actions(); len(got) != 1 || got[0] != "deposit_resolved" {
		t.Errorf("activity = %v", got)
	}
	if applied, ok := activity.Entries[0].Details["applied"].(bool); !ok || applied {
		t.Errorf("applied detail = %v, want false", activity.Entries[0].Details["applied"])
	}
}

func TestDepositResolveAlreadySettledSkipsSideEffects(t *testing.T) {
	uc, deposits, notify, activity := newDepositFixture(2)
	deposits.ResolveFn = func(ctx context.Context, id int64, status model.DepositStatus, note string, bonus int) (*model.DepositRequest, bool, bool, error) {
		return &model.DepositRequest{ID: id, Status: model.DepositStatusApproved, AdminNote: note}, false, false, nil
	}

	deposit, err := uc.Resolve(context.Background(), 3, model.DepositStatusRejected, "late note")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deposit.AdminNote != "late note" {
		t.Errorf("note = %q", deposit.AdminNote)
	}
	if len(notify.ResolvedDeposits) != 0 {
		t.Error("no notification when the request was already resolved")
	}
	if len(activity.Entries) != 0 {
		t.Error("no activity entry when the request was already resolved")
	}
}

func TestDepositListValidatesStatus(t *testing.T) {
	uc, _, _, _ := newDepositFixture(2)

	if _, err := uc.List(context.Background(), repository.DepositFilter{Status: "bogus"}); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.List(context.Background(), repository.DepositFilter{}); err != nil {
		t.Fatalf("empty status must pass, got %v", err)
	}
}
