package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/test"
)

func TestSyncCreatesUser(t *testing.T) {
	users := test.NewUserRepositoryStub()
	activity := &test.ActivityRepositoryStub{}
	uc := NewUserUseCase(users, activity, "")

	usr, created, err := uc.Sync(context.Background(), model.UserProfile{
		TelegramID: "123456789",
		Username:   "alice",
		FirstName:  "Alice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created = true")
	}
	if usr.IsAdmin {
		t.Error("user must not be admin without configured admin ID")
	}
	if !strings.HasPrefix(usr.ReferralCode, "REF456789") {
		t.Errorf("referral code = %q, want REF + ID tail prefix", usr.ReferralCode)
	}
	if len(usr.ReferralCode) != len("REF456789")+4 {
		t.Errorf("referral code %q has unexpected length", usr.ReferralCode)
	}
	if got := activity.Actions(); len(got) != 1 || got[0] != "user_registered" {
		t.Errorf("activity = %v", got)
	}
}

func TestSyncGrantsAdminByTelegramID(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := NewUserUseCase(users, &test.ActivityRepositoryStub{}, "777")

	usr, _, err := uc.Sync(context.Background(), model.UserProfile{TelegramID: "777"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !usr.IsAdmin {
		t.Error("expected admin flag for configured Telegram ID")
	}
}

func TestSyncUpdatesExistingUserKeepingAdmin(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.Add(&model.User{TelegramID: "42", Username: "old", IsAdmin: true, ReferralCode: "REF42AAAA"})
	uc := NewUserUseCase(users, &test.ActivityRepositoryStub{}, "")

	usr, created, err := uc.Sync(context.Background(), model.UserProfile{TelegramID: "42", Username: "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created = false for existing user")
	}
	if usr.Username != "new" {
		t.Errorf("username = %q, profile update lost", usr.Username)
	}
	if !usr.IsAdmin {
		t.Error("admin flag must be sticky across syncs")
	}
	if usr.ReferralCode != "REF42AAAA" {
		t.Errorf("referral code changed to %q on update", usr.ReferralCode)
	}
}

func TestSyncRejectsEmptyTelegramID(t *testing.T) {
	uc := NewUserUseCase(test.NewUserRepositoryStub(), &test.ActivityRepositoryStub{}, "")

	_, _, err := uc.Sync(context.Background(), model.UserProfile{TelegramID: "  "})
	if !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetByTelegramID(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.Add(&model.User{TelegramID: "42"})
	uc := NewUserUseCase(users, &test.ActivityRepositoryStub{}, "")

	usr, err := uc.GetByTelegramID(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.TelegramID != "42" {
		t.Errorf("telegram ID = %q", usr.TelegramID)
	}

	if _, err := uc.GetByTelegramID(context.Background(), "nope"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.GetByTelegramID(context.Background(), ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty ID, got %v", err)
	}
}

func TestAdjustBalance(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.Add(&model.User{TelegramID: "42", Balance: 1000})
	uc := NewUserUseCase(users, &test.ActivityRepositoryStub{}, "")

	balance, err := uc.AdjustBalance(context.Background(), "42", 500, "add")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 1500 {
		t.Errorf("balance = %d, want 1500", balance)
	}

	balance, err = uc.AdjustBalance(context.Background(), "42", 700, "subtract")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 800 {
		t.Errorf("balance = %d, want 800", balance)
	}
}

func TestAdjustBalanceGuards(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.Add(&model.User{TelegramID: "42", Balance: 100})
	uc := NewUserUseCase(users, &test.ActivityRepositoryStub{}, "")

	if _, err := uc.AdjustBalance(context.Background(), "42", 500, "subtract"); !errors.Is(err, domainErrors.ErrInsufficientBalance) {
		t.Errorf("overdraft: expected ErrInsufficientBalance, got %v", err)
	}
	if _, err := uc.AdjustBalance(context.Background(), "42", 0, "add"); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Errorf("zero amount: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.AdjustBalance(context.Background(), "42", 100, "multiply"); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Errorf("bad action: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.AdjustBalance(context.Background(), "missing", 100, "add"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("unknown user: expected ErrNotFound, got %v", err)
	}
}

func TestGenerateReferralCodeShortID(t *testing.T) {
	code := generateReferralCode("42")
	if !strings.HasPrefix(code, "REF42") {
		t.Errorf("code = %q", code)
	}
	if code == generateReferralCode("42") {
		t.Error("codes for the same ID must differ by random suffix")
	}
}
