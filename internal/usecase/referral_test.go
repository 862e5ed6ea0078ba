package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/arzonstar/storefront/internal/domain/errors"
	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/test"
)

func newReferralFixture() (*ReferralUseCase, *test.UserRepositoryStub, *test.ReferralRepositoryStub) {
	users := test.NewUserRepositoryStub()
	referrals := &test.ReferralRepositoryStub{}
	return NewReferralUseCase(referrals, users, &test.ActivityRepositoryStub{}), users, referrals
}

func TestApplyLinksReferral(t *testing.T) {
	uc, users, referrals := newReferralFixture()
	referrer := users.Add(&model.User{TelegramID: "1", ReferralCode: "REF1AAAA"})
	referred := users.Add(&model.User{TelegramID: "2"})

	if err := uc.Apply(context.Background(), referred.ID, "ref1aaaa"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(referrals.Links) != 1 {
		t.Fatalf("links = %d", len(referrals.Links))
	}
	if referrals.Links[0].ReferrerID != referrer.ID || referrals.Links[0].ReferredID != referred.ID {
		t.Errorf("link = %+v", referrals.Links[0])
	}
}

func TestApplyRejectsUnknownCode(t *testing.T) {
	uc, users, _ := newReferralFixture()
	referred := users.Add(&model.User{TelegramID: "2"})

	err := uc.Apply(context.Background(), referred.ID, "REFNOPE")
	if !errors.Is(err, domainErrors.ErrInvalidReferralCode) {
		t.Fatalf("expected ErrInvalidReferralCode, got %v", err)
	}
}

func TestApplyRejectsEmptyCode(t *testing.T) {
	uc, _, _ := newReferralFixture()

	if err := uc.Apply(context.Background(), 1, "  "); !errors.Is(err, domainErrors.ErrInvalidReferralCode) {
		t.Fatalf("expected ErrInvalidReferralCode, got %v", err)
	}
}

func TestApplyRejectsSelfReferral(t *testing.T) {
	uc, users, referrals := newReferralFixture()
	usr := users.Add(&model.User{TelegramID: "1", ReferralCode: "REF1AAAA"})

	err := uc.Apply(context.Background(), usr.ID, "REF1AAAA")
	if !errors.Is(err, domainErrors.ErrSelfReferral) {
		t.Fatalf("expected ErrSelfReferral, got %v", err)
	}
	if len(referrals.Links) != 0 {
		t.Error("no link for self referral")
	}
}

func TestApplyRejectsSecondReferral(t *testing.T) {
	uc, users, _ := newReferralFixture()
	users.Add(&model.User{TelegramID: "1", ReferralCode: "REF1AAAA"})
	users.Add(&model.User{TelegramID: "3", ReferralCode: "REF3BBBB"})
	referred := users.Add(&model.User{TelegramID: "2"})

	if err := uc.Apply(context.Background(), referred.ID, "REF1AAAA"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	err := uc.Apply(context.Background(), referred.ID, "REF3BBBB")
	if !errors.Is(err, domainErrors.ErrAlreadyReferred) {
		t.Fatalf("expected ErrAlreadyReferred, got %v", err)
	}
}

func TestReferralStats(t *testing.T) {
	uc, users, referrals := newReferralFixture()
	usr := users.Add(&model.User{TelegramID: "1", ReferralCode: "REF1AAAA"})
	referrals.Referrals = []model.Referral{
		{ReferrerID: usr.ID, ReferredID: 2, BonusEarned: 1000},
		{ReferrerID: usr.ID, ReferredID: 3, BonusEarned: 500},
	}

	stats, err := uc.Stats(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ReferralCode != "REF1AAAA" {
		t.Errorf("code = %q", stats.ReferralCode)
	}
	if stats.ReferralCount != 2 {
		t.Errorf("count = %d", stats.ReferralCount)
	}
	if stats.TotalBonus != 1500 {
		t.Errorf("total bonus = %d", stats.TotalBonus)
	}
}
