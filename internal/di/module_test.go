package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/arzonstar/storefront/internal/app"
	"github.com/arzonstar/storefront/internal/config"
	"github.com/arzonstar/storefront/internal/domain/repository"
	"github.com/arzonstar/storefront/internal/notifier"
	"github.com/arzonstar/storefront/internal/storage/postgres"
	"github.com/arzonstar/storefront/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:           ":0",
		DatabaseURI:          "postgres://stub",
		AdminTelegramID:      "1",
		LogChannel:           "@ArzonStarLog",
		ReferralBonusPercent: 2,
		BroadcastWorkers:     1,
		ShutdownTimeout:      time.Millisecond,
		InitDataTTL:          time.Hour,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.ProductRepository(test.NewProductRepositoryStub())),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace(repository.DepositRepository(&test.DepositRepositoryStub{})),
			fx.Replace(repository.ReferralRepository(&test.ReferralRepositoryStub{})),
			fx.Replace(repository.NotificationRepository(test.NewNotificationRepositoryStub())),
			fx.Replace(repository.CardRepository(test.NewCardRepositoryStub())),
			fx.Replace(repository.ActivityRepository(&test.ActivityRepositoryStub{})),
			fx.Replace(repository.StatsRepository(&test.StatsRepositoryStub{})),
			fx.Replace(notifier.Notifier(&test.NotifierStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
