package usecase

import (
	"go.uber.org/fx"

	"github.com/arzonstar/storefront/internal/config"
	"github.com/arzonstar/storefront/internal/domain/repository"
	"github.com/arzonstar/storefront/internal/notifier"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newUserUseCase,
	NewProductUseCase,
	NewOrderUseCase,
	newDepositUseCase,
	NewReferralUseCase,
	NewNotificationUseCase,
	NewCardUseCase,
	NewStatsUseCase,
)

type userUseCaseParams struct {
	fx.In

	Users    repository.UserRepository
	Activity repository.ActivityRepository
	Config   *config.Config
}

func newUserUseCase(p userUseCaseParams) *UserUseCase {
	return NewUserUseCase(p.Users, p.Activity, p.Config.AdminTelegramID)
}

type depositUseCaseParams struct {
	fx.In

	Deposits repository.DepositRepository
	Activity repository.ActivityRepository
	Notifier notifier.Notifier
	Config   *config.Config
}

func newDepositUseCase(p depositUseCaseParams) *DepositUseCase {
	return NewDepositUseCase(p.Deposits, p.Activity, p.Notifier, p.Config.ReferralBonusPercent)
}
