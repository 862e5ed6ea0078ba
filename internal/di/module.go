package di

import (
	"go.uber.org/fx"

	"github.com/arzonstar/storefront/internal/app"
	"github.com/arzonstar/storefront/internal/config"
	"github.com/arzonstar/storefront/internal/logger"
	"github.com/arzonstar/storefront/internal/notifier"
	"github.com/arzonstar/storefront/internal/pkg/tgauth"
	"github.com/arzonstar/storefront/internal/server/http/router"
	"github.com/arzonstar/storefront/internal/storage/postgres"
	"github.com/arzonstar/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		tgauth.Module,
		postgres.Module,
		notifier.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
