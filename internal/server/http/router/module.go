package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/arzonstar/storefront/internal/app"
	"github.com/arzonstar/storefront/internal/config"
	"github.com/arzonstar/storefront/internal/pkg/tgauth"
	"github.com/arzonstar/storefront/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)

type routerParams struct {
	fx.In

	Facade    *app.StorefrontFacade
	Validator *tgauth.Validator
	Config    *config.Config
	Logger    *slog.Logger
}

// Init data verification only makes sense with a bot token to derive the
// secret from; without one the middleware is disabled.
func newRouter(p routerParams) *gin.Engine {
	var validator middleware.InitDataValidator
	if p.Config.BotToken != "" {
		validator = p.Validator
	}
	return Setup(p.Facade, validator, p.Logger)
}
