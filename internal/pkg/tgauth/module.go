package tgauth

import (
	"go.uber.org/fx"

	"github.com/arzonstar/storefront/internal/config"
)

// Module provides init data validation via fx.
var Module = fx.Provide(newValidator)

type validatorParams struct {
	fx.In

	Config *config.Config
}

func newValidator(p validatorParams) *Validator {
	return NewValidator(p.Config.BotToken, Options{TTL: p.Config.InitDataTTL})
}
