package notifier

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"

	"github.com/arzonstar/storefront/internal/config"
)

// Module wires the Telegram notifier, degrading to a noop when the bot
// token is absent or rejected by the Bot API.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) Notifier {
	if p.Config.BotToken == "" {
		p.Logger.Warn("telegram bot token not set, notifications disabled")
		return NewNoopNotifier(p.Logger)
	}

	api, err := tgbotapi.NewBotAPI(p.Config.BotToken)
	if err != nil {
		p.Logger.Warn("telegram bot init failed, notifications disabled", slog.String("error", err.Error()))
		return NewNoopNotifier(p.Logger)
	}

	return NewTelegramNotifier(api, p.Config.LogChannel, p.Logger)
}
