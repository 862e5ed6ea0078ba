package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// botAPI is the slice of tgbotapi.BotAPI the notifier needs; tests swap it
// for a stub.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// TelegramNotifier posts storefront events to the log channel via the Bot API.
type TelegramNotifier struct {
	api     botAPI
	channel string
	logger  *slog.Logger
}

// NewTelegramNotifier builds a notifier posting to the given channel.
func NewTelegramNotifier(api botAPI, channel string, logger *slog.Logger) *TelegramNotifier {
	return &TelegramNotifier{api: api, channel: channel, logger: logger}
}

// OrderPlaced announces a new order in the log channel.
func (n *TelegramNotifier) OrderPlaced(ctx context.Context, order *model.Order) {
	n.post(orderPlacedMessage(order))
}

// OrderStatusChanged announces an order status transition in the log channel.
func (n *TelegramNotifier) OrderStatusChanged(ctx context.Context, order *model.Order) {
	n.post(orderStatusMessage(order))
}

// DepositCreated announces a new top-up request in the log channel.
func (n *TelegramNotifier) DepositCreated(ctx context.Context, deposit *model.DepositRequest) {
	n.post(depositCreatedMessage(deposit))
}

// DepositResolved announces an approved or rejected top-up in the log channel.
func (n *TelegramNotifier) DepositResolved(ctx context.Context, deposit *model.DepositRequest) {
	n.post(depositResolvedMessage(deposit))
}

// Send delivers a message to a numeric chat ID or an @channel username.
func (n *TelegramNotifier) Send(ctx context.Context, chat, text, parseMode string) error {
	if parseMode == "" {
		parseMode = tgbotapi.ModeHTML
	}

	var msg tgbotapi.MessageConfig
	if id, err := strconv.ParseInt(chat, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(id, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(normalizeChannel(chat), text)
	}
	msg.ParseMode = parseMode

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// CheckSubscription reports whether the user belongs to the channel.
func (n *TelegramNotifier) CheckSubscription(ctx context.Context, userID int64, channel string) (bool, string, error) {
	member, err := n.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: normalizeChannel(channel),
			UserID:             userID,
		},
	})
	if err != nil {
		return false, "", err
	}

	status := strings.ToLower(member.Status)
	switch status {
	case "creator", "administrator", "member":
		return true, status, nil
	default:
		return false, status, nil
	}
}

func (n *TelegramNotifier) post(text string) {
	msg := tgbotapi.NewMessageToChannel(normalizeChannel(n.channel), text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.api.Send(msg); err != nil {
		n.logger.Warn("channel notification failed", slog.String("channel", n.channel), slog.String("error", err.Error()))
	}
}

func normalizeChannel(channel string) string {
	if strings.HasPrefix(channel, "@") {
		return channel
	}
	return "@" + channel
}

func orderPlacedMessage(order *model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *Yangi buyurtma!*\n\n")
	fmt.Fprintf(&b, "%s Mahsulot: *%s*\n", productTypeEmoji(order.Product), productName(order.Product))
	fmt.Fprintf(&b, "👤 Mijoz: @%s\n", userHandle(order.User))
	fmt.Fprintf(&b, "🆔 ID: `%s`\n", userTelegramID(order.User))
	fmt.Fprintf(&b, "📦 Miqdor: *%d ta*\n", order.Quantity)
	fmt.Fprintf(&b, "💰 Narxi: *%s so'm*\n", formatSum(order.TotalPrice))
	if order.RecipientUsername != "" {
		fmt.Fprintf(&b, "📩 Qabul qiluvchi: @%s\n", order.RecipientUsername)
	}
	fmt.Fprintf(&b, "📋 Status: ⏳ Kutilmoqda\n\n")
	fmt.Fprintf(&b, "🔗 #buyurtma_%d", order.ID)
	return b.String()
}

func orderStatusMessage(order *model.Order) string {
	emoji, text := orderStatusBadge(order.Status)
	var b strings.Builder
	fmt.Fprintf(&b, "%s *Buyurtma yangilandi!*\n\n", emoji)
	fmt.Fprintf(&b, "%s Mahsulot: *%s*\n", productTypeEmoji(order.Product), productName(order.Product))
	fmt.Fprintf(&b, "👤 Mijoz: @%s\n", userHandle(order.User))
	fmt.Fprintf(&b, "🆔 ID: `%s`\n", userTelegramID(order.User))
	fmt.Fprintf(&b, "💰 Narxi: *%s so'm*\n", formatSum(order.TotalPrice))
	fmt.Fprintf(&b, "📋 Status: %s %s\n\n", emoji, text)
	fmt.Fprintf(&b, "🔗 #buyurtma_%d", order.ID)
	return b.String()
}

func depositCreatedMessage(deposit *model.DepositRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 *Yangi to'lov so'rovi!*\n\n")
	fmt.Fprintf(&b, "👤 Foydalanuvchi: @%s\n", userHandle(deposit.User))
	fmt.Fprintf(&b, "🆔 ID: `%s`\n", userTelegramID(deposit.User))
	fmt.Fprintf(&b, "💵 Miqdor: *%s so'm*\n", formatSum(deposit.Amount))
	fmt.Fprintf(&b, "📋 Status: ⏳ Kutilmoqda\n\n")
	fmt.Fprintf(&b, "🔗 Admin panelda ko'ring")
	return b.String()
}

func depositResolvedMessage(deposit *model.DepositRequest) string {
	emoji, text := "✅", "Tasdiqlandi"
	if deposit.Status != model.DepositStatusApproved {
		emoji, text = "❌", "Rad etildi"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s *To'lov %s!*\n\n", emoji, text)
	fmt.Fprintf(&b, "👤 Foydalanuvchi: @%s\n", userHandle(deposit.User))
	fmt.Fprintf(&b, "🆔 ID: `%s`\n", userTelegramID(deposit.User))
	fmt.Fprintf(&b, "💵 Miqdor: *%s so'm*\n", formatSum(deposit.Amount))
	fmt.Fprintf(&b, "📋 Status: %s %s", emoji, text)
	if deposit.AdminNote != "" {
		fmt.Fprintf(&b, "\n📝 Izoh: %s", deposit.AdminNote)
	}
	return b.String()
}

func orderStatusBadge(status model.OrderStatus) (emoji, text string) {
	switch status {
	case model.OrderStatusCompleted:
		return "✅", "Bajarildi"
	case model.OrderStatusCancelled:
		return "❌", "Bekor qilindi"
	case model.OrderStatusProcessing:
		return "⏳", "Jarayonda"
	case model.OrderStatusRefunded:
		return "↩️", "Qaytarildi"
	default:
		return "📋", string(status)
	}
}

func productTypeEmoji(product *model.Product) string {
	if product == nil {
		return "🎨"
	}
	switch product.Type {
	case model.ProductTypePremium:
		return "⭐"
	case model.ProductTypeStars:
		return "🌟"
	default:
		return "🎨"
	}
}

func productName(product *model.Product) string {
	if product == nil || product.Name == "" {
		return "Noma'lum"
	}
	return product.Name
}

func userHandle(user *model.User) string {
	if user == nil {
		return "Foydalanuvchi"
	}
	return user.Handle()
}

func userTelegramID(user *model.User) string {
	if user == nil {
		return "N/A"
	}
	return user.TelegramID
}

// formatSum groups digits by thousands: 1250000 -> "1,250,000".
func formatSum(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
