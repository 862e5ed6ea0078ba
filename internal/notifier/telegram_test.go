package notifier

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arzonstar/storefront/internal/domain/model"
)

type stubBotAPI struct {
	sent          []tgbotapi.Chattable
	sendErr       error
	memberStatus  string
	getMemberErr  error
	lastMemberCfg tgbotapi.GetChatMemberConfig
}

func (s *stubBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.sendErr
}

func (s *stubBotAPI) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	s.lastMemberCfg = config
	return tgbotapi.ChatMember{Status: s.memberStatus}, s.getMemberErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleOrder() *model.Order {
	return &model.Order{
		ID:         17,
		Quantity:   2,
		TotalPrice: 1250000,
		Status:     model.OrderStatusPending,
		Product:    &model.Product{Name: "Telegram Premium 3 oy", Type: model.ProductTypePremium},
		User:       &model.User{TelegramID: "42", Username: "alice"},
	}
}

func TestOrderPlacedMessage(t *testing.T) {
	msg := orderPlacedMessage(sampleOrder())

	for _, want := range []string{
		"🛒 *Yangi buyurtma!*",
		"⭐ Mahsulot: *Telegram Premium 3 oy*",
		"👤 Mijoz: @alice",
		"🆔 ID: `42`",
		"📦 Miqdor: *2 ta*",
		"💰 Narxi: *1,250,000 so'm*",
		"#buyurtma_17",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Qabul qiluvchi") {
		t.Error("recipient line present without recipient username")
	}
}

func TestOrderPlacedMessageWithRecipient(t *testing.T) {
	order := sampleOrder()
	order.RecipientUsername = "bob"

	msg := orderPlacedMessage(order)
	if !strings.Contains(msg, "📩 Qabul qiluvchi: @bob") {
		t.Errorf("recipient line missing:\n%s", msg)
	}
}

func TestOrderStatusMessage(t *testing.T) {
	order := sampleOrder()
	order.Status = model.OrderStatusCompleted

	msg := orderStatusMessage(order)
	if !strings.Contains(msg, "✅ *Buyurtma yangilandi!*") {
		t.Errorf("header missing:\n%s", msg)
	}
	if !strings.Contains(msg, "📋 Status: ✅ Bajarildi") {
		t.Errorf("status line missing:\n%s", msg)
	}
}

func TestDepositResolvedMessage(t *testing.T) {
	deposit := &model.DepositRequest{
		Amount:    50000,
		Status:    model.DepositStatusRejected,
		AdminNote: "chek o'qilmadi",
		User:      &model.User{TelegramID: "42", FirstName: "Alice"},
	}

	msg := depositResolvedMessage(deposit)
	if !strings.Contains(msg, "❌ *To'lov Rad etildi!*") {
		t.Errorf("header missing:\n%s", msg)
	}
	if !strings.Contains(msg, "📝 Izoh: chek o'qilmadi") {
		t.Errorf("note line missing:\n%s", msg)
	}
	if !strings.Contains(msg, "👤 Foydalanuvchi: @Alice") {
		t.Errorf("handle fallback missing:\n%s", msg)
	}
}

func TestPostSwallowsSendError(t *testing.T) {
	api := &stubBotAPI{sendErr: errors.New("telegram down")}
	n := NewTelegramNotifier(api, "@ArzonStarLog", discardLogger())

	n.OrderPlaced(context.Background(), sampleOrder())

	if len(api.sent) != 1 {
		t.Fatalf("expected 1 send attempt, got %d", len(api.sent))
	}
}

func TestSendToNumericChat(t *testing.T) {
	api := &stubBotAPI{}
	n := NewTelegramNotifier(api, "@ArzonStarLog", discardLogger())

	if err := n.Send(context.Background(), "12345", "hello", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want MessageConfig", api.sent[0])
	}
	if msg.ChatID != 12345 {
		t.Errorf("chat ID = %d", msg.ChatID)
	}
	if msg.ParseMode != tgbotapi.ModeHTML {
		t.Errorf("parse mode = %q, want HTML default", msg.ParseMode)
	}
}

func TestSendToChannelUsername(t *testing.T) {
	api := &stubBotAPI{}
	n := NewTelegramNotifier(api, "@ArzonStarLog", discardLogger())

	if err := n.Send(context.Background(), "somechannel", "hello", "Markdown"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := api.sent[0].(tgbotapi.MessageConfig)
	if msg.ChannelUsername != "@somechannel" {
		t.Errorf("channel = %q", msg.ChannelUsername)
	}
	if msg.ParseMode != "Markdown" {
		t.Errorf("parse mode = %q", msg.ParseMode)
	}
}

func TestCheckSubscription(t *testing.T) {
	cases := []struct {
		status     string
		subscribed bool
	}{
		{"member", true},
		{"administrator", true},
		{"creator", true},
		{"left", false},
		{"kicked", false},
	}
	for _, tc := range cases {
		api := &stubBotAPI{memberStatus: tc.status}
		n := NewTelegramNotifier(api, "@ArzonStarLog", discardLogger())

		subscribed, status, err := n.CheckSubscription(context.Background(), 42, "arzonstar")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.status, err)
		}
		if subscribed != tc.subscribed {
			t.Errorf("%s: subscribed = %v, want %v", tc.status, subscribed, tc.subscribed)
		}
		if status != tc.status {
			t.Errorf("%s: status = %q", tc.status, status)
		}
		if api.lastMemberCfg.SuperGroupUsername != "@arzonstar" {
			t.Errorf("channel = %q", api.lastMemberCfg.SuperGroupUsername)
		}
	}
}

func TestFormatSum(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		50000:    "50,000",
		1250000:  "1,250,000",
		-1250000: "-1,250,000",
	}
	for in, want := range cases {
		if got := formatSum(in); got != want {
			t.Errorf("formatSum(%d) = %q, want %q", in, got, want)
		}
	}
}
