package notify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"hospitality/entity"
	"hospitality/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the alerter needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramAlerter tells staff about new bookings and contact messages.
type TelegramAlerter struct {
	bot    Sender
	chatID int64
}

func NewTelegramBot(token string) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}

func NewTelegramAlerter(bot Sender, chatID int64) *TelegramAlerter {
	return &TelegramAlerter{bot: bot, chatID: chatID}
}

func (t *TelegramAlerter) Publish(_ context.Context, e services.Event) {
	if e.Action != services.ActionCreated {
		return
	}
	text := alertText(e)
	if text == "" {
		return
	}

	go func() {
		if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
			log.Printf("telegram: send %s alert: %v", e.Entity, err)
		}
	}()
}

func alertText(e services.Event) string {
	var b strings.Builder
	switch v := e.Data.(type) {
	case *entity.Booking:
		fmt.Fprintf(&b, "New booking request\n")
		fmt.Fprintf(&b, "%s (%s, %s)\n", v.Name, v.Email, v.Phone)
		fmt.Fprintf(&b, "%s at %s for %d guests", v.Date, v.Time, v.Guests)
		if v.Message != "" {
			fmt.Fprintf(&b, "\n%s", v.Message)
		}
	case *entity.Contact:
		fmt.Fprintf(&b, "New contact message\n")
		fmt.Fprintf(&b, "%s (%s)\n", v.Name, v.Email)
		fmt.Fprintf(&b, "Subject: %s\n%s", v.Subject, v.Message)
	default:
		return ""
	}
	return b.String()
}
