package facades

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// TelegramSender is the part of *tgbotapi.BotAPI the notifier needs.
type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifierFacade posts notifications to an admin chat.
type TelegramNotifierFacade struct {
	bot    TelegramSender
	chatID int64
}

// NewTelegramNotifierFacade creates a new Telegram notifier.
func NewTelegramNotifierFacade(bot TelegramSender, chatID int64) *TelegramNotifierFacade {
	return &TelegramNotifierFacade{bot: bot, chatID: chatID}
}

// Notify posts the subject and the plain text body to the chat.
func (f *TelegramNotifierFacade) Notify(ctx context.Context, n models.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.chatID == 0 {
		return errors.New("telegram chat id not configured")
	}

	msg := tgbotapi.NewMessage(f.chatID, n.Subject+"\n\n"+n.Text)
	msg.DisableWebPagePreview = true

	if _, err := f.bot.Send(msg); err != nil {
		logger.Log.Errorw("failed to send telegram message", "chat_id", f.chatID, "error", err)
		return err
	}
	logger.Log.Infow("telegram message sent", "chat_id", f.chatID)
	return nil
}
