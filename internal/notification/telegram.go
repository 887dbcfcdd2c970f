package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyEndorsementReceived(ctx context.Context, receiver *domain.User, e *domain.Endorsement, eventName string) {
	text := fmt.Sprintf("*You received an award!*\n\nCategory: %s\n%s", e.Category, e.Message)
	if eventName != "" {
		text += fmt.Sprintf("\nEvent: %s", eventName)
	}
	n.send(ctx, receiver.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyAwardsPending(ctx context.Context, organizer *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Voting has closed*\n\nEvent: %s\nDate (UTC): %s\nReview the tallies and grant the awards.",
		event.Name, event.DateTime.Format("02.01.2006 15:04"),
	)
	n.send(ctx, organizer.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
