package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	telegramBot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"goldpost/internal/model"
)

const source = "telegram"

type Interaction struct {
	logger *slog.Logger
	TgBot  *telegramBot.Bot
}

// NewInteraction creates a bot that only sends messages; it never polls for updates.
func NewInteraction(logger *slog.Logger, token string, serverURL string, client telegramBot.HttpClient) (*Interaction, error) {
	opts := []telegramBot.Option{
		telegramBot.WithHTTPClient(time.Minute, client),
		telegramBot.WithSkipGetMe(),
	}

	if serverURL != "" {
		opts = append(opts, telegramBot.WithServerURL(serverURL))
	}

	b, err := telegramBot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create telegram bot: %w", model.ErrConfig, err)
	}

	return &Interaction{logger: logger.With("component", "telegram"), TgBot: b}, nil
}

// SendPost sends the text to the chat with link previews disabled.
// chatID is passed as is, so both "-100123" and "@channel" work.
func (that *Interaction) SendPost(ctx context.Context, chatID string, text string) error {
	log := that.logger.With("method", "SendPost", "chat_id", chatID)

	disabled := true
	msg, err := that.TgBot.SendMessage(ctx, &telegramBot.SendMessageParams{
		ChatID:             chatID,
		Text:               text,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: &disabled},
	})
	if err != nil {
		return model.NewFetchError(source, fmt.Errorf("%w: send message to telegram chat: %w", model.ErrNetwork, err))
	}

	if msg != nil {
		log.Info("post sent", "message_id", msg.ID)
	}

	return nil
}
