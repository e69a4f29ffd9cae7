// Package telegram delivers relay notifications to a forum thread and
// listens for inbound bot commands.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"l4d-chat-relay/internal/domain"
)

// StatusFunc renders the reply to the /status command
type StatusFunc func(ctx context.Context) string

// Notifier sends messages to a fixed group thread
type Notifier struct {
	bot      *bot.Bot
	chatID   int64
	threadID int
}

// New creates a bot client bound to chatID/threadID.
// Without extra options the token is checked with getMe.
func New(token string, chatID int64, threadID int, opts ...bot.Option) (*Notifier, error) {
	opts = append([]bot.Option{bot.WithDefaultHandler(ignoreUpdate)}, opts...)

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Notifier{
		bot:      b,
		chatID:   chatID,
		threadID: threadID,
	}, nil
}

// Send posts an HTML message to the destination thread with link previews disabled.
// Throttling is reported as *domain.RateLimitError.
func (n *Notifier) Send(ctx context.Context, text string) error {
	disabled := true
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          n.chatID,
		MessageThreadID: n.threadID,
		Text:            text,
		ParseMode:       models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: &disabled,
		},
	})
	return translateError(err)
}

// HandleStatus registers the /status command.
func (n *Notifier) HandleStatus(status StatusFunc) {
	n.bot.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypePrefix,
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				return
			}

			_, err := b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          update.Message.Chat.ID,
				MessageThreadID: update.Message.MessageThreadID,
				Text:            status(ctx),
				ParseMode:       models.ParseModeHTML,
			})
			if err != nil {
				slog.Error("failed to answer status command",
					slog.Int64("chat_id", update.Message.Chat.ID),
					slog.String("error", err.Error()))
			}
		})
}

// Start long-polls for updates until ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	slog.Info("telegram listener started",
		slog.Int64("chat_id", n.chatID),
		slog.Int("thread_id", n.threadID))
	n.bot.Start(ctx)
	slog.Info("telegram listener stopped")
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var tooMany *bot.TooManyRequestsError
	if errors.As(err, &tooMany) {
		return &domain.RateLimitError{RetryAfter: time.Duration(tooMany.RetryAfter) * time.Second}
	}

	return fmt.Errorf("failed to send message: %w", err)
}

func ignoreUpdate(_ context.Context, _ *bot.Bot, update *models.Update) {
	slog.Debug("ignoring telegram update", slog.Int64("update_id", update.ID))
}
