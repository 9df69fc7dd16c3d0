// Package telegram feeds operator messages from a Telegram chat to the
// schedule bot.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/alexanderramin/kesteai/internal/interpreter"
)

const sessionPrefix = "tg:"

// SessionKey is the dialogue key for one chat.
func SessionKey(chatID int64) string {
	return sessionPrefix + strconv.FormatInt(chatID, 10)
}

type sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Handler answers text messages through a Responder. When allowedChat is
// non-zero every other chat is ignored.
type Handler struct {
	responder   interpreter.Responder
	allowedChat int64
	log         *zap.Logger
}

func NewHandler(responder interpreter.Responder, allowedChat int64, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{responder: responder, allowedChat: allowedChat, log: log.Named("telegram")}
}

// Handle matches bot.HandlerFunc.
func (h *Handler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h *Handler) handle(ctx context.Context, s sender, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	msg := update.Message
	chatID := msg.Chat.ID
	if h.allowedChat != 0 && chatID != h.allowedChat {
		h.log.Warn("message from unexpected chat ignored", zap.Int64("chat_id", chatID))
		return
	}
	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	reply := h.responder.Respond(ctx, SessionKey(chatID), msg.Text)
	if _, err := s.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   reply.Text,
	}); err != nil {
		h.log.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// Run long-polls Telegram until ctx is cancelled.
func Run(ctx context.Context, token string, h *Handler) error {
	b, err := bot.New(token, bot.WithDefaultHandler(h.Handle))
	if err != nil {
		return fmt.Errorf("creating telegram bot: %w", err)
	}
	h.log.Info("Starting telegram bot...")
	b.Start(ctx)
	return nil
}
