package handler

import (
	"context"
	"strings"

	"kinobot/internal/domain"
	"kinobot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler binds the conversation engine to Telegram
type Handler struct {
	bot          *tele.Bot
	conversation *service.ConversationService
	languages    *domain.LanguageSet
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	conversation *service.ConversationService,
	languages *domain.LanguageSet,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		conversation: conversation,
		languages:    languages,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle(service.CommandStart, h.handleMessage)
	h.bot.Handle(service.CommandLang, h.handleMessage)
	h.bot.Handle(service.CommandPremium, h.handleMessage)
	h.bot.Handle(tele.OnText, h.handleMessage)
}

// handleMessage forwards one inbound message into the engine
// and renders its reply
func (h *Handler) handleMessage(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands the bot doesn't know
	if strings.HasPrefix(text, "/") && !service.IsCommand(text) {
		return nil
	}

	reply, err := h.conversation.HandleMessage(
		context.Background(),
		userID,
		text,
		c.Sender().LanguageCode,
	)
	if err != nil {
		// Already logged by the engine; the reply still carries
		// the user-facing failure text
		h.logger.Warn("Turn completed with error", zap.Int64("user_id", userID))
	}

	switch {
	case reply.LanguageMenu:
		return c.Send(reply.Text, h.languageMarkup())
	case reply.ClearMenu:
		return c.Send(reply.Text, &tele.ReplyMarkup{RemoveKeyboard: true})
	default:
		return c.Send(reply.Text)
	}
}

// languageMarkup builds the reply keyboard of language display names
func (h *Handler) languageMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	rows := make([]tele.Row, 0)
	for _, name := range h.languages.Names() {
		rows = append(rows, menu.Row(menu.Text(name)))
	}
	menu.Reply(rows...)

	return menu
}
