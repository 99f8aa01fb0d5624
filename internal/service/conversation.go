package service

import (
	"context"
	"fmt"
	"strings"

	"kinobot/internal/config"
	"kinobot/internal/domain"
	"kinobot/internal/session"

	"go.uber.org/zap"
)

// Bot commands recognized in any state
const (
	CommandStart   = "/start"
	CommandLang    = "/lang"
	CommandPremium = "/premium"
)

// IsCommand reports whether text is one of the recognized commands
func IsCommand(text string) bool {
	switch text {
	case CommandStart, CommandLang, CommandPremium:
		return true
	}
	return false
}

// Reply is what gets sent back for one inbound message
type Reply struct {
	Text string
	// LanguageMenu asks the transport to show the language keyboard
	LanguageMenu bool
	// ClearMenu asks the transport to remove the keyboard
	ClearMenu bool
}

// ConversationService drives the per-user state machine.
// Every turn produces exactly one Reply, even when storage fails;
// a storage error is returned alongside a best-effort Reply.
type ConversationService struct {
	users    *UserService
	answers  *AnswerService
	gate     *EntitlementService
	sessions session.Store
	locker   *session.Locker
	msgs     config.Messages
	logger   *zap.Logger
}

// NewConversationService creates the conversation engine
func NewConversationService(
	users *UserService,
	answers *AnswerService,
	gate *EntitlementService,
	sessions session.Store,
	msgs config.Messages,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		users:    users,
		answers:  answers,
		gate:     gate,
		sessions: sessions,
		locker:   session.NewLocker(),
		msgs:     msgs,
		logger:   logger,
	}
}

// HandleMessage processes one inbound message and returns the reply.
// Turns are serialized per user id; different users run concurrently.
func (s *ConversationService) HandleMessage(ctx context.Context, userID int64, text, localeHint string) (Reply, error) {
	unlock := s.locker.Lock(userID)
	defer unlock()

	text = strings.TrimSpace(text)

	switch text {
	case CommandStart:
		return s.handleStart(userID, localeHint)
	case CommandLang:
		s.sessions.Set(userID, domain.StateAwaitingLanguage)
		return Reply{Text: s.msgs.ChooseLanguage, LanguageMenu: true}, nil
	case CommandPremium:
		return Reply{Text: s.msgs.PremiumInfo}, nil
	}

	switch s.sessions.Get(userID) {
	case domain.StateAwaitingLanguage:
		return s.handleLanguageChoice(userID, text)
	default:
		return s.handleQuery(ctx, userID, text)
	}
}

func (s *ConversationService) handleStart(userID int64, localeHint string) (Reply, error) {
	if err := s.users.EnsureUser(userID, localeHint); err != nil {
		return s.storageFailure(userID, err)
	}

	s.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("locale_hint", localeHint),
	)

	s.sessions.Set(userID, domain.StateAwaitingQuery)
	return Reply{Text: s.msgs.Welcome}, nil
}

func (s *ConversationService) handleLanguageChoice(userID int64, text string) (Reply, error) {
	code, ok := s.users.Languages().CodeForName(text)
	if !ok {
		// Not a menu entry: re-prompt and stay in the menu
		return Reply{Text: s.msgs.LanguageRetry, LanguageMenu: true}, nil
	}

	if err := s.users.SetLanguage(userID, code); err != nil {
		return s.storageFailure(userID, err)
	}

	s.logger.Info("Language updated",
		zap.Int64("user_id", userID),
		zap.String("lang", code),
	)

	s.sessions.Set(userID, domain.StateAwaitingQuery)
	return Reply{Text: fmt.Sprintf(s.msgs.LanguageSet, text), ClearMenu: true}, nil
}

func (s *ConversationService) handleQuery(ctx context.Context, userID int64, text string) (Reply, error) {
	lang, err := s.users.Language(userID)
	if err != nil {
		return s.storageFailure(userID, err)
	}

	answer := s.answers.Generate(ctx, text, lang)

	premium, err := s.users.IsPremium(userID)
	if err != nil {
		return s.storageFailure(userID, err)
	}

	// Every free-text turn re-arms the query state
	s.sessions.Set(userID, domain.StateAwaitingQuery)

	decision := s.gate.Decide(answer.Text, premium)
	if !decision.Show {
		return Reply{Text: decision.Prompt}, nil
	}
	return Reply{Text: answer.Text}, nil
}

// storageFailure logs the error and still produces a reply for the user
func (s *ConversationService) storageFailure(userID int64, err error) (Reply, error) {
	s.logger.Error("Storage operation failed",
		zap.Int64("user_id", userID),
		zap.Error(err),
	)
	return Reply{Text: s.msgs.InternalError}, err
}
