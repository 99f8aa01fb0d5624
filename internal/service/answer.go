package service

import (
	"context"
	"fmt"
	"time"

	"kinobot/internal/domain"
	"kinobot/internal/llm"

	"go.uber.org/zap"
)

// AnswerService generates answers for free-text questions.
// It is a fail-soft boundary: any failure of the completion
// backend becomes the configured fallback text, never an error.
type AnswerService struct {
	client      llm.Client
	maxTokens   int
	timeout     time.Duration
	fallbacks   map[string]string
	defaultLang string
	logger      *zap.Logger
}

// NewAnswerService creates a new answer service
func NewAnswerService(
	client llm.Client,
	maxTokens int,
	timeout time.Duration,
	fallbacks map[string]string,
	defaultLang string,
	logger *zap.Logger,
) *AnswerService {
	return &AnswerService{
		client:      client,
		maxTokens:   maxTokens,
		timeout:     timeout,
		fallbacks:   fallbacks,
		defaultLang: defaultLang,
		logger:      logger,
	}
}

// Generate asks the backend to answer in the user's language.
// One attempt per call, bounded by the configured timeout.
func (s *AnswerService) Generate(ctx context.Context, question, lang string) domain.Answer {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Foydalanuvchi tilida javob ber: %s\nSavol: %s", lang, question)

	text, err := s.client.Complete(ctx, prompt, s.maxTokens)
	if err != nil {
		s.logger.Warn("Answer generation failed, using fallback",
			zap.String("lang", lang),
			zap.Error(err),
		)
		return domain.Answer{Text: s.fallbackFor(lang), Fallback: true}
	}

	return domain.Answer{Text: text}
}

func (s *AnswerService) fallbackFor(lang string) string {
	if text, ok := s.fallbacks[lang]; ok {
		return text
	}
	return s.fallbacks[s.defaultLang]
}
