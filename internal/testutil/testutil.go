package testutil

import (
	"time"

	"kinobot/internal/config"
	"kinobot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, lang string, premium bool) *domain.User {
	return &domain.User{
		UserID:    userID,
		Language:  lang,
		Premium:   premium,
		CreatedAt: time.Now(),
	}
}

// NewTestLanguages creates the language set used across tests
func NewTestLanguages() *domain.LanguageSet {
	return domain.NewLanguageSet("uz", []domain.Language{
		{Code: "uz", Name: "O‘zbekcha"},
		{Code: "ru", Name: "Русский"},
		{Code: "en", Name: "English"},
		{Code: "tr", Name: "Türkçe"},
	})
}

// NewTestMessages creates template strings used across tests
func NewTestMessages() config.Messages {
	return config.Messages{
		Welcome:        "welcome",
		ChooseLanguage: "choose a language",
		LanguageSet:    "language set to %s",
		LanguageRetry:  "please pick from the menu",
		PremiumInfo:    "premium info",
		PremiumUpsell:  "premium only, see /premium",
		InternalError:  "something went wrong",
		Fallback: map[string]string{
			"uz": "fallback uz",
			"ru": "fallback ru",
		},
	}
}
