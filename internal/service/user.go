package service

import (
	"fmt"

	"kinobot/internal/domain"
	"kinobot/internal/repository"
)

// UserService handles per-user language and entitlement records
type UserService struct {
	userRepo  repository.UserRepository
	languages *domain.LanguageSet
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, languages *domain.LanguageSet) *UserService {
	return &UserService{
		userRepo:  userRepo,
		languages: languages,
	}
}

// EnsureUser creates the user's record if missing. The preferred
// language is clamped to the supported set before it is stored.
func (s *UserService) EnsureUser(userID int64, preferredLang string) error {
	return s.userRepo.EnsureUser(userID, s.languages.Normalize(preferredLang))
}

// Language returns the user's stored language, or the default when
// no record exists or the stored value is no longer supported
func (s *UserService) Language(userID int64) (string, error) {
	lang, err := s.userRepo.GetLanguage(userID)
	if err != nil {
		return s.languages.Default(), err
	}
	return s.languages.Normalize(lang), nil
}

// IsPremium checks the user's premium entitlement
func (s *UserService) IsPremium(userID int64) (bool, error) {
	return s.userRepo.IsPremium(userID)
}

// SetLanguage stores a supported language code for the user
func (s *UserService) SetLanguage(userID int64, code string) error {
	if !s.languages.Contains(code) {
		return fmt.Errorf("unsupported language %q", code)
	}
	return s.userRepo.SetLanguage(userID, code)
}

// Languages returns the supported language set
func (s *UserService) Languages() *domain.LanguageSet {
	return s.languages
}
