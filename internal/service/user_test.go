package service

import (
	"errors"
	"testing"

	"kinobot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestUserService_EnsureUser(t *testing.T) {
	tests := []struct {
		name          string
		preferredLang string
		storedLang    string
	}{
		{
			name:          "supported preferred language",
			preferredLang: "ru",
			storedLang:    "ru",
		},
		{
			name:          "unsupported preferred language clamps to default",
			preferredLang: "fr",
			storedLang:    "uz",
		},
		{
			name:          "empty preferred language clamps to default",
			preferredLang: "",
			storedLang:    "uz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("EnsureUser", int64(123), tt.storedLang).Return(nil)

			service := NewUserService(mockRepo, testutil.NewTestLanguages())

			err := service.EnsureUser(123, tt.preferredLang)

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Language(t *testing.T) {
	tests := []struct {
		name         string
		repoLang     string
		repoError    error
		expectedLang string
		expectError  bool
	}{
		{
			name:         "stored language",
			repoLang:     "en",
			expectedLang: "en",
		},
		{
			name:         "no record returns default",
			repoLang:     "",
			expectedLang: "uz",
		},
		{
			name:         "unsupported stored value clamps to default",
			repoLang:     "xx",
			expectedLang: "uz",
		},
		{
			name:         "storage failure surfaces with default",
			repoError:    errors.New("db down"),
			expectedLang: "uz",
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("GetLanguage", int64(123)).Return(tt.repoLang, tt.repoError)

			service := NewUserService(mockRepo, testutil.NewTestLanguages())

			lang, err := service.Language(123)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedLang, lang)
		})
	}
}

func TestUserService_IsPremium(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("IsPremium", int64(123)).Return(false, nil)

	service := NewUserService(mockRepo, testutil.NewTestLanguages())

	premium, err := service.IsPremium(123)

	assert.NoError(t, err)
	assert.False(t, premium)
	mockRepo.AssertExpectations(t)
}

func TestUserService_SetLanguage(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("SetLanguage", int64(123), "tr").Return(nil)

	service := NewUserService(mockRepo, testutil.NewTestLanguages())

	err := service.SetLanguage(123, "tr")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_SetLanguage_Unsupported(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)

	service := NewUserService(mockRepo, testutil.NewTestLanguages())

	err := service.SetLanguage(123, "fr")

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "SetLanguage")
}
