package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(userID int64, lang string) error {
	args := m.Called(userID, lang)
	return args.Error(0)
}

func (m *MockUserRepository) GetLanguage(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) IsPremium(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetLanguage(userID int64, lang string) error {
	args := m.Called(userID, lang)
	return args.Error(0)
}

func (m *MockUserRepository) SetPremium(userID int64, premium bool) error {
	args := m.Called(userID, premium)
	return args.Error(0)
}

// MockLLMClient is a mock for llm.Client
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxTokens)
	return args.String(0), args.Error(1)
}
