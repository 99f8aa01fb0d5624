package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"kinobot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAnswerService(client *testutil.MockLLMClient, timeout time.Duration) *AnswerService {
	return NewAnswerService(
		client,
		300,
		timeout,
		map[string]string{"uz": "fallback uz", "ru": "fallback ru"},
		"uz",
		testutil.NewTestLogger(),
	)
}

func TestAnswerService_Generate(t *testing.T) {
	mockClient := new(testutil.MockLLMClient)
	mockClient.On("Complete", mock.Anything, mock.Anything, 300).Return("Bu ajoyib film", nil)

	service := newAnswerService(mockClient, time.Second)

	answer := service.Generate(context.Background(), "Inception", "uz")

	assert.Equal(t, "Bu ajoyib film", answer.Text)
	assert.False(t, answer.Fallback)
	mockClient.AssertExpectations(t)
}

func TestAnswerService_Generate_PromptCarriesLanguage(t *testing.T) {
	mockClient := new(testutil.MockLLMClient)
	mockClient.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "ru") && strings.Contains(prompt, "Inception")
	}), 300).Return("ответ", nil)

	service := newAnswerService(mockClient, time.Second)

	service.Generate(context.Background(), "Inception", "ru")

	mockClient.AssertExpectations(t)
}

func TestAnswerService_Generate_FailureReturnsFallback(t *testing.T) {
	tests := []struct {
		name         string
		lang         string
		expectedText string
	}{
		{
			name:         "fallback in user language",
			lang:         "ru",
			expectedText: "fallback ru",
		},
		{
			name:         "fallback defaults when language has no entry",
			lang:         "tr",
			expectedText: "fallback uz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(testutil.MockLLMClient)
			mockClient.On("Complete", mock.Anything, mock.Anything, 300).
				Return("", errors.New("rate limited"))

			service := newAnswerService(mockClient, time.Second)

			answer := service.Generate(context.Background(), "Inception", tt.lang)

			assert.Equal(t, tt.expectedText, answer.Text)
			assert.True(t, answer.Fallback)
		})
	}
}

// blockingClient hangs until its context expires
type blockingClient struct{}

func (blockingClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestAnswerService_Generate_Timeout(t *testing.T) {
	service := NewAnswerService(
		blockingClient{},
		300,
		10*time.Millisecond,
		map[string]string{"uz": "fallback uz"},
		"uz",
		testutil.NewTestLogger(),
	)

	start := time.Now()
	answer := service.Generate(context.Background(), "Inception", "uz")

	assert.Equal(t, "fallback uz", answer.Text)
	assert.True(t, answer.Fallback)
	assert.Less(t, time.Since(start), time.Second)
}
