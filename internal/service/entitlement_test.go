package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerPredicate(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		answer   string
		expected bool
	}{
		{
			name:     "marker present",
			term:     "premyera",
			answer:   "Bu film premyera bo'ladi",
			expected: true,
		},
		{
			name:     "marker present case-insensitive",
			term:     "premyera",
			answer:   "Bu PREMYERA kino",
			expected: true,
		},
		{
			name:     "marker absent",
			term:     "premyera",
			answer:   "Bu eski film",
			expected: false,
		},
		{
			name:     "empty term never matches",
			term:     "",
			answer:   "anything at all",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarkerPredicate(tt.term)(tt.answer))
		})
	}
}

func TestEntitlementService_Decide(t *testing.T) {
	tests := []struct {
		name           string
		answer         string
		premium        bool
		expectedShow   bool
		expectedPrompt string
	}{
		{
			name:         "unrestricted answer, regular user",
			answer:       "Bu eski film",
			premium:      false,
			expectedShow: true,
		},
		{
			name:         "unrestricted answer, premium user",
			answer:       "Bu eski film",
			premium:      true,
			expectedShow: true,
		},
		{
			name:           "restricted answer, regular user",
			answer:         "Bu film premyera",
			premium:        false,
			expectedShow:   false,
			expectedPrompt: "upsell",
		},
		{
			name:         "restricted answer, premium user",
			answer:       "Bu film premyera",
			premium:      true,
			expectedShow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewEntitlementService(MarkerPredicate("premyera"), "upsell")

			decision := gate.Decide(tt.answer, tt.premium)

			assert.Equal(t, tt.expectedShow, decision.Show)
			assert.Equal(t, tt.expectedPrompt, decision.Prompt)
		})
	}
}

func TestEntitlementService_CustomPredicate(t *testing.T) {
	// The policy is replaceable: a gate may use any rule over the text
	alwaysRestricted := func(string) bool { return true }
	gate := NewEntitlementService(alwaysRestricted, "upsell")

	assert.False(t, gate.Decide("anything", false).Show)
	assert.True(t, gate.Decide("anything", true).Show)
}
