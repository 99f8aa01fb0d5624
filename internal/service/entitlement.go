package service

import "strings"

// Predicate reports whether an answer carries premium-only content.
// It is policy, not mechanism: the default substring match is a crude
// heuristic over the generated text and may be replaced wholesale.
type Predicate func(answer string) bool

// MarkerPredicate matches a marker term case-insensitively.
// An empty term matches nothing.
func MarkerPredicate(term string) Predicate {
	term = strings.ToLower(term)
	return func(answer string) bool {
		return term != "" && strings.Contains(strings.ToLower(answer), term)
	}
}

// Decision is the gate's verdict on one answer
type Decision struct {
	Show   bool
	Prompt string
}

// EntitlementService decides whether an answer may be shown to a user
type EntitlementService struct {
	restricted Predicate
	upsell     string
}

// NewEntitlementService creates a gate with the given policy and upsell prompt
func NewEntitlementService(restricted Predicate, upsell string) *EntitlementService {
	return &EntitlementService{
		restricted: restricted,
		upsell:     upsell,
	}
}

// Decide withholds premium-only answers from non-premium users
func (s *EntitlementService) Decide(answer string, premium bool) Decision {
	if !premium && s.restricted(answer) {
		return Decision{Show: false, Prompt: s.upsell}
	}
	return Decision{Show: true}
}
