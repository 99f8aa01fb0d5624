package domain

// Answer is the outcome of one generation attempt.
// Fallback marks answers where generation failed and the
// configured substitute text was used instead.
type Answer struct {
	Text     string
	Fallback bool
}
