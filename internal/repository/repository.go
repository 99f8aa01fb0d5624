package repository

// UserRepository defines user data operations
type UserRepository interface {
	// EnsureUser creates a record with the given language if absent.
	// It never overwrites an existing record.
	EnsureUser(userID int64, lang string) error
	// GetLanguage returns the stored language code, or "" if no record exists.
	GetLanguage(userID int64) (string, error)
	// IsPremium returns the premium flag, or false if no record exists.
	IsPremium(userID int64) (bool, error)
	// SetLanguage updates the language, creating the record if absent.
	SetLanguage(userID int64, lang string) error
	// SetPremium flips the premium flag, creating the record if absent.
	// Activation is an administrative action, not reachable from chat.
	SetPremium(userID int64, premium bool) error
}
