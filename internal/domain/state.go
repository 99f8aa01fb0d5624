package domain

// State represents user's current interaction state
type State string

const (
	// StateAwaitingQuery is the default: any text is treated as a question
	StateAwaitingQuery State = "awaiting_query"
	// StateAwaitingLanguage means the language menu is open
	StateAwaitingLanguage State = "awaiting_language"
)
