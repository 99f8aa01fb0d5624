package domain

import "time"

// User represents a bot user
type User struct {
	UserID    int64
	Language  string
	Premium   bool
	CreatedAt time.Time
}
