package domain

import "time"

// User is a guild member account. A user may own characters in several parties.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
