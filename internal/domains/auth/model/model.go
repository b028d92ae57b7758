package model

import "time"

const (
	EntityName = "session"

	// SessionKeyPrefix namespaces server side sessions in redis.
	SessionKeyPrefix = "session"
)

// Session is the server side record behind a session cookie.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
