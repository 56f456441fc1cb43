package model

import (
	"time"
)

// CachedToken is the value held in the durable token slot. The slot always
// carries the latest issued token for its scope set; only the refresher
// writes it.
type CachedToken struct {
	Token     string    `json:"token"`
	Scope     []string  `json:"scope"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token is past its expiry at the given time.
func (t CachedToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}
