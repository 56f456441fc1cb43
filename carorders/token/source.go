package token

import (
	"context"
	"sync/atomic"
	"time"

	"encore.app/carorders/model"
)

// TokenSource is the consumer-side view of the token cache.
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}

// Source is a two-tier token cache: a process-local slot in front of the
// durable one. The local tier is empty on every cold start and is only a
// read-through copy; correctness depends solely on the durable slot.
// A Source never issues tokens, so any number of concurrent GetToken
// calls add zero load on the identity provider.
type Source struct {
	slot  Slot
	local atomic.Pointer[model.CachedToken]
	now   func() time.Time
}

func NewSource(slot Slot) *Source {
	return &Source{slot: slot, now: time.Now}
}

// GetToken returns the locally cached token when it is still valid,
// falling back to a single durable-slot read on a miss. Returns
// model.ErrTokenUnavailable if the slot has never been populated.
func (s *Source) GetToken(ctx context.Context) (string, error) {
	if tok := s.local.Load(); tok != nil && !tok.Expired(s.now()) {
		return tok.Token, nil
	}

	tok, err := s.slot.Get(ctx)
	if err != nil {
		return "", err
	}
	s.local.Store(&tok)
	return tok.Token, nil
}

// prime replaces the local tier. Used by the refresher after a successful
// refresh so the issuing process does not serve its own stale copy.
func (s *Source) prime(tok model.CachedToken) {
	s.local.Store(&tok)
}
