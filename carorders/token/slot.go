package token

import (
	"context"
	"errors"
	"strings"
	"time"

	"encore.dev/storage/cache"

	"encore.app/carorders/model"
)

// TokenCluster backs the durable token slot. It outlives any single
// process, so a cold start can always recover the current token without
// talking to the identity provider.
var TokenCluster = cache.NewCluster("order-tokens", cache.ClusterConfig{
	EvictionPolicy: cache.NoEviction,
})

// tokenSlot holds the latest issued token per scope set. Written only by
// the refresher; a Set is a whole-value overwrite, so last writer wins and
// the slot never holds a stale token after a successful refresh.
var tokenSlot = cache.NewStructKeyspace[string, model.CachedToken](TokenCluster, cache.KeyspaceConfig{
	KeyPattern:    "token/:key",
	DefaultExpiry: cache.ExpireIn(24 * time.Hour),
})

// Slot is the durable tier of the token cache.
type Slot interface {
	Get(ctx context.Context) (model.CachedToken, error)
	Set(ctx context.Context, tok model.CachedToken) error
}

type cacheSlot struct {
	key string
}

// NewSlot returns the durable slot for the given scope set.
func NewSlot(scopes []string) Slot {
	return &cacheSlot{key: strings.Join(scopes, " ")}
}

func (s *cacheSlot) Get(ctx context.Context) (model.CachedToken, error) {
	tok, err := tokenSlot.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, cache.Miss) {
			return model.CachedToken{}, model.ErrTokenUnavailable
		}
		return model.CachedToken{}, err
	}
	return tok, nil
}

func (s *cacheSlot) Set(ctx context.Context, tok model.CachedToken) error {
	return tokenSlot.Set(ctx, s.key, tok)
}
