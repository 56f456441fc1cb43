package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/carorders/model"
)

// fakeSlot is an in-memory durable slot that counts reads, so tests can
// assert how often the durable tier is actually hit.
type fakeSlot struct {
	tok    *model.CachedToken
	reads  int
	writes int
	setErr error
}

func (f *fakeSlot) Get(ctx context.Context) (model.CachedToken, error) {
	f.reads++
	if f.tok == nil {
		return model.CachedToken{}, model.ErrTokenUnavailable
	}
	return *f.tok, nil
}

func (f *fakeSlot) Set(ctx context.Context, tok model.CachedToken) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.writes++
	f.tok = &tok
	return nil
}

func validToken(value string) model.CachedToken {
	now := time.Now()
	return model.CachedToken{
		Token:     value,
		Scope:     []string{"tires/create.order"},
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestGetToken_EmptySlotIsRetryablePrecondition(t *testing.T) {
	slot := &fakeSlot{}
	source := NewSource(slot)

	_, err := source.GetToken(context.Background())
	assert.ErrorIs(t, err, model.ErrTokenUnavailable)

	// A later refresh makes the same source usable without restarting.
	tok := validToken("tok-1")
	slot.tok = &tok
	got, err := source.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
}

func TestGetToken_LocalTierSkipsDurableReads(t *testing.T) {
	tok := validToken("tok-1")
	slot := &fakeSlot{tok: &tok}
	source := NewSource(slot)

	for i := 0; i < 10; i++ {
		got, err := source.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", got)
	}

	// One durable read on the cold miss, then the local tier serves.
	assert.Equal(t, 1, slot.reads)
}

func TestGetToken_ExpiredLocalTokenFallsBackToSlot(t *testing.T) {
	tok := validToken("tok-1")
	slot := &fakeSlot{tok: &tok}
	source := NewSource(slot)

	_, err := source.GetToken(context.Background())
	require.NoError(t, err)

	// The refresher rotated the durable slot; once the local copy ages
	// out the next read picks up the new token.
	rotated := validToken("tok-2")
	slot.tok = &rotated
	source.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	got, err := source.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got)
	assert.Equal(t, 2, slot.reads)
}

func TestGetToken_ConcurrentReadersNeverIssueTokens(t *testing.T) {
	tok := validToken("tok-1")
	slot := &fakeSlot{tok: &tok}
	source := NewSource(slot)

	done := make(chan error, 50)
	for i := 0; i < 50; i++ {
		go func() {
			_, err := source.GetToken(context.Background())
			done <- err
		}()
	}
	for i := 0; i < 50; i++ {
		assert.NoError(t, <-done)
	}

	// Consumption is read-only: whatever the concurrency, the slot is
	// never written and no issuer exists to call.
	assert.Equal(t, 0, slot.writes)
}
