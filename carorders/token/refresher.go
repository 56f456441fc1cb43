package token

import (
	"context"

	"encore.dev/rlog"
)

// Refresher is the single writer of the durable token slot. It runs on a
// schedule, decoupled from request traffic; consumers only ever read.
type Refresher struct {
	issuer Issuer
	slot   Slot
	source *Source
	scopes []string
}

func NewRefresher(issuer Issuer, slot Slot, source *Source, scopes []string) *Refresher {
	return &Refresher{issuer: issuer, slot: slot, source: source, scopes: scopes}
}

// Refresh issues a fresh token and overwrites the durable slot. Errors are
// returned to the caller so a failed cycle shows up as a failed run; the
// previously issued token remains valid until its own expiry, so one
// missed refresh is not an outage.
func (r *Refresher) Refresh(ctx context.Context) error {
	tok, err := r.issuer.Issue(ctx, r.scopes)
	if err != nil {
		return err
	}

	if err := r.slot.Set(ctx, tok); err != nil {
		return err
	}

	if r.source != nil {
		r.source.prime(tok)
	}

	rlog.Info("token refreshed", "scope", tok.Scope, "expires_at", tok.ExpiresAt)
	return nil
}
