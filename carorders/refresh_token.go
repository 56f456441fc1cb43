package carorders

import (
	"context"
	"sync"

	"encore.dev/cron"
	"encore.dev/rlog"

	"encore.app/carorders/token"
)

// Refresh the supplier token every hour, independent of request traffic.
// Token issuance is exclusively this job's responsibility; request
// handlers only ever read the cache.
var _ = cron.NewJob("generate-order-token", cron.JobConfig{
	Title:    "Refresh the supplier API token",
	Every:    1 * cron.Hour,
	Endpoint: RefreshToken,
})

var tokenRefresher = sync.OnceValue(func() *token.Refresher {
	issuer := token.NewClientCredentialsIssuer(cfg.AuthURL, secrets.TiresClientID, secrets.TiresClientSecret)
	return token.NewRefresher(issuer, orderTokenSlot, orderTokenSource, tokenScopes())
})

// RefreshToken issues a fresh scoped token and overwrites the durable
// slot. A failed cycle is returned as an error so the scheduler records a
// failed run; it is never swallowed.
//
//encore:api private method=POST path=/internal/tokens/refresh
func RefreshToken(ctx context.Context) error {
	if err := tokenRefresher().Refresh(ctx); err != nil {
		rlog.Error("token refresh failed", "error", err)
		return err
	}
	return nil
}
