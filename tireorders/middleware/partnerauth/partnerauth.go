// Package partnerauth enforces the partner credential contract on
// supplier-facing endpoints: a bearer token plus an API key on every call.
// Validating the token's signature and scopes is the API front door's
// job; this middleware only rejects calls that do not carry the
// credentials at all.
package partnerauth

import (
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
)

//encore:middleware target=tag:partnerauth
func PartnerAuth(req middleware.Request, next middleware.Next) middleware.Response {
	headers := req.Data().Headers

	authz := ""
	if headers != nil {
		authz = headers.Get("Authorization")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if !strings.HasPrefix(authz, "Bearer ") || token == "" {
		return middleware.Response{
			Err: &errs.Error{Code: errs.Unauthenticated, Message: "missing bearer token"},
		}
	}

	apiKey := headers.Get("x-api-key")
	if strings.TrimSpace(apiKey) == "" {
		return middleware.Response{
			Err: &errs.Error{Code: errs.Unauthenticated, Message: "missing api key"},
		}
	}

	rlog.Debug("partner credentials present", "path", req.Data().Path)
	return next(req)
}
