package token

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"encore.app/carorders/model"
)

// Issuer requests new tokens from the identity provider.
type Issuer interface {
	Issue(ctx context.Context, scopes []string) (model.CachedToken, error)
}

// ClientCredentialsIssuer performs the OAuth client-credentials grant
// against the identity provider's token endpoint.
type ClientCredentialsIssuer struct {
	AuthURL      string
	ClientID     string
	ClientSecret string

	HTTPClient *http.Client
}

func NewClientCredentialsIssuer(authURL, clientID, clientSecret string) *ClientCredentialsIssuer {
	return &ClientCredentialsIssuer{
		AuthURL:      authURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Issue requests a token scoped to exactly the given scopes. Returns
// model.ErrAuthRejected when the provider refuses the credentials or the
// scope list.
func (i *ClientCredentialsIssuer) Issue(ctx context.Context, scopes []string) (model.CachedToken, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {i.ClientID},
		"client_secret": {i.ClientSecret},
		"scope":         {strings.Join(scopes, " ")},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return model.CachedToken{}, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := i.HTTPClient.Do(req)
	if err != nil {
		return model.CachedToken{}, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return model.CachedToken{}, fmt.Errorf("%w: status %d: %s", model.ErrAuthRejected, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return model.CachedToken{}, fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return model.CachedToken{}, fmt.Errorf("%w: empty access token", model.ErrAuthRejected)
	}

	now := time.Now()
	return model.CachedToken{
		Token:     tr.AccessToken,
		Scope:     scopes,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}
