package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/carorders/model"
)

func TestClientCredentialsIssuer_Issue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "car-company", r.PostForm.Get("client_id"))
		assert.Equal(t, "s3cret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "tires/create.order", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	issuer := NewClientCredentialsIssuer(srv.URL, "car-company", "s3cret")

	tok, err := issuer.Issue(context.Background(), []string{"tires/create.order"})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", tok.Token)
	assert.Equal(t, []string{"tires/create.order"}, tok.Scope)
	assert.True(t, tok.ExpiresAt.After(tok.IssuedAt))
}

func TestClientCredentialsIssuer_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	issuer := NewClientCredentialsIssuer(srv.URL, "car-company", "wrong")

	_, err := issuer.Issue(context.Background(), []string{"tires/create.order"})
	assert.ErrorIs(t, err, model.ErrAuthRejected)
}

func TestClientCredentialsIssuer_EmptyTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	issuer := NewClientCredentialsIssuer(srv.URL, "car-company", "s3cret")

	_, err := issuer.Issue(context.Background(), []string{"tires/create.order"})
	assert.ErrorIs(t, err, model.ErrAuthRejected)
}
