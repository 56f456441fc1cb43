package target

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/events"
)

func TestDeliverCompletion(t *testing.T) {
	detail := events.StockOrder{
		ID:          "7d8f3a11-2c4b-4a6e-9f01-d2e5c6b7a8f9",
		CarOrderID:  "0b4ee8f6-55dd-4b54-b1dd-9e1848f6cf1e",
		CarType:     "Tesla Model 3",
		OrderStatus: "completed",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The car order id addresses the buyer's record, not the stock
		// order's own id.
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/orders/"+detail.CarOrderID, r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("x-api-key"))

		var body events.StockOrder
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, detail, body)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key")
	assert.NoError(t, client.DeliverCompletion(context.Background(), detail))
}

func TestDeliverCompletion_TargetFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "An error occurred", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-key")
	err := client.DeliverCompletion(context.Background(), events.StockOrder{CarOrderID: "0b4ee8f6-55dd-4b54-b1dd-9e1848f6cf1e"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
