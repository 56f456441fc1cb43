// Package supplier is the authenticated client for the tire company's
// stock order API. The supplier is a separate trust domain: every call
// carries the scoped bearer token plus the partner API key.
package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"encore.app/carorders/model"
)

// Client places stock orders with the supplier.
type Client interface {
	CreateStockOrder(ctx context.Context, bearerToken string, order *model.Order) error
}

type httpClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

func NewClient(baseURL, apiKey string) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
}

type stockOrderRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Price  string `json:"price"`
}

// CreateStockOrder issues one POST to the supplier. Any transport error or
// non-2xx response is reported as model.ErrUpstreamCall; there is no retry
// at this layer.
func (c *httpClient) CreateStockOrder(ctx context.Context, bearerToken string, order *model.Order) error {
	body, err := json.Marshal(stockOrderRequest{
		ID:     order.ID,
		Status: string(order.Status),
		Type:   order.Type,
		Price:  order.Price,
	})
	if err != nil {
		return fmt.Errorf("marshal stock order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/stock-orders", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build stock order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrUpstreamCall, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: supplier responded %d: %s", model.ErrUpstreamCall, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
