// Package target is the relay's client for the buyer domain's completion
// webhook, the far side of the trust boundary.
package target

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"encore.app/events"
)

// Client delivers completion notifications to the buyer's API.
type Client interface {
	DeliverCompletion(ctx context.Context, detail events.StockOrder) error
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

// DeliverCompletion PATCHes the buyer's order, identified by the event's
// carOrderId, with the stock order snapshot as the body. Any non-2xx is an
// error so the caller's retry policy applies.
func (c *httpClient) DeliverCompletion(ctx context.Context, detail events.StockOrder) error {
	body, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshal completion detail: %w", err)
	}

	url := fmt.Sprintf("%s/v1/orders/%s", c.baseURL, detail.CarOrderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("deliver completion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("target responded %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
