package carorders

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"encore.dev/rlog"
)

// CompleteOrderWebhook is the buyer-side endpoint the completion relay
// delivers to. It applies the final conditional transition: the order must
// already exist, it is never created here. Every failure is logged and
// converted to a uniform 500; success is an empty 204.
//
// A raw endpoint so the relayed PATCH gets exactly the status codes the
// partner contract promises.
//
//encore:api public raw method=PATCH path=/v1/orders/:id
func (s *Service) CompleteOrderWebhook(w http.ResponseWriter, req *http.Request) {
	id := strings.Trim(strings.TrimPrefix(req.URL.Path, "/v1/orders/"), "/")
	if _, err := uuid.Parse(id); err != nil {
		rlog.Error("webhook called without a valid order id", "path", req.URL.Path)
		http.Error(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		rlog.Error("webhook called without a body", "order_id", id)
		http.Error(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	if err := s.business.CompleteOrder(req.Context(), id); err != nil {
		rlog.Error("failed to complete order", "error", err, "order_id", id)
		http.Error(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	rlog.Info("order completed", "order_id", id)
	w.WriteHeader(http.StatusNoContent)
}
