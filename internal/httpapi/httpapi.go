package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Error carries an HTTP status for a handler failure. Handlers wrap
// client-addressable conditions; anything unwrapped is a 500.
type Error struct {
	Status int
	Err    error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(status int, err error) error {
	return &Error{Status: status, Err: err}
}

// Handle registers fn as a POST JSON endpoint. An empty request body
// decodes to the zero request.
func Handle[Req any, Resp any](mux chi.Router, pattern string, fn func(ctx context.Context, req *Req) (*Resp, error)) {
	mux.Post(pattern, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := fn(ctx, &req)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.ErrorContext(ctx, "httpapi: encoding response", "error", err)
		}
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	// The client is gone; nothing useful to write.
	if errors.Is(err, context.Canceled) {
		return
	}

	var httpErr *Error
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Err.Error(), httpErr.Status)
		return
	}

	slog.ErrorContext(ctx, "httpapi: handler failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
