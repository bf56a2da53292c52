package http

import (
	"context"
	"net/http"
)

// withSweep offers the sweeper a chance to run once the request has been
// served. The sweep runs detached from the request so that it neither
// delays the response nor is cancelled with it.
func (h *Handler) withSweep(next http.Handler) http.Handler {
	if h.sweeper == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		ctx := context.WithoutCancel(r.Context())
		go h.sweeper.MaybeSweep(ctx)
	})
}
