package middleware

import (
	"net/http"

	"econlens/internal/platform/logger"
	pnet "econlens/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Header names shared with the dashboard client
const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"
)

// Session keeps a dashboard session id on every request
// A valid incoming X-Session-ID is kept, anything else is replaced by a fresh uuid
// The id is echoed back and both ids are placed on the context for logging
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := r.Header.Get(HeaderSessionID)
			if _, err := uuid.Parse(sid); err != nil {
				sid = uuid.NewString()
			}
			reqID := chimw.GetReqID(r.Context())

			ctx := pnet.WithRequest(r.Context(), reqID, sid)
			ctx = logger.WithRequest(ctx, reqID, sid)

			w.Header().Set(HeaderSessionID, sid)
			if reqID != "" {
				w.Header().Set(HeaderRequestID, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
