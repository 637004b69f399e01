package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/CodaCrew-Code-Labs/conlang-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request correlation ID in and out.
const RequestIDHeader = "X-Request-Id"

// RequestID reuses the incoming correlation ID or generates a fresh
// UUID, placing it in the context and the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
