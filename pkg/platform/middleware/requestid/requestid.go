// Package requestid assigns every request a correlation ID. Handlers and
// services read it through requestcontext; audit events carry it so a
// verification decision can be traced back to the triggering request.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"idverify/pkg/requestcontext"
)

// Header is the request/response header carrying the correlation ID.
const Header = "X-Request-ID"

// Middleware reuses an inbound X-Request-ID or generates one, stores it in
// the context and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
