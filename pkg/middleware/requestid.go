package middleware

import (
	"net/http"

	"movie-catalog/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates a client-supplied UUID request id or generates a new one,
// storing it in the request context and echoing it in the response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if !utils.IsRequestID(requestID) {
				requestID = utils.GenerateRequestID()
			}

			w.Header().Set(RequestIDHeader, requestID)
			ctx := utils.SetRequestIDContext(r.Context(), requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
