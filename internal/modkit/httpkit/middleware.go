package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"mastoshim/internal/platform/net/middleware"
	"mastoshim/internal/platform/net/rest"
)

// CommonStack returns the baseline middleware for the Mastodon surface
// compose with OptionalAuth in main
func CommonStack(cors middleware.CORSOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog,

		middleware.CORS(cors),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// Auth rejects callers that do not resolve to a user, writing through the rest adapter
func Auth(p middleware.AuthPort, a *rest.Adapter) func(http.Handler) http.Handler {
	return middleware.Auth(p, a.Error)
}

// OptionalAuth resolves the caller when a token is present
func OptionalAuth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.OptionalAuth(p)
}
