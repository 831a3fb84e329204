package middleware

import (
	"net/http"

	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/logger"
	pnet "mastoshim/internal/platform/net"
)

// AuthPort resolves the caller of a request
// the bearer token is already on r's context when Parse runs
type AuthPort interface {
	Parse(r *http.Request) (userID string, err error)
}

// ErrorWriter writes err as the response
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// requestToken reads the bearer token from the Authorization header or the access_token query param
func requestToken(r *http.Request) string {
	if tok, ok := pnet.BearerToken(r.Header.Get("Authorization")); ok {
		return tok
	}
	return r.URL.Query().Get("access_token")
}

func authenticated(r *http.Request, p AuthPort) (*http.Request, string, error) {
	tok := requestToken(r)
	if tok == "" {
		return r, "", perr.Unauthorizedf("missing bearer token")
	}
	ctx := pnet.WithToken(r.Context(), tok)
	r = r.WithContext(ctx)
	uid, err := p.Parse(r)
	if err != nil {
		return r, "", err
	}
	if uid == "" {
		return r, "", perr.Unauthorizedf("token does not resolve to a user")
	}
	ctx = pnet.WithUser(ctx, uid)
	ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), uid)
	return r.WithContext(ctx), uid, nil
}

// Auth rejects requests that do not resolve to a user. A nil port passes through
func Auth(p AuthPort, write ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			r2, _, err := authenticated(r, p)
			if err != nil {
				write(w, r2, err)
				return
			}
			next.ServeHTTP(w, r2)
		})
	}
}

// OptionalAuth resolves the caller when a token is present and leaves the request anonymous otherwise
func OptionalAuth(p AuthPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil || requestToken(r) == "" {
				next.ServeHTTP(w, r)
				return
			}
			r2, _, err := authenticated(r, p)
			if err != nil {
				logger.C(r.Context()).Debug().Err(err).Msg("token rejected, continuing anonymous")
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r2)
		})
	}
}

// RequireUser rejects requests that reached it without a resolved user
// mount after OptionalAuth on routes that act for the caller
func RequireUser(write ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pnet.UserID(r.Context()) == "" {
				write(w, r, perr.Unauthorizedf("this route requires a user token"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
