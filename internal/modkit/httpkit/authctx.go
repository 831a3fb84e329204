package httpkit

import (
	"net/http"

	perrs "mastoshim/internal/platform/errors"
	pnet "mastoshim/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// MustUser returns the authenticated user id or panics
// only use on routes mounted with Protected
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// Viewer returns the user id or "" for anonymous callers
func Viewer(r *http.Request) string { return pnet.UserID(r.Context()) }

// Token returns the bearer token the auth middleware accepted
func Token(r *http.Request) (string, error) {
	tok := pnet.Token(r.Context())
	if tok == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return tok, nil
}
