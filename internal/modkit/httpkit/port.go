package httpkit

import (
	"context"
	"net/http"

	perrs "mastoshim/internal/platform/errors"
	pnet "mastoshim/internal/platform/net"
)

// TokenFunc resolves a bearer token to a user id
type TokenFunc func(ctx context.Context, token string) (userID string, err error)

// Port implements middleware.AuthPort by delegating to a TokenFunc
// handy for static tokens in tests and local development
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a simple resolver function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// StaticTokens resolves tokens from a fixed token to user id table
func StaticTokens(tokens map[string]string) *Port {
	return NewPortFunc(func(_ context.Context, tok string) (string, error) {
		if uid, ok := tokens[tok]; ok {
			return uid, nil
		}
		return "", perrs.Unauthorizedf("invalid bearer token")
	})
}

// Parse resolves the token the auth middleware put on the context
func (p *Port) Parse(r *http.Request) (string, error) {
	tok := pnet.Token(r.Context())
	if tok == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	if p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	uid, err := p.parse(r.Context(), tok)
	if err != nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return uid, nil
}
