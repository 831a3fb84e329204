// Package auth resolves bearer tokens to platform users
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"mastoshim/internal/core/fields"
	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/graphql"
	"mastoshim/internal/platform/logger"
	pnet "mastoshim/internal/platform/net"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const meQuery = `query Me { me { id user { id } } }`

// Options configures the Resolver cache
type Options struct {
	CacheSize int
	TTL       time.Duration
}

// Resolver implements middleware.AuthPort by asking the platform who the token belongs to
type Resolver struct {
	gql   graphql.Executor
	cache *expirable.LRU[string, string]
	log   *logger.Logger
}

// NewResolver creates a Resolver; zero options fall back to 1024 entries and a one minute TTL
func NewResolver(gql graphql.Executor, o Options) *Resolver {
	if o.CacheSize <= 0 {
		o.CacheSize = 1024
	}
	if o.TTL <= 0 {
		o.TTL = time.Minute
	}
	return &Resolver{
		gql:   gql,
		cache: expirable.NewLRU[string, string](o.CacheSize, nil, o.TTL),
		log:   logger.Named("auth"),
	}
}

// Parse returns the user id for the token on r's context
func (res *Resolver) Parse(r *http.Request) (string, error) {
	return res.Resolve(r.Context())
}

// Resolve returns the user id for the token on ctx; tokens are cached by digest
func (res *Resolver) Resolve(ctx context.Context) (string, error) {
	tok := pnet.Token(ctx)
	if tok == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	key := digest(tok)
	if uid, ok := res.cache.Get(key); ok {
		return uid, nil
	}

	out := res.gql.Do(ctx, "Me", meQuery, nil)
	if out.Err != nil {
		return "", out.Err
	}
	if len(out.Errors) > 0 && out.Data == nil {
		return "", perr.Wrap(out.Errors, perr.ErrorCodeUnauthorized, "token rejected")
	}

	me := fields.Get(out.Data, "me")
	uid := fields.String(fields.GetFields(me, "user.id", "id"))
	if uid == "" {
		return "", perr.Unauthorizedf("token does not resolve to a user")
	}
	res.cache.Add(key, uid)
	res.log.Debug().Str("user_id", uid).Msg("token resolved")
	return uid, nil
}

func digest(tok string) string {
	sum := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(sum[:])
}
