// Package modkit provides module wiring and core deps
package modkit

import (
	"context"
	"net/http"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/mapper"
	"mastoshim/internal/core/pagination"
	"mastoshim/internal/modkit/httpkit"
	"mastoshim/internal/modkit/repokit"
	"mastoshim/internal/platform/config"
	"mastoshim/internal/platform/graphql"
	"mastoshim/internal/platform/logger"
	"mastoshim/internal/platform/net/rest"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// PG is nil when the lookup database is disabled
	PG repokit.TxRunner

	GQL    graphql.Executor
	Mapper *mapper.Mapper
	Batch  *mapper.BatchLoader
	REST   *rest.Adapter

	// Limits for paginated endpoints
	DefaultLimit int
	MaxLimit     int
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }

// Rest returns the shared adapter or a development one
func (d Deps) Rest() *rest.Adapter {
	if d.REST != nil {
		return d.REST
	}
	return rest.New(rest.Config{})
}

// Limits returns the page size defaults, falling back to Mastodon's 20 of 40
func (d Deps) Limits() (def, max int) {
	def, max = d.DefaultLimit, d.MaxLimit
	if def <= 0 {
		def = 20
	}
	if max <= 0 {
		max = 40
	}
	if def > max {
		def = max
	}
	return def, max
}

// PageVars reads the Mastodon paging params of r as Relay connection variables
func (d Deps) PageVars(r *http.Request) map[string]any {
	def, max := d.Limits()
	return pagination.FromParams(r.URL.Query(), def, max).Variables()
}

// Options returns mapper options for the caller of r
func (d Deps) Options(r *http.Request) mapper.Options {
	return mapper.Options{CurrentUserID: httpkit.Viewer(r)}
}

// Prepare preloads batch data for a page of activities; without a loader opts pass through
func (d Deps) Prepare(ctx context.Context, items []any, opts mapper.Options) mapper.Options {
	if d.Batch == nil {
		return opts
	}
	return d.Batch.Prepare(ctx, items, opts)
}

// PrepareUsers preloads account counters for a page of users
func (d Deps) PrepareUsers(ctx context.Context, users []any, opts mapper.Options) mapper.Options {
	if d.Batch == nil || opts.SkipExpensiveStats || opts.Stats != nil {
		return opts
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if id := fields.String(fields.Get(u, "id")); id != "" {
			ids = append(ids, id)
		}
	}
	st, err := d.Batch.LoadAccountStats(ctx, ids)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("account stats preload failed")
		return opts
	}
	opts.Stats = st
	return opts
}

// Vars merges sets of GraphQL variables, later sets win
func Vars(sets ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}
