// Package http serves follow suggestions
package http

import (
	stdhttp "net/http"

	"mastoshim/internal/adapters/platform/graph"
	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/pagination"
	"mastoshim/internal/core/schema"
	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	"mastoshim/internal/platform/net/rest"
)

// Mastodon's suggestion page sizes
const (
	DefaultLimit = 40
	MaxLimit     = 80
)

type handlers struct {
	deps modkit.Deps
	rest *rest.Adapter
}

// Register mounts GET /suggestions; paths are relative to /api/v2
func Register(r httpkit.Router, d modkit.Deps) {
	h := &handlers{deps: d, rest: d.Rest()}
	r.Get("/suggestions", h.list)
}

// source reports staff for featured users and global otherwise
func source(user any) string {
	if fields.Bool(fields.Get(user, "featured")) || fields.Bool(fields.Get(user, "staff_pick")) {
		return "staff"
	}
	return "global"
}

// @Summary Accounts the caller may want to follow
// @Tags Suggestions
// @Produce json
// @Param limit query int false "Page size, at most 80"
// @Success 200 {array} map[string]any
// @Router /api/v2/suggestions [get]
func (h *handlers) list(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	limit := pagination.ValidateLimit(r.URL.Query().Get("limit"), DefaultLimit, MaxLimit)
	res := graph.Suggestions.Do(ctx, h.deps.GQL, map[string]any{"limit": limit})
	if res.Err == nil && len(res.Errors) == 0 && res.Data != nil && res.Data["suggested_users"] == nil {
		h.rest.Write(w, r, stdhttp.StatusOK, []any{})
		return
	}
	h.rest.Return(w, r, "suggested_users", res, func(v any) any {
		users := fields.List(v)
		opts := h.deps.Options(r)
		opts.SkipExpensiveStats = true
		out := make([]schema.Record, 0, len(users))
		for _, u := range users {
			if rec := h.deps.Mapper.SuggestionFromUser(ctx, u, source(u), opts); rec != nil {
				out = append(out, rec)
			}
		}
		return out
	})
}
