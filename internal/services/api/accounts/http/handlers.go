// Package http serves the Mastodon account routes
package http

import (
	stdhttp "net/http"
	"strings"

	"mastoshim/internal/adapters/platform/graph"
	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/net/rest"
)

type handlers struct {
	deps modkit.Deps
	rest *rest.Adapter
}

// Register mounts the account routes under /accounts
func Register(r httpkit.Router, d modkit.Deps) {
	h := &handlers{deps: d, rest: d.Rest()}

	httpkit.Protected(r, h.rest, func(pr httpkit.Router) {
		pr.Get("/verify_credentials", h.verifyCredentials)
		pr.Get("/relationships", h.relationships)
	})
	r.Get("/lookup", h.lookup)
	r.Get("/{id}", h.show)
	r.Get("/{id}/statuses", h.statuses)
	r.Get("/{id}/followers", h.followers)
	r.Get("/{id}/following", h.following)
}

// @Summary The caller's own account, with source
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} rest.ErrorResponse
// @Router /api/v1/accounts/verify_credentials [get]
func (h *handlers) verifyCredentials(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	opts := h.deps.Options(r)
	opts.IncludeSource = true
	res := graph.Me.Do(ctx, h.deps.GQL, nil)
	h.rest.Return(w, r, "me", res, func(v any) any {
		user := fields.Get(v, "user")
		if user == nil {
			user = v
		}
		return h.deps.Mapper.AccountFromUser(ctx, user, opts)
	})
}

// @Summary Account by id
// @Tags Accounts
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/accounts/{id} [get]
func (h *handlers) show(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	res := graph.User.Do(ctx, h.deps.GQL, map[string]any{"id": httpkit.Param(r, "id")})
	h.rest.Return(w, r, "user", res, h.account(r))
}

// @Summary Account by webfinger address
// @Tags Accounts
// @Produce json
// @Param acct query string true "username or username@domain"
// @Success 200 {object} map[string]any
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/accounts/lookup [get]
func (h *handlers) lookup(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	username := h.localName(r.URL.Query().Get("acct"))
	if username == "" {
		h.rest.Error(w, r, rest.Reason("acct is required"))
		return
	}
	res := graph.UserByName.Do(r.Context(), h.deps.GQL, map[string]any{"username": username})
	h.rest.Return(w, r, "user", res, h.account(r))
}

// localName strips a leading @ and the local domain; remote addresses pass through whole
func (h *handlers) localName(acct string) string {
	acct = strings.TrimPrefix(strings.TrimSpace(acct), "@")
	name, domain, ok := strings.Cut(acct, "@")
	if ok && strings.EqualFold(domain, h.deps.Mapper.Config().LocalDomain) {
		return name
	}
	return acct
}

func (h *handlers) account(r *stdhttp.Request) rest.Transform {
	ctx := r.Context()
	opts := h.deps.Options(r)
	return func(v any) any { return h.deps.Mapper.AccountFromUser(ctx, v, opts) }
}

// @Summary Statuses posted by an account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account id"
// @Param limit query int false "Page size"
// @Param max_id query string false "Older than"
// @Param min_id query string false "Newer than"
// @Param exclude_reblogs query bool false "Drop boosts"
// @Param only_media query bool false "Only statuses with attachments"
// @Success 200 {array} map[string]any
// @Router /api/v1/accounts/{id}/statuses [get]
func (h *handlers) statuses(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	excludeReblogs := fields.Bool(q.Get("exclude_reblogs"))
	onlyMedia := fields.Bool(q.Get("only_media"))

	vars := modkit.Vars(h.deps.PageVars(r), map[string]any{"id": httpkit.Param(r, "id")})
	res := graph.UserPosts.Do(ctx, h.deps.GQL, vars)
	h.rest.ReturnList(w, r, "user_posts", res, func(nodes []any) any {
		opts := h.deps.Prepare(ctx, nodes, h.deps.Options(r))
		out := make([]schema.Record, 0, len(nodes))
		for _, st := range h.deps.Mapper.StatusesFromActivities(ctx, nodes, opts) {
			if excludeReblogs && st["reblog"] != nil {
				continue
			}
			if onlyMedia && len(fields.List(st["media_attachments"])) == 0 {
				continue
			}
			out = append(out, st)
		}
		return out
	})
}

// @Summary Accounts following an account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {array} map[string]any
// @Router /api/v1/accounts/{id}/followers [get]
func (h *handlers) followers(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h.userPage(w, r, graph.Followers, "followers")
}

// @Summary Accounts an account follows
// @Tags Accounts
// @Produce json
// @Param id path string true "Account id"
// @Success 200 {array} map[string]any
// @Router /api/v1/accounts/{id}/following [get]
func (h *handlers) following(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h.userPage(w, r, graph.Following, "following")
}

func (h *handlers) userPage(w stdhttp.ResponseWriter, r *stdhttp.Request, op graph.Op, key string) {
	ctx := r.Context()
	vars := modkit.Vars(h.deps.PageVars(r), map[string]any{"id": httpkit.Param(r, "id")})
	res := op.Do(ctx, h.deps.GQL, vars)
	h.rest.ReturnList(w, r, key, res, func(nodes []any) any {
		opts := h.deps.PrepareUsers(ctx, nodes, h.deps.Options(r))
		return h.deps.Mapper.AccountsFromUsers(ctx, nodes, opts)
	})
}

// @Summary The caller's relationships to the given accounts
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id[] query []string true "Account ids"
// @Success 200 {array} map[string]any
// @Failure 401 {object} rest.ErrorResponse
// @Router /api/v1/accounts/relationships [get]
func (h *handlers) relationships(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q := r.URL.Query()
	ids := append(q["id[]"], q["id"]...)
	if len(ids) == 0 {
		h.rest.Write(w, r, stdhttp.StatusOK, []any{})
		return
	}
	if len(ids) > 40 {
		h.rest.Error(w, r, perr.InvalidArgf("at most 40 ids"))
		return
	}
	viewer := httpkit.MustUser(r)
	h.rest.Write(w, r, stdhttp.StatusOK, h.deps.Mapper.Relationships(r.Context(), viewer, ids))
}
