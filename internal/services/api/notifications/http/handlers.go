// Package http serves notifications and direct conversations
package http

import (
	stdhttp "net/http"

	"mastoshim/internal/adapters/platform/graph"
	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	"mastoshim/internal/platform/net/rest"
)

type handlers struct {
	deps modkit.Deps
	rest *rest.Adapter
}

// Register mounts the routes; every route needs a caller
func Register(r httpkit.Router, d modkit.Deps) {
	h := &handlers{deps: d, rest: d.Rest()}

	httpkit.Protected(r, h.rest, func(pr httpkit.Router) {
		pr.Get("/notifications", h.list)
		pr.Get("/notifications/{id}", h.show)
		pr.Get("/conversations", h.conversations)
	})
}

// types reads a Mastodon array param, accepting both name[] and name
func types(r *stdhttp.Request, name string) []string {
	q := r.URL.Query()
	out := append([]string{}, q[name+"[]"]...)
	out = append(out, q[name]...)
	if len(out) == 0 {
		return nil
	}
	return out
}

// @Summary Notifications for the caller
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param types[] query []string false "Only these types"
// @Param exclude_types[] query []string false "Skip these types"
// @Param limit query int false "Page size"
// @Success 200 {array} map[string]any
// @Failure 401 {object} rest.ErrorResponse
// @Router /api/v1/notifications [get]
func (h *handlers) list(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	vars := h.deps.PageVars(r)
	include, exclude := types(r, "types"), types(r, "exclude_types")
	if include != nil {
		vars["types"] = include
	}
	if exclude != nil {
		vars["exclude"] = exclude
	}

	skip := make(map[string]bool, len(exclude))
	for _, t := range exclude {
		skip[t] = true
	}
	res := graph.Notifications.Do(ctx, h.deps.GQL, vars)
	h.rest.ReturnList(w, r, "notifications", res, func(nodes []any) any {
		opts := h.deps.Prepare(ctx, nodes, h.deps.Options(r))
		list := h.deps.Mapper.NotificationsFromActivities(ctx, nodes, opts)
		if len(skip) == 0 {
			return list
		}
		// the platform filters by verb, so mapped types are filtered again here
		out := list[:0]
		for _, n := range list {
			if t, _ := n["type"].(string); !skip[t] {
				out = append(out, n)
			}
		}
		return out
	})
}

// @Summary Notification by id
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/notifications/{id} [get]
func (h *handlers) show(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	res := graph.Notification.Do(ctx, h.deps.GQL, map[string]any{"id": httpkit.Param(r, "id")})
	h.rest.Return(w, r, "notification", res, func(v any) any {
		opts := h.deps.Prepare(ctx, []any{v}, h.deps.Options(r))
		return h.deps.Mapper.NotificationFromActivity(ctx, v, opts)
	})
}

// @Summary Direct conversations of the caller
// @Tags Conversations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Router /api/v1/conversations [get]
func (h *handlers) conversations(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	res := graph.Conversations.Do(ctx, h.deps.GQL, h.deps.PageVars(r))
	h.rest.ReturnList(w, r, "messages", res, func(nodes []any) any {
		return h.deps.Mapper.ConversationsFromMessages(ctx, nodes, h.deps.Options(r))
	})
}
