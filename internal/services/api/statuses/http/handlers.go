// Package http serves status, poll and media routes
package http

import (
	stdhttp "net/http"

	"mastoshim/internal/adapters/platform/graph"
	"mastoshim/internal/core/fields"
	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/net/http/bind"
	"mastoshim/internal/platform/net/rest"
	"mastoshim/internal/services/api/statuses/service"
)

// Services are the status side effect handlers
type Services struct {
	Interactions *service.Interactions
	Polls        *service.Polls
	Actions      map[string]service.InteractionOptions
}

type handlers struct {
	deps modkit.Deps
	rest *rest.Adapter
	svc  Services
}

// VoteInput is the body of a poll vote; choices are option indices
type VoteInput struct {
	Choices []any `json:"choices" validate:"required,min=1"`
}

// Register mounts the routes; paths are relative to the API version root
func Register(r httpkit.Router, d modkit.Deps, s Services) {
	h := &handlers{deps: d, rest: d.Rest(), svc: s}

	r.Get("/statuses/{id}", h.show)
	r.Get("/polls/{id}", h.poll)
	r.Get("/media/{id}", h.media)

	httpkit.Protected(r, h.rest, func(pr httpkit.Router) {
		for _, action := range []string{
			service.Favourite, service.Unfavourite,
			service.Reblog, service.Unreblog,
			service.Bookmark, service.Unbookmark,
		} {
			pr.Post("/statuses/{id}/"+action, h.interact(action))
		}
		pr.Post("/polls/{id}/votes", h.vote)
	})
}

// @Summary Status by id
// @Tags Statuses
// @Produce json
// @Param id path string true "Status id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/statuses/{id} [get]
func (h *handlers) show(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()
	res := graph.Post.Do(ctx, h.deps.GQL, map[string]any{"id": httpkit.Param(r, "id")})
	h.rest.Return(w, r, "post", res, func(v any) any {
		opts := h.deps.Prepare(ctx, []any{v}, h.deps.Options(r))
		return h.deps.Mapper.StatusFromActivity(ctx, v, opts)
	})
}

// @Summary Favourite, boost or bookmark a status, or undo it
// @Tags Statuses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Status id"
// @Success 200 {object} map[string]any
// @Failure 401 {object} rest.ErrorResponse
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/statuses/{id}/favourite [post]
// @Router /api/v1/statuses/{id}/unfavourite [post]
// @Router /api/v1/statuses/{id}/reblog [post]
// @Router /api/v1/statuses/{id}/unreblog [post]
// @Router /api/v1/statuses/{id}/bookmark [post]
// @Router /api/v1/statuses/{id}/unbookmark [post]
func (h *handlers) interact(action string) httpkit.Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		o, ok := h.svc.Actions[action]
		if !ok {
			h.rest.Error(w, r, perr.NotFoundf("action %s", action))
			return
		}
		rec, err := h.svc.Interactions.Interact(r.Context(), httpkit.Viewer(r), httpkit.Param(r, "id"), o)
		if err != nil {
			h.rest.Error(w, r, err)
			return
		}
		h.rest.Write(w, r, stdhttp.StatusOK, rec)
	}
}

// @Summary Poll by id
// @Tags Polls
// @Produce json
// @Param id path string true "Poll id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/polls/{id} [get]
func (h *handlers) poll(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	rec, err := h.svc.Polls.Get(r.Context(), httpkit.Viewer(r), httpkit.Param(r, "id"))
	if err != nil {
		h.rest.Error(w, r, err)
		return
	}
	h.rest.Write(w, r, stdhttp.StatusOK, rec)
}

// @Summary Vote on a poll
// @Tags Polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Poll id"
// @Param payload body VoteInput true "Choices"
// @Success 200 {object} map[string]any
// @Failure 422 {object} rest.ErrorResponse
// @Router /api/v1/polls/{id}/votes [post]
func (h *handlers) vote(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := bind.ParseJSON[VoteInput](r)
	if err != nil {
		h.rest.Error(w, r, err)
		return
	}
	choices := make([]int, 0, len(in.Choices))
	for _, c := range in.Choices {
		n, ok := fields.Int(c)
		if !ok {
			h.rest.Error(w, r, perr.InvalidArgf("choices must be option indices"))
			return
		}
		choices = append(choices, n)
	}
	rec, err := h.svc.Polls.Vote(r.Context(), httpkit.Viewer(r), httpkit.Param(r, "id"), choices)
	if err != nil {
		h.rest.Error(w, r, err)
		return
	}
	h.rest.Write(w, r, stdhttp.StatusOK, rec)
}

// @Summary Media attachment by id
// @Tags Media
// @Produce json
// @Param id path string true "Media id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/media/{id} [get]
func (h *handlers) media(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	res := graph.Media.Do(r.Context(), h.deps.GQL, map[string]any{"id": httpkit.Param(r, "id")})
	h.rest.Return(w, r, "media", res, func(v any) any {
		return h.deps.Mapper.MediaFromFile(v)
	})
}
