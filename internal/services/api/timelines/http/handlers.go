// Package http serves timelines, bookmarks, favourites, tags and lists
package http

import (
	stdhttp "net/http"

	"mastoshim/internal/adapters/platform/graph"
	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/mapper"
	"mastoshim/internal/core/schema"
	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	"mastoshim/internal/platform/net/rest"
)

// Feed names on the platform
const (
	FeedHome    = "my"
	FeedExplore = "explore"
	FeedLocal   = "local"
	FeedHashtag = "hashtag"
	FeedCircle  = "circle"
)

type handlers struct {
	deps modkit.Deps
	rest *rest.Adapter
}

// Register mounts the routes; paths are relative to the API version root
func Register(r httpkit.Router, d modkit.Deps) {
	h := &handlers{deps: d, rest: d.Rest()}

	r.Get("/timelines/public", h.public)
	r.Get("/timelines/tag/{hashtag}", h.tag)
	r.Get("/tags/{name}", h.hashtag)

	httpkit.Protected(r, h.rest, func(pr httpkit.Router) {
		pr.Get("/timelines/home", h.home)
		pr.Get("/timelines/list/{id}", h.list)
		pr.Get("/bookmarks", h.bookmarks)
		pr.Get("/favourites", h.favourites)
		pr.Get("/followed_tags", h.followedTags)
		pr.Get("/lists", h.lists)
		pr.Get("/lists/{id}", h.circle)
	})
}

// @Summary Home timeline
// @Tags Timelines
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param max_id query string false "Older than"
// @Param since_id query string false "Newer than"
// @Param min_id query string false "Immediately newer than"
// @Success 200 {array} map[string]any
// @Failure 401 {object} rest.ErrorResponse
// @Router /api/v1/timelines/home [get]
func (h *handlers) home(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h.feed(w, r, map[string]any{"feed": FeedHome})
}

// @Summary Public timeline
// @Tags Timelines
// @Produce json
// @Param local query bool false "Only local statuses"
// @Param only_media query bool false "Only statuses with attachments"
// @Success 200 {array} map[string]any
// @Router /api/v1/timelines/public [get]
func (h *handlers) public(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	vars := map[string]any{"feed": FeedExplore}
	if fields.Bool(r.URL.Query().Get("local")) {
		vars["feed"] = FeedLocal
		vars["local"] = true
	}
	h.feed(w, r, vars)
}

// @Summary Hashtag timeline
// @Tags Timelines
// @Produce json
// @Param hashtag path string true "Hashtag without #"
// @Success 200 {array} map[string]any
// @Router /api/v1/timelines/tag/{hashtag} [get]
func (h *handlers) tag(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	name := mapper.NormalizeHashtag(httpkit.Param(r, "hashtag"))
	if name == "" {
		h.rest.Error(w, r, rest.Reason("hashtag is required"))
		return
	}
	h.feed(w, r, map[string]any{"feed": FeedHashtag, "tag": name})
}

// @Summary List timeline
// @Tags Timelines
// @Produce json
// @Security BearerAuth
// @Param id path string true "List id"
// @Success 200 {array} map[string]any
// @Router /api/v1/timelines/list/{id} [get]
func (h *handlers) list(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	h.feed(w, r, map[string]any{"feed": FeedCircle, "circle": httpkit.Param(r, "id")})
}

func (h *handlers) feed(w stdhttp.ResponseWriter, r *stdhttp.Request, vars map[string]any) {
	res := graph.Feed.Do(r.Context(), h.deps.GQL, modkit.Vars(h.deps.PageVars(r), vars))
	h.rest.ReturnList(w, r, "feed_activities", res, h.statuses(r))
}

// statuses maps a page of activities, dropping media-less statuses when only_media is set
func (h *handlers) statuses(r *stdhttp.Request) rest.ListTransform {
	ctx := r.Context()
	onlyMedia := fields.Bool(r.URL.Query().Get("only_media"))
	return func(nodes []any) any {
		opts := h.deps.Prepare(ctx, nodes, h.deps.Options(r))
		list := h.deps.Mapper.StatusesFromActivities(ctx, nodes, opts)
		if !onlyMedia {
			return list
		}
		out := make([]schema.Record, 0, len(list))
		for _, st := range list {
			if len(fields.List(st["media_attachments"])) > 0 {
				out = append(out, st)
			}
		}
		return out
	}
}

// @Summary Statuses the caller bookmarked
// @Tags Timelines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Router /api/v1/bookmarks [get]
func (h *handlers) bookmarks(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	res := graph.Bookmarks.Do(r.Context(), h.deps.GQL, h.deps.PageVars(r))
	h.rest.ReturnList(w, r, "my_bookmarks", res, h.statuses(r))
}

// @Summary Statuses the caller favourited
// @Tags Timelines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Router /api/v1/favourites [get]
func (h *handlers) favourites(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	res := graph.Likes.Do(r.Context(), h.deps.GQL, h.deps.PageVars(r))
	h.rest.ReturnList(w, r, "my_likes", res, h.statuses(r))
}

// @Summary Hashtag by name
// @Tags Tags
// @Produce json
// @Param name path string true "Hashtag without #"
// @Success 200 {object} map[string]any
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/tags/{name} [get]
func (h *handlers) hashtag(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	name := mapper.NormalizeHashtag(httpkit.Param(r, "name"))
	res := graph.Hashtag.Do(r.Context(), h.deps.GQL, map[string]any{"name": name})
	h.rest.Return(w, r, "hashtag", res, func(v any) any { return h.deps.Mapper.TagFromHashtag(v) })
}

// @Summary Hashtags the caller follows
// @Tags Tags
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Router /api/v1/followed_tags [get]
func (h *handlers) followedTags(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	res := graph.FollowedHashtags.Do(r.Context(), h.deps.GQL, h.deps.PageVars(r))
	h.rest.ReturnList(w, r, "followed_hashtags", res, func(nodes []any) any {
		tags := h.deps.Mapper.TagsFromHashtags(nodes)
		for _, t := range tags {
			t["following"] = true
		}
		return tags
	})
}

// @Summary Lists the caller owns
// @Tags Lists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Router /api/v1/lists [get]
func (h *handlers) lists(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	res := graph.Circles.Do(r.Context(), h.deps.GQL, nil)
	if res.Err == nil && res.Data != nil && res.Data["my_circles"] == nil && len(res.Errors) == 0 {
		h.rest.Write(w, r, stdhttp.StatusOK, []any{})
		return
	}
	h.rest.Return(w, r, "my_circles", res, func(v any) any {
		return h.deps.Mapper.ListsFromCircles(fields.List(v))
	})
}

// @Summary List by id
// @Tags Lists
// @Produce json
// @Security BearerAuth
// @Param id path string true "List id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/v1/lists/{id} [get]
func (h *handlers) circle(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	res := graph.Circle.Do(r.Context(), h.deps.GQL, map[string]any{"id": httpkit.Param(r, "id")})
	h.rest.Return(w, r, "circle", res, func(v any) any { return h.deps.Mapper.ListFromCircle(v) })
}
