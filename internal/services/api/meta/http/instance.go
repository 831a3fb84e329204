package http

import (
	"net/http"
	"strings"

	"mastoshim/internal/core/version"
)

func (h *handlers) languages() []string {
	if len(h.deps.Instance.Languages) == 0 {
		return []string{"en"}
	}
	return h.deps.Instance.Languages
}

func (h *handlers) configuration() map[string]any {
	in := h.deps.Instance
	chars, options := in.MaxChars, in.MaxOptions
	if chars <= 0 {
		chars = 5000
	}
	if options <= 0 {
		options = 4
	}
	return map[string]any{
		"statuses": map[string]any{
			"max_characters":              chars,
			"max_media_attachments":       4,
			"characters_reserved_per_url": 23,
		},
		"polls": map[string]any{
			"max_options":               options,
			"max_characters_per_option": 50,
			"min_expiration":            300,
			"max_expiration":            2629746,
		},
		"accounts": map[string]any{"max_featured_tags": 0},
	}
}

// @Summary Instance information (v1)
// @Tags Instance
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/instance [get]
func (h *handlers) instanceV1(_ *http.Request) (any, error) {
	in := h.deps.Instance
	return map[string]any{
		"uri":               in.Domain,
		"title":             in.Title,
		"short_description": in.Description,
		"description":       in.Description,
		"email":             in.ContactEmail,
		"version":           version.Compatible(),
		"urls":              map[string]any{"streaming_api": ""},
		"stats":             map[string]any{"user_count": 0, "status_count": 0, "domain_count": 0},
		"thumbnail":         nil,
		"languages":         h.languages(),
		"registrations":     false,
		"approval_required": false,
		"invites_enabled":   false,
		"configuration":     h.configuration(),
		"contact_account":   nil,
		"rules":             []any{},
	}, nil
}

// @Summary Instance information (v2)
// @Tags Instance
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v2/instance [get]
func (h *handlers) instanceV2(_ *http.Request) (any, error) {
	in := h.deps.Instance
	conf := h.configuration()
	conf["urls"] = map[string]any{"streaming": nil}
	conf["translation"] = map[string]any{"enabled": false}
	return map[string]any{
		"domain":        in.Domain,
		"title":         in.Title,
		"version":       version.Compatible(),
		"source_url":    strings.TrimRight(in.BaseURL, "/"),
		"description":   in.Description,
		"usage":         map[string]any{"users": map[string]any{"active_month": 0}},
		"thumbnail":     map[string]any{"url": strings.TrimRight(in.BaseURL, "/") + "/images/thumbnail.png"},
		"languages":     h.languages(),
		"configuration": conf,
		"registrations": map[string]any{"enabled": false, "approval_required": false, "message": nil},
		"contact":       map[string]any{"email": in.ContactEmail, "account": nil},
		"rules":         []any{},
	}, nil
}
