// Package http files reports against accounts and their statuses
package http

import (
	stdhttp "net/http"

	"mastoshim/internal/adapters/platform/graph"
	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	"mastoshim/internal/platform/net/http/bind"
	"mastoshim/internal/platform/net/rest"
)

// ReportInput is the Mastodon report body, as JSON or form
type ReportInput struct {
	AccountID string   `json:"account_id" validate:"required"`
	StatusIDs []string `json:"status_ids"`
	Comment   string   `json:"comment" validate:"max=1000"`
	Forward   bool     `json:"forward"`
	Category  string   `json:"category" validate:"omitempty,oneof=spam legal violation other"`
	RuleIDs   []any    `json:"rule_ids"`
}

type handlers struct {
	deps modkit.Deps
	rest *rest.Adapter
}

// Register mounts POST /reports
func Register(r httpkit.Router, d modkit.Deps) {
	h := &handlers{deps: d, rest: d.Rest()}

	httpkit.Protected(r, h.rest, func(pr httpkit.Router) {
		pr.Post("/reports", h.create)
	})
}

// @Summary File a report
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body ReportInput true "Report"
// @Success 200 {object} map[string]any
// @Failure 400 {object} rest.ErrorResponse
// @Failure 401 {object} rest.ErrorResponse
// @Router /api/v1/reports [post]
func (h *handlers) create(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := bind.ParseJSON[ReportInput](r, bind.Options{MaxBytes: 1 << 16})
	if err != nil {
		h.rest.Error(w, r, err)
		return
	}
	category := in.Category
	if category == "" {
		category = "other"
	}
	vars := map[string]any{
		"id":       in.AccountID,
		"comment":  in.Comment,
		"category": category,
		"forward":  in.Forward,
	}
	if len(in.StatusIDs) > 0 {
		vars["status_ids"] = in.StatusIDs
	}

	ctx := r.Context()
	res := graph.Flag.Do(ctx, h.deps.GQL, vars)
	h.rest.Return(w, r, "flag", res, func(v any) any {
		return h.deps.Mapper.ReportFromFlag(ctx, v, h.deps.Options(r))
	})
}
