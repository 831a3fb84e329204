// Package module wires probe, instance and metrics endpoints into the API
package module

import (
	"time"

	modkit "mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	"mastoshim/internal/platform/metrics"

	metahttp "mastoshim/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// InstanceFromConfig reads the instance description, falling back to the base URL's host
func InstanceFromConfig(deps modkit.Deps) metahttp.Instance {
	cfg := deps.Cfg
	in := metahttp.Instance{
		Title:        cfg.MayString("INSTANCE_TITLE", "mastoshim"),
		Description:  cfg.MayString("INSTANCE_DESCRIPTION", ""),
		ContactEmail: cfg.MayString("INSTANCE_CONTACT_EMAIL", ""),
		Languages:    cfg.MayCSV("INSTANCE_LANGUAGES", []string{"en"}),
		MaxChars:     cfg.MayInt("INSTANCE_MAX_CHARS", 5000),
		MaxOptions:   cfg.MayInt("INSTANCE_MAX_POLL_OPTIONS", 4),
	}
	if deps.Mapper != nil {
		mc := deps.Mapper.Config()
		in.BaseURL = mc.BaseURL
		in.Domain = mc.LocalDomain
	}
	return in
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{startedAt: time.Now()}

	var pg any
	if deps.PG != nil {
		pg = deps.PG
	}
	register := func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "mastoshim-api",
			StartedAt:   m.startedAt,
			PG:          pg,
			Instance:    InstanceFromConfig(deps),
			Metrics:     metrics.Handler(),
		})
	}

	// meta mounts at the root so probes stay outside /api
	m.Base = modkit.NewBase([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix(""),
		modkit.WithRegister(register),
	}, opts...)
	return m
}
