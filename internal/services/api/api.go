// Package api mounts the Mastodon REST surface
package api

import (
	"net/http"

	phttp "mastoshim/internal/platform/net/http"
	"mastoshim/internal/platform/net/middleware"

	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"
	"mastoshim/internal/modkit/swaggerkit"

	accountsmod "mastoshim/internal/services/api/accounts/module"
	metamod "mastoshim/internal/services/api/meta/module"
	notificationsmod "mastoshim/internal/services/api/notifications/module"
	reportsmod "mastoshim/internal/services/api/reports/module"
	statusesmod "mastoshim/internal/services/api/statuses/module"
	suggestionsmod "mastoshim/internal/services/api/suggestions/module"
	timelinesmod "mastoshim/internal/services/api/timelines/module"
)

// Options are the API options
type Options struct {
	Deps modkit.Deps

	// Auth resolves bearer tokens; requests without one stay anonymous
	Auth middleware.AuthPort
	CORS middleware.CORSOptions

	EnableSwagger  bool
	EnableProfiler bool

	// Middleware runs after the common stack, before auth
	Middleware []func(http.Handler) http.Handler
}

// Modules are the mounted modules by API version
type Modules struct {
	Root []modkit.Module
	V1   []modkit.Module
	V2   []modkit.Module
}

// All lists every module once
func (m Modules) All() []modkit.Module {
	out := append([]modkit.Module{}, m.Root...)
	out = append(out, m.V1...)
	return append(out, m.V2...)
}

// NewModules constructs every module over deps
func NewModules(deps modkit.Deps) Modules {
	return Modules{
		Root: []modkit.Module{metamod.New(deps)},
		V1: []modkit.Module{
			accountsmod.New(deps),
			statusesmod.New(deps),
			timelinesmod.New(deps),
			notificationsmod.New(deps),
			reportsmod.New(deps),
		},
		V2: []modkit.Module{suggestionsmod.New(deps)},
	}
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) Modules {
	mods := NewModules(opt.Deps)

	r.Group(func(root httpkit.Router) {
		root.Use(httpkit.CommonStack(opt.CORS)...)
		root.Use(opt.Middleware...)
		if opt.Auth != nil {
			root.Use(httpkit.OptionalAuth(opt.Auth))
		}

		swaggerkit.Mount(root, opt.EnableSwagger)
		phttp.MountDebug(root, opt.EnableProfiler)

		for _, m := range mods.Root {
			m.MountRoutes(root)
		}
		httpkit.MountAPIV1(root, nil, func(api httpkit.Router) {
			for _, m := range mods.V1 {
				m.MountRoutes(api)
			}
		})
		httpkit.MountAPIV2(root, nil, func(api httpkit.Router) {
			for _, m := range mods.V2 {
				m.MountRoutes(api)
			}
		})
	})
	return mods
}
