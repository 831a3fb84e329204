// Package modkit is the glue every API module is built from
package modkit

import "mastoshim/internal/modkit/httpkit"

// Module is one Mastodon endpoint family (accounts, statuses, timelines, ...)
type Module interface {
	Name() string
	MountRoutes(r httpkit.Router)
	// Ports is the module's typed port set; callers assert the concrete type
	Ports() any
}

var _ Module = Base{}
