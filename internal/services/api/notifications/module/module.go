// Package module wires notifications and conversations into the API
package module

import (
	modkit "mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"

	notificationshttp "mastoshim/internal/services/api/notifications/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
}

// New constructs the notifications module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{Base: modkit.NewBase([]modkit.Option{
		modkit.WithName("notifications"),
		modkit.WithPrefix(""),
		modkit.WithRegister(func(r httpkit.Router) { notificationshttp.Register(r, deps) }),
	}, opts...)}
}
