// Package module wires status, poll and media routes into the API
package module

import (
	modkit "mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"

	statuseshttp "mastoshim/internal/services/api/statuses/http"
	"mastoshim/internal/services/api/statuses/service"
)

// Ports exposes the interaction handler to other modules
type Ports struct {
	Interactions *service.Interactions
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
}

// New constructs the statuses module; it mounts at the version root since it owns several prefixes
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	svc := statuseshttp.Services{
		Interactions: service.NewInteractions(deps.GQL, deps.Mapper),
		Polls:        service.NewPolls(deps.GQL, deps.Mapper),
		Actions:      service.Actions(deps.GQL),
	}
	return &Module{Base: modkit.NewBase([]modkit.Option{
		modkit.WithName("statuses"),
		modkit.WithPrefix(""),
		modkit.WithPorts(Ports{Interactions: svc.Interactions}),
		modkit.WithRegister(func(r httpkit.Router) { statuseshttp.Register(r, deps, svc) }),
	}, opts...)}
}
