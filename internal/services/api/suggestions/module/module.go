// Package module wires follow suggestions into the v2 API
package module

import (
	modkit "mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"

	suggestionshttp "mastoshim/internal/services/api/suggestions/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
}

// New constructs the suggestions module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{Base: modkit.NewBase([]modkit.Option{
		modkit.WithName("suggestions"),
		modkit.WithPrefix(""),
		modkit.WithRegister(func(r httpkit.Router) { suggestionshttp.Register(r, deps) }),
	}, opts...)}
}
