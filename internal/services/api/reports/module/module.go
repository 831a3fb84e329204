// Package module wires reports into the API
package module

import (
	modkit "mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"

	reportshttp "mastoshim/internal/services/api/reports/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
}

// New constructs the reports module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{Base: modkit.NewBase([]modkit.Option{
		modkit.WithName("reports"),
		modkit.WithPrefix(""),
		modkit.WithRegister(func(r httpkit.Router) { reportshttp.Register(r, deps) }),
	}, opts...)}
}
