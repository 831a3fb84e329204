// Package module wires timelines, bookmarks, favourites, tags and lists into the API
package module

import (
	modkit "mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"

	timelineshttp "mastoshim/internal/services/api/timelines/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
}

// New constructs the timelines module; its routes sit at the API version root
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{Base: modkit.NewBase([]modkit.Option{
		modkit.WithName("timelines"),
		modkit.WithPrefix(""),
		modkit.WithRegister(func(r httpkit.Router) { timelineshttp.Register(r, deps) }),
	}, opts...)}
}
