// Package module wires the account routes into the API
package module

import (
	modkit "mastoshim/internal/modkit"
	"mastoshim/internal/modkit/httpkit"

	accountshttp "mastoshim/internal/services/api/accounts/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
}

// New constructs the accounts module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{Base: modkit.NewBase([]modkit.Option{
		modkit.WithName("accounts"),
		modkit.WithPrefix("/accounts"),
		modkit.WithRegister(func(r httpkit.Router) { accountshttp.Register(r, deps) }),
	}, opts...)}
}
