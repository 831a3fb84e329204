package httpkit

import (
	"mastoshim/internal/platform/net/middleware"
	"mastoshim/internal/platform/net/rest"
)

// Protected groups routes that act for the caller; anonymous requests get a 401
func Protected(r Router, a *rest.Adapter, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(middleware.RequireUser(a.Error))
		fn(gr)
	})
}
