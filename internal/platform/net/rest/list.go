package rest

import (
	stdhttp "net/http"

	"mastoshim/internal/core/pagination"
	"mastoshim/internal/platform/graphql"
	"mastoshim/internal/platform/logger"
)

// ListTransform maps the nodes of one page
type ListTransform func(nodes []any) any

// ReturnList reads the connection under key and writes its mapped nodes with a Link header
//
// A missing connection alongside data is an empty page; the failure rows of Return apply otherwise
func (a *Adapter) ReturnList(w stdhttp.ResponseWriter, r *stdhttp.Request, key string, res graphql.Result, transform ListTransform) {
	if res.Err != nil {
		a.Error(w, r, res.Err)
		return
	}
	if res.Data == nil {
		if len(res.Errors) > 0 {
			a.Error(w, r, res.Errors)
			return
		}
		a.Error(w, r, ErrUnexpected)
		return
	}
	conn, ok := extract(res.Data, key)
	if !ok && len(res.Errors) > 0 {
		a.Error(w, r, res.Errors)
		return
	}
	if len(res.Errors) > 0 {
		logger.C(r.Context()).Warn().
			Str("key", key).
			Interface("errors", []graphql.Error(res.Errors)).
			Msg("partial graphql result")
	}

	nodes, info := pagination.FromConnection(conn)
	var out any = nodes
	if transform != nil {
		out = transform(nodes)
	}
	a.WriteList(w, r, out, info)
}
