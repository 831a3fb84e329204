package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// DebugPrefix is where pprof lives when enabled
const DebugPrefix = "/debug"

// MountDebug exposes chi's pprof bundle under DebugPrefix; disabled is a no-op
func MountDebug(r Router, enabled bool) {
	if !enabled {
		return
	}
	// the Router seam has no Mount, so strip the prefix by hand
	pprof := stdhttp.StripPrefix(DebugPrefix, mw.Profiler())
	r.Group(func(d Router) {
		d.Use(mw.NoCache)
		d.Handle(DebugPrefix, pprof)
		d.Handle(DebugPrefix+"/*", pprof)
	})
}
