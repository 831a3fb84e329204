package httpkit

import (
	"net/http"
	"strings"
)

// MountUnder scopes mount to prefix; mw applies to that scope only
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/"+strings.Trim(prefix, "/"), func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI mounts a Mastodon API generation, e.g. "v1" becomes /api/v1
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "api/"+strings.Trim(version, "/"), mw, mount)
}

// MountAPIV1 mounts /api/v1, where almost every Mastodon endpoint lives
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}

// MountAPIV2 mounts /api/v2 (suggestions, search, instance)
func MountAPIV2(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v2", mw, mount)
}
