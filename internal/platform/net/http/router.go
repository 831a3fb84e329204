package http

import "net/http"

// Handler is a plain handler func; modules never see chi types
type Handler = func(http.ResponseWriter, *http.Request)

// Router covers the verbs Mastodon clients use against the shim plus scoping
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Delete(path string, h Handler)
	Handle(path string, h http.Handler)

	// Use appends middleware to the current scope
	Use(mw ...func(http.Handler) http.Handler)
	// Group opens an inline scope; Route opens one under pattern
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
