package modkit

import (
	"net/http"
	"strings"

	"mastoshim/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Register attaches every registered endpoint set in order
	Register func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	regs := append([]func(httpkit.Router){}, c.register...)
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
		Register: func(r httpkit.Router) {
			for _, fn := range regs {
				fn(r)
			}
		},
	}
}

// Base implements Module from a Built; service modules embed it
type Base struct {
	b Built
}

// NewBase applies defaults then opts, so callers can override name and prefix
func NewBase(defaults []Option, opts ...Option) Base {
	return Base{b: Build(append(defaults, opts...)...)}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (m Base) MountRoutes(r httpkit.Router) {
	if m.b.Prefix == "" {
		r.Group(func(g httpkit.Router) {
			if len(m.b.Mw) > 0 {
				g.Use(m.b.Mw...)
			}
			m.b.Register(g)
		})
		return
	}
	httpkit.MountUnder(r, mustPrefix(m.b.Prefix), m.b.Mw, m.b.Register)
}

// Name implements Module
func (m Base) Name() string { return mustName(m.b.Name) }

// Prefix returns the mount prefix, empty for root mounted modules
func (m Base) Prefix() string { return m.b.Prefix }

// Middlewares returns the per module middleware
func (m Base) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Ports implements Module
func (m Base) Ports() any { return m.b.Ports }

// mustPrefix normalizes a mount path to one leading slash and no trailing slash; "/" panics
func mustPrefix(s string) string {
	s = "/" + strings.Trim(strings.TrimSpace(s), " /")
	if s == "/" {
		panic("module prefix is required")
	}
	return s
}

func mustName(s string) string {
	if strings.TrimSpace(s) == "" {
		panic("module name is required")
	}
	return s
}
