package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"strings"
	"time"

	"mastoshim/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerOptions configures the listener; zero durations take the defaults below
type ServerOptions struct {
	// Addr is a bare port ("4000") or host:port
	Addr              string
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	ShutdownGrace     time.Duration
}

// Server owns the chi mux and the http.Server in front of it
type Server struct {
	mux   *chi.Mux
	srv   *stdhttp.Server
	grace time.Duration
}

// NewServer builds a Server; hooks see the mux before any route is mounted
func NewServer(opt ServerOptions, hooks ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, h := range hooks {
		h(m)
	}
	return &Server{
		mux:   m,
		grace: orDefault(opt.ShutdownGrace, 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              ListenAddr(opt.Addr),
			Handler:           m,
			ReadHeaderTimeout: orDefault(opt.ReadHeaderTimeout, 10*time.Second),
			IdleTimeout:       orDefault(opt.IdleTimeout, 2*time.Minute),
		},
	}
}

// ListenAddr turns a bare port into ":port"; empty means :4000
func ListenAddr(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return ":4000"
	case strings.Contains(v, ":"):
		return v
	default:
		return ":" + v
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}

// Router exposes the mux through the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is done, then drains in-flight requests for the shutdown grace.
// A clean shutdown returns nil
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http draining")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server outside of Run's context
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
