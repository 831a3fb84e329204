package modkit

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"mastoshim/internal/modkit/httpkit"
	phttp "mastoshim/internal/platform/net/http"
	"mastoshim/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	// no registrations is a no-op
	b.Register(nil)
}

func TestBuild_OptionsCopyAndOrder(t *testing.T) {
	t.Parallel()

	fnPtr := func(f func(http.Handler) http.Handler) uintptr { return reflect.ValueOf(f).Pointer() }
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	var order []string
	type ports struct{ X int }

	b := Build(
		WithName("accounts"),
		WithPrefix("/accounts"),
		WithMiddlewares(mid...),
		WithPorts(ports{X: 7}),
		WithRegister(func(httpkit.Router) { order = append(order, "a") }),
		WithRegister(nil),
		WithRegister(func(httpkit.Router) { order = append(order, "b") }),
	)

	if b.Name != "accounts" || b.Prefix != "/accounts" {
		t.Fatalf("name/prefix: %+v", b)
	}
	if got, ok := b.Ports.(ports); !ok || got.X != 7 {
		t.Fatalf("ports: %#v", b.Ports)
	}

	mid[0] = func(next http.Handler) http.Handler { return next }
	if fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatal("Built.Mw must be a copy in original order")
	}

	b.Register(nil)
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Fatalf("register order %v", order)
	}
}

func TestBase_MountRoutes(t *testing.T) {
	t.Parallel()

	hits := 0
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	}
	reg := func(r httpkit.Router) {
		r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	}

	cases := []struct {
		name, prefix, path string
	}{
		{"prefixed", "/things", "/things/ping"},
		{"root", "", "/ping"},
	}
	for _, tc := range cases {
		mux := chi.NewRouter()
		m := NewBase([]Option{WithName("things"), WithPrefix(tc.prefix)}, WithMiddlewares(mw), WithRegister(reg))
		m.MountRoutes(phttp.AdaptChi(mux))

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("%s: status %d", tc.name, rec.Code)
		}
		if m.Name() != "things" || m.Prefix() != tc.prefix || len(m.Middlewares()) != 1 {
			t.Fatalf("%s: accessors", tc.name)
		}
	}
	if hits != 2 {
		t.Fatalf("middleware hits %d", hits)
	}
}

func TestBase_NameRequired(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { _ = NewBase(nil).Name() })
}

func TestNewBase_OptsOverrideDefaults(t *testing.T) {
	t.Parallel()
	m := NewBase([]Option{WithName("meta"), WithPrefix("/meta")}, WithPrefix(""))
	if m.Prefix() != "" {
		t.Fatalf("prefix %q", m.Prefix())
	}
}
