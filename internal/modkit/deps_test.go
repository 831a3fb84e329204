package modkit

import (
	"context"
	"net/http/httptest"
	"testing"

	"mastoshim/internal/core/mapper"
	"mastoshim/internal/platform/config"
	pnet "mastoshim/internal/platform/net"
	"mastoshim/internal/platform/net/rest"
)

func TestDeps_ZeroValue_IsOK(t *testing.T) {
	t.Parallel()
	var d Deps
	if !d.ZeroOK() {
		t.Fatal("zero-value Deps should be safe in tests (ZeroOK == true)")
	}
	if d.Rest() == nil {
		t.Fatal("zero-value Deps should still hand out a rest adapter")
	}
}

func TestDeps_RestPrefersShared(t *testing.T) {
	t.Parallel()

	a := rest.New(rest.Config{Env: "production"})
	d := Deps{Cfg: config.New(), REST: a}
	if d.Rest() != a {
		t.Fatal("Rest should return the injected adapter")
	}
}

func TestDeps_Limits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		d                Deps
		wantDef, wantMax int
	}{
		{"defaults", Deps{}, 20, 40},
		{"custom", Deps{DefaultLimit: 10, MaxLimit: 80}, 10, 80},
		{"default above max", Deps{DefaultLimit: 50, MaxLimit: 30}, 30, 30},
	}
	for _, tc := range cases {
		def, max := tc.d.Limits()
		if def != tc.wantDef || max != tc.wantMax {
			t.Fatalf("%s: got %d/%d want %d/%d", tc.name, def, max, tc.wantDef, tc.wantMax)
		}
	}
}

func TestDeps_PageVars(t *testing.T) {
	t.Parallel()

	d := Deps{MaxLimit: 5}
	vars := d.PageVars(httptest.NewRequest("GET", "/x?limit=99&max_id=abc", nil))
	if vars["first"] != 5 || vars["after"] == nil {
		t.Fatalf("vars %v", vars)
	}
	vars = d.PageVars(httptest.NewRequest("GET", "/x?min_id=abc", nil))
	if vars["last"] != 5 || vars["before"] == nil {
		t.Fatalf("min_id vars %v", vars)
	}
}

func TestDeps_OptionsCarryViewer(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(pnet.WithUser(r.Context(), "u1"))
	if got := (Deps{}).Options(r); got.CurrentUserID != "u1" {
		t.Fatalf("viewer %q", got.CurrentUserID)
	}
}

func TestDeps_PrepareWithoutLoaderPassesThrough(t *testing.T) {
	t.Parallel()

	in := mapper.Options{CurrentUserID: "u1"}
	out := (Deps{}).Prepare(context.Background(), []any{map[string]any{"id": "p1"}}, in)
	if out.Stats != nil || out.Mentions != nil || out.CurrentUserID != "u1" {
		t.Fatalf("opts changed: %+v", out)
	}
	if got := (Deps{}).PrepareUsers(context.Background(), nil, in); got.Stats != nil {
		t.Fatal("stats preloaded without a loader")
	}
}

func TestDeps_PrepareUsersLoadsStats(t *testing.T) {
	t.Parallel()

	d := Deps{Batch: mapper.NewBatchLoader(nil)}
	users := []any{map[string]any{"id": "u1"}, map[string]any{"id": "u2"}}
	out := d.PrepareUsers(context.Background(), users, mapper.Options{})
	if out.Stats == nil {
		t.Fatal("stats not preloaded")
	}
	skip := d.PrepareUsers(context.Background(), users, mapper.Options{SkipExpensiveStats: true})
	if skip.Stats != nil {
		t.Fatal("stats preloaded despite SkipExpensiveStats")
	}
}

func TestVars_LaterWins(t *testing.T) {
	t.Parallel()

	v := Vars(map[string]any{"id": "a", "first": 20}, nil, map[string]any{"id": "b"})
	if v["id"] != "b" || v["first"] != 20 {
		t.Fatalf("vars %v", v)
	}
}
