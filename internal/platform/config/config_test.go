package config

import (
	"reflect"
	"testing"
	"time"

	kit "mastoshim/internal/platform/testkit"
)

func TestPrefix(t *testing.T) {
	c := New().Prefix("MASTOSHIM_").Prefix("API_")
	if got := c.key("PORT"); got != "MASTOSHIM_API_PORT" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("T1_")
	t.Setenv("T1_GRAPHQL_URL", "  http://platform:4000/api/graphql ")
	if got := c.MustString("GRAPHQL_URL"); got != "http://platform:4000/api/graphql" {
		t.Fatalf("MustString = %q", got)
	}
	t.Setenv("T1_BLANK", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustURL(t *testing.T) {
	c := New().Prefix("T2_")
	t.Setenv("T2_BASE_URL", "https://social.example")
	if got := c.MustURL("BASE_URL").Host; got != "social.example" {
		t.Fatalf("MustURL host = %q", got)
	}
	t.Setenv("T2_RELATIVE", "/just/a/path")
	kit.MustPanic(t, func() { _ = c.MustURL("RELATIVE") })
}

func TestMayValues(t *testing.T) {
	c := New().Prefix("T3_")
	t.Setenv("T3_LIMIT", " 25 ")
	t.Setenv("T3_BAD_LIMIT", "lots")
	t.Setenv("T3_SWAGGER", "false")
	t.Setenv("T3_BAD_BOOL", "maybe")
	t.Setenv("T3_TTL", "90s")
	t.Setenv("T3_BAD_TTL", "soon")
	t.Setenv("T3_ENV", "production")

	if got := c.MayInt("LIMIT", 20); got != 25 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD_LIMIT", 20); got != 20 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt missing = %d", got)
	}
	if c.MayBool("SWAGGER", true) {
		t.Fatal("MayBool false expected")
	}
	if !c.MayBool("BAD_BOOL", true) {
		t.Fatal("MayBool invalid should use default")
	}
	if got := c.MayDuration("TTL", time.Minute); got != 90*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD_TTL", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration invalid = %v", got)
	}
	if got := c.MayString("ENV", "development"); got != "production" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("MISSING", "development"); got != "development" {
		t.Fatalf("MayString missing = %q", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("T4_")
	t.Setenv("T4_ACL_PUBLIC", " 5REM0TEPUB1ICACC355C0NTR01, ,7HEPUB1ICACC355C0NTR01 ,")
	t.Setenv("T4_EMPTY", " , ,")

	want := []string{"5REM0TEPUB1ICACC355C0NTR01", "7HEPUB1ICACC355C0NTR01"}
	if got := c.MayCSV("ACL_PUBLIC", nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("EMPTY", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("MayCSV all blank = %v", got)
	}
	if got := c.MayCSV("MISSING", nil); got != nil {
		t.Fatalf("MayCSV missing = %v", got)
	}
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("MASTOSHIM_API_BASE_URL", "https://social.example")
	t.Setenv("MASTOSHIM_API_MAX_LIMIT", "80")
	t.Setenv("MASTOSHIM_PLATFORM_GRAPHQL_URL", "http://platform:4000/api/graphql")
	t.Setenv("MASTOSHIM_PLATFORM_FOLLOWERS_CIRCLES", "7DAPE0P1EF0110WERS0F0110WER")
	t.Setenv("SERVICE_PGSQL_ENABLED", "true")
	t.Setenv("PORT", "")
	t.Setenv("MASTOSHIM_API_PORT", "")
	t.Setenv("SERVICE_PGSQL_STATEMENT_TIMEOUT", "1s")

	s := Load()
	if s.API.BaseURL != "https://social.example" || s.API.Env != "development" {
		t.Fatalf("api %+v", s.API)
	}
	if s.API.Addr != "4000" || s.API.ShutdownGrace != 10*time.Second {
		t.Fatalf("listener %q %v", s.API.Addr, s.API.ShutdownGrace)
	}
	if s.API.DefaultLimit != 20 || s.API.MaxLimit != 80 {
		t.Fatalf("limits %d/%d", s.API.DefaultLimit, s.API.MaxLimit)
	}
	if !s.API.Swagger || s.API.Profiler || !s.API.PreviewCards {
		t.Fatalf("toggles %+v", s.API)
	}
	if s.Platform.Timeout != 10*time.Second || s.Platform.MaxRetries != 3 {
		t.Fatalf("platform %+v", s.Platform)
	}
	if !reflect.DeepEqual(s.Platform.FollowersCircles, []string{"7DAPE0P1EF0110WERS0F0110WER"}) {
		t.Fatalf("circles %v", s.Platform.FollowersCircles)
	}
	if !s.Database.Enabled || s.Database.StatementTimeout != time.Second || s.Database.MaxConns != 4 {
		t.Fatalf("database %+v", s.Database)
	}
}

func TestLoad_RequiresGraphQLURL(t *testing.T) {
	t.Setenv("MASTOSHIM_API_BASE_URL", "https://social.example")
	t.Setenv("MASTOSHIM_PLATFORM_GRAPHQL_URL", "")
	kit.MustPanic(t, func() { _ = Load() })
}
