package config

import "time"

// Env prefixes
const (
	APIPrefix      = "MASTOSHIM_API_"
	PlatformPrefix = "MASTOSHIM_PLATFORM_"
	DatabasePrefix = "SERVICE_PGSQL_"
)

// API configures the HTTP surface and the mapping pipeline
type API struct {
	// Addr is a bare port or host:port
	Addr          string
	ShutdownGrace time.Duration

	BaseURL     string
	LocalDomain string
	// Env is "production" or anything else; only production withholds error details
	Env string

	DefaultLimit int
	MaxLimit     int

	DefaultAvatar string
	DefaultHeader string
	PreviewCards  bool
	MarkupCache   int

	TokenCache int
	TokenTTL   time.Duration

	CORSOrigins []string
	CORSMaxAge  int

	Swagger  bool
	Profiler bool
}

// Platform configures the GraphQL endpoint and the ACL presets used for visibility
type Platform struct {
	GraphQLURL string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration

	ACLRemotePublic  []string
	ACLPublic        []string
	ACLLocal         []string
	FollowersCircles []string
}

// Database configures the optional lookup database
type Database struct {
	Enabled          bool
	URL              string
	MaxConns         int
	SlowQueryMs      int
	LogSQL           bool
	StatementTimeout time.Duration
}

// Settings is everything main needs
type Settings struct {
	API      API
	Platform Platform
	Database Database
}

// Load reads Settings from the environment; a missing base URL or GraphQL URL panics
func Load() Settings {
	root := New()
	return Settings{
		API:      loadAPI(root.Prefix(APIPrefix)),
		Platform: loadPlatform(root.Prefix(PlatformPrefix)),
		Database: loadDatabase(root.Prefix(DatabasePrefix)),
	}
}

func loadAPI(c Conf) API {
	return API{
		Addr:          c.MayString("PORT", New().MayString("PORT", "4000")),
		ShutdownGrace: c.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		BaseURL:       c.MustURL("BASE_URL").String(),
		LocalDomain:   c.MayString("LOCAL_DOMAIN", ""),
		Env:           c.MayString("ENV", "development"),
		DefaultLimit:  c.MayInt("DEFAULT_LIMIT", 20),
		MaxLimit:      c.MayInt("MAX_LIMIT", 40),
		DefaultAvatar: c.MayString("DEFAULT_AVATAR", ""),
		DefaultHeader: c.MayString("DEFAULT_HEADER", ""),
		PreviewCards:  c.MayBool("PREVIEW_CARDS", true),
		MarkupCache:   c.MayInt("MARKUP_CACHE", 0),
		TokenCache:    c.MayInt("TOKEN_CACHE", 1024),
		TokenTTL:      c.MayDuration("TOKEN_TTL", time.Minute),
		CORSOrigins:   c.MayCSV("CORS_ORIGINS", []string{"*"}),
		CORSMaxAge:    c.MayInt("CORS_MAX_AGE", 300),
		Swagger:       c.MayBool("SWAGGER", true),
		Profiler:      c.MayBool("PROFILER", false),
	}
}

func loadPlatform(c Conf) Platform {
	return Platform{
		GraphQLURL:       c.MustString("GRAPHQL_URL"),
		Timeout:          c.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries:       c.MayInt("MAX_RETRIES", 3),
		RetryBase:        c.MayDuration("RETRY_BASE", 200*time.Millisecond),
		ACLRemotePublic:  c.MayCSV("ACL_REMOTE_PUBLIC", nil),
		ACLPublic:        c.MayCSV("ACL_PUBLIC", nil),
		ACLLocal:         c.MayCSV("ACL_LOCAL", nil),
		FollowersCircles: c.MayCSV("FOLLOWERS_CIRCLES", nil),
	}
}

func loadDatabase(c Conf) Database {
	return Database{
		Enabled:          c.MayBool("ENABLED", false),
		URL:              c.MayString("DBURL", ""),
		MaxConns:         c.MayInt("MAX_CONNS", 4),
		SlowQueryMs:      c.MayInt("SLOW_MS", 500),
		LogSQL:           c.MayBool("LOG_SQL", false),
		StatementTimeout: c.MayDuration("STATEMENT_TIMEOUT", 3*time.Second),
	}
}
