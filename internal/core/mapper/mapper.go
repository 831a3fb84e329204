// Package mapper turns platform records into validated Mastodon entities
//
// Inputs arrive as GraphQL response maps or flattened ORM rows. Every public entry point
// returns either a schema valid record or nil; plural forms drop nils. Reads beyond the
// input go through the Lookups port and only happen when the caller did not preload them
package mapper

import (
	"context"
	"net/url"
	"strings"
	"time"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/markup"
	"mastoshim/internal/core/schema"
	"mastoshim/internal/platform/logger"

	"golang.org/x/text/cases"
)

// ACLPresets holds the preset ACL ids used for visibility classification
type ACLPresets struct {
	RemotePublic []string
	Public       []string
	Local        []string
}

// EventMapper renders event activities; nil disables the event branch
type EventMapper interface {
	Status(ctx context.Context, activity any, opts Options) schema.Record
}

// Config is built once at startup and shared by every mapping call
type Config struct {
	BaseURL       string
	LocalDomain   string
	ACL           ACLPresets
	DefaultAvatar string
	DefaultHeader string
	PreviewCards  bool
	Events        EventMapper
	Now           func() time.Time
}

// AccountStats are the three counters on an Account
type AccountStats struct {
	Statuses  int
	Followers int
	Following int
}

// Interactions is the caller's state on one object
type Interactions struct {
	Liked      bool
	Boosted    bool
	Bookmarked bool
}

// Lookups is the read port mappers fall back to when data was not preloaded
//
//go:generate mockgen -destination mocks/mock_lookups.go -package mocks mastoshim/internal/core/mapper Lookups
type Lookups interface {
	AccountStats(ctx context.Context, userID string) (AccountStats, error)
	FollowCounts(ctx context.Context, userIDs []string) (followers, following map[string]int, err error)
	PostCounts(ctx context.Context, userIDs []string) (map[string]int, error)
	Mentions(ctx context.Context, objectID string) ([]map[string]any, error)
	MentionsFor(ctx context.Context, objectIDs []string) (map[string][]map[string]any, error)
	Interactions(ctx context.Context, actorID, objectID string) (Interactions, error)
	InteractionsFor(ctx context.Context, actorID string, objectIDs []string) (map[string]Interactions, error)
	FollowersGrant(ctx context.Context, objectID string) (bool, error)
	Relationship(ctx context.Context, actorID, targetID string) (map[string]any, error)
}

// Options are per call switches and preloaded data
type Options struct {
	CurrentUserID      string
	SkipExpensiveStats bool
	Stats              *BatchStats

	// Mentions is keyed by object id; a present key with an empty list means no mentions
	Mentions     map[string][]map[string]any
	Interactions map[string]Interactions

	IsReblog        bool
	ForConversation bool
	Lightweight     bool
	IncludeSource   bool
}

// Mapper holds configuration and collaborators for all entity mappers
type Mapper struct {
	cfg     Config
	lookups Lookups
	md      *markup.Renderer
	log     *logger.Logger
}

// New builds a Mapper; lookups may be nil, in which case fallback reads yield zero values
func New(cfg Config, lookups Lookups, md *markup.Renderer) *Mapper {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.LocalDomain == "" {
		if u, err := url.Parse(cfg.BaseURL); err == nil {
			cfg.LocalDomain = u.Hostname()
		}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if md == nil {
		md = markup.New(0)
	}
	return &Mapper{
		cfg:     cfg,
		lookups: lookups,
		md:      md,
		log:     logger.Named("mapper"),
	}
}

// Config returns the startup configuration
func (m *Mapper) Config() Config { return m.cfg }

// absolute resolves a path against BaseURL; absolute URLs pass through
func (m *Mapper) absolute(s string) string {
	if s == "" || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return m.cfg.BaseURL + s
}

// isLocalHost compares a host to the local domain, case folded
func (m *Mapper) isLocalHost(host string) bool {
	if host == "" {
		return true
	}
	fold := cases.Fold()
	return fold.String(host) == fold.String(m.cfg.LocalDomain)
}

// hostOf returns the host of an absolute URI or ""
func hostOf(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Hostname()
}

// createdAt formats the first timestamp found, falling back to the id's embedded time
func createdAt(src any, id string) any {
	if v := fields.FormatDatetime(fields.GetFields(src, "created_at", "inserted_at", "published_at")); v != nil {
		return v
	}
	if t, ok := ulidTime(id); ok {
		return t.UTC().Format(fields.ISOLayout)
	}
	return nil
}

// firstString returns the first non empty textual value among accessors
func firstString(src any, accessors ...fields.Accessor) string {
	for _, a := range accessors {
		if s := fields.String(a(src)); s != "" {
			return s
		}
	}
	return ""
}

// count reads the first integral value among keys; nested object_count maps are accepted
func count(src any, keys ...string) int {
	for _, k := range keys {
		v := fields.Get(src, k)
		if v == nil {
			continue
		}
		if n, ok := fields.Int(v); ok {
			return n
		}
		if n, ok := fields.Int(fields.Get(v, "object_count")); ok {
			return n
		}
	}
	return 0
}

func records(items []schema.Record) []any {
	out := make([]any, 0, len(items))
	for _, r := range items {
		out = append(out, r)
	}
	return out
}
