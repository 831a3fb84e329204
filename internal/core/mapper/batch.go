package mapper

import (
	"context"

	"mastoshim/internal/core/fields"
)

// BatchStats holds preloaded account counters keyed by user id
type BatchStats struct {
	Statuses  map[string]int
	Followers map[string]int
	Following map[string]int
}

// For returns the counters for id; missing ids read as zero
func (b *BatchStats) For(id string) AccountStats {
	if b == nil {
		return AccountStats{}
	}
	return AccountStats{
		Statuses:  b.Statuses[id],
		Followers: b.Followers[id],
		Following: b.Following[id],
	}
}

// BatchLoader preloads data for a page of items so mappers do not query per item
type BatchLoader struct {
	lookups Lookups
}

// NewBatchLoader wraps the lookup port; a nil port yields empty preloads
func NewBatchLoader(l Lookups) *BatchLoader { return &BatchLoader{lookups: l} }

// LoadAccountStats issues one follow count and one post count query for all ids
func (b *BatchLoader) LoadAccountStats(ctx context.Context, userIDs []string) (*BatchStats, error) {
	st := &BatchStats{Statuses: map[string]int{}, Followers: map[string]int{}, Following: map[string]int{}}
	ids := uniq(userIDs)
	if b.lookups == nil || len(ids) == 0 {
		return st, nil
	}
	followers, following, err := b.lookups.FollowCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	posts, err := b.lookups.PostCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		st.Followers[id] = followers[id]
		st.Following[id] = following[id]
		st.Statuses[id] = posts[id]
	}
	return st, nil
}

// LoadMentions returns a map with an entry for every id, empty when the object has no mentions
func (b *BatchLoader) LoadMentions(ctx context.Context, objectIDs []string) (map[string][]map[string]any, error) {
	ids := uniq(objectIDs)
	out := make(map[string][]map[string]any, len(ids))
	if b.lookups == nil || len(ids) == 0 {
		return out, nil
	}
	got, err := b.lookups.MentionsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		rows := got[id]
		if rows == nil {
			rows = []map[string]any{}
		}
		out[id] = rows
	}
	return out, nil
}

// LoadInteractions returns the actor's state on every id; missing ids read as no interaction
func (b *BatchLoader) LoadInteractions(ctx context.Context, actorID string, objectIDs []string) (map[string]Interactions, error) {
	ids := uniq(objectIDs)
	out := make(map[string]Interactions, len(ids))
	if b.lookups == nil || actorID == "" || len(ids) == 0 {
		return out, nil
	}
	got, err := b.lookups.InteractionsFor(ctx, actorID, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = got[id]
	}
	return out, nil
}

// Prepare preloads stats, mentions and interactions for a page of activities and returns
// opts carrying them; on a lookup failure the affected preload is left out and mappers fall back
func (b *BatchLoader) Prepare(ctx context.Context, items []any, opts Options) Options {
	var users, objects []string
	for _, it := range items {
		post, actor, _ := split(it)
		if isBoost(it) {
			actor = fields.GetFields(it, "subject", "account")
			post = fields.Get(it, "object")
			if isBoost(post) {
				post = fields.Get(post, "object")
			}
		}
		for _, u := range []any{actor, creatorOf(post)} {
			if id := fields.String(fields.Get(u, "id")); id != "" {
				users = append(users, id)
			}
		}
		if id := fields.String(fields.Get(post, "id")); id != "" {
			objects = append(objects, id)
		}
	}

	if !opts.SkipExpensiveStats && opts.Stats == nil {
		if st, err := b.LoadAccountStats(ctx, users); err == nil {
			opts.Stats = st
		}
	}
	if opts.Mentions == nil {
		if mm, err := b.LoadMentions(ctx, objects); err == nil && b.lookups != nil {
			opts.Mentions = mm
		}
	}
	if opts.Interactions == nil && opts.CurrentUserID != "" && b.lookups != nil {
		if in, err := b.LoadInteractions(ctx, opts.CurrentUserID, objects); err == nil {
			opts.Interactions = in
		}
	}
	return opts
}

func creatorOf(post any) any {
	return fields.First(post,
		fields.Path("created", "creator"),
		fields.Key("creator"),
		fields.Key("account"),
	)
}

func uniq(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
