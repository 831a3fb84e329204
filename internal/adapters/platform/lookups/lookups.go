// Package lookups implements the mapper lookup port over the platform database
package lookups

import (
	"context"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/mapper"
	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/logger"
	"mastoshim/internal/platform/store"
)

// Options configures the adapter
type Options struct {
	// FollowersCircles are circle ids whose grant makes an object followers only
	FollowersCircles []string
}

// Lookups reads counts, mentions and interaction state
type Lookups struct {
	db      store.TxRunner
	circles []string
	log     *logger.Logger
}

var _ mapper.Lookups = (*Lookups)(nil)

// New creates the adapter
func New(db store.TxRunner, o Options) *Lookups {
	circles := o.FollowersCircles
	if circles == nil {
		circles = []string{}
	}
	return &Lookups{db: db, circles: circles, log: logger.Named("lookups")}
}

// AccountStats reads the three counters for one user from one snapshot
func (l *Lookups) AccountStats(ctx context.Context, userID string) (mapper.AccountStats, error) {
	var st mapper.AccountStats
	err := store.RunReadOnly(store.Label(ctx, "account_stats"), l.db, func(ctx context.Context, q store.RowQuerier) error {
		var err error
		if st.Statuses, err = store.Scalar[int](ctx, q, qPostCount, userID); err != nil {
			return err
		}
		if st.Followers, err = store.Scalar[int](ctx, q, qFollowerCount, userID); err != nil {
			return err
		}
		st.Following, err = store.Scalar[int](ctx, q, qFollowingCount, userID)
		return err
	})
	if err != nil {
		return mapper.AccountStats{}, perr.FromPostgresf(err, "account stats %s", userID)
	}
	return st, nil
}

type countRow struct {
	kind string
	id   string
	n    int
}

// FollowCounts returns follower and following counts for many users in one query
func (l *Lookups) FollowCounts(ctx context.Context, userIDs []string) (map[string]int, map[string]int, error) {
	followers := make(map[string]int, len(userIDs))
	following := make(map[string]int, len(userIDs))
	if len(userIDs) == 0 {
		return followers, following, nil
	}
	rows, err := store.Many(store.Label(ctx, "follow_counts"), l.db, func(r store.Row) (countRow, error) {
		var c countRow
		err := r.Scan(&c.kind, &c.id, &c.n)
		return c, err
	}, qFollowCounts, userIDs)
	if err != nil {
		return nil, nil, perr.FromPostgres(err, "follow counts")
	}
	for _, c := range rows {
		if c.kind == "followers" {
			followers[c.id] = c.n
		} else {
			following[c.id] = c.n
		}
	}
	return followers, following, nil
}

// PostCounts returns post counts for many users in one query
func (l *Lookups) PostCounts(ctx context.Context, userIDs []string) (map[string]int, error) {
	if len(userIDs) == 0 {
		return map[string]int{}, nil
	}
	out, err := store.Counts(store.Label(ctx, "post_counts"), l.db, qPostCounts, userIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "post counts")
	}
	return out, nil
}

// mentionRow is one mentioned character; FieldMap gives it the tag shape mappers read
type mentionRow struct {
	objectID     string
	id           string
	username     string
	canonicalURI *string
}

func (m mentionRow) FieldMap() map[string]any {
	character := map[string]any{"id": m.id, "username": m.username}
	if m.canonicalURI != nil {
		character["canonical_uri"] = *m.canonicalURI
	}
	return map[string]any{"id": m.id, "character": character}
}

// Mentions returns the mention tags of one object
func (l *Lookups) Mentions(ctx context.Context, objectID string) ([]map[string]any, error) {
	got, err := l.MentionsFor(ctx, []string{objectID})
	if err != nil {
		return nil, err
	}
	return got[objectID], nil
}

// MentionsFor returns mention tags grouped by object; objects without mentions have no entry
func (l *Lookups) MentionsFor(ctx context.Context, objectIDs []string) (map[string][]map[string]any, error) {
	out := make(map[string][]map[string]any, len(objectIDs))
	if len(objectIDs) == 0 {
		return out, nil
	}
	rows, err := store.Many(store.Label(ctx, "mentions"), l.db, func(r store.Row) (mentionRow, error) {
		var m mentionRow
		err := r.Scan(&m.objectID, &m.id, &m.username, &m.canonicalURI)
		return m, err
	}, qMentions, objectIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "mentions")
	}
	for _, m := range rows {
		flat, _ := fields.DeepToMap(m, fields.FlattenOptions{FilterNils: true}).(map[string]any)
		if flat == nil {
			continue
		}
		out[m.objectID] = append(out[m.objectID], flat)
	}
	return out, nil
}

type interactionRow struct {
	id string
	mapper.Interactions
}

// Interactions returns the actor's like, boost and bookmark state on one object
func (l *Lookups) Interactions(ctx context.Context, actorID, objectID string) (mapper.Interactions, error) {
	got, err := l.InteractionsFor(ctx, actorID, []string{objectID})
	if err != nil {
		return mapper.Interactions{}, err
	}
	return got[objectID], nil
}

// InteractionsFor returns interaction state for many objects in one query
func (l *Lookups) InteractionsFor(ctx context.Context, actorID string, objectIDs []string) (map[string]mapper.Interactions, error) {
	out := make(map[string]mapper.Interactions, len(objectIDs))
	if actorID == "" || len(objectIDs) == 0 {
		return out, nil
	}
	rows, err := store.Many(store.Label(ctx, "interactions"), l.db, func(r store.Row) (interactionRow, error) {
		var x interactionRow
		err := r.Scan(&x.id, &x.Liked, &x.Boosted, &x.Bookmarked)
		return x, err
	}, qInteractions, actorID, objectIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "interactions")
	}
	for _, x := range rows {
		out[x.id] = x.Interactions
	}
	return out, nil
}

// FollowersGrant reports whether the object's ACLs grant access to a followers circle
func (l *Lookups) FollowersGrant(ctx context.Context, objectID string) (bool, error) {
	ok, err := store.Scalar[bool](store.Label(ctx, "followers_grant"), l.db, qFollowersGrant, objectID, l.circles)
	if err != nil {
		return false, perr.FromPostgresf(err, "followers grant %s", objectID)
	}
	return ok, nil
}

// Relationship returns the follow and request flags between actor and target
func (l *Lookups) Relationship(ctx context.Context, actorID, targetID string) (map[string]any, error) {
	var following, followedBy, requested, requestedBy bool
	err := l.db.QueryRow(store.Label(ctx, "relationship"), qRelationship, actorID, targetID).Scan(&following, &followedBy, &requested, &requestedBy)
	if err != nil {
		return nil, perr.FromPostgresf(err, "relationship %s", targetID)
	}
	l.log.Debug().Str("target_id", targetID).Bool("following", following).Msg("relationship read")
	return map[string]any{
		"following":    following,
		"followed_by":  followedBy,
		"requested":    requested,
		"requested_by": requestedBy,
	}, nil
}
