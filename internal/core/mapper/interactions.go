package mapper

import (
	"context"

	"mastoshim/internal/core/fields"
)

var inlineFlags = []string{"liked_by_me", "boosted_by_me", "bookmarked_by_me"}

// flags resolves the caller's interaction state
// inline flags on the source win, then the batch map, then a live read per object
func (m *Mapper) flags(ctx context.Context, post any, id string, opts Options) Interactions {
	for _, k := range inlineFlags {
		if fields.Has(post, k) {
			return Interactions{
				Liked:      fields.Bool(fields.Get(post, "liked_by_me")),
				Boosted:    fields.Bool(fields.Get(post, "boosted_by_me")),
				Bookmarked: fields.Bool(fields.Get(post, "bookmarked_by_me")),
			}
		}
	}
	if opts.Interactions != nil {
		return opts.Interactions[id]
	}
	if opts.CurrentUserID == "" || m.lookups == nil {
		return Interactions{}
	}
	st, err := m.lookups.Interactions(ctx, opts.CurrentUserID, id)
	if err != nil {
		m.log.Warn().Err(err).Str("object_id", id).Msg("interaction lookup failed")
		return Interactions{}
	}
	return st
}
