package mapper

import (
	"context"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

var relationshipFlags = []string{
	"following", "showing_reblogs", "notifying", "followed_by", "blocking", "blocked_by",
	"muting", "muting_notifications", "requested", "requested_by", "domain_blocking", "endorsed",
}

// RelationshipFromState maps a target id and a flag record; missing flags keep their defaults
func RelationshipFromState(targetID string, state any) schema.Record {
	if targetID == "" {
		return nil
	}
	rec := schema.Relationship.New(schema.Record{"id": targetID})
	for _, f := range relationshipFlags {
		if fields.Has(state, f) {
			rec[f] = fields.Bool(fields.Get(state, f))
		}
	}
	if note := fields.String(fields.Get(state, "note")); note != "" {
		rec["note"] = note
	}
	return fields.ValidateAndReturn(rec, schema.Relationship)
}

// Relationships reads the caller's relationship to each target through the lookup port
func (m *Mapper) Relationships(ctx context.Context, actorID string, targetIDs []string) []schema.Record {
	out := make([]schema.Record, 0, len(targetIDs))
	for _, id := range targetIDs {
		var state map[string]any
		if actorID != "" && m.lookups != nil {
			s, err := m.lookups.Relationship(ctx, actorID, id)
			if err != nil {
				m.log.Warn().Err(err).Str("target_id", id).Msg("relationship lookup failed")
			}
			state = s
		}
		if rec := RelationshipFromState(id, state); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
