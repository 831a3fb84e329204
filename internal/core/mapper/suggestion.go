package mapper

import (
	"context"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

// SuggestionFromUser maps a suggested user with its source; the source must be a v2 source
func (m *Mapper) SuggestionFromUser(ctx context.Context, user any, source string, opts Options) schema.Record {
	aopts := opts
	aopts.Lightweight = true
	rec := schema.Suggestion.New(schema.Record{
		"source":  source,
		"sources": []any{source},
		"account": nilIfEmpty(m.AccountFromUser(ctx, user, aopts)),
	})
	return fields.ValidateAndReturn(rec, schema.Suggestion)
}

// SuggestionsFromUsers maps a list with one shared source
func (m *Mapper) SuggestionsFromUsers(ctx context.Context, users []any, source string, opts Options) []schema.Record {
	out := make([]schema.Record, 0, len(users))
	for _, u := range users {
		if rec := m.SuggestionFromUser(ctx, u, source, opts); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
