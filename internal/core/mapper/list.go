package mapper

import (
	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

var repliesPolicies = map[string]bool{"followed": true, "list": true, "none": true}

// ListFromCircle maps a circle to a Mastodon list
func (m *Mapper) ListFromCircle(c any) schema.Record {
	rec := schema.List.New(schema.Record{
		"id":        fields.Get(c, "id"),
		"title":     fields.First(c, fields.Key("title"), fields.Path("named", "name"), fields.Key("name")),
		"exclusive": fields.Bool(fields.Get(c, "exclusive")),
	})
	if p := fields.String(fields.Get(c, "replies_policy")); repliesPolicies[p] {
		rec["replies_policy"] = p
	}
	return fields.ValidateAndReturn(rec, schema.List)
}

// ListsFromCircles maps a list of circles
func (m *Mapper) ListsFromCircles(cs []any) []schema.Record {
	out := make([]schema.Record, 0, len(cs))
	for _, c := range cs {
		if rec := m.ListFromCircle(c); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
