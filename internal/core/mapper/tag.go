package mapper

import (
	"net/url"
	"strings"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"

	"golang.org/x/text/unicode/norm"
)

// NormalizeHashtag strips the leading # and applies NFC
func NormalizeHashtag(name string) string {
	return norm.NFC.String(strings.TrimPrefix(strings.TrimSpace(name), "#"))
}

// TagFromHashtag maps a hashtag record or bare name
func (m *Mapper) TagFromHashtag(h any) schema.Record {
	var name string
	if s, ok := h.(string); ok {
		name = s
	} else {
		name = firstString(h, fields.Key("name"), fields.Path("named", "name"), fields.Key("tag"))
	}
	name = NormalizeHashtag(name)
	if name == "" {
		return nil
	}
	rec := schema.Tag.New(schema.Record{
		"name":      name,
		"url":       m.cfg.BaseURL + "/tags/" + url.PathEscape(strings.ToLower(name)),
		"following": fields.Bool(fields.Get(h, "following")),
	})
	if hist := fields.List(fields.Get(h, "history")); hist != nil {
		rec["history"] = hist
	}
	return fields.ValidateAndReturn(rec, schema.Tag)
}

// TagsFromHashtags maps a list, dropping blank names
func (m *Mapper) TagsFromHashtags(items []any) []schema.Record {
	out := make([]schema.Record, 0, len(items))
	for _, h := range items {
		if rec := m.TagFromHashtag(h); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
