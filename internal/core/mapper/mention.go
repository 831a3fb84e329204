package mapper

import (
	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

// identityOf returns the record holding a character, trying the tag itself,
// its pointer and its profile
func identityOf(tag any) any {
	for _, holder := range []any{
		tag,
		fields.Get(tag, "pointer"),
		fields.Get(tag, "profile"),
	} {
		if holder != nil && fields.Get(holder, "character") != nil {
			return holder
		}
	}
	return nil
}

// MentionFromTag maps a tag that points at an identity; other tags map to nil
func (m *Mapper) MentionFromTag(tag any) schema.Record {
	holder := identityOf(tag)
	if holder == nil {
		return nil
	}
	username := firstString(holder, fields.Path("character", "username"))
	if username == "" {
		return nil
	}
	uri := firstString(holder,
		fields.Path("character", "canonical_uri"),
		fields.Path("peered", "canonical_uri"),
		fields.Path("character", "peered", "canonical_uri"),
	)
	acct := username
	if host := hostOf(uri); !m.isLocalHost(host) {
		acct = username + "@" + host
	}
	if uri == "" {
		uri = m.cfg.BaseURL + "/@" + username
	}
	rec := schema.Mention.New(schema.Record{
		"id":       fields.First(holder, fields.Key("id"), fields.Path("character", "id"), fields.Key("pointer_id")),
		"username": username,
		"acct":     acct,
		"url":      uri,
	})
	if rec["id"] == nil {
		rec["id"] = fields.Get(tag, "id")
	}
	return fields.ValidateAndReturn(rec, schema.Mention)
}

// MentionsFromTags maps the mention tags in a list
func (m *Mapper) MentionsFromTags(tags []any) []schema.Record {
	out := make([]schema.Record, 0, len(tags))
	for _, t := range tags {
		if rec := m.MentionFromTag(t); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
