package mapper

import (
	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/markup"
	"mastoshim/internal/core/schema"
)

// CardFromLink maps link media or a bare URL to a preview card
func (m *Mapper) CardFromLink(link any) schema.Record {
	var u string
	if s, ok := link.(string); ok {
		u = s
	} else {
		u = firstString(link, fields.Key("url"), fields.Key("path"))
	}
	host := hostOf(u)
	if host == "" {
		return nil
	}
	title := firstString(link, fields.Key("title"), fields.Key("label"), fields.Path("metadata", "title"))
	if title == "" {
		title = host
	}
	rec := schema.PreviewCard.New(schema.Record{
		"url":           u,
		"title":         title,
		"description":   firstString(link, fields.Key("description"), fields.Path("metadata", "description")),
		"provider_name": firstString(link, fields.Path("metadata", "site_name"), fields.Key("provider_name")),
		"provider_url":  "https://" + host,
		"image":         fields.First(link, fields.Key("image"), fields.Path("metadata", "image")),
	})
	if rec["provider_name"] == "" {
		rec["provider_name"] = host
	}
	return fields.ValidateAndReturn(rec, schema.PreviewCard)
}

// card prefers link media attached to the post, then the first external link in its content
func (m *Mapper) card(post any, content string) schema.Record {
	for _, f := range fields.List(fields.GetFields(post, "media", "files")) {
		if fields.String(fields.GetFields(f, "media_type", "mime_type")) == "link" {
			if rec := m.CardFromLink(f); rec != nil {
				return rec
			}
		}
	}
	if href := markup.FirstLink(content); href != "" {
		return m.CardFromLink(href)
	}
	return nil
}
