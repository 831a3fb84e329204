package mapper

import (
	"fmt"
	"strings"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

// mediaType derives the Mastodon attachment type from a mime type
func mediaType(mime string) string {
	mime = strings.ToLower(mime)
	switch {
	case mime == "image/gif":
		return "gifv"
	case strings.HasPrefix(mime, "image/"):
		return "image"
	case strings.HasPrefix(mime, "video/"):
		return "video"
	case strings.HasPrefix(mime, "audio/"):
		return "audio"
	}
	return "unknown"
}

// MediaFromFile maps an uploaded or remote file; files without id or url map to nil
func (m *Mapper) MediaFromFile(f any) schema.Record {
	id := fields.String(fields.Get(f, "id"))
	src := firstString(f, fields.Key("url"), fields.Key("path"), fields.Path("metadata", "url"))
	if id == "" || src == "" {
		return nil
	}
	mime := firstString(f, fields.Key("media_type"), fields.Key("mime_type"), fields.Key("content_type"))
	if mime == "link" {
		return nil
	}
	src = m.absolute(src)
	preview := m.absolute(firstString(f, fields.Key("preview_url"), fields.Key("thumbnail"), fields.Path("metadata", "thumbnail")))
	if preview == "" {
		preview = src
	}

	remote := any(nil)
	if h := hostOf(src); !m.isLocalHost(h) {
		remote = src
	}

	rec := schema.MediaAttachment.New(schema.Record{
		"id":          id,
		"type":        mediaType(mime),
		"url":         src,
		"preview_url": preview,
		"remote_url":  remote,
		"description": fields.GetFields(f, "description", "label", "alt"),
		"blurhash":    fields.Get(f, "blurhash"),
	})
	if meta := mediaMeta(f); meta != nil {
		rec["meta"] = meta
	}
	return fields.ValidateAndReturn(rec, schema.MediaAttachment)
}

// MediaFromFiles maps a list, dropping unusable files
func (m *Mapper) MediaFromFiles(files []any) []schema.Record {
	out := make([]schema.Record, 0, len(files))
	for _, f := range files {
		if rec := m.MediaFromFile(f); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

func mediaMeta(f any) schema.Record {
	md := fields.GetFields(f, "metadata", "meta")
	w, wok := fields.Int(fields.GetFields(md, "width", "original.width"))
	h, hok := fields.Int(fields.GetFields(md, "height", "original.height"))
	dur := fields.GetFields(md, "duration", "original.duration")
	focus := fields.Map(fields.Get(md, "focus"))

	if !wok && !hok && dur == nil && focus == nil {
		return nil
	}
	original := schema.Record{}
	if wok && hok && h > 0 {
		original["width"] = w
		original["height"] = h
		original["size"] = fmt.Sprintf("%dx%d", w, h)
		original["aspect"] = float64(w) / float64(h)
	}
	if dur != nil {
		original["duration"] = dur
	}
	meta := schema.Record{"original": original}
	if focus != nil {
		meta["focus"] = focus
	}
	return meta
}
