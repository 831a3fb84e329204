package mapper

import (
	"context"
	"strings"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

var boostVerbs = map[string]bool{"boost": true, "announce": true, "reblog": true}

// verb reads an activity verb given as a string or as {verb: "..."}
func verb(act any) string {
	v := fields.Get(act, "verb")
	if s := fields.String(v); s != "" {
		return strings.ToLower(s)
	}
	return strings.ToLower(firstString(v, fields.Key("verb"), fields.Key("verb_display")))
}

func isBoost(act any) bool { return boostVerbs[verb(act)] }

func isEvent(act any) bool {
	if verb(act) == "event" {
		return true
	}
	obj := fields.Get(act, "object")
	return strings.EqualFold(firstString(obj, fields.Key("__typename"), fields.Key("object_type"), fields.Key("type")), "event")
}

// isPost reports whether v carries post content
func isPost(v any) bool {
	if !isRecord(v) {
		return false
	}
	if strings.EqualFold(fields.String(fields.Get(v, "__typename")), "post") {
		return true
	}
	return fields.Has(v, "post_content") || fields.Has(v, "html_body") || fields.Has(v, "content")
}

// StatusFromActivity maps an activity or a bare post to a Status
// boosts become a wrapper whose reblog nests the original post, unwrapped at most once
func (m *Mapper) StatusFromActivity(ctx context.Context, act any, opts Options) schema.Record {
	if !isRecord(act) {
		return nil
	}
	switch {
	case isBoost(act) && !opts.IsReblog:
		return m.boost(ctx, act, opts)
	case isEvent(act) && m.cfg.Events != nil:
		return m.cfg.Events.Status(ctx, act, opts)
	}
	post, actor, at := split(act)
	return m.post(ctx, post, actor, at, opts)
}

// StatusesFromActivities maps a list, dropping items that do not map
func (m *Mapper) StatusesFromActivities(ctx context.Context, acts []any, opts Options) []schema.Record {
	out := make([]schema.Record, 0, len(acts))
	for _, a := range acts {
		if rec := m.StatusFromActivity(ctx, a, opts); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

// split separates an activity into its post, acting subject and activity timestamp
func split(act any) (post, actor, at any) {
	if isPost(act) {
		return act, nil, nil
	}
	if obj := fields.Get(act, "object"); obj != nil {
		return obj, fields.Get(act, "subject"), fields.GetFields(act, "created_at", "inserted_at")
	}
	return act, nil, nil
}

func (m *Mapper) boost(ctx context.Context, act any, opts Options) schema.Record {
	inner := fields.Get(act, "object")
	if isBoost(inner) {
		inner = fields.Get(inner, "object")
	}

	var original schema.Record
	if isPost(inner) {
		ropts := opts
		ropts.IsReblog = true
		original = m.post(ctx, inner, nil, nil, ropts)
	}

	id := fields.String(fields.Get(act, "id"))
	account := m.AccountFromUser(ctx, fields.GetFields(act, "subject", "account"), opts)
	rec := m.WrapReblog(id, account, original)
	if rec == nil {
		return nil
	}
	if at := createdAt(act, id); at != nil {
		rec["created_at"] = at
	}
	return fields.ValidateAndReturn(rec, schema.Status)
}

// WrapReblog builds the synthetic Status Mastodon uses for a boost
func (m *Mapper) WrapReblog(id string, account, original schema.Record) schema.Record {
	if id == "" {
		return nil
	}
	rec := schema.Status.New(schema.Record{
		"id":         id,
		"uri":        m.cfg.BaseURL + "/pub/objects/" + id,
		"url":        nil,
		"account":    nilIfEmpty(account),
		"content":    "",
		"reblog":     nilIfEmpty(original),
		"created_at": createdAt(nil, id),
	})
	if original != nil {
		for _, k := range []string{"visibility", "favourited", "reblogged", "bookmarked"} {
			rec[k] = original[k]
		}
		if rec["created_at"] == nil {
			rec["created_at"] = original["created_at"]
		}
	}
	return rec
}

func (m *Mapper) post(ctx context.Context, post, actor, at any, opts Options) schema.Record {
	id := fields.String(fields.Get(post, "id"))
	if id == "" {
		return nil
	}

	creator := fields.First(post,
		fields.Path("created", "creator"),
		fields.Key("creator"),
		fields.Key("account"),
		fields.Key("subject"),
	)
	if creator == nil {
		creator = actor
	}
	account := m.AccountFromUser(ctx, creator, opts)

	body := firstString(post,
		fields.Path("post_content", "html_body"),
		fields.Key("html_body"),
		fields.Key("content"),
		fields.Path("post_content", "name"),
	)
	spoiler := firstString(post,
		fields.Path("post_content", "summary"),
		fields.Key("spoiler_text"),
		fields.Key("summary"),
	)
	content := m.md.HTML(body)

	created := createdAt(post, id)
	if created == nil {
		created = fields.FormatDatetime(at)
	}

	uri := firstString(post,
		fields.Key("canonical_uri"),
		fields.Path("peered", "canonical_uri"),
		fields.Key("uri"),
	)
	pageURL := firstString(post, fields.Key("url"))
	if uri == "" {
		uri = m.cfg.BaseURL + "/pub/objects/" + id
	}
	if pageURL == "" {
		if hostOf(uri) != "" && !m.isLocalHost(hostOf(uri)) {
			pageURL = uri
		} else {
			pageURL = m.cfg.BaseURL + "/post/" + id
		}
	}

	hashtags, mentionTags := splitTags(post)
	flags := m.flags(ctx, post, id, opts)

	rec := schema.Status.New(schema.Record{
		"id":                     id,
		"uri":                    uri,
		"url":                    pageURL,
		"created_at":             created,
		"edited_at":              fields.FormatDatetime(fields.Get(post, "edited_at")),
		"account":                nilIfEmpty(account),
		"content":                content,
		"visibility":             m.visibility(ctx, post, id, opts),
		"sensitive":              fields.Bool(fields.Get(post, "sensitive")) || spoiler != "",
		"spoiler_text":           spoiler,
		"language":               fields.GetFields(post, "language", "lang"),
		"media_attachments":      records(m.MediaFromFiles(fields.List(fields.GetFields(post, "media_attachments", "media", "files")))),
		"mentions":               records(m.mentions(ctx, post, id, mentionTags, opts)),
		"tags":                   records(m.TagsFromHashtags(hashtags)),
		"reblogs_count":          count(post, "boost_count", "reblogs_count", "boosts_count"),
		"favourites_count":       count(post, "like_count", "favourites_count", "likes_count"),
		"replies_count":          count(post, "replies_count", "reply_count", "nested_replies_count"),
		"in_reply_to_id":         fields.First(post, fields.Path("replied", "reply_to_id"), fields.Key("reply_to_id"), fields.Key("in_reply_to_id")),
		"in_reply_to_account_id": fields.First(post, fields.Path("replied", "reply_to", "created", "creator_id"), fields.Key("in_reply_to_account_id")),
		"favourited":             flags.Liked,
		"reblogged":              flags.Boosted,
		"bookmarked":             flags.Bookmarked,
		"pinned":                 fields.Bool(fields.Get(post, "pinned")),
	})

	if q := fields.GetFields(post, "poll", "question"); q != nil {
		rec["poll"] = nilIfEmpty(m.PollFromQuestion(q, opts))
	}
	if m.cfg.PreviewCards {
		rec["card"] = nilIfEmpty(m.card(post, content))
	}
	return fields.ValidateAndReturn(rec, schema.Status)
}

// splitTags separates hashtags from mention tags; mentions carry an identity
func splitTags(post any) (hashtags, mentions []any) {
	for _, t := range fields.List(fields.Get(post, "tags")) {
		if identityOf(t) != nil {
			mentions = append(mentions, t)
			continue
		}
		hashtags = append(hashtags, t)
	}
	return hashtags, mentions
}

// mentions resolves from the batch map when the id has an entry, then inline tags, then a live read
func (m *Mapper) mentions(ctx context.Context, post any, id string, inline []any, opts Options) []schema.Record {
	if rows, ok := opts.Mentions[id]; ok {
		return m.MentionsFromTags(maps(rows))
	}
	if len(inline) > 0 {
		return m.MentionsFromTags(inline)
	}
	if m.lookups == nil {
		return nil
	}
	rows, err := m.lookups.Mentions(ctx, id)
	if err != nil {
		m.log.Warn().Err(err).Str("object_id", id).Msg("mention lookup failed")
		return nil
	}
	return m.MentionsFromTags(maps(rows))
}

func maps(rows []map[string]any) []any {
	out := make([]any, len(rows))
	for i := range rows {
		out[i] = rows[i]
	}
	return out
}

func nilIfEmpty(r schema.Record) any {
	if r == nil {
		return nil
	}
	return r
}
