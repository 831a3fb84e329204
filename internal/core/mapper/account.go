package mapper

import (
	"context"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/markup"
	"mastoshim/internal/core/schema"
)

// AccountFromUser maps a platform user; a user without a resolvable username maps to nil
func (m *Mapper) AccountFromUser(ctx context.Context, user any, opts Options) schema.Record {
	if !isRecord(user) {
		return nil
	}

	username := firstString(user,
		fields.Path("character", "username"),
		fields.Key("username"),
		fields.Key("preferred_username"),
	)
	if username == "" {
		m.log.Debug().Interface("id", fields.Get(user, "id")).Msg("account without username")
		return nil
	}
	id := fields.String(fields.Get(user, "id"))

	uri := firstString(user,
		fields.Path("character", "canonical_uri"),
		fields.Key("canonical_uri"),
		fields.Path("peered", "canonical_uri"),
		fields.Path("character", "peered", "canonical_uri"),
	)
	host := hostOf(uri)
	local := m.isLocalHost(host)

	acct := username
	if !local {
		acct = username + "@" + host
	}
	profileURL := m.cfg.BaseURL + "/@" + username
	if uri != "" {
		profileURL = uri
	} else {
		uri = profileURL
	}

	display := firstString(user,
		fields.Path("profile", "name"),
		fields.Key("display_name"),
		fields.Key("name"),
	)
	if display == "" {
		display = username
	}

	bio := firstString(user,
		fields.Path("profile", "summary"),
		fields.Key("note"),
		fields.Key("summary"),
	)

	avatar := m.absolute(fields.StringOr(firstString(user,
		fields.Path("profile", "icon", "url"),
		fields.Path("profile", "icon", "path"),
		fields.Path("profile", "icon"),
		fields.Key("avatar"),
		fields.Key("icon_url"),
	), m.cfg.DefaultAvatar))
	header := m.absolute(fields.StringOr(firstString(user,
		fields.Path("profile", "image", "url"),
		fields.Path("profile", "image", "path"),
		fields.Path("profile", "image"),
		fields.Key("header"),
		fields.Key("image_url"),
	), m.cfg.DefaultHeader))

	rec := schema.Account.New(schema.Record{
		"id":            id,
		"username":      username,
		"acct":          acct,
		"url":           profileURL,
		"uri":           uri,
		"display_name":  display,
		"note":          m.md.HTML(bio),
		"avatar":        avatar,
		"avatar_static": avatar,
		"header":        header,
		"header_static": header,
		"locked":        fields.Bool(fields.GetFields(user, "locked", "manually_approves_followers")),
		"bot":           fields.Bool(fields.GetFields(user, "bot", "is_bot")),
		"discoverable":  fields.Bool(fields.Get(user, "discoverable")),
		"created_at":    createdAt(user, id),
	})

	if !opts.Lightweight {
		st := m.accountStats(ctx, id, opts)
		rec["statuses_count"] = st.Statuses
		rec["followers_count"] = st.Followers
		rec["following_count"] = st.Following
	}
	if opts.IncludeSource {
		rec["source"] = schema.AccountSource(markup.Text(bio), "public")
	}
	if id == "" {
		rec["id"] = nil
	}
	return fields.ValidateAndReturn(rec, schema.Account)
}

// AccountsFromUsers maps a list, dropping users that do not map
func (m *Mapper) AccountsFromUsers(ctx context.Context, users []any, opts Options) []schema.Record {
	out := make([]schema.Record, 0, len(users))
	for _, u := range users {
		if rec := m.AccountFromUser(ctx, u, opts); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

// accountStats picks one of three strategies: skipped, preloaded or queried
func (m *Mapper) accountStats(ctx context.Context, id string, opts Options) AccountStats {
	switch {
	case opts.SkipExpensiveStats:
		return AccountStats{}
	case opts.Stats != nil:
		return opts.Stats.For(id)
	case m.lookups == nil || id == "":
		return AccountStats{}
	}
	st, err := m.lookups.AccountStats(ctx, id)
	if err != nil {
		m.log.Warn().Err(err).Str("account_id", id).Msg("account stats lookup failed")
		return AccountStats{}
	}
	return st
}

func isRecord(v any) bool {
	switch v.(type) {
	case fields.Getter, fields.Mappable, map[string]any:
		return true
	}
	return false
}
