package mapper

import (
	"context"
	"slices"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

// visibility classifies an object from its ACL membership
//
// The platform's boundaries are richer than Mastodon's four levels; this is an approximation.
// Precedence: remote public, public, local, then direct. Objects with no preset ACL are
// private when a followers grant exists and direct otherwise
func (m *Mapper) visibility(ctx context.Context, post any, id string, opts Options) string {
	if opts.ForConversation {
		return "direct"
	}
	if v := fields.String(fields.Get(post, "visibility")); slices.Contains(schema.Visibilities, v) {
		return v
	}

	acls := aclIDs(post)
	presets := m.cfg.ACL
	var remote, public, local bool
	for _, a := range acls {
		remote = remote || slices.Contains(presets.RemotePublic, a)
		public = public || slices.Contains(presets.Public, a)
		local = local || slices.Contains(presets.Local, a)
	}

	switch {
	case remote, public:
		return "public"
	case local:
		return "unlisted"
	}

	if m.followersGrant(ctx, post, id) {
		return "private"
	}
	return "direct"
}

// aclIDs collects ACL ids from flat lists or {acl_id} rows
func aclIDs(post any) []string {
	var out []string
	for _, v := range fields.List(fields.GetFields(post, "acl_ids", "acls", "controlled")) {
		if s := fields.String(v); s != "" {
			out = append(out, s)
			continue
		}
		if s := firstString(v, fields.Key("acl_id"), fields.Key("id")); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (m *Mapper) followersGrant(ctx context.Context, post any, id string) bool {
	if fields.Has(post, "followers_grant") {
		return fields.Bool(fields.Get(post, "followers_grant"))
	}
	if m.lookups == nil || id == "" {
		return false
	}
	ok, err := m.lookups.FollowersGrant(ctx, id)
	if err != nil {
		m.log.Warn().Err(err).Str("object_id", id).Msg("followers grant lookup failed")
		return false
	}
	return ok
}
