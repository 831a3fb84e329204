package mapper

import (
	"context"
	"slices"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

var verbTypes = map[string]string{
	"like":     "favourite",
	"boost":    "reblog",
	"announce": "reblog",
	"follow":   "follow",
	"request":  "follow_request",
	"reply":    "mention",
	"mention":  "mention",
	"create":   "mention",
	"message":  "mention",
	"edit":     "update",
	"update":   "update",
	"vote":     "poll",
	"flag":     "admin.report",
	"signup":   "admin.sign_up",
}

// NotificationType maps an activity verb to a Mastodon notification type; unknown verbs pass through
func NotificationType(act any) string {
	if t := fields.String(fields.Get(act, "type")); slices.Contains(schema.NotificationTypes, t) {
		return t
	}
	v := verb(act)
	if t, ok := verbTypes[v]; ok {
		return t
	}
	return v
}

// NotificationFromActivity maps an activity addressed to the caller
func (m *Mapper) NotificationFromActivity(ctx context.Context, act any, opts Options) schema.Record {
	id := fields.String(fields.Get(act, "id"))
	if id == "" {
		return nil
	}
	aopts := opts
	aopts.Lightweight = true
	account := m.AccountFromUser(ctx, fields.GetFields(act, "subject", "account", "actor"), aopts)

	typ := NotificationType(act)
	rec := schema.Notification.New(schema.Record{
		"id":         id,
		"type":       typ,
		"created_at": createdAt(act, id),
		"account":    nilIfEmpty(account),
	})

	if obj := fields.Get(act, "object"); obj != nil && typ != "follow" && typ != "follow_request" {
		var status schema.Record
		if isPost(obj) || isBoost(obj) {
			status = m.StatusFromActivity(ctx, obj, opts)
		}
		rec["status"] = nilIfEmpty(status)
	}
	return fields.ValidateAndReturn(rec, schema.Notification)
}

// NotificationsFromActivities maps a list; unknown types are dropped by validation
func (m *Mapper) NotificationsFromActivities(ctx context.Context, acts []any, opts Options) []schema.Record {
	out := make([]schema.Record, 0, len(acts))
	for _, a := range acts {
		if rec := m.NotificationFromActivity(ctx, a, opts); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
