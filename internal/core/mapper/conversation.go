package mapper

import (
	"context"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

// ConversationFromMessage maps a direct message thread
// a message without a thread reference is its own thread
func (m *Mapper) ConversationFromMessage(ctx context.Context, msg any, opts Options) schema.Record {
	id := fields.String(fields.First(msg,
		fields.Path("replied", "thread_id"),
		fields.Key("thread_id"),
		fields.Key("id"),
	))
	if id == "" {
		return nil
	}

	aopts := opts
	aopts.Lightweight = true
	var accounts []any
	for _, p := range fields.List(fields.GetFields(msg, "participants", "accounts")) {
		if fields.String(fields.Get(p, "id")) == opts.CurrentUserID && opts.CurrentUserID != "" {
			continue
		}
		if rec := m.AccountFromUser(ctx, p, aopts); rec != nil {
			accounts = append(accounts, rec)
		}
	}
	if accounts == nil {
		accounts = []any{}
	}

	sopts := opts
	sopts.ForConversation = true
	last := m.StatusFromActivity(ctx, fields.GetFields(msg, "last_message", "message", "object"), sopts)
	if last == nil && isPost(msg) {
		last = m.StatusFromActivity(ctx, msg, sopts)
	}

	rec := schema.Conversation.New(schema.Record{
		"id":          id,
		"accounts":    accounts,
		"unread":      unread(fields.Get(msg, "seen")),
		"last_status": nilIfEmpty(last),
	})
	return fields.ValidateAndReturn(rec, schema.Conversation)
}

// ConversationsFromMessages maps a list
func (m *Mapper) ConversationsFromMessages(ctx context.Context, msgs []any, opts Options) []schema.Record {
	out := make([]schema.Record, 0, len(msgs))
	for _, msg := range msgs {
		if rec := m.ConversationFromMessage(ctx, msg, opts); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

// unread treats nil, false, an empty map and an empty list as unread; anything else is read
func unread(seen any) bool {
	switch v := seen.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return false
	}
	if m := fields.Map(seen); m != nil {
		return len(m) == 0
	}
	if l := fields.List(seen); l != nil {
		return len(l) == 0
	}
	return fields.IsEmpty(seen)
}
