package schema

// Conversation is the Mastodon Conversation entity
var Conversation = Schema{
	name:     "conversation",
	required: []string{"id", "accounts", "unread"},
	defaults: func() Record {
		return Record{
			"id":          nil,
			"accounts":    list(),
			"unread":      false,
			"last_status": nil,
		}
	},
}
