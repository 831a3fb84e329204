package schema

// Mention is the Mastodon Status::Mention entity
var Mention = Schema{
	name:     "mention",
	required: []string{"id", "username", "acct", "url"},
	defaults: func() Record {
		return Record{"id": nil, "username": nil, "acct": nil, "url": nil}
	},
}
