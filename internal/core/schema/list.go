package schema

// List is the Mastodon List entity
var List = Schema{
	name:     "list",
	required: []string{"id", "title"},
	defaults: func() Record {
		return Record{
			"id":             nil,
			"title":          nil,
			"replies_policy": "list",
			"exclusive":      false,
		}
	},
}
