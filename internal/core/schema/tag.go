package schema

// Tag is the Mastodon Tag entity
var Tag = Schema{
	name:     "tag",
	required: []string{"name", "url"},
	defaults: func() Record {
		return Record{
			"name":      nil,
			"url":       nil,
			"history":   list(),
			"following": false,
		}
	},
}
