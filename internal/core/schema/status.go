package schema

// Visibility values Mastodon accepts on a status
var Visibilities = []string{"public", "unlisted", "private", "direct"}

// Status is the Mastodon Status entity
var Status = Schema{
	name: "status",
	required: []string{
		"id", "uri", "created_at", "account", "content", "visibility", "sensitive",
		"spoiler_text", "media_attachments", "mentions", "tags", "emojis",
		"reblogs_count", "favourites_count", "replies_count",
	},
	enums: []Enum{{Field: "visibility", Values: Visibilities, Kind: ErrInvalidType}},
	defaults: func() Record {
		return Record{
			"id":                     nil,
			"uri":                    nil,
			"url":                    nil,
			"created_at":             nil,
			"edited_at":              nil,
			"account":                nil,
			"content":                nil,
			"text":                   nil,
			"visibility":             "public",
			"sensitive":              false,
			"spoiler_text":           "",
			"language":               nil,
			"media_attachments":      list(),
			"mentions":               list(),
			"tags":                   list(),
			"emojis":                 list(),
			"reblogs_count":          0,
			"favourites_count":       0,
			"replies_count":          0,
			"in_reply_to_id":         nil,
			"in_reply_to_account_id": nil,
			"reblog":                 nil,
			"poll":                   nil,
			"card":                   nil,
			"application":            nil,
			"favourited":             false,
			"reblogged":              false,
			"muted":                  false,
			"bookmarked":             false,
			"pinned":                 false,
		}
	},
}
