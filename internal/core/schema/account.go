package schema

// Account is the Mastodon Account entity
var Account = Schema{
	name:     "account",
	required: []string{"id", "username", "acct", "url"},
	defaults: func() Record {
		return Record{
			"id":              nil,
			"username":        nil,
			"acct":            nil,
			"url":             nil,
			"uri":             nil,
			"display_name":    "",
			"note":            "",
			"avatar":          "",
			"avatar_static":   "",
			"header":          "",
			"header_static":   "",
			"locked":          false,
			"bot":             false,
			"group":           false,
			"discoverable":    false,
			"indexable":       false,
			"created_at":      nil,
			"last_status_at":  nil,
			"statuses_count":  0,
			"followers_count": 0,
			"following_count": 0,
			"fields":          list(),
			"emojis":          list(),
		}
	},
}

// AccountSource is the source sub-object returned by verify_credentials
func AccountSource(note string, privacy string) Record {
	return Record{
		"note":                  note,
		"fields":                list(),
		"privacy":               privacy,
		"sensitive":             false,
		"language":              nil,
		"follow_requests_count": 0,
	}
}
