package schema

// Relationship is the Mastodon Relationship entity
var Relationship = Schema{
	name:     "relationship",
	required: []string{"id"},
	defaults: func() Record {
		return Record{
			"id":                   nil,
			"following":            false,
			"showing_reblogs":      true,
			"notifying":            false,
			"languages":            nil,
			"followed_by":          false,
			"blocking":             false,
			"blocked_by":           false,
			"muting":               false,
			"muting_notifications": false,
			"requested":            false,
			"requested_by":         false,
			"domain_blocking":      false,
			"endorsed":             false,
			"note":                 "",
		}
	},
}
