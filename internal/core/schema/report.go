package schema

// Report is the Mastodon Report entity
var Report = Schema{
	name: "report",
	required: []string{
		"id", "action_taken", "category", "comment", "forwarded", "created_at", "target_account",
	},
	defaults: func() Record {
		return Record{
			"id":              nil,
			"action_taken":    false,
			"action_taken_at": nil,
			"category":        "other",
			"comment":         "",
			"forwarded":       false,
			"created_at":      nil,
			"status_ids":      nil,
			"rule_ids":        nil,
			"target_account":  nil,
		}
	},
}
