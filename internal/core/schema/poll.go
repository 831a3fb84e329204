package schema

// Poll is the Mastodon Poll entity
var Poll = Schema{
	name:     "poll",
	required: []string{"id", "options"},
	defaults: func() Record {
		return Record{
			"id":           nil,
			"expires_at":   nil,
			"expired":      false,
			"multiple":     false,
			"votes_count":  0,
			"voters_count": nil,
			"options":      nil,
			"emojis":       list(),
			"voted":        false,
			"own_votes":    list(),
		}
	},
}

// PollOption is one choice inside a Poll
func PollOption(title string, votes any) Record {
	return Record{"title": title, "votes_count": votes}
}
