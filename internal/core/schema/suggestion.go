package schema

// SuggestionSources are the v2 suggestion sources
var SuggestionSources = []string{"staff", "past_interactions", "global"}

// Suggestion is the Mastodon v2 Suggestion entity
var Suggestion = Schema{
	name:     "suggestion",
	required: []string{"source", "account"},
	enums:    []Enum{{Field: "source", Values: SuggestionSources, Kind: ErrInvalidSource}},
	defaults: func() Record {
		return Record{"source": nil, "sources": list(), "account": nil}
	},
}
