package mapper

import (
	"slices"
	"sort"
	"time"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

// PollFromQuestion maps a question with choices; choices are ordered by id so option indices are stable
func (m *Mapper) PollFromQuestion(q any, opts Options) schema.Record {
	id := fields.String(fields.Get(q, "id"))
	if id == "" {
		return nil
	}
	// fields.List hands back the caller's slice
	choices := slices.Clone(fields.List(fields.GetFields(q, "choices", "options")))
	sort.SliceStable(choices, func(i, j int) bool {
		return fields.String(fields.Get(choices[i], "id")) < fields.String(fields.Get(choices[j], "id"))
	})

	options := make([]any, 0, len(choices))
	index := make(map[string]int, len(choices))
	total := 0
	for i, c := range choices {
		votes := count(c, "votes_count", "vote_count", "votes")
		total += votes
		title := firstString(c, fields.Key("title"), fields.Key("name"), fields.Path("post_content", "name"), fields.Key("html_body"))
		options = append(options, schema.PollOption(title, votes))
		if cid := fields.String(fields.Get(c, "id")); cid != "" {
			index[cid] = i
		}
	}

	rec := schema.Poll.New(schema.Record{
		"id":          id,
		"options":     options,
		"votes_count": total,
		"multiple":    fields.String(fields.Get(q, "voting_format")) == "multiple" || fields.Bool(fields.Get(q, "multiple")),
	})
	if n, ok := fields.Int(fields.Get(q, "voters_count")); ok {
		rec["voters_count"] = n
	}

	if closeAt, ok := closesAt(q); ok {
		rec["expires_at"] = closeAt.UTC().Format(fields.ISOLayout)
		rec["expired"] = closeAt.Before(m.cfg.Now())
	}

	if opts.CurrentUserID != "" {
		own := ownVotes(q, index)
		rec["own_votes"] = own
		rec["voted"] = len(own) > 0
	}
	return fields.ValidateAndReturn(rec, schema.Poll)
}

// closesAt reads the close half of [open_at, close_at], or an explicit expires_at
func closesAt(q any) (time.Time, bool) {
	var raw any
	if dates := fields.List(fields.Get(q, "voting_dates")); len(dates) == 2 {
		raw = dates[1]
	}
	if raw == nil {
		raw = fields.GetFields(q, "expires_at", "closes_at")
	}
	switch v := fields.FormatDatetime(raw).(type) {
	case string:
		if t, err := time.Parse(fields.ISOLayout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ownVotes maps the caller's voted choice ids to positions in the sorted choice list
func ownVotes(q any, index map[string]int) []any {
	own := []any{}
	seen := map[int]bool{}
	for _, v := range fields.List(fields.GetFields(q, "my_votes", "own_votes", "votes_by_me")) {
		cid := fields.String(v)
		if cid == "" {
			cid = firstString(v, fields.Key("choice_id"), fields.Path("choice", "id"), fields.Key("id"))
		}
		if i, ok := index[cid]; ok && !seen[i] {
			seen[i] = true
			own = append(own, i)
		}
	}
	sort.Slice(own, func(a, b int) bool { return own[a].(int) < own[b].(int) })
	return own
}
