package service

import (
	"context"
	"sort"

	"mastoshim/internal/adapters/platform/graph"
	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/mapper"
	"mastoshim/internal/core/schema"
	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/graphql"
)

// Polls reads questions and casts votes
type Polls struct {
	gql    graphql.Executor
	mapper *mapper.Mapper
}

// NewPolls builds the poll service
func NewPolls(gql graphql.Executor, m *mapper.Mapper) *Polls {
	return &Polls{gql: gql, mapper: m}
}

// Get maps the question id for actorID, who may be anonymous
func (p *Polls) Get(ctx context.Context, actorID, id string) (schema.Record, error) {
	q, err := p.question(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := p.mapper.PollFromQuestion(q, mapper.Options{CurrentUserID: actorID})
	if rec == nil {
		return nil, perr.NotFoundf("poll %s", id)
	}
	return rec, nil
}

// Vote casts actorID's choices, given as option indices, and returns the updated poll
func (p *Polls) Vote(ctx context.Context, actorID, id string, choices []int) (schema.Record, error) {
	if actorID == "" {
		return nil, perr.Unauthorizedf("voting requires a user")
	}
	q, err := p.question(ctx, id)
	if err != nil {
		return nil, err
	}
	poll := p.mapper.PollFromQuestion(q, mapper.Options{CurrentUserID: actorID})
	if poll == nil {
		return nil, perr.NotFoundf("poll %s", id)
	}
	if fields.Bool(poll["expired"]) {
		return nil, perr.InvalidArgf("poll expired")
	}
	if fields.Bool(poll["voted"]) {
		return nil, perr.InvalidArgf("already voted")
	}

	ids, err := choiceIDs(q, choices, fields.Bool(poll["multiple"]))
	if err != nil {
		return nil, err
	}
	res := graph.Vote.Do(ctx, p.gql, map[string]any{"id": id, "choices": ids})
	if res.Err != nil {
		return nil, res.Err
	}
	if len(res.Errors) > 0 {
		return nil, res.Errors
	}

	updated := fields.Get(res.Data, "vote")
	if updated == nil {
		updated = q
	}
	rec := p.mapper.PollFromQuestion(updated, mapper.Options{CurrentUserID: actorID})
	if rec == nil {
		return nil, perr.NotFoundf("poll %s", id)
	}
	own := make([]any, 0, len(choices))
	for _, c := range dedupe(choices) {
		own = append(own, c)
	}
	rec["voted"] = true
	rec["own_votes"] = own
	return rec, nil
}

func (p *Polls) question(ctx context.Context, id string) (any, error) {
	res := graph.Question.Do(ctx, p.gql, map[string]any{"id": id})
	if res.Err != nil {
		return nil, res.Err
	}
	q := fields.Get(res.Data, "question")
	if q == nil {
		if len(res.Errors) > 0 {
			return nil, res.Errors
		}
		return nil, perr.NotFoundf("poll %s", id)
	}
	return q, nil
}

// choiceIDs translates option indices to choice ids in the order the poll lists them
func choiceIDs(q any, choices []int, multiple bool) ([]string, error) {
	if len(choices) == 0 {
		return nil, perr.InvalidArgf("choices are required")
	}
	choices = dedupe(choices)
	if !multiple && len(choices) > 1 {
		return nil, perr.InvalidArgf("poll allows a single choice")
	}
	ids := make([]string, 0)
	for _, c := range fields.List(fields.GetFields(q, "choices", "options")) {
		ids = append(ids, fields.String(fields.Get(c, "id")))
	}
	sort.Strings(ids)
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		if c < 0 || c >= len(ids) {
			return nil, perr.InvalidArgf("choice %d is out of range", c)
		}
		out = append(out, ids[c])
	}
	return out, nil
}

func dedupe(in []int) []int {
	seen := make(map[int]bool, len(in))
	out := make([]int, 0, len(in))
	for _, c := range in {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Ints(out)
	return out
}
