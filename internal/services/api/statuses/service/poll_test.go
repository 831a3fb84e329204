package service_test

import (
	"context"
	"testing"

	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/testkit"
	"mastoshim/internal/services/api/apitest"
	"mastoshim/internal/services/api/statuses/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(extra map[string]any) map[string]any {
	q := map[string]any{
		"id":        "q1",
		"closes_at": "2099-01-01T00:00:00Z",
		"choices": []any{
			map[string]any{"id": "c2", "name": "second", "votes_count": 1},
			map[string]any{"id": "c1", "name": "first", "votes_count": 2},
		},
		"own_votes": []any{},
	}
	for k, v := range extra {
		q[k] = v
	}
	return q
}

func newPolls(gql *testkit.FakeGraphQL) *service.Polls {
	return service.NewPolls(gql, apitest.Deps(gql).Mapper)
}

func TestPolls_Get(t *testing.T) {
	t.Parallel()

	gql := testkit.NewFakeGraphQL().OnData("Question", map[string]any{"question": question(nil)})
	rec, err := newPolls(gql).Get(context.Background(), "", "q1")
	require.NoError(t, err)
	assert.Equal(t, "q1", rec["id"])
	assert.Equal(t, false, rec["expired"])
	assert.EqualValues(t, 3, rec["votes_count"])

	gql = testkit.NewFakeGraphQL().OnData("Question", map[string]any{"question": nil})
	_, err = newPolls(gql).Get(context.Background(), "", "q1")
	assert.Equal(t, perr.ErrorCodeNotFound, perr.CodeOf(err))
}

func TestPolls_VoteTranslatesIndices(t *testing.T) {
	t.Parallel()

	voted := question(map[string]any{"own_votes": []any{"c1"}})
	gql := testkit.NewFakeGraphQL().
		OnData("Question", map[string]any{"question": question(nil)}).
		OnData("Vote", map[string]any{"vote": voted})

	rec, err := newPolls(gql).Vote(context.Background(), apitest.Viewer, "q1", []int{0})
	require.NoError(t, err)
	assert.Equal(t, true, rec["voted"])
	assert.Equal(t, []any{0}, rec["own_votes"])

	calls := gql.Calls("Vote")
	require.Len(t, calls, 1)
	// options are ordered by choice id, so index 0 is c1
	assert.Equal(t, []string{"c1"}, calls[0].Vars["choices"])
}

func TestPolls_VoteRejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		q       map[string]any
		actor   string
		choices []int
		code    perr.ErrorCode
	}{
		{"anonymous", question(nil), "", []int{0}, perr.ErrorCodeUnauthorized},
		{"expired", question(map[string]any{"closes_at": "2020-01-01T00:00:00Z"}), apitest.Viewer, []int{0}, perr.ErrorCodeInvalidArgument},
		{"already voted", question(map[string]any{"own_votes": []any{"c2"}}), apitest.Viewer, []int{0}, perr.ErrorCodeInvalidArgument},
		{"no choices", question(nil), apitest.Viewer, nil, perr.ErrorCodeInvalidArgument},
		{"out of range", question(nil), apitest.Viewer, []int{2}, perr.ErrorCodeInvalidArgument},
		{"single choice poll", question(nil), apitest.Viewer, []int{0, 1}, perr.ErrorCodeInvalidArgument},
	}
	for _, tc := range cases {
		gql := testkit.NewFakeGraphQL().OnData("Question", map[string]any{"question": tc.q})
		_, err := newPolls(gql).Vote(context.Background(), tc.actor, "q1", tc.choices)
		assert.Equal(t, tc.code, perr.CodeOf(err), tc.name)
		assert.Empty(t, gql.Calls("Vote"), tc.name)
	}
}

func TestPolls_MultipleChoice(t *testing.T) {
	t.Parallel()

	q := question(map[string]any{"multiple": true})
	gql := testkit.NewFakeGraphQL().
		OnData("Question", map[string]any{"question": q}).
		OnData("Vote", map[string]any{"vote": q})

	rec, err := newPolls(gql).Vote(context.Background(), apitest.Viewer, "q1", []int{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []any{0, 1}, rec["own_votes"])
	assert.Equal(t, []string{"c1", "c2"}, gql.Calls("Vote")[0].Vars["choices"])
}
