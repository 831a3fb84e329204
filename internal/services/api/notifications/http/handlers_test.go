package http_test

import (
	stdhttp "net/http"
	"testing"

	"mastoshim/internal/platform/testkit"
	"mastoshim/internal/services/api/apitest"
	"mastoshim/internal/services/api/notifications/module"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func router(gql *testkit.FakeGraphQL) stdhttp.Handler {
	return apitest.Router("/api/v1", module.New(apitest.Deps(gql)))
}

func activities() map[string]any {
	me := apitest.User(apitest.Viewer, "viewer")
	bob := apitest.User("u2", "bob")
	return map[string]any{"notifications": apitest.Connection("n-start", "n-end",
		apitest.Activity("n1", "like", bob, apitest.Post("p1", me)),
		apitest.Activity("n2", "follow", bob, me),
		apitest.Activity("n3", "poke", bob, me),
	)}
}

func TestList(t *testing.T) {
	t.Parallel()

	gql := testkit.NewFakeGraphQL().OnData("Notifications", activities())
	h := router(gql)

	rec := apitest.Do(h, "GET", "/api/v1/notifications", "", false)
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)

	rec = apitest.Do(h, "GET", "/api/v1/notifications?limit=5", "", true)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	list := apitest.Array(t, rec)
	assert.Equal(t, []string{"n1", "n2"}, apitest.IDs(list), "unknown types are dropped")
	assert.Equal(t, "favourite", list[0]["type"])
	status, ok := list[0]["status"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "p1", status["id"])
	assert.Equal(t, "follow", list[1]["type"])
	assert.Nil(t, list[1]["status"])
	assert.Contains(t, rec.Header().Get("Link"), "max_id=n-end")

	vars := gql.Calls("Notifications")[0].Vars
	assert.Equal(t, 5, vars["first"])
	assert.Nil(t, vars["types"])
}

func TestList_TypeFilters(t *testing.T) {
	t.Parallel()

	gql := testkit.NewFakeGraphQL().OnData("Notifications", activities())
	h := router(gql)

	rec := apitest.Do(h, "GET", "/api/v1/notifications?exclude_types[]=follow&types[]=favourite", "", true)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, []string{"n1"}, apitest.IDs(apitest.Array(t, rec)))

	vars := gql.Calls("Notifications")[0].Vars
	assert.Equal(t, []string{"favourite"}, vars["types"])
	assert.Equal(t, []string{"follow"}, vars["exclude"])
}

func TestShow(t *testing.T) {
	t.Parallel()

	bob := apitest.User("u2", "bob")
	gql := testkit.NewFakeGraphQL().
		OnData("Notification", map[string]any{"notification": apitest.Activity("n1", "boost", bob, apitest.Post("p1", bob))})
	h := router(gql)

	rec := apitest.Do(h, "GET", "/api/v1/notifications/n1", "", true)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	n := apitest.Object(t, rec)
	assert.Equal(t, "reblog", n["type"])
	assert.Equal(t, "bob", n["account"].(map[string]any)["acct"])
	assert.Equal(t, "n1", gql.Calls("Notification")[0].Vars["id"])
}

func TestShow_NotFound(t *testing.T) {
	t.Parallel()

	gql := testkit.NewFakeGraphQL().OnData("Notification", map[string]any{"notification": nil})

	rec := apitest.Do(router(gql), "GET", "/api/v1/notifications/nope", "", true)
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestConversations(t *testing.T) {
	t.Parallel()

	me := apitest.User(apitest.Viewer, "viewer")
	bob := apitest.User("u2", "bob")
	gql := testkit.NewFakeGraphQL().OnData("Conversations", map[string]any{"messages": apitest.Connection("", "",
		map[string]any{
			"id": "m1", "thread_id": "t1", "seen": nil,
			"participants": []any{me, bob},
			"last_message": apitest.Post("m1", bob),
		},
		map[string]any{
			"id": "m2", "seen": true,
			"participants": []any{bob},
			"last_message": apitest.Post("m2", me),
		},
	)})

	rec := apitest.Do(router(gql), "GET", "/api/v1/conversations", "", true)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	list := apitest.Array(t, rec)
	assert.Equal(t, []string{"t1", "m2"}, apitest.IDs(list))
	assert.Equal(t, true, list[0]["unread"])
	assert.Equal(t, false, list[1]["unread"])
	accounts := list[0]["accounts"].([]any)
	require.Len(t, accounts, 1, "the caller is not listed as a participant")
	assert.Equal(t, "u2", accounts[0].(map[string]any)["id"])
}
