package http_test

import (
	stdhttp "net/http"
	"testing"

	"mastoshim/internal/platform/graphql"
	"mastoshim/internal/platform/testkit"
	"mastoshim/internal/services/api/accounts/module"
	"mastoshim/internal/services/api/apitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func router(gql *testkit.FakeGraphQL) stdhttp.Handler {
	return apitest.Router("/api/v1", module.New(apitest.Deps(gql)))
}

func TestVerifyCredentials(t *testing.T) {
	t.Parallel()

	gql := testkit.NewFakeGraphQL().OnData("Me", map[string]any{
		"me": map[string]any{"id": "u-viewer", "user": apitest.User("u-viewer", "viewer")},
	})
	h := router(gql)

	rec := apitest.Do(h, "GET", "/api/v1/accounts/verify_credentials", "", false)
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	assert.Empty(t, gql.Calls("Me"), "anonymous callers must not reach the platform")

	rec = apitest.Do(h, "GET", "/api/v1/accounts/verify_credentials", "", true)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	acct := apitest.Object(t, rec)
	assert.Equal(t, "viewer", acct["acct"])
	source, ok := acct["source"].(map[string]any)
	require.True(t, ok, "source missing")
	assert.Equal(t, "about viewer", source["note"])
}

func TestShowAndLookup(t *testing.T) {
	t.Parallel()

	gql := testkit.NewFakeGraphQL().
		OnData("User", map[string]any{"user": apitest.User("u1", "alice")}).
		OnData("UserByName", map[string]any{"user": apitest.User("u1", "alice")})
	h := router(gql)

	rec := apitest.Do(h, "GET", "/api/v1/accounts/u1", "", false)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "u1", apitest.Object(t, rec)["id"])
	assert.Equal(t, "u1", gql.Calls("User")[0].Vars["id"])

	for _, acct := range []string{"alice", "@alice", "alice@local.example"} {
		rec = apitest.Do(h, "GET", "/api/v1/accounts/lookup?acct="+acct, "", false)
		require.Equal(t, stdhttp.StatusOK, rec.Code, acct)
	}
	for _, c := range gql.Calls("UserByName") {
		assert.Equal(t, "alice", c.Vars["username"])
	}

	rec = apitest.Do(h, "GET", "/api/v1/accounts/lookup?acct=bob@remote.example", "", false)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	calls := gql.Calls("UserByName")
	assert.Equal(t, "bob@remote.example", calls[len(calls)-1].Vars["username"])

	rec = apitest.Do(h, "GET", "/api/v1/accounts/lookup", "", false)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestShow_MissingUserIs404(t *testing.T) {
	t.Parallel()

	gql := testkit.NewFakeGraphQL().
		OnData("User", map[string]any{"user": nil}).
		On("UserByName", graphql.Result{Errors: graphql.Errors{{Message: "User not found"}}})
	h := router(gql)

	rec := apitest.Do(h, "GET", "/api/v1/accounts/nope", "", false)
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", apitest.Object(t, rec)["error"])

	rec = apitest.Do(h, "GET", "/api/v1/accounts/lookup?acct=nope", "", false)
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestStatuses_FiltersAndPaging(t *testing.T) {
	t.Parallel()

	alice := apitest.User("u1", "alice")
	withMedia := apitest.Post("p2", alice)
	withMedia["media"] = []any{map[string]any{"id": "m1", "url": "https://local.example/m1.png", "media_type": "image/png"}}
	conn := apitest.Connection("c-start", "c-end",
		apitest.Activity("a1", "create", alice, apitest.Post("p1", alice)),
		apitest.Activity("a2", "create", alice, withMedia),
		apitest.Activity("a3", "boost", alice, apitest.Post("p3", apitest.User("u2", "bob"))),
	)
	gql := testkit.NewFakeGraphQL().OnData("UserPosts", map[string]any{"user_posts": conn})
	h := router(gql)

	rec := apitest.Do(h, "GET", "/api/v1/accounts/u1/statuses?limit=3&max_id=zz", "", false)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"p1", "p2", "a3"}, apitest.IDs(apitest.Array(t, rec)))
	assert.Contains(t, rec.Header().Get("Link"), "max_id=c-end")
	vars := gql.Calls("UserPosts")[0].Vars
	assert.Equal(t, "u1", vars["id"])
	assert.Equal(t, 3, vars["first"])
	assert.NotEmpty(t, vars["after"])

	rec = apitest.Do(h, "GET", "/api/v1/accounts/u1/statuses?exclude_reblogs=true", "", false)
	assert.Equal(t, []string{"p1", "p2"}, apitest.IDs(apitest.Array(t, rec)))

	rec = apitest.Do(h, "GET", "/api/v1/accounts/u1/statuses?only_media=true", "", false)
	assert.Equal(t, []string{"p2"}, apitest.IDs(apitest.Array(t, rec)))
}

func TestFollowersAndFollowing(t *testing.T) {
	t.Parallel()

	gql := testkit.NewFakeGraphQL().
		OnData("Followers", map[string]any{"followers": apitest.Connection("", "", apitest.User("u2", "bob"), map[string]any{"id": "broken"})}).
		OnData("Following", map[string]any{"following": apitest.Connection("", "")})
	h := router(gql)

	rec := apitest.Do(h, "GET", "/api/v1/accounts/u1/followers", "", false)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	list := apitest.Array(t, rec)
	assert.Equal(t, []string{"u2"}, apitest.IDs(list), "users without a username are dropped")
	assert.EqualValues(t, 0, list[0]["followers_count"])

	rec = apitest.Do(h, "GET", "/api/v1/accounts/u1/following", "", false)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Link"))
}

func TestRelationships(t *testing.T) {
	t.Parallel()

	h := router(testkit.NewFakeGraphQL())

	rec := apitest.Do(h, "GET", "/api/v1/accounts/relationships?id[]=u1&id[]=u2", "", false)
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)

	rec = apitest.Do(h, "GET", "/api/v1/accounts/relationships?id[]=u1&id[]=u2", "", true)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	list := apitest.Array(t, rec)
	assert.Equal(t, []string{"u1", "u2"}, apitest.IDs(list))
	assert.Equal(t, false, list[0]["following"])

	rec = apitest.Do(h, "GET", "/api/v1/accounts/relationships", "", true)
	assert.Equal(t, "[]", rec.Body.String())
}
