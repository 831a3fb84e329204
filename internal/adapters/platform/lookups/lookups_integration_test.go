//go:build integration
// +build integration

package lookups

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mastoshim/internal/core/mapper"
	"mastoshim/internal/platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const ddl = `
CREATE TABLE bonfire_data_social_created (id text PRIMARY KEY, creator_id text NOT NULL);
CREATE TABLE bonfire_data_social_post (id text PRIMARY KEY);
CREATE TABLE bonfire_data_social_follow (id text PRIMARY KEY, follower_id text NOT NULL, followed_id text NOT NULL);
CREATE TABLE bonfire_data_social_request (id text PRIMARY KEY, requester_id text NOT NULL, requested_id text NOT NULL);
CREATE TABLE bonfire_data_social_like (id text PRIMARY KEY, liker_id text NOT NULL, liked_id text NOT NULL);
CREATE TABLE bonfire_data_social_boost (id text PRIMARY KEY, booster_id text NOT NULL, boosted_id text NOT NULL);
CREATE TABLE bonfire_data_social_bookmark (id text PRIMARY KEY, bookmarker_id text NOT NULL, bookmarked_id text NOT NULL);
CREATE TABLE bonfire_data_identity_character (id text PRIMARY KEY, username text NOT NULL);
CREATE TABLE bonfire_data_identity_named (id text PRIMARY KEY, name text);
CREATE TABLE bonfire_data_activity_pub_peered (id text PRIMARY KEY, canonical_uri text);
CREATE TABLE bonfire_tag_tagged (id text NOT NULL, tag_id text NOT NULL, PRIMARY KEY (id, tag_id));
CREATE TABLE bonfire_data_access_control_controlled (id text NOT NULL, acl_id text NOT NULL);
CREATE TABLE bonfire_data_access_control_grant (id text PRIMARY KEY, acl_id text NOT NULL, subject_id text NOT NULL, value boolean);
`

const seed = `
INSERT INTO bonfire_data_identity_character VALUES ('u1','alice'), ('u2','bob'), ('u3','carol');
INSERT INTO bonfire_data_activity_pub_peered VALUES ('u2','https://remote.example/users/bob');
INSERT INTO bonfire_data_social_post VALUES ('p1'), ('p2'), ('p3');
INSERT INTO bonfire_data_social_created VALUES ('p1','u1'), ('p2','u1'), ('p3','u2');
INSERT INTO bonfire_data_social_follow VALUES ('f1','u2','u1'), ('f2','u3','u1'), ('f3','u1','u2');
INSERT INTO bonfire_data_social_request VALUES ('r1','u3','u2');
INSERT INTO bonfire_data_social_like VALUES ('l1','u2','p1');
INSERT INTO bonfire_data_social_bookmark VALUES ('b1','u2','p1');
INSERT INTO bonfire_tag_tagged VALUES ('p1','u2'), ('p1','u3');
INSERT INTO bonfire_data_identity_named VALUES ('circ-followers','followers');
INSERT INTO bonfire_data_access_control_controlled VALUES ('p2','acl-f'), ('p3','acl-x');
INSERT INTO bonfire_data_access_control_grant VALUES ('g1','acl-f','circ-followers',true), ('g2','acl-x','circ-custom',true);
`

func startPostgres(t *testing.T) *store.Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	s, err := store.Open(ctx, store.Config{PG: store.PGConfig{
		Enabled:  true,
		URL:      fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, port.Port()),
		MaxConns: 4,
	}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	_, err = s.PG.Exec(ctx, ddl)
	require.NoError(t, err)
	_, err = s.PG.Exec(ctx, seed)
	require.NoError(t, err)
	return s
}

func TestLookups_Integration(t *testing.T) {
	s := startPostgres(t)
	l := New(s.PG, Options{})
	ctx := context.Background()

	st, err := l.AccountStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, mapper.AccountStats{Statuses: 2, Followers: 2, Following: 1}, st)

	followers, following, err := l.FollowCounts(ctx, []string{"u1", "u2", "u3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"u1": 2, "u2": 1}, followers)
	assert.Equal(t, map[string]int{"u1": 1, "u2": 1, "u3": 1}, following)

	posts, err := l.PostCounts(ctx, []string{"u1", "u2", "u3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"u1": 2, "u2": 1}, posts)

	mentions, err := l.MentionsFor(ctx, []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Len(t, mentions["p1"], 2)
	assert.NotContains(t, mentions, "p2")

	inter, err := l.InteractionsFor(ctx, "u2", []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, mapper.Interactions{Liked: true, Bookmarked: true}, inter["p1"])
	assert.Equal(t, mapper.Interactions{}, inter["p2"])

	grant, err := l.FollowersGrant(ctx, "p2")
	require.NoError(t, err)
	assert.True(t, grant)
	grant, err = l.FollowersGrant(ctx, "p3")
	require.NoError(t, err)
	assert.False(t, grant)

	grant, err = New(s.PG, Options{FollowersCircles: []string{"circ-custom"}}).FollowersGrant(ctx, "p3")
	require.NoError(t, err)
	assert.True(t, grant)

	rel, err := l.Relationship(ctx, "u2", "u1")
	require.NoError(t, err)
	assert.Equal(t, true, rel["following"])
	assert.Equal(t, true, rel["followed_by"])
	rel, err = l.Relationship(ctx, "u2", "u3")
	require.NoError(t, err)
	assert.Equal(t, true, rel["requested_by"])
}
