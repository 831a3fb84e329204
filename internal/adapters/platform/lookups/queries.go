package lookups

// SQL against the platform's social tables; ids are text columns

const (
	qPostCount = `
SELECT count(*)
FROM bonfire_data_social_created cr
JOIN bonfire_data_social_post p ON p.id = cr.id
WHERE cr.creator_id = $1`

	qFollowerCount = `
SELECT count(*) FROM bonfire_data_social_follow WHERE followed_id = $1`

	qFollowingCount = `
SELECT count(*) FROM bonfire_data_social_follow WHERE follower_id = $1`

	qFollowCounts = `
SELECT 'followers' AS kind, followed_id AS user_id, count(*) AS n
FROM bonfire_data_social_follow
WHERE followed_id = ANY($1)
GROUP BY followed_id
UNION ALL
SELECT 'following', follower_id, count(*)
FROM bonfire_data_social_follow
WHERE follower_id = ANY($1)
GROUP BY follower_id`

	qPostCounts = `
SELECT cr.creator_id, count(*)
FROM bonfire_data_social_created cr
JOIN bonfire_data_social_post p ON p.id = cr.id
WHERE cr.creator_id = ANY($1)
GROUP BY cr.creator_id`

	qMentions = `
SELECT t.id AS object_id, c.id, c.username, pe.canonical_uri
FROM bonfire_tag_tagged t
JOIN bonfire_data_identity_character c ON c.id = t.tag_id
LEFT JOIN bonfire_data_activity_pub_peered pe ON pe.id = c.id
WHERE t.id = ANY($1)
ORDER BY t.id, c.username`

	qInteractions = `
SELECT o.id,
  EXISTS (SELECT 1 FROM bonfire_data_social_like l WHERE l.liker_id = $1 AND l.liked_id = o.id),
  EXISTS (SELECT 1 FROM bonfire_data_social_boost b WHERE b.booster_id = $1 AND b.boosted_id = o.id),
  EXISTS (SELECT 1 FROM bonfire_data_social_bookmark k WHERE k.bookmarker_id = $1 AND k.bookmarked_id = o.id)
FROM unnest($2::text[]) AS o(id)`

	qFollowersGrant = `
SELECT EXISTS (
  SELECT 1
  FROM bonfire_data_access_control_controlled ctl
  JOIN bonfire_data_access_control_grant g ON g.acl_id = ctl.acl_id
  LEFT JOIN bonfire_data_identity_named n ON n.id = g.subject_id
  WHERE ctl.id = $1
    AND g.value IS TRUE
    AND (g.subject_id = ANY($2) OR lower(n.name) = 'followers')
)`

	qRelationship = `
SELECT
  EXISTS (SELECT 1 FROM bonfire_data_social_follow WHERE follower_id = $1 AND followed_id = $2),
  EXISTS (SELECT 1 FROM bonfire_data_social_follow WHERE follower_id = $2 AND followed_id = $1),
  EXISTS (SELECT 1 FROM bonfire_data_social_request WHERE requester_id = $1 AND requested_id = $2),
  EXISTS (SELECT 1 FROM bonfire_data_social_request WHERE requester_id = $2 AND requested_id = $1)`
)
