package graph

const userFields = `fragment UserFields on User {
  id
  created_at
  character { username canonical_uri }
  profile { name summary icon image }
  peered { canonical_uri }
}`

const mediaFields = `fragment MediaFields on Media {
  id
  url
  path
  media_type
  metadata
  label
  description
}`

const postFields = `fragment PostFields on Post {
  __typename
  id
  created_at
  edited_at
  post_content { name summary html_body }
  created { creator { ...UserFields } }
  peered { canonical_uri }
  replied { reply_to_id thread_id reply_to { created { creator_id } } }
  acls
  sensitive
  language
  media { ...MediaFields }
  tags { __typename id name ... on User { ...UserFields } }
  like_count
  boost_count
  replies_count
  liked_by_me
  boosted_by_me
  bookmarked_by_me
}`

const activityFields = `fragment ActivityFields on Activity {
  id
  created_at
  verb { verb }
  subject { ...UserFields }
  object {
    __typename
    ... on Post { ...PostFields }
    ... on User { ...UserFields }
    ... on Activity { id created_at verb { verb } subject { ...UserFields } object { ... on Post { ...PostFields } } }
  }
}`

const questionFields = `fragment QuestionFields on Question {
  id
  created_at
  closes_at
  multiple
  voters_count
  voted_by_me
  own_votes
  choices { id name votes_count }
}`

const circleFields = `fragment CircleFields on Circle {
  id
  named { name }
  exclusive
  replies_policy
}`

var fragments = map[string]string{
	"UserFields":     userFields,
	"MediaFields":    mediaFields,
	"PostFields":     postFields,
	"ActivityFields": activityFields,
	"QuestionFields": questionFields,
	"CircleFields":   circleFields,
}

const pageInfo = `page_info { start_cursor end_cursor has_next_page has_previous_page }`
