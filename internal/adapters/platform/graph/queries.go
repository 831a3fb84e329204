package graph

// connection args shared by paginated fields
const pageArgs = `first: $first, last: $last, after: $after, before: $before`

const pageVars = `$first: Int, $last: Int, $after: String, $before: String`

// Accounts
var (
	Me = op("Me", `query Me {
  me { id user { ...UserFields } }
}`)

	User = op("User", `query User($id: ID!) {
  user(filter: { id: $id }) { ...UserFields }
}`)

	UserByName = op("UserByName", `query UserByName($username: String!) {
  user(filter: { username: $username }) { ...UserFields }
}`)

	UserPosts = op("UserPosts", `query UserPosts($id: ID!, `+pageVars+`) {
  user_posts(filter: { creator_id: $id }, `+pageArgs+`) {
    edges { node { ...ActivityFields } }
    `+pageInfo+`
  }
}`)

	Followers = op("Followers", `query Followers($id: ID!, `+pageVars+`) {
  followers(filter: { following_id: $id }, `+pageArgs+`) {
    edges { node { ...UserFields } }
    `+pageInfo+`
  }
}`)

	Following = op("Following", `query Following($id: ID!, `+pageVars+`) {
  following(filter: { follower_id: $id }, `+pageArgs+`) {
    edges { node { ...UserFields } }
    `+pageInfo+`
  }
}`)

	Suggestions = op("Suggestions", `query Suggestions($limit: Int) {
  suggested_users(limit: $limit) { ...UserFields }
}`)
)

// Statuses
var (
	Post = op("Post", `query Post($id: ID!) {
  post(filter: { id: $id }) { ...PostFields question { ...QuestionFields } }
}`)

	Like = op("Like", `mutation Like($id: ID!) {
  like(id: $id) { id }
}`)

	Unlike = op("Unlike", `mutation Unlike($id: ID!) {
  delete_like(id: $id)
}`)

	Boost = op("Boost", `mutation Boost($id: ID!) {
  boost(id: $id) { id created_at }
}`)

	Unboost = op("Unboost", `mutation Unboost($id: ID!) {
  delete_boost(id: $id)
}`)

	Bookmark = op("Bookmark", `mutation Bookmark($id: ID!) {
  bookmark(id: $id) { id }
}`)

	Unbookmark = op("Unbookmark", `mutation Unbookmark($id: ID!) {
  delete_bookmark(id: $id)
}`)

	Question = op("Question", `query Question($id: ID!) {
  question(filter: { id: $id }) { ...QuestionFields }
}`)

	Vote = op("Vote", `mutation Vote($id: ID!, $choices: [ID!]!) {
  vote(question_id: $id, choices: $choices) { ...QuestionFields }
}`)

	Media = op("Media", `query Media($id: ID!) {
  media(filter: { id: $id }) { ...MediaFields }
}`)
)

// Timelines
var (
	Feed = op("Feed", `query Feed($feed: String!, $tag: String, $circle: ID, $local: Boolean, `+pageVars+`) {
  feed_activities(filter: { feed_name: $feed, hashtag: $tag, circle_id: $circle, local: $local }, `+pageArgs+`) {
    edges { node { ...ActivityFields } }
    `+pageInfo+`
  }
}`)

	Bookmarks = op("Bookmarks", `query Bookmarks(`+pageVars+`) {
  my_bookmarks(`+pageArgs+`) {
    edges { node { ...ActivityFields } }
    `+pageInfo+`
  }
}`)

	Likes = op("Likes", `query Likes(`+pageVars+`) {
  my_likes(`+pageArgs+`) {
    edges { node { ...ActivityFields } }
    `+pageInfo+`
  }
}`)

	Hashtag = op("Hashtag", `query Hashtag($name: String!) {
  hashtag(filter: { name: $name }) { id name following history }
}`)

	FollowedHashtags = op("FollowedHashtags", `query FollowedHashtags(`+pageVars+`) {
  followed_hashtags(`+pageArgs+`) {
    edges { node { id name following } }
    `+pageInfo+`
  }
}`)

	Circles = op("Circles", `query Circles {
  my_circles { ...CircleFields }
}`)

	Circle = op("Circle", `query Circle($id: ID!) {
  circle(filter: { id: $id }) { ...CircleFields }
}`)
)

// Notifications
var (
	Notifications = op("Notifications", `query Notifications($types: [String], $exclude: [String], `+pageVars+`) {
  notifications(filter: { types: $types, exclude_types: $exclude }, `+pageArgs+`) {
    edges { node { ...ActivityFields } }
    `+pageInfo+`
  }
}`)

	Notification = op("Notification", `query Notification($id: ID!) {
  notification(filter: { id: $id }) { ...ActivityFields }
}`)

	Conversations = op("Conversations", `query Conversations(`+pageVars+`) {
  messages(`+pageArgs+`) {
    edges { node { id thread_id seen participants { ...UserFields } last_message { ...PostFields } } }
    `+pageInfo+`
  }
}`)
)

// Reports
var Flag = op("Flag", `mutation Flag($id: ID!, $comment: String, $category: String, $forward: Boolean, $status_ids: [ID]) {
  flag(id: $id, comment: $comment, category: $category, forward: $forward, object_ids: $status_ids) {
    id
    created_at
    comment
    category
    forwarded
    object { __typename ... on User { ...UserFields } ... on Post { ...PostFields } }
  }
}`)

// All lists every operation, for documentation and checks
var All = []Op{
	Me, User, UserByName, UserPosts, Followers, Following, Suggestions,
	Post, Like, Unlike, Boost, Unboost, Bookmark, Unbookmark, Question, Vote, Media,
	Feed, Bookmarks, Likes, Hashtag, FollowedHashtags, Circles, Circle,
	Notifications, Notification, Conversations,
	Flag,
}
