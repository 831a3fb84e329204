package apitest

// User is a local platform user
func User(id, username string) map[string]any {
	return map[string]any{
		"id":         id,
		"created_at": "2024-01-01T00:00:00Z",
		"character":  map[string]any{"username": username},
		"profile":    map[string]any{"name": "Name " + username, "summary": "about " + username},
	}
}

// Post is a public post by creator with no interactions from the caller
func Post(id string, creator map[string]any) map[string]any {
	return map[string]any{
		"__typename":       "Post",
		"id":               id,
		"created_at":       "2024-05-01T10:00:00Z",
		"post_content":     map[string]any{"html_body": "body of " + id},
		"created":          map[string]any{"creator": creator},
		"acls":             []any{"acl-public"},
		"tags":             []any{},
		"liked_by_me":      false,
		"boosted_by_me":    false,
		"bookmarked_by_me": false,
	}
}

// Activity wraps object in an activity with verb and subject
func Activity(id, verb string, subject, object map[string]any) map[string]any {
	return map[string]any{
		"id":         id,
		"created_at": "2024-05-02T10:00:00Z",
		"verb":       map[string]any{"verb": verb},
		"subject":    subject,
		"object":     object,
	}
}

// Connection wraps nodes in a Relay connection with the given cursors
func Connection(start, end string, nodes ...any) map[string]any {
	edges := make([]any, 0, len(nodes))
	for _, n := range nodes {
		edges = append(edges, map[string]any{"node": n})
	}
	return map[string]any{
		"edges":     edges,
		"page_info": map[string]any{"start_cursor": start, "end_cursor": end},
	}
}
