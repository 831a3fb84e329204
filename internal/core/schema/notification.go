package schema

// NotificationTypes lists the notification types Mastodon clients understand
var NotificationTypes = []string{
	"mention", "status", "reblog", "follow", "follow_request", "favourite",
	"poll", "update", "admin.sign_up", "admin.report",
	"severed_relationships", "moderation_warning",
}

// Notification is the Mastodon Notification entity
var Notification = Schema{
	name:     "notification",
	required: []string{"id", "type", "created_at", "account"},
	enums:    []Enum{{Field: "type", Values: NotificationTypes, Kind: ErrInvalidType}},
	defaults: func() Record {
		return Record{
			"id":         nil,
			"type":       nil,
			"created_at": nil,
			"account":    nil,
			"status":     nil,
			"report":     nil,
		}
	},
}
