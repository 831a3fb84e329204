package schema

// MediaTypes are the attachment types Mastodon knows
var MediaTypes = []string{"unknown", "image", "gifv", "video", "audio"}

// MediaAttachment is the Mastodon MediaAttachment entity
// required fields are enforced by the mapper
var MediaAttachment = Schema{
	name: "media_attachment",
	defaults: func() Record {
		return Record{
			"id":          nil,
			"type":        "unknown",
			"url":         nil,
			"preview_url": nil,
			"remote_url":  nil,
			"meta":        nil,
			"description": nil,
			"blurhash":    nil,
		}
	},
}

// PreviewCard is the Mastodon PreviewCard entity
var PreviewCard = Schema{
	name:     "preview_card",
	required: []string{"url", "title", "type"},
	defaults: func() Record {
		return Record{
			"url":           nil,
			"title":         nil,
			"description":   "",
			"type":          "link",
			"author_name":   "",
			"author_url":    "",
			"provider_name": "",
			"provider_url":  "",
			"html":          "",
			"width":         0,
			"height":        0,
			"image":         nil,
			"embed_url":     "",
			"blurhash":      nil,
		}
	},
}
