package mapper

import (
	"context"
	"strings"

	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/schema"
)

var reportCategories = map[string]bool{"spam": true, "legal": true, "violation": true, "other": true}

// isIdentity reports whether a flagged object is a user rather than content
func isIdentity(obj any) bool {
	if strings.EqualFold(fields.String(fields.Get(obj, "__typename")), "user") {
		return true
	}
	return fields.Get(obj, "character") != nil && !isPost(obj)
}

// ReportFromFlag maps a flag; identity flags target the identity and disclose no statuses,
// content flags target the content's creator and disclose the flagged id
func (m *Mapper) ReportFromFlag(ctx context.Context, flag any, opts Options) schema.Record {
	id := fields.String(fields.Get(flag, "id"))
	obj := fields.GetFields(flag, "object", "flagged", "edge.object")
	if id == "" || obj == nil {
		return nil
	}

	aopts := opts
	aopts.Lightweight = true

	var target schema.Record
	statusIDs := []any{}
	if isIdentity(obj) {
		target = m.AccountFromUser(ctx, obj, aopts)
	} else {
		creator := fields.First(obj,
			fields.Path("created", "creator"),
			fields.Key("creator"),
			fields.Key("account"),
			fields.Key("subject"),
		)
		target = m.AccountFromUser(ctx, creator, aopts)
		if oid := fields.String(fields.Get(obj, "id")); oid != "" {
			statusIDs = append(statusIDs, oid)
		}
	}

	category := strings.ToLower(fields.String(fields.Get(flag, "category")))
	if !reportCategories[category] {
		category = "other"
	}

	rec := schema.Report.New(schema.Record{
		"id":             id,
		"action_taken":   fields.Bool(fields.Get(flag, "action_taken")),
		"category":       category,
		"comment":        firstString(flag, fields.Key("comment"), fields.Key("message"), fields.Key("reason")),
		"forwarded":      fields.Bool(fields.Get(flag, "forwarded")),
		"created_at":     createdAt(flag, id),
		"status_ids":     statusIDs,
		"rule_ids":       []any{},
		"target_account": nilIfEmpty(target),
	})
	return fields.ValidateAndReturn(rec, schema.Report)
}
