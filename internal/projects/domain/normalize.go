package domain

import "time"

// FromDocument builds a Project from a raw Firestore document. Project
// documents are written by several client surfaces and are loosely typed:
// tags may be missing, null, or not an array at all. Everything is normalized
// here so downstream code never sees an ill-typed field.
func FromDocument(id string, data map[string]any) Project {
	p := Project{
		ID:          id,
		Title:       asString(data["title"]),
		Description: asString(data["description"]),
		Tags:        asStringSlice(data["tags"]),
		GithubLink:  asString(data["githubLink"]),
		Status:      asString(data["status"]),
		OwnerID:     asString(data["ownerId"]),
		OwnerEmail:  asString(data["ownerEmail"]),
		Likes:       asStringSlice(data["likes"]),
		Bookmarks:   asStringSlice(data["bookmarks"]),
		CreatedAt:   asTime(data["createdAt"]),
		UpdatedAt:   asTime(data["updatedAt"]),
	}

	if uploads, ok := data["uploads"].(map[string]any); ok {
		p.Uploads = uploads
	}
	if p.Status == "" {
		p.Status = StatusPending
	}

	return p
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStringSlice never returns nil; non-array values and non-string elements
// collapse to what can be salvaged.
func asStringSlice(v any) []string {
	out := []string{}

	switch vals := v.(type) {
	case []string:
		return append(out, vals...)
	case []any:
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}

	return out
}

func asTime(v any) time.Time {
	t, _ := v.(time.Time)
	return t
}
