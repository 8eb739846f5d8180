package repository

import (
	"strings"

	"doclib/internal/model"
)

// Matches reports whether doc satisfies q. Backends that filter in process share it.
func (q SearchQuery) Matches(doc model.Document) bool {
	if q.Category != nil && doc.Category != *q.Category {
		return false
	}
	if q.Text == "" {
		return true
	}
	needle := strings.ToLower(q.Text)
	if strings.Contains(strings.ToLower(doc.Title), needle) ||
		strings.Contains(strings.ToLower(doc.Author), needle) {
		return true
	}
	if doc.Keywords != nil && strings.Contains(strings.ToLower(*doc.Keywords), needle) {
		return true
	}
	return doc.Description != nil && strings.Contains(strings.ToLower(*doc.Description), needle)
}
