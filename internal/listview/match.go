package listview

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matches reports whether query is a case-insensitive substring of any text
// field of record. An empty query matches everything; numeric fields are
// never searched.
func Matches[T any](schema Schema[T], record T, query string) bool {
	if query == "" {
		return true
	}
	folder := cases.Fold()
	needle := folder.String(query)
	for _, f := range schema.fields {
		if f.Kind != KindText {
			continue
		}
		if strings.Contains(folder.String(f.text(record)), needle) {
			return true
		}
	}
	return false
}
