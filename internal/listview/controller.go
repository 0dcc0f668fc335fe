// Package listview implements the state model behind sortable, searchable
// resource lists that can be shown as a grid of cards or as a table.
//
// A Controller owns a State and derives the visible records from a catalog
// snapshot on demand. Derivation is pure: the catalog is never modified and
// every call recomputes from scratch. Controllers are owned by a single
// screen and are not safe for concurrent use.
package listview

import (
	"sort"

	"golang.org/x/text/language"
)

// Controller holds list state for records of type T.
type Controller[T any] struct {
	schema     Schema[T]
	comparator *Comparator[T]
	state      State
}

// NewController returns a controller in the default state: first schema
// field, ascending, empty search, grid view.
func NewController[T any](schema Schema[T], locale language.Tag) *Controller[T] {
	return &Controller[T]{
		schema:     schema,
		comparator: NewComparator(schema, locale),
		state: State{
			SortField:     schema.defaultField(),
			SortDirection: Ascending,
			ViewMode:      ViewGrid,
		},
	}
}

// State returns a snapshot of the current state.
func (c *Controller[T]) State() State {
	return c.state
}

// Schema returns the controller's schema.
func (c *Controller[T]) Schema() Schema[T] {
	return c.schema
}

// SetSort flips the direction when field is already the sort field;
// otherwise it switches to field in ascending order. Unknown fields are
// accepted and leave records in catalog order.
func (c *Controller[T]) SetSort(field string) {
	if field == c.state.SortField {
		c.state.SortDirection = c.state.SortDirection.Flip()
		return
	}
	c.state.SortField = field
	c.state.SortDirection = Ascending
}

// SetSearch replaces the search query verbatim.
func (c *Controller[T]) SetSearch(query string) {
	c.state.SearchQuery = query
}

// SetViewMode replaces the view mode.
func (c *Controller[T]) SetViewMode(mode ViewMode) {
	c.state.ViewMode = mode
}

// Compare orders a and b on field without regard to direction.
func (c *Controller[T]) Compare(a, b T, field string) int {
	return c.comparator.Compare(a, b, field)
}

// Matches reports whether record satisfies query.
func (c *Controller[T]) Matches(record T, query string) bool {
	return Matches(c.schema, record, query)
}

// Visible filters catalog by the search query and stable-sorts the result by
// the current field and direction. The returned slice is always new.
func (c *Controller[T]) Visible(catalog []T) []T {
	out := make([]T, 0, len(catalog))
	for _, record := range catalog {
		if Matches(c.schema, record, c.state.SearchQuery) {
			out = append(out, record)
		}
	}

	field, ok := c.schema.Field(c.state.SortField)
	if !ok {
		return out
	}
	dir := c.state.SortDirection
	sort.SliceStable(out, func(i, j int) bool {
		return c.comparator.less(out[i], out[j], field, dir)
	})
	return out
}

// Actions are the create, edit and delete slots a list exposes. Their
// implementation belongs to the embedding application; nil slots are
// skipped.
type Actions[T any] struct {
	Create func()
	Edit   func(record T)
	Delete func(id string)
}

// DoCreate invokes the Create slot if set.
func (a Actions[T]) DoCreate() bool {
	if a.Create == nil {
		return false
	}
	a.Create()
	return true
}

// DoEdit invokes the Edit slot if set.
func (a Actions[T]) DoEdit(record T) bool {
	if a.Edit == nil {
		return false
	}
	a.Edit(record)
	return true
}

// DoDelete invokes the Delete slot if set.
func (a Actions[T]) DoDelete(id string) bool {
	if a.Delete == nil {
		return false
	}
	a.Delete(id)
	return true
}
