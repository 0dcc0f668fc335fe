package listview

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Apply orients a direction-agnostic comparison result.
func (d Direction) Apply(cmp int) int {
	if d == Descending {
		return -cmp
	}
	return cmp
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ViewMode selects how the visible records are laid out.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewTable
)

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewGrid {
		return ViewTable
	}
	return ViewGrid
}

func (v ViewMode) String() string {
	if v == ViewTable {
		return "table"
	}
	return "grid"
}

// Indicator is the per-column sort marker shown by a table header.
type Indicator int

const (
	IndicatorNone Indicator = iota
	IndicatorAscending
	IndicatorDescending
)

// State is the mutable tuple driving a resource list. It lives for the
// session only.
type State struct {
	SortField     string
	SortDirection Direction
	SearchQuery   string
	ViewMode      ViewMode
}

// Indicator reports the sort marker for field.
func (s State) Indicator(field string) Indicator {
	if s.SortField != field {
		return IndicatorNone
	}
	if s.SortDirection == Descending {
		return IndicatorDescending
	}
	return IndicatorAscending
}
