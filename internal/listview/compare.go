package listview

import (
	"math"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders records of T field by field. It wraps a collator, which
// keeps scratch buffers, so a Comparator must not be shared between
// goroutines.
type Comparator[T any] struct {
	schema   Schema[T]
	collator *collate.Collator
}

// NewComparator builds a comparator that collates text for the given locale.
func NewComparator[T any](schema Schema[T], locale language.Tag) *Comparator[T] {
	return &Comparator[T]{
		schema:   schema,
		collator: collate.New(locale, collate.IgnoreCase),
	}
}

// Compare returns -1, 0 or 1 ordering a before, with or after b on field,
// independent of direction. Unknown fields compare equal for every pair.
// Non-finite numbers order after every finite number and equal to each other.
func (c *Comparator[T]) Compare(a, b T, field string) int {
	f, ok := c.schema.Field(field)
	if !ok {
		return 0
	}
	return c.compareField(a, b, f)
}

func (c *Comparator[T]) compareField(a, b T, f Field[T]) int {
	switch f.Kind {
	case KindText:
		return c.collator.CompareString(f.text(a), f.text(b))
	case KindNumber:
		return compareNumbers(f.number(a), f.number(b))
	default:
		return 0
	}
}

// less reports whether a sorts before b on f in direction d. Invalid numbers
// stay after valid ones in both directions.
func (c *Comparator[T]) less(a, b T, f Field[T], d Direction) bool {
	if f.Kind == KindNumber {
		av, bv := validNumber(f.number(a)), validNumber(f.number(b))
		switch {
		case !av && !bv:
			return false
		case !av:
			return false
		case !bv:
			return true
		}
	}
	return d.Apply(c.compareField(a, b, f)) < 0
}

func compareNumbers(a, b float64) int {
	av, bv := validNumber(a), validNumber(b)
	switch {
	case !av && !bv:
		return 0
	case !av:
		return 1
	case !bv:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func validNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
