package listview

// FieldKind selects how a field is compared.
type FieldKind int

const (
	// KindText fields compare with locale-aware, case-insensitive collation
	// and take part in search.
	KindText FieldKind = iota
	// KindNumber fields compare arithmetically and are never searched.
	KindNumber
)

// Field describes one sortable attribute of T.
type Field[T any] struct {
	Key    string
	Label  string
	Kind   FieldKind
	Text   func(T) string  // required for KindText
	Number func(T) float64 // required for KindNumber
}

func (f Field[T]) text(record T) string {
	if f.Text == nil {
		return ""
	}
	return f.Text(record)
}

func (f Field[T]) number(record T) float64 {
	if f.Number == nil {
		return 0
	}
	return f.Number(record)
}

// Schema is the fixed set of sortable and searchable fields for a record
// type. The first field is the initial sort field.
type Schema[T any] struct {
	id     func(T) string
	fields []Field[T]
	byKey  map[string]int
}

// NewSchema builds a schema. id extracts the record identifier used for
// selection tracking and the Delete action. Later fields with a duplicate key
// are ignored.
func NewSchema[T any](id func(T) string, fields ...Field[T]) Schema[T] {
	s := Schema[T]{
		id:    id,
		byKey: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if _, dup := s.byKey[f.Key]; dup {
			continue
		}
		s.byKey[f.Key] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

// Field looks up a field by key.
func (s Schema[T]) Field(key string) (Field[T], bool) {
	idx, ok := s.byKey[key]
	if !ok {
		return Field[T]{}, false
	}
	return s.fields[idx], true
}

// Fields returns the fields in declaration order.
func (s Schema[T]) Fields() []Field[T] {
	out := make([]Field[T], len(s.fields))
	copy(out, s.fields)
	return out
}

// ID returns the record identifier.
func (s Schema[T]) ID(record T) string {
	if s.id == nil {
		return ""
	}
	return s.id(record)
}

func (s Schema[T]) defaultField() string {
	if len(s.fields) == 0 {
		return ""
	}
	return s.fields[0].Key
}
