// Package zone defines the storage zone record shown by the zone-management
// screen, its classification and the saturation bands used for display.
package zone

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Classification is the storage-type category of a zone.
type Classification int

const (
	RackStorage Classification = iota
	BulkStorage

	// ClassificationCount is the number of classifications. Mapping tables
	// indexed by Classification are expected to have this many entries.
	ClassificationCount
)

// ErrUnknownClassification is returned when a classification label cannot be parsed.
var ErrUnknownClassification = errors.New("unknown classification")

// Classifications returns every classification in display order.
func Classifications() []Classification {
	return []Classification{RackStorage, BulkStorage}
}

// String returns the human label, e.g. "Rack Storage".
func (c Classification) String() string {
	switch c {
	case RackStorage:
		return "Rack Storage"
	case BulkStorage:
		return "Bulk Storage"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// ParseClassification accepts "rack", "rack_storage", "Rack Storage" and the
// bulk equivalents, ignoring case.
func ParseClassification(value string) (Classification, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	normalized = strings.Join(strings.Fields(normalized), " ")
	switch normalized {
	case "rack", "rack storage":
		return RackStorage, nil
	case "bulk", "bulk storage":
		return BulkStorage, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClassification, value)
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) {
	switch c {
	case RackStorage:
		return []byte("rack"), nil
	case BulkStorage:
		return []byte("bulk"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownClassification, int(c))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Classification) UnmarshalText(text []byte) error {
	parsed, err := ParseClassification(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Range is an inclusive min/max pair.
type Range struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Dimensions are the zone's length, width and height in meters.
type Dimensions struct {
	Length float64 `toml:"length"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// StorageZone is a single warehouse storage zone.
type StorageZone struct {
	ID             string         `toml:"id"`
	Name           string         `toml:"name"`
	Classification Classification `toml:"classification"`
	ExternalCode   string         `toml:"external_code"`
	Temperature    Range          `toml:"temperature"` // °C
	Humidity       Range          `toml:"humidity"`    // %
	WeightCapacity float64        `toml:"weight_capacity"`
	Dimensions     Dimensions     `toml:"dimensions"`
	Saturation     float64        `toml:"saturation"` // % of capacity in use
}

// Validate reports every violated record invariant. Uniqueness of ID and
// ExternalCode is a catalog-level concern and is not checked here.
func (z StorageZone) Validate() error {
	var errs []error
	if strings.TrimSpace(z.Name) == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if z.Classification < 0 || z.Classification >= ClassificationCount {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownClassification, int(z.Classification)))
	}
	if !finite(z.Temperature.Min, z.Temperature.Max) || z.Temperature.Min > z.Temperature.Max {
		errs = append(errs, fmt.Errorf("temperature range %v..%v is invalid", z.Temperature.Min, z.Temperature.Max))
	}
	if !finite(z.Humidity.Min, z.Humidity.Max) ||
		z.Humidity.Min < 0 || z.Humidity.Min > z.Humidity.Max || z.Humidity.Max > 100 {
		errs = append(errs, fmt.Errorf("humidity range %v..%v is outside 0..100", z.Humidity.Min, z.Humidity.Max))
	}
	if !finite(z.WeightCapacity) || z.WeightCapacity <= 0 {
		errs = append(errs, fmt.Errorf("weight capacity %v must be positive", z.WeightCapacity))
	}
	d := z.Dimensions
	if !finite(d.Length, d.Width, d.Height) || d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
		errs = append(errs, fmt.Errorf("dimensions %vx%vx%v must be positive", d.Length, d.Width, d.Height))
	}
	if !finite(z.Saturation) || z.Saturation < 0 || z.Saturation > 100 {
		errs = append(errs, fmt.Errorf("saturation %v is outside 0..100", z.Saturation))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("zone %q: %w", z.Name, errors.Join(errs...))
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
