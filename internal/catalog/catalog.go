// Package catalog loads the storage zone catalog shown by depot. The catalog
// is a read-only TOML document; depot never writes it back.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/depot/internal/zone"
)

// DemoSource is the Source reported for the embedded demo catalog.
const DemoSource = "demo"

//go:embed demo_zones.toml
var demoZones []byte

var (
	// ErrDuplicateID is returned when two zones share an id.
	ErrDuplicateID = errors.New("duplicate zone id")
	// ErrDuplicateCode is returned when two zones share an external code.
	ErrDuplicateCode = errors.New("duplicate external code")
	// ErrEmptyName is returned when a zone has no name.
	ErrEmptyName = errors.New("zone name is empty")
)

// Catalog is one loaded snapshot of zones.
type Catalog struct {
	Zones  []zone.StorageZone
	Source string

	// Warnings lists zones that violate a record invariant. Such zones are
	// kept so the problem stays visible in the list.
	Warnings []error
}

// Load reads the catalog at path. An empty path loads the embedded demo
// catalog.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Parse(demoZones, DemoSource)
	}

	resolved, err := expandPath(path)
	if err != nil {
		return Catalog{}, err
	}
	file, err := os.Open(resolved)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, resolved)
}

// Parse decodes a TOML catalog document. Zones without an id are assigned a
// random UUID.
func Parse(data []byte, source string) (Catalog, error) {
	var raw struct {
		Zones []zone.StorageZone `toml:"zones"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", source, err)
	}

	cat := Catalog{Source: source, Zones: make([]zone.StorageZone, 0, len(raw.Zones))}
	ids := make(map[string]struct{}, len(raw.Zones))
	codes := make(map[string]struct{}, len(raw.Zones))

	for i, z := range raw.Zones {
		z.ID = strings.TrimSpace(z.ID)
		if z.ID == "" {
			z.ID = uuid.NewString()
		}
		if strings.TrimSpace(z.Name) == "" {
			return Catalog{}, fmt.Errorf("zone #%d (%s): %w", i+1, z.ID, ErrEmptyName)
		}
		if _, dup := ids[z.ID]; dup {
			return Catalog{}, fmt.Errorf("zone %q: %w %q", z.Name, ErrDuplicateID, z.ID)
		}
		ids[z.ID] = struct{}{}

		code := strings.ToLower(strings.TrimSpace(z.ExternalCode))
		if code != "" {
			if _, dup := codes[code]; dup {
				return Catalog{}, fmt.Errorf("zone %q: %w %q", z.Name, ErrDuplicateCode, z.ExternalCode)
			}
			codes[code] = struct{}{}
		}

		if err := z.Validate(); err != nil {
			cat.Warnings = append(cat.Warnings, err)
		}
		cat.Zones = append(cat.Zones, z)
	}
	return cat, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
