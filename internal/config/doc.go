// Package config handles loading and parsing depot configuration files.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/depot/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/depot/config.toml
//   - Catalog: embedded demo catalog (empty catalog_path)
//   - Log directory: ~/.local/share/depot
//   - Log file: <log_dir>/depot.log
//   - Role: empty, which opens the dashboard picker
//   - Locale: en
//
// # TOML Format
//
//	catalog_path = "~/warehouse/zones.toml"
//	log_dir = "~/.local/share/depot"
//	role = "admin"
//	locale = "en-GB"
//
// Every field is optional. Tilde expansion is performed on paths. The locale
// is a BCP 47 tag and controls how zone names and codes are collated; an
// unparsable tag is a load error rather than a silent fallback.
//
// Command-line flags in cmd/depot take precedence over file values.
package config
