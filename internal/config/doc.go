// Package config loads the layered daybook client configuration.
//
// Values are merged from environment variables (DAYBOOK_* prefix),
// command-line flags, an optional JSON file, and built-in defaults, in that
// priority order. The merged result is validated before use.
package config
