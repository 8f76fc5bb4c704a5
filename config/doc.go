// Package config loads editor settings from TOML or YAML files.
//
// A Config carries tab, theme and frame settings. Load dispatches on
// the file extension and validates the result; a missing file yields
// the defaults rather than an error, so embedding applications work
// with no config present. Watch reloads the file when it changes on
// disk.
package config
