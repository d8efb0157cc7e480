// Package config loads, normalizes, and validates foldersort configuration.
//
// It supplies the built-in category table and other defaults, expands user
// paths (including tilde shortcuts), reads TOML files, and honours
// environment overrides for log output. The Config type gathers every knob
// the CLI and the organizer need in one pass.
//
// Always obtain settings through this package so downstream code receives a
// normalized category table, canonical log formats, and clear validation
// errors.
package config
