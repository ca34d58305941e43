// Package config loads, normalizes, and validates corpusprep configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CORPUSPREP_HISTORY_DSN, optionally sourced from a local .env file. The Config
// type centralizes the sampling constants, split seed, and cleaner offsets so
// every tool reads its parameters from one place.
//
// Always obtain settings through this package so commands receive sanitized
// paths, canonical log formats, and clear validation errors.
package config
