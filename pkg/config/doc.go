// Package config loads layout problems from YAML, mirroring the
// host-independent config layer of a generation pipeline: parse, validate,
// and expose a stable hash for caching and comparison.
package config
