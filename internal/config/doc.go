// Package config handles configuration loading, parsing, and validation
// from environment variables (prefix DIARY_) and an optional YAML file. The
// loaded values are passed explicitly to constructors; nothing reads the
// environment after startup.
package config
