// Package config provides configuration shared across a parse run.
package config

import (
	"io"
	"os"
)

// Config holds diagnostic and behavioural settings for parsing.
// One Config may be shared by many parser instances; it is read-only
// during a parse apart from writes to LogFile.
type Config struct {
	// LogFile receives diagnostics (unknown tokens, truncated comments).
	// These never change the error contract of a parse.
	LogFile io.Writer

	// Verbosity: 0=silent, 1=record counts, 2=running commentary.
	Verbosity int

	// Workers is the default parallelism for multi-record archives.
	Workers int
}

// NewConfig creates a config with default settings.
func NewConfig() *Config {
	return &Config{
		LogFile:   os.Stderr,
		Verbosity: 1,
		Workers:   1,
	}
}
