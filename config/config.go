// Package config loads sortkit's optional defaults file and environment
// overrides. Precedence, lowest to highest: built-in defaults, the YAML
// file, SORTKIT_* environment variables, then command-line flags (applied
// by the caller).
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sortkit/sortkit/should"
)

// Filename is the defaults file looked up in the user's home directory when
// no explicit path is given.
const Filename = ".sortkit.yaml"

// Config holds the tool's defaults. The zero value matches the built-in
// behavior: ascending, lexicographic strings, quiet, text logs.
type Config struct {
	Descending bool `yaml:"descending"`
	Natural    bool `yaml:"natural"`
	Verbose    bool `yaml:"verbose"`
	JSONLogs   bool `yaml:"json_logs"`
}

// DefaultPath returns the default config file location. An empty string
// means no home directory could be resolved, which callers treat as "no
// config file".
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, Filename)
}

// Load reads the config file at path. When explicit is false, a missing or
// empty path is not an error (the file is optional); when true, the caller
// asked for this specific file and a read failure is surfaced.
func Load(path string, explicit bool) (Config, error) {
	var cfg Config

	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}

		return cfg, fmt.Errorf("open config: %w", err)
	}

	defer should.Close(f, "closing config file")

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// FromEnv returns a copy of the config with SORTKIT_* boolean variables
// applied on top. Unset variables leave the field alone; values that do not
// parse as booleans are logged and ignored.
func (c Config) FromEnv() Config {
	c.Descending = envBool("SORTKIT_DESCENDING", c.Descending)
	c.Natural = envBool("SORTKIT_NATURAL", c.Natural)
	c.Verbose = envBool("SORTKIT_VERBOSE", c.Verbose)
	c.JSONLogs = envBool("SORTKIT_JSON_LOGS", c.JSONLogs)

	return c
}

func envBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("ignoring non-boolean environment variable", "key", key, "value", raw)

		return fallback
	}

	return v
}
