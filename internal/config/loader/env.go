package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix prefixes every environment variable read by EnvLoader.
const DefaultEnvPrefix = "BOXSELECT_"

// Kind is the type of a configuration value.
type Kind uint8

const (
	// KindString keeps the raw variable text.
	KindString Kind = iota
	// KindBool accepts true/false, yes/no and on/off.
	KindBool
	// KindInt accepts a base-10 integer.
	KindInt
)

// Schema maps every known configuration path to its kind.
type Schema map[string]Kind

// EnvLoader loads configuration from environment variables. Only
// variables that resolve to a path in the schema are read.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "BOXSELECT_")
	mapping map[string]string // Env var -> config path
	schema  Schema
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "BOXSELECT_").
func NewEnvLoader(prefix string, schema Schema) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, schema, defaultEnvMapping(prefix))
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, schema Schema, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		schema:  schema,
		environ: os.Environ,
	}
}

// defaultEnvMapping returns shorthand variables for common settings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "PRESET":      "tool.preset",
		prefix + "DIMENSIONS":  "tool.dimensions",
		prefix + "ORIGIN":      "tool.origin",
		prefix + "MODE":        "tool.mode",
		prefix + "LIVE":        "tool.select_every_mousemove",
		prefix + "LOG_LEVEL":   "logging.level",
		prefix + "LOG_FILE":    "logging.file",
		prefix + "DATA":        "data.path",
		prefix + "HOOK":        "hook.script",
		prefix + "HISTORY_MAX": "history.max_entries",
	}
}

// Load reads environment variables and returns a configuration map.
// Variables naming no known path are skipped. Values are converted to
// the path's kind; text that does not parse is kept as a string so the
// decoder reports the offending key.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		kind, known := l.schema[path]
		if !known {
			continue
		}
		SetByPath(config, path, parseValue(value, kind))
	}

	return config, nil
}

// envToPath converts BOXSELECT_TOOL_SELECT_EVERY_MOUSEMOVE to
// tool.select_every_mousemove. A name without a section yields "".
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// parseValue converts s to kind.
func parseValue(s string, kind Kind) any {
	switch kind {
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "on", "1":
			return true
		case "false", "no", "off", "0":
			return false
		}
	case KindInt:
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return i
		}
	}
	return s
}
