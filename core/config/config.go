// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for reading settings from TOML
//              and YAML files layered over defaults, with environment
//              variable overrides.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-19 v0.2.0: Removed file watching and tracing IDs, recursive
//                      defaults merge, env overrides for string slices
// - 2025-10-19 v0.3.0: Read-only Config; dropped runtime Set and the
//                      string-source loader, added Keys for key checks

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/xlstr/core/error"
	mdwstringx "github.com/msto63/xlstr/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config is a parsed configuration. It is never modified after loading,
// so concurrent reads are safe.
type Config struct {
	data      map[string]interface{}
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, nested by dot path segment
}

// LoadWithOptions reads and parses filePath, then layers the file over
// options.Defaults
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	if mdwstringx.From(filePath).Trim().Size() == 0 {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation(op)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeReadFailed
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation(op).
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		envPrefix: options.EnvPrefix,
	}, nil
}

// New returns a configuration populated only from defaults and
// environment variables carrying envPrefix
func New(envPrefix string, defaults map[string]interface{}) *Config {
	return &Config{
		data:      mergeDefaults(nil, defaults),
		envPrefix: envPrefix,
	}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes content into a nested map. Empty content yields an
// empty map.
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &data)
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, strings.ToUpper(format.String())+" parse error").
			WithCode(mdwerror.CodeParseFailed).
			WithOperation("config.parseContent")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults returns data layered over defaults. Nested maps merge
// recursively and values from data win.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		if sub, ok := v.(map[string]interface{}); ok {
			if base, ok := result[k].(map[string]interface{}); ok {
				result[k] = mergeDefaults(sub, base)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// GetString returns the value at key as a string, or the optional default
// when key is unset
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env, ok := c.env(key); ok {
		return env
	}

	switch v := c.value(key).(type) {
	case nil:
		return first(defaultValue, "")
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns the value at key as an int. Unset or unparsable values
// give the optional default.
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if env, ok := c.env(key); ok {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
	}

	switch v := c.value(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return first(defaultValue, 0)
}

// GetBool returns the value at key as a bool. Unset or unparsable values
// give the optional default.
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if env, ok := c.env(key); ok {
		if b, err := strconv.ParseBool(env); err == nil {
			return b
		}
	}

	switch v := c.value(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return first(defaultValue, false)
}

// GetStringSlice returns the list at key. An environment override is split
// on commas and a scalar becomes a single element.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if env, ok := c.env(key); ok {
		parts := strings.Split(env, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	switch v := c.value(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}
	return first(defaultValue, nil)
}

// Keys returns every leaf key in dot notation, sorted. Defaults are
// included.
func (c *Config) Keys() []string {
	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			if prefix != "" {
				k = prefix + "." + k
			}
			if nested, ok := v.(map[string]interface{}); ok {
				walk(k, nested)
				continue
			}
			keys = append(keys, k)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// value walks the dot-separated key through nested maps
func (c *Config) value(key string) interface{} {
	current := c.data
	segments := strings.Split(key, ".")
	for _, k := range segments[:len(segments)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return current[segments[len(segments)-1]]
}

// env returns the override for key from the environment. With prefix
// XLSTR the key suites.dirs reads XLSTR_SUITES_DIRS.
func (c *Config) env(key string) (string, bool) {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		name = strings.ToUpper(c.envPrefix) + "_" + name
	}
	v := os.Getenv(name)
	return v, v != ""
}

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
