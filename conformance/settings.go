// File: settings.go
// Title: Conformance Runner Settings
// Description: Loads runner settings from a TOML or YAML file with XLSTR_
//              environment overrides and builds the logger and case list.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package conformance

import (
	"io"

	mdwconfig "github.com/msto63/xlstr/core/config"
	"github.com/msto63/xlstr/core/errors"
	mdwlog "github.com/msto63/xlstr/core/log"
)

// EnvPrefix is the prefix of environment variables overriding settings
const EnvPrefix = "XLSTR"

// Settings configures a conformance run
type Settings struct {
	SuiteDirs   []string
	Extensions  []string
	FailFast    bool
	MaxFailures int // stop after this many failures; 0 means no limit
	LogLevel    mdwlog.Level
	LogFormat   mdwlog.Format
	Unknown     []string // keys in the settings file that are not recognised
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"suites": map[string]interface{}{
			"dirs":       []interface{}{"testdata/suites"},
			"extensions": []interface{}{".yaml", ".yml", ".toml"},
		},
		"runner": map[string]interface{}{"fail_fast": false, "max_failures": 0},
		"log":    map[string]interface{}{"level": "info", "format": "text"},
	}
}

// LoadSettings reads settings from path. An empty path uses the defaults
// and the environment only.
//
// Recognised keys are suites.dirs, suites.extensions, runner.fail_fast,
// runner.max_failures, log.level and log.format. Other keys are collected
// in Unknown and reported by Run.
func LoadSettings(path string) (*Settings, error) {
	var cfg *mdwconfig.Config
	if path == "" {
		cfg = mdwconfig.New(EnvPrefix, defaults())
	} else {
		var err error
		cfg, err = mdwconfig.LoadWithOptions(path, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  defaults(),
		})
		if err != nil {
			return nil, err
		}
	}

	level, err := mdwlog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, errors.InvalidInput(errors.ModuleConformance, "load_settings",
			cfg.GetString("log.level"), "trace, debug, info, warn, error or fatal")
	}
	format, err := mdwlog.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return nil, errors.InvalidInput(errors.ModuleConformance, "load_settings",
			cfg.GetString("log.format"), "json, text or logfmt")
	}

	maxFailures := cfg.GetInt("runner.max_failures")
	if maxFailures < 0 {
		return nil, errors.InvalidInput(errors.ModuleConformance, "load_settings",
			maxFailures, "runner.max_failures >= 0")
	}

	return &Settings{
		SuiteDirs:   cfg.GetStringSlice("suites.dirs"),
		Extensions:  cfg.GetStringSlice("suites.extensions"),
		FailFast:    cfg.GetBool("runner.fail_fast"),
		MaxFailures: maxFailures,
		LogLevel:    level,
		LogFormat:   format,
		Unknown:     unknownKeys(cfg),
	}, nil
}

// unknownKeys lists the keys of cfg that have no default
func unknownKeys(cfg *mdwconfig.Config) []string {
	known := make(map[string]bool)
	for _, key := range mdwconfig.New("", defaults()).Keys() {
		known[key] = true
	}

	var unknown []string
	for _, key := range cfg.Keys() {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

// Logger returns a logger writing to out at the configured level and format
func (s *Settings) Logger(out io.Writer) *mdwlog.Logger {
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: out,
		Name:   "conformance",
	})
}

// Load loads the cases of every configured suite directory in order
func (s *Settings) Load() ([]LoadedCase, error) {
	var cases []LoadedCase
	for _, dir := range s.SuiteDirs {
		loaded, err := LoadDir(dir, s.Extensions)
		if err != nil {
			return nil, err
		}
		cases = append(cases, loaded...)
	}
	return cases, nil
}

// Run loads the configured suites and runs them with a logger writing to
// out. Unknown settings keys are logged as warnings.
func (s *Settings) Run(out io.Writer) (*Report, error) {
	logger := s.Logger(out)
	for _, key := range s.Unknown {
		logger.Warn("unknown setting ignored", mdwlog.String("key", key))
	}

	cases, err := s.Load()
	if err != nil {
		logger.LogError(err)
		return nil, err
	}
	logger.Info("suites loaded", mdwlog.Int("cases", len(cases)))

	runner := &Runner{Logger: logger, FailFast: s.FailFast, MaxFailures: s.MaxFailures}
	return runner.Run(cases), nil
}
