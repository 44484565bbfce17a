// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment variable overrides and dot-path typed access.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-19 v0.2.0: Reduced to loading, overrides and typed getters

/*
Package config provides configuration loading for xlstr tooling.

Key Features:
  - Multi-format support (TOML, YAML) with detection by file extension
  - Environment variable overrides by prefix
  - Recursive defaults merge
  - Read-only dot-path access with typed getters
  - Key listing for rejecting or reporting unknown settings

# Basic Configuration Loading

	cfg, err := mdwconfig.LoadWithOptions("xlstr.toml", mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: "XLSTR",
		Defaults: map[string]interface{}{
			"runner": map[string]interface{}{"fail_fast": false},
		},
	})
	if err != nil {
		return err
	}

	dirs := cfg.GetStringSlice("suites.dirs", []string{"testdata"})
	failFast := cfg.GetBool("runner.fail_fast")
	maxFailures := cfg.GetInt("runner.max_failures")

# Environment Overrides

A key is mapped to an environment variable by upper-casing it, replacing
dots with underscores and prepending the prefix: with prefix XLSTR the key
runner.fail_fast is overridden by XLSTR_RUNNER_FAIL_FAST. Overrides for
string slices are comma separated.

# Errors

Load failures are *mdwerror.Error values. A missing file carries
CodeNotFound, an unreadable one CodeReadFailed and a malformed one
CodeInvalidConfig wrapping the parser error.
*/
package config
