// File: loader.go
// Title: Conformance Suite Loader
// Description: Walks suite directories and decodes YAML and TOML suite
//              files into loaded cases.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package conformance

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/xlstr/core/errors"
)

// DefaultExtensions lists the suite file extensions loaded by default
var DefaultExtensions = []string{".yaml", ".yml", ".toml"}

// LoadedCase is a case together with the file and suite it came from
type LoadedCase struct {
	File  string // path relative to the loaded directory
	Suite string
	Case  Case
}

// ID returns a name unique within a run: file, suite and case name
func (lc LoadedCase) ID() string {
	return lc.File + "/" + lc.Suite + "/" + lc.Case.Name
}

// LoadDir walks dir and loads every suite file whose extension is in exts.
// A nil exts loads DefaultExtensions. Files are visited in lexical order.
func LoadDir(dir string, exts []string) ([]LoadedCase, error) {
	if exts == nil {
		exts = DefaultExtensions
	}

	var loaded []LoadedCase
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.ConformanceLoadFailed(path, err)
		}
		if d.IsDir() || !hasExtension(path, exts) {
			return nil
		}

		suite, err := LoadFile(path)
		if err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			relPath = path
		}
		for _, c := range suite.Tests {
			loaded = append(loaded, LoadedCase{
				File:  filepath.ToSlash(relPath),
				Suite: suite.Name,
				Case:  c,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// LoadFile decodes a single suite file. The format follows the extension:
// .toml is TOML, anything else YAML.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConformanceLoadFailed(path, err)
	}

	var suite Suite
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &suite)
	} else {
		err = yaml.Unmarshal(data, &suite)
	}
	if err != nil {
		return nil, errors.ConformanceLoadFailed(path, err)
	}

	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &suite, nil
}

func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, candidate := range exts {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}
