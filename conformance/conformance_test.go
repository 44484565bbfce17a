// File: conformance_test.go
// Title: Conformance Runner Tests
// Description: Runs the bundled suites and tests loading, case evaluation,
//              reporting and settings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package conformance

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/xlstr/core/error"
	"github.com/msto63/xlstr/core/errors"
	mdwlog "github.com/msto63/xlstr/core/log"
)

const suiteDir = "testdata/suites"

func TestConformance(t *testing.T) {
	cases, err := LoadDir(suiteDir, nil)
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	report := NewRunner(nil).Run(cases)

	for file, results := range report.ByFile() {
		results := results
		t.Run(file, func(t *testing.T) {
			for _, result := range results {
				result := result
				t.Run(result.Case.Case.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("Skipped: %s", result.SkipReason)
					}
					assert.NoError(t, result.Error)
				})
			}
		})
	}

	t.Logf("\n%s", report.Summary())
	assert.True(t, report.OK())
}

func TestLoadDir(t *testing.T) {
	cases, err := LoadDir(suiteDir, nil)
	require.NoError(t, err)

	files := map[string]bool{}
	for _, lc := range cases {
		files[lc.File] = true
		assert.NotEmpty(t, lc.Case.Name, "case in %s has no name", lc.File)
		assert.NotEmpty(t, lc.Case.Op, "case %s has no op", lc.ID())
		assert.False(t, lc.Case.Expect.IsEmpty(), "case %s has no expectation", lc.ID())
	}
	assert.True(t, files["pad.toml"], "TOML suite not loaded")
	assert.True(t, files["split_zip.yaml"], "YAML suite not loaded")

	yamlOnly, err := LoadDir(suiteDir, []string{".yaml"})
	require.NoError(t, err)
	for _, lc := range yamlOnly {
		assert.Equal(t, ".yaml", filepath.Ext(lc.File))
	}
	assert.Less(t, len(yamlOnly), len(cases))
}

func TestLoadFileDecodesTOML(t *testing.T) {
	suite, err := LoadFile(filepath.Join(suiteDir, "pad.toml"))
	require.NoError(t, err)

	assert.Equal(t, "pad", suite.Name)
	require.NotEmpty(t, suite.Tests)
	first := suite.Tests[0]
	assert.Equal(t, "pad_end", first.Op)
	assert.Equal(t, []int{5}, first.Ints)
	require.NotNil(t, first.Expect.Value)
	assert.Equal(t, "abxyx", *first.Expect.Value)
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("tests: [\n"), 0o644))

	_, err := LoadDir(dir, nil)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, errors.CodeConformanceLoadFailed))

	_, err = LoadDir(filepath.Join(dir, "missing"), nil)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, errors.CodeConformanceLoadFailed))
}

func TestLoadFileDefaultsSuiteName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.yml")
	require.NoError(t, os.WriteFile(path, []byte("tests:\n  - name: x\n    op: size\n    expect:\n      int: 0\n"), 0o644))

	suite, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", suite.Name)
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func loaded(c Case) LoadedCase {
	return LoadedCase{File: "inline", Suite: "inline", Case: c}
}

func TestRunCaseFailures(t *testing.T) {
	tests := []struct {
		name     string
		c        Case
		wantCode mdwerror.Code
	}{
		{"unknown op", Case{Name: "x", Op: "reverse", Expect: Expectation{Value: strPtr("")}}, errors.CodeConformanceUnknownOp},
		{"missing expectation", Case{Name: "x", Op: "size"}, errors.CodeInvalidInput},
		{"missing args", Case{Name: "x", Op: "split", Input: "a", Expect: Expectation{List: []string{"a"}}}, errors.CodeOperationFailed},
		{"wrong value", Case{Name: "x", Op: "upper", Input: "a", Expect: Expectation{Value: strPtr("a")}}, "CONFORMANCE_VALIDATION_FAILED"},
		{"wrong int", Case{Name: "x", Op: "size", Input: "abc", Expect: Expectation{Int: intPtr(4)}}, "CONFORMANCE_VALIDATION_FAILED"},
		{"wrong bool", Case{Name: "x", Op: "is_int", Input: "1", Expect: Expectation{Bool: boolPtr(false)}}, "CONFORMANCE_VALIDATION_FAILED"},
		{"expected error missing", Case{Name: "x", Op: "split", Input: "a", Args: []string{","}, Expect: Expectation{Error: "STRINGX_EMPTY_TOKEN"}}, "CONFORMANCE_VALIDATION_FAILED"},
		{"unexpected error", Case{Name: "x", Op: "split", Input: "a", Args: []string{""}, Expect: Expectation{List: []string{"a"}}}, errors.CodeOperationFailed},
		{"result of another kind", Case{Name: "x", Op: "size", Input: "a", Expect: Expectation{Value: strPtr("1")}}, "CONFORMANCE_VALIDATION_FAILED"},
	}

	runner := NewRunner(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runner.RunCase(loaded(tt.c))
			assert.False(t, result.Passed)
			require.Error(t, result.Error)
			assert.Equal(t, tt.wantCode, mdwerror.GetCode(result.Error), "error: %v", result.Error)
		})
	}

	result := runner.RunCase(loaded(Case{Name: "x", Op: "pad_end", Input: "a", Ints: []int{3}, Expect: Expectation{Value: strPtr("a")}}))
	assert.True(t, mdwerror.HasCode(result.Error, errors.CodeInvalidInput), "cause should be the argument check")
}

func TestRunCaseSkip(t *testing.T) {
	runner := NewRunner(nil)

	result := runner.RunCase(loaded(Case{Name: "x", Op: "size", Skip: true}))
	assert.True(t, result.Skipped)
	assert.Equal(t, "skipped", result.SkipReason)

	result = runner.RunCase(loaded(Case{Name: "x", Op: "size", Skip: "later", Expect: Expectation{Int: intPtr(0)}}))
	assert.True(t, result.Skipped)
	assert.Equal(t, "later", result.SkipReason)

	result = runner.RunCase(loaded(Case{Name: "x", Op: "size", Skip: false, Expect: Expectation{Int: intPtr(0)}}))
	assert.False(t, result.Skipped)
	assert.True(t, result.Passed)
}

func TestRunReport(t *testing.T) {
	var out bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatLogfmt, Output: &out})

	cases := []LoadedCase{
		loaded(Case{Name: "pass", Op: "size", Input: "ab", Expect: Expectation{Int: intPtr(2)}}),
		loaded(Case{Name: "fail", Op: "size", Input: "ab", Expect: Expectation{Int: intPtr(3)}}),
		loaded(Case{Name: "skip", Op: "size", Skip: "not now"}),
		loaded(Case{Name: "after", Op: "size", Input: "", Expect: Expectation{Int: intPtr(0)}}),
	}

	report := (&Runner{Logger: logger}).Run(cases)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 4, report.Total())
	assert.False(t, report.OK())
	require.Len(t, report.Failures(), 1)
	assert.Equal(t, "fail", report.Failures()[0].Case.Case.Name)

	_, err := uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.Contains(t, report.Summary(), "FAIL inline/inline/fail")

	logged := out.String()
	assert.Contains(t, logged, `message="case failed"`)
	assert.Contains(t, logged, `message="conformance run completed"`)
	assert.Contains(t, logged, "run_id="+`"`+report.RunID+`"`)

	failFast := (&Runner{FailFast: true}).Run(cases)
	assert.Equal(t, 2, failFast.Total())
	assert.Equal(t, 1, failFast.Failed)
}

func TestOpsCoverSuites(t *testing.T) {
	cases, err := LoadDir(suiteDir, nil)
	require.NoError(t, err)

	known := map[string]bool{}
	for _, op := range Ops() {
		known[op] = true
	}
	used := map[string]bool{}
	for _, lc := range cases {
		assert.True(t, known[lc.Case.Op], "unknown op %q in %s", lc.Case.Op, lc.ID())
		used[lc.Case.Op] = true
	}
	for _, op := range Ops() {
		assert.True(t, used[op], "op %q has no suite case", op)
	}
}

func TestLoadSettings(t *testing.T) {
	settings, err := LoadSettings("testdata/xlstr.toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"testdata/suites"}, settings.SuiteDirs)
	assert.Equal(t, []string{".yaml", ".toml"}, settings.Extensions)
	assert.False(t, settings.FailFast)
	assert.Equal(t, mdwlog.LevelWarn, settings.LogLevel)
	assert.Equal(t, mdwlog.FormatLogfmt, settings.LogFormat)

	var out bytes.Buffer
	report, err := settings.Run(&out)
	require.NoError(t, err)
	assert.True(t, report.OK(), report.Summary())
	assert.NotContains(t, out.String(), "suites loaded")
}

func TestLoadSettingsEnvironment(t *testing.T) {
	t.Setenv("XLSTR_RUNNER_FAIL_FAST", "true")
	t.Setenv("XLSTR_LOG_LEVEL", "debug")

	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.True(t, settings.FailFast)
	assert.Equal(t, mdwlog.LevelDebug, settings.LogLevel)
	assert.Equal(t, mdwlog.FormatText, settings.LogFormat)
	assert.Equal(t, []string{"testdata/suites"}, settings.SuiteDirs)

	t.Setenv("XLSTR_LOG_FORMAT", "xml")
	_, err = LoadSettings("")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "load_settings"))
}

func TestRunMaxFailures(t *testing.T) {
	var cases []LoadedCase
	for i := 0; i < 5; i++ {
		cases = append(cases, loaded(Case{Name: "fail", Op: "size", Input: "ab", Expect: Expectation{Int: intPtr(0)}}))
	}

	report := (&Runner{MaxFailures: 3}).Run(cases)
	assert.Equal(t, 3, report.Total())
	assert.Equal(t, 3, report.Failed)

	report = (&Runner{}).Run(cases)
	assert.Equal(t, 5, report.Failed)

	report = (&Runner{FailFast: true, MaxFailures: 3}).Run(cases)
	assert.Equal(t, 1, report.Failed)
}

func TestLoadSettingsUnknownKeysAndLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xlstr.yaml")
	content := "suites:\n  dirs: [testdata/suites]\n  pattern: \"*.yaml\"\nrunner:\n  max_failures: 2\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 2, settings.MaxFailures)
	assert.Equal(t, []string{"suites.pattern"}, settings.Unknown)

	var out bytes.Buffer
	settings.SuiteDirs = []string{filepath.Join("testdata", "suites")}
	_, err = settings.Run(&out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "unknown setting ignored")
	assert.Contains(t, out.String(), "suites.pattern")

	defaults, err := LoadSettings("")
	require.NoError(t, err)
	assert.Empty(t, defaults.Unknown)
	assert.Zero(t, defaults.MaxFailures)

	t.Setenv("XLSTR_RUNNER_MAX_FAILURES", "-1")
	_, err = LoadSettings("")
	assert.True(t, mdwerror.HasCode(err, errors.CodeInvalidInput))
}
