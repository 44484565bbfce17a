// File: report.go
// Title: Conformance Report
// Description: Aggregates case results of one run.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package conformance

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Report summarises a run
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Results   []Result
	Passed    int
	Failed    int
	Skipped   int
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)
	switch {
	case result.Skipped:
		r.Skipped++
	case result.Passed:
		r.Passed++
	default:
		r.Failed++
	}
}

// Total returns the number of executed and skipped cases
func (r *Report) Total() int {
	return len(r.Results)
}

// OK reports whether no case failed
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failed results
func (r *Report) Failures() []Result {
	var failures []Result
	for _, result := range r.Results {
		if !result.Passed && !result.Skipped {
			failures = append(failures, result)
		}
	}
	return failures
}

// ByFile groups results by suite file, preserving run order within a file
func (r *Report) ByFile() map[string][]Result {
	groups := make(map[string][]Result)
	for _, result := range r.Results {
		groups[result.Case.File] = append(groups[result.Case.File], result)
	}
	return groups
}

// Summary formats the counts and the failed cases
func (r *Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run %s: %d passed, %d failed, %d skipped in %s\n",
		r.RunID, r.Passed, r.Failed, r.Skipped, r.Duration.Round(time.Microsecond))

	failures := r.Failures()
	sort.SliceStable(failures, func(i, j int) bool {
		return failures[i].Case.ID() < failures[j].Case.ID()
	})
	for _, f := range failures {
		fmt.Fprintf(&sb, "  FAIL %s: %v\n", f.Case.ID(), f.Error)
	}
	return sb.String()
}
