// File: runner.go
// Title: Conformance Runner
// Description: Executes loaded cases against the stringx API and compares
//              each outcome with its expectation.
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
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/xlstr/core/error"
	"github.com/msto63/xlstr/core/errors"
	mdwlog "github.com/msto63/xlstr/core/log"
	mdwstringx "github.com/msto63/xlstr/utils/stringx"
)

// Result is the outcome of a single case
type Result struct {
	Case       LoadedCase
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance cases
type Runner struct {
	Logger      *mdwlog.Logger
	FailFast    bool // stop at the first failing case
	MaxFailures int  // stop once this many cases failed; 0 means no limit
}

// NewRunner creates a runner logging to logger. A nil logger discards.
func NewRunner(logger *mdwlog.Logger) *Runner {
	return &Runner{Logger: logger}
}

func (r *Runner) logger() *mdwlog.Logger {
	if r.Logger == nil {
		return mdwlog.Discard()
	}
	return r.Logger
}

// Run executes cases in order and returns the report
func (r *Runner) Run(cases []LoadedCase) *Report {
	report := &Report{RunID: uuid.NewString(), StartedAt: time.Now()}
	logger := r.logger().WithField("run_id", report.RunID)
	timer := logger.StartTimer("conformance run").WithLevel(mdwlog.LevelInfo)

	for _, lc := range cases {
		result := r.RunCase(lc)
		report.add(result)

		switch {
		case result.Skipped:
			logger.Debug("case skipped", mdwlog.Fields{"case": lc.ID(), "reason": result.SkipReason})
		case !result.Passed:
			logger.WarnWithErr("case failed", result.Error, mdwlog.String("case", lc.ID()))
		}

		if limit := r.failureLimit(); limit > 0 && report.Failed >= limit {
			logger.Info("stopping after failure limit",
				mdwlog.Fields{"case": lc.ID(), "limit": limit})
			break
		}
	}

	timer.WithField("passed", report.Passed).
		WithField("failed", report.Failed).
		WithField("skipped", report.Skipped)
	report.Duration = timer.Stop()
	return report
}

// failureLimit returns the number of failures that ends a run, or 0
func (r *Runner) failureLimit() int {
	if r.FailFast {
		return 1
	}
	return r.MaxFailures
}

// RunCase executes a single case
func (r *Runner) RunCase(lc LoadedCase) Result {
	result := Result{Case: lc}
	if skipped, reason := lc.Case.IsSkipped(); skipped {
		result.Skipped = true
		result.SkipReason = reason
		return result
	}

	result.Error = execute(&lc.Case)
	result.Passed = result.Error == nil
	return result
}

// outcome holds what an operation produced
type outcome struct {
	value   *string
	list    []string
	boolean *bool
	integer *int
}

type opFunc func(c *Case) (outcome, error)

var ops = map[string]opFunc{
	"new":             opValue(func(c *Case, v *mdwstringx.Value) *mdwstringx.Value { return v }),
	"clone":           opClone,
	"move":            opMove,
	"size":            opInt(func(c *Case, v *mdwstringx.Value) int { return v.Size() }),
	"at":              opAt,
	"slice":           opSlice,
	"concat":          opValue(func(c *Case, v *mdwstringx.Value) *mdwstringx.Value { return v.Concat(c.Args...) }),
	"append":          opAppend,
	"append_self":     opAppendSelf,
	"repeat":          opRepeat,
	"repeat_inplace":  opRepeatInPlace,
	"pad_end":         opPad((*mdwstringx.Value).PadEnd),
	"pad_start":       opPad((*mdwstringx.Value).PadStart),
	"upper":           opValue(func(c *Case, v *mdwstringx.Value) *mdwstringx.Value { return v.ToUpper() }),
	"lower":           opValue(func(c *Case, v *mdwstringx.Value) *mdwstringx.Value { return v.ToLower() }),
	"trim":            opValue(func(c *Case, v *mdwstringx.Value) *mdwstringx.Value { return v.Trim() }),
	"trim_left":       opValue(func(c *Case, v *mdwstringx.Value) *mdwstringx.Value { return v.TrimLeft() }),
	"trim_right":      opValue(func(c *Case, v *mdwstringx.Value) *mdwstringx.Value { return v.TrimRight() }),
	"starts_with":     opSearchBool((*mdwstringx.Value).StartsWith),
	"ends_with":       opSearchBool((*mdwstringx.Value).EndsWith),
	"includes":        opSearchBool((*mdwstringx.Value).Includes),
	"index_of":        opSearchInt((*mdwstringx.Value).IndexOf),
	"last_index_of":   opSearchInt((*mdwstringx.Value).LastIndexOf),
	"is_alphabetic":   opBool((*mdwstringx.Value).IsAlphabetic),
	"is_alphanumeric": opBool((*mdwstringx.Value).IsAlphanumeric),
	"is_int":          opBool((*mdwstringx.Value).IsInt),
	"is_float":        opBool((*mdwstringx.Value).IsFloat),
	"is_numeric":      opBool((*mdwstringx.Value).IsNumeric),
	"split":           opSplit,
	"zip":             opZip,
	"round_trip":      opRoundTrip,
	"replace":         opReplace,
	"unique":          opUnique,
	"equal":           opSearchBool((*mdwstringx.Value).EqualString),
	"compare":         opCompare,
}

// Ops returns the sorted names of all supported operations
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func execute(c *Case) error {
	op, ok := ops[c.Op]
	if !ok {
		return errors.ConformanceUnknownOp(c.Op)
	}
	if c.Expect.IsEmpty() {
		return errors.InvalidInput(errors.ModuleConformance, c.Op, c.Name, "an expectation")
	}

	got, err := op(c)
	return c.Expect.check(c.Op, got, err)
}

func requireArgs(c *Case, strs, ints int) error {
	if len(c.Args) < strs || len(c.Ints) < ints {
		return errors.InvalidInput(errors.ModuleConformance, c.Op,
			fmt.Sprintf("args=%d ints=%d", len(c.Args), len(c.Ints)),
			fmt.Sprintf("at least %d args and %d ints", strs, ints))
	}
	return nil
}

func valueOutcome(v *mdwstringx.Value) outcome {
	s := v.Content()
	return outcome{value: &s}
}

func opValue(fn func(c *Case, v *mdwstringx.Value) *mdwstringx.Value) opFunc {
	return func(c *Case) (outcome, error) {
		return valueOutcome(fn(c, mdwstringx.From(c.Input))), nil
	}
}

func opInt(fn func(c *Case, v *mdwstringx.Value) int) opFunc {
	return func(c *Case) (outcome, error) {
		n := fn(c, mdwstringx.From(c.Input))
		return outcome{integer: &n}, nil
	}
}

func opBool(fn func(v *mdwstringx.Value) bool) opFunc {
	return func(c *Case) (outcome, error) {
		b := fn(mdwstringx.From(c.Input))
		return outcome{boolean: &b}, nil
	}
}

func opSearchBool(fn func(v *mdwstringx.Value, sub string) bool) opFunc {
	return func(c *Case) (outcome, error) {
		if err := requireArgs(c, 1, 0); err != nil {
			return outcome{}, err
		}
		b := fn(mdwstringx.From(c.Input), c.Args[0])
		return outcome{boolean: &b}, nil
	}
}

func opSearchInt(fn func(v *mdwstringx.Value, sub string) int) opFunc {
	return func(c *Case) (outcome, error) {
		if err := requireArgs(c, 1, 0); err != nil {
			return outcome{}, err
		}
		n := fn(mdwstringx.From(c.Input), c.Args[0])
		return outcome{integer: &n}, nil
	}
}

func opPad(fn func(v *mdwstringx.Value, target int, pad string) (*mdwstringx.Value, error)) opFunc {
	return func(c *Case) (outcome, error) {
		if err := requireArgs(c, 1, 1); err != nil {
			return outcome{}, err
		}
		v, err := fn(mdwstringx.From(c.Input), c.Ints[0], c.Args[0])
		if err != nil {
			return outcome{}, err
		}
		return valueOutcome(v), nil
	}
}

// opClone appends every arg to a clone and reports the original, which
// must be unchanged
func opClone(c *Case) (outcome, error) {
	original := mdwstringx.From(c.Input)
	clone := original.Clone()
	for _, arg := range c.Args {
		clone.Append(arg)
	}
	return valueOutcome(original), nil
}

// opMove reports the source and the destination contents after a move
func opMove(c *Case) (outcome, error) {
	src := mdwstringx.From(c.Input)
	dst := src.Move()
	return outcome{list: []string{src.Content(), dst.Content()}}, nil
}

func opAt(c *Case) (outcome, error) {
	if err := requireArgs(c, 0, 1); err != nil {
		return outcome{}, err
	}
	n := int(mdwstringx.From(c.Input).At(c.Ints[0]))
	return outcome{integer: &n}, nil
}

func opSlice(c *Case) (outcome, error) {
	if err := requireArgs(c, 0, 2); err != nil {
		return outcome{}, err
	}
	return valueOutcome(mdwstringx.From(c.Input).Slice(c.Ints[0], c.Ints[1])), nil
}

func opAppend(c *Case) (outcome, error) {
	v := mdwstringx.From(c.Input)
	for _, arg := range c.Args {
		v.Append(arg)
	}
	return valueOutcome(v), nil
}

func opAppendSelf(c *Case) (outcome, error) {
	v := mdwstringx.From(c.Input)
	v.AppendValue(v)
	return valueOutcome(v), nil
}

func opRepeat(c *Case) (outcome, error) {
	if err := requireArgs(c, 0, 1); err != nil {
		return outcome{}, err
	}
	return valueOutcome(mdwstringx.From(c.Input).Repeat(c.Ints[0])), nil
}

func opRepeatInPlace(c *Case) (outcome, error) {
	if err := requireArgs(c, 0, 1); err != nil {
		return outcome{}, err
	}
	v := mdwstringx.From(c.Input)
	v.RepeatInPlace(c.Ints[0])
	return valueOutcome(v), nil
}

func opSplit(c *Case) (outcome, error) {
	if err := requireArgs(c, 1, 0); err != nil {
		return outcome{}, err
	}
	s, err := mdwstringx.From(c.Input).Split(c.Args[0])
	if err != nil {
		return outcome{}, err
	}
	return outcome{list: s.Contents()}, nil
}

func opZip(c *Case) (outcome, error) {
	if err := requireArgs(c, 1, 0); err != nil {
		return outcome{}, err
	}
	return valueOutcome(mdwstringx.NewSequence(c.Items...).Zip(c.Args[0])), nil
}

// opRoundTrip reports whether splitting and zipping with the same token
// restores the input
func opRoundTrip(c *Case) (outcome, error) {
	if err := requireArgs(c, 1, 0); err != nil {
		return outcome{}, err
	}
	v := mdwstringx.From(c.Input)
	s, err := v.Split(c.Args[0])
	if err != nil {
		return outcome{}, err
	}
	b := s.Zip(c.Args[0]).Equal(v)
	return outcome{boolean: &b}, nil
}

func opReplace(c *Case) (outcome, error) {
	if err := requireArgs(c, 2, 0); err != nil {
		return outcome{}, err
	}
	v, err := mdwstringx.From(c.Input).Replace(c.Args[0], c.Args[1])
	if err != nil {
		return outcome{}, err
	}
	return valueOutcome(v), nil
}

func opUnique(c *Case) (outcome, error) {
	return outcome{list: mdwstringx.NewSequence(c.Items...).Unique().Contents()}, nil
}

func opCompare(c *Case) (outcome, error) {
	if err := requireArgs(c, 1, 0); err != nil {
		return outcome{}, err
	}
	n := mdwstringx.From(c.Input).Compare(mdwstringx.From(c.Args[0]))
	return outcome{integer: &n}, nil
}

// check compares an operation outcome with the expectation
func (e Expectation) check(op string, got outcome, err error) error {
	if e.Error != "" {
		if err == nil {
			return mismatch(op, "error", nil, e.Error)
		}
		if !mdwerror.HasCode(err, mdwerror.Code(e.Error)) {
			return mismatch(op, "error", string(mdwerror.GetCode(err)), e.Error)
		}
		return nil
	}
	if err != nil {
		return errors.OperationFailed(errors.ModuleConformance, op, err)
	}

	switch {
	case e.Value != nil && (got.value == nil || *got.value != *e.Value):
		return mismatch(op, "value", deref(got.value), *e.Value)
	case e.List != nil && !reflect.DeepEqual(got.list, e.List):
		return mismatch(op, "list", got.list, e.List)
	case e.Bool != nil && (got.boolean == nil || *got.boolean != *e.Bool):
		return mismatch(op, "bool", deref(got.boolean), *e.Bool)
	case e.Int != nil && (got.integer == nil || *got.integer != *e.Int):
		return mismatch(op, "int", deref(got.integer), *e.Int)
	}
	return nil
}

func mismatch(op, field string, got, want interface{}) error {
	return errors.ValidationFailed(errors.ModuleConformance, field, got,
		fmt.Sprintf("%s produced %#v, want %#v", op, got, want))
}

func deref[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
