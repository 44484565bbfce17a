// File: transform_test.go
// Title: Unit Tests for Value Transformations and Queries
// Description: Table-driven tests for concatenation, slicing, repetition,
//              padding, case conversion, trimming, searching and character
//              classification.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-10-19 v0.2.0: Tests for Value methods

package stringx

import (
	"testing"

	mdwerror "github.com/msto63/xlstr/core/error"
	"github.com/msto63/xlstr/core/errors"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		parts    []string
		expected string
	}{
		{"no parts", "abc", nil, "abc"},
		{"one part", "abc", []string{"def"}, "abcdef"},
		{"many parts", "a", []string{"b", "", "cd"}, "abcd"},
		{"empty base", "", []string{"x"}, "x"},
		{"zero byte in part", "a", []string{"b\x00c", "d"}, "abd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := From(tt.base)
			got := v.Concat(tt.parts...)
			if got.Content() != tt.expected {
				t.Errorf("Concat(%q, %q) = %q; want %q", tt.base, tt.parts, got.Content(), tt.expected)
			}
			if v.Content() != tt.base {
				t.Errorf("Concat() modified the receiver: %q", v.Content())
			}
		})
	}

	if got := From("ab").ConcatValue(From("cd")).Content(); got != "abcd" {
		t.Errorf("ConcatValue() = %q; want %q", got, "abcd")
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		start, end int
		expected   string
	}{
		{"middle", "abcdef", 1, 4, "bcd"},
		{"whole", "abcdef", 0, 6, "abcdef"},
		{"end clamped", "abcdef", 2, 100, "cdef"},
		{"start at size", "abcdef", 6, 8, ""},
		{"start beyond size", "abcdef", 10, 12, ""},
		{"end equals start", "abcdef", 3, 3, ""},
		{"end before start", "abcdef", 4, 2, ""},
		{"negative start", "abcdef", -3, 2, "ab"},
		{"negative end", "abcdef", 0, -1, ""},
		{"empty input", "", 0, 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.input).Slice(tt.start, tt.end)
			if got.Content() != tt.expected {
				t.Errorf("Slice(%q, %d, %d) = %q; want %q", tt.input, tt.start, tt.end, got.Content(), tt.expected)
			}
		})
	}
}

func TestRepeat(t *testing.T) {
	tests := []struct {
		input    string
		count    int
		expected string
	}{
		{"ab", 3, "ababab"},
		{"ab", 1, "ab"},
		{"ab", 0, ""},
		{"ab", -1, ""},
		{"", 4, ""},
	}

	for _, tt := range tests {
		v := From(tt.input)
		if got := v.Repeat(tt.count).Content(); got != tt.expected {
			t.Errorf("Repeat(%q, %d) = %q; want %q", tt.input, tt.count, got, tt.expected)
		}
		if v.Content() != tt.input {
			t.Errorf("Repeat() modified the receiver: %q", v.Content())
		}
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		target    int
		pad       string
		wantEnd   string
		wantStart string
	}{
		{"cycling pad", "ab", 5, "xy", "abxyx", "xyxab"},
		{"already long enough", "abcdef", 3, "x", "abcdef", "abcdef"},
		{"exact size", "abc", 3, "x", "abc", "abc"},
		{"single byte pad", "7", 3, "0", "700", "007"},
		{"empty input", "", 4, "ab", "abab", "abab"},
		{"negative target", "ab", -5, "x", "ab", "ab"},
		{"empty pad not needed", "abc", 2, "", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := From(tt.input)

			end, err := v.PadEnd(tt.target, tt.pad)
			if err != nil {
				t.Fatalf("PadEnd(%q, %d, %q) error = %v", tt.input, tt.target, tt.pad, err)
			}
			if end.Content() != tt.wantEnd {
				t.Errorf("PadEnd(%q, %d, %q) = %q; want %q", tt.input, tt.target, tt.pad, end.Content(), tt.wantEnd)
			}

			start, err := v.PadStart(tt.target, tt.pad)
			if err != nil {
				t.Fatalf("PadStart(%q, %d, %q) error = %v", tt.input, tt.target, tt.pad, err)
			}
			if start.Content() != tt.wantStart {
				t.Errorf("PadStart(%q, %d, %q) = %q; want %q", tt.input, tt.target, tt.pad, start.Content(), tt.wantStart)
			}
		})
	}
}

func TestPadRejectsEmptyPad(t *testing.T) {
	v := From("ab")

	for name, pad := range map[string]func() (*Value, error){
		"PadEnd":   func() (*Value, error) { return v.PadEnd(5, "") },
		"PadStart": func() (*Value, error) { return v.PadStart(5, "\x00x") },
	} {
		result, err := pad()
		if err == nil || result != nil {
			t.Errorf("%s with empty pad = %v, %v; want error", name, result, err)
			continue
		}
		if !mdwerror.HasCode(err, errors.CodeStringxEmptyPad) {
			t.Errorf("%s error code = %v; want %s", name, mdwerror.GetCode(err), errors.CodeStringxEmptyPad)
		}
		if errors.ExtractModule(err) != errors.ModuleStringx {
			t.Errorf("%s error module = %q", name, errors.ExtractModule(err))
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("MustPadEnd with empty pad did not panic")
		}
	}()
	v.MustPadEnd(5, "")
}

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		input     string
		wantUpper string
		wantLower string
	}{
		{"Hello, World 42", "HELLO, WORLD 42", "hello, world 42"},
		{"", "", ""},
		{"already UPPER", "ALREADY UPPER", "already upper"},
		{"\xe4bc", "\xe4BC", "\xe4bc"},
	}

	for _, tt := range tests {
		v := From(tt.input)
		if got := v.ToUpper().Content(); got != tt.wantUpper {
			t.Errorf("ToUpper(%q) = %q; want %q", tt.input, got, tt.wantUpper)
		}
		if got := v.ToLower().Content(); got != tt.wantLower {
			t.Errorf("ToLower(%q) = %q; want %q", tt.input, got, tt.wantLower)
		}
		if v.Content() != tt.input {
			t.Errorf("case conversion modified the receiver: %q", v.Content())
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantBoth  string
		wantLeft  string
		wantRight string
	}{
		{"blank", "   ", "", "", ""},
		{"empty", "", "", "", ""},
		{"both sides", " \t hi there \n", "hi there", "hi there \n", " \t hi there"},
		{"vertical tab and form feed", "\v\fx\r", "x", "x\r", "\v\fx"},
		{"nothing to trim", "abc", "abc", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := From(tt.input)
			if got := v.Trim().Content(); got != tt.wantBoth {
				t.Errorf("Trim(%q) = %q; want %q", tt.input, got, tt.wantBoth)
			}
			if got := v.TrimLeft().Content(); got != tt.wantLeft {
				t.Errorf("TrimLeft(%q) = %q; want %q", tt.input, got, tt.wantLeft)
			}
			if got := v.TrimRight().Content(); got != tt.wantRight {
				t.Errorf("TrimRight(%q) = %q; want %q", tt.input, got, tt.wantRight)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		input     string
		sub       string
		starts    bool
		ends      bool
		includes  bool
		index     int
		lastIndex int
	}{
		{"aXaXa", "aXa", true, true, true, 0, 2},
		{"hello", "l", false, false, true, 2, 3},
		{"hello", "hello", true, true, true, 0, 0},
		{"hello", "hello!", false, false, false, -1, -1},
		{"hello", "z", false, false, false, -1, -1},
		{"hello", "", true, true, true, 0, 5},
		{"", "", true, true, true, 0, 0},
		{"", "a", false, false, false, -1, -1},
		{"aaaa", "aa", true, true, true, 0, 2},
	}

	for _, tt := range tests {
		v := From(tt.input)
		if got := v.StartsWith(tt.sub); got != tt.starts {
			t.Errorf("StartsWith(%q, %q) = %v; want %v", tt.input, tt.sub, got, tt.starts)
		}
		if got := v.EndsWith(tt.sub); got != tt.ends {
			t.Errorf("EndsWith(%q, %q) = %v; want %v", tt.input, tt.sub, got, tt.ends)
		}
		if got := v.Includes(tt.sub); got != tt.includes {
			t.Errorf("Includes(%q, %q) = %v; want %v", tt.input, tt.sub, got, tt.includes)
		}
		if got := v.IndexOf(tt.sub); got != tt.index {
			t.Errorf("IndexOf(%q, %q) = %d; want %d", tt.input, tt.sub, got, tt.index)
		}
		if got := v.LastIndexOf(tt.sub); got != tt.lastIndex {
			t.Errorf("LastIndexOf(%q, %q) = %d; want %d", tt.input, tt.sub, got, tt.lastIndex)
		}

		o := From(tt.sub)
		if v.StartsWithValue(o) != tt.starts || v.EndsWithValue(o) != tt.ends || v.IncludesValue(o) != tt.includes {
			t.Errorf("Value forms of StartsWith/EndsWith/Includes(%q, %q) disagree with string forms", tt.input, tt.sub)
		}
		if got := v.IndexOfValue(o); got != tt.index {
			t.Errorf("IndexOfValue(%q, %q) = %d; want %d", tt.input, tt.sub, got, tt.index)
		}
		if got := v.LastIndexOfValue(o); got != tt.lastIndex {
			t.Errorf("LastIndexOfValue(%q, %q) = %d; want %d", tt.input, tt.sub, got, tt.lastIndex)
		}
	}

	self := From("abc")
	if !self.StartsWithValue(self) || !self.EndsWithValue(self) || self.IndexOfValue(self) != 0 || self.LastIndexOfValue(self) != 0 {
		t.Error("searching a value for itself should match at 0")
	}
}

func TestPadValue(t *testing.T) {
	v := From("ab")

	got, err := v.PadEndValue(5, From("xy"))
	if err != nil || got.Content() != "abxyx" {
		t.Errorf("PadEndValue(5, %q) = %v, %v; want %q", "xy", got, err, "abxyx")
	}
	got, err = v.PadStartValue(6, v)
	if err != nil || got.Content() != "ababab" {
		t.Errorf("PadStartValue(6, self) = %v, %v; want %q", got, err, "ababab")
	}
	if _, err := v.PadEndValue(3, New()); !mdwerror.HasCode(err, errors.CodeStringxEmptyPad) {
		t.Errorf("PadEndValue with empty pad error = %v; want %s", err, errors.CodeStringxEmptyPad)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		input        string
		alphabetic   bool
		alphanumeric bool
	}{
		{"", true, true},
		{"abcXYZ", true, true},
		{"abc123", false, true},
		{"abc 123", false, false},
		{"under_score", false, false},
		{"\xe4", false, false},
	}

	for _, tt := range tests {
		v := From(tt.input)
		if got := v.IsAlphabetic(); got != tt.alphabetic {
			t.Errorf("IsAlphabetic(%q) = %v; want %v", tt.input, got, tt.alphabetic)
		}
		if got := v.IsAlphanumeric(); got != tt.alphanumeric {
			t.Errorf("IsAlphanumeric(%q) = %v; want %v", tt.input, got, tt.alphanumeric)
		}
	}
}
