// File: schema.go
// Title: Conformance Suite Schema
// Description: Types describing data-driven conformance suites for stringx.
//              Suites are decoded from YAML or TOML files.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package conformance

// Suite represents one suite file
type Suite struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description,omitempty" toml:"description"`
	Tests       []Case `yaml:"tests" toml:"tests"`
}

// Case is a single operation applied to an input value
type Case struct {
	Name        string      `yaml:"name" toml:"name"`
	Description string      `yaml:"description,omitempty" toml:"description"`
	Skip        interface{} `yaml:"skip,omitempty" toml:"skip"` // bool or reason string
	Op          string      `yaml:"op" toml:"op"`
	Input       string      `yaml:"input,omitempty" toml:"input"`
	Items       []string    `yaml:"items,omitempty" toml:"items"` // sequence contents for zip and unique
	Args        []string    `yaml:"args,omitempty" toml:"args"`
	Ints        []int       `yaml:"ints,omitempty" toml:"ints"`
	Expect      Expectation `yaml:"expect" toml:"expect"`
}

// Expectation defines the result a case must produce. Exactly one of the
// fields is normally set; Error names an error code the operation must
// fail with.
type Expectation struct {
	Value *string  `yaml:"value,omitempty" toml:"value"`
	List  []string `yaml:"list,omitempty" toml:"list"`
	Bool  *bool    `yaml:"bool,omitempty" toml:"bool"`
	Int   *int     `yaml:"int,omitempty" toml:"int"`
	Error string   `yaml:"error,omitempty" toml:"error"`
}

// IsEmpty reports whether no expectation is set
func (e Expectation) IsEmpty() bool {
	return e.Value == nil && e.List == nil && e.Bool == nil && e.Int == nil && e.Error == ""
}

// IsSkipped returns true and a reason if the case should not run
func (c *Case) IsSkipped() (bool, string) {
	switch v := c.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
	case string:
		if v != "" {
			return true, v
		}
	}
	return false, ""
}
