// Package conformance runs data-driven suites against the stringx API.
//
// A suite file lists cases, each naming an operation, an input and the
// expected outcome:
//
//	name: split
//	tests:
//	  - name: keeps empty segments
//	    op: split
//	    input: "a,b,,c"
//	    args: [","]
//	    expect:
//	      list: ["a", "b", "", "c"]
//
// Suites are YAML (.yaml, .yml) or TOML (.toml). An expectation holds a
// value, list, bool or int result, or the code of the error the operation
// must fail with. Ops lists the supported operations.
//
// Settings for a run come from a TOML or YAML file with XLSTR_ environment
// overrides:
//
//	settings, err := conformance.LoadSettings("xlstr.toml")
//	if err != nil {
//		return err
//	}
//	report, err := settings.Run(os.Stderr)
//	if err == nil && !report.OK() {
//		fmt.Print(report.Summary())
//	}
package conformance
