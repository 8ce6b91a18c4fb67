// Package report runs a list of labelled example inputs through a predicate
// and prints a coloured pass/fail line for each one.
//
// DefaultCases returns the built-in IPv4 examples; LoadCases reads the same
// shape from a YAML file:
//
//	- name: should accept standard valid IP address
//	  input: 192.168.1.1
//	  want: true
//
// Run evaluates the cases in order and Printer renders the results:
//
//	results := report.Run(report.DefaultCases(), validator.IsIPv4)
//	report.NewPrinter(os.Stdout).Print(results)
package report
