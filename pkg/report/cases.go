package report

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one labelled input with the expected predicate outcome.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Want  bool   `yaml:"want"`
}

// DefaultCases returns the built-in IPv4 examples.
func DefaultCases() []Case {
	return []Case{
		{Name: "should accept standard valid IP address", Input: "192.168.1.1", Want: true},
		{Name: "should accept IP with all zeros", Input: "0.0.0.0", Want: true},
		{Name: "should accept IP with all 255", Input: "255.255.255.255", Want: true},
		{Name: "should reject empty IP address", Input: "", Want: false},
		{Name: "should reject IP with leading dot", Input: ".192.168.1.1", Want: false},
		{Name: "should reject IP with trailing dot", Input: "192.168.1.1.", Want: false},
		{Name: "should reject IP with fewer than 4 segments", Input: "192.168.1", Want: false},
		{Name: "should reject IP with more than 4 segments", Input: "192.168.1.1.12", Want: false},
		{Name: "should reject IP with empty segment", Input: "192.168. .1", Want: false},
		{Name: "should reject IP with non-numeric segment", Input: "192.%.65.1", Want: false},
		{Name: "should reject IP with segment value greater than 255", Input: "192.168.1.500", Want: false},
		{Name: "should reject IP with negative segment value", Input: "-192.168.1.1", Want: false},
		{Name: "should reject IP with leading zeros in segment", Input: "0192.168.1.1", Want: false},
		{Name: "should reject IP with consecutive dots", Input: "192.168..1.1", Want: false},
		{Name: "should reject IP with invalid separators", Input: "192-168-1-1", Want: false},
	}
}

// LoadCases reads a YAML list of cases from path.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadCases, err)
	}

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, errors.Join(ErrDecodeCases, err)
	}

	if len(cases) == 0 {
		return nil, ErrNoCases
	}

	for i, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: case #%d", ErrUnnamedCase, i+1)
		}
	}

	return cases, nil
}
