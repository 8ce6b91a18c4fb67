package report_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasneemo-o/ipv4-checker/pkg/report"
	"github.com/tasneemo-o/ipv4-checker/pkg/validator"
)

func TestDefaultCases(t *testing.T) {
	cases := report.DefaultCases()
	require.Len(t, cases, 15)

	for _, c := range cases {
		assert.NotEmpty(t, c.Name)
		assert.Equal(t, c.Want, validator.IsIPv4(c.Input), c.Name)
	}
}

func TestRun(t *testing.T) {
	cases := []report.Case{
		{Name: "a", Input: "1.1.1.1", Want: true},
		{Name: "b", Input: "1.1.1", Want: false},
		{Name: "c", Input: "01.1.1.1", Want: true},
	}

	results := report.Run(cases, validator.IsIPv4)
	require.Len(t, results, 3)
	assert.True(t, results[0].Passed())
	assert.True(t, results[1].Passed())
	assert.False(t, results[2].Passed())
	assert.Equal(t, "c", results[2].Name)

	passed, failed := report.Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, failed)
}

func TestRun_StubPredicateFailsValidCases(t *testing.T) {
	alwaysFalse := func(string) bool { return false }

	results := report.Run(report.DefaultCases(), alwaysFalse)
	_, failed := report.Summary(results)
	assert.Equal(t, 3, failed)
}

func TestPrinter(t *testing.T) {
	results := report.Run([]report.Case{
		{Name: "should accept standard valid IP address", Input: "192.168.1.1", Want: true},
		{Name: "broken expectation", Input: "192.168.1.500", Want: true},
	}, validator.IsIPv4)

	t.Run("plain output for non-terminal writers", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, report.NewPrinter(buf).Print(results))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Pass - should accept standard valid IP address", lines[0])
		assert.Equal(t, "Fail - broken expectation", lines[1])
		assert.Equal(t, "1/2 passed", lines[2])
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	t.Run("without color", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, report.NewPrinter(buf, report.WithoutColor()).Line(results[1]))
		assert.Equal(t, "Fail - broken expectation\n", buf.String())
	})

	t.Run("write error", func(t *testing.T) {
		err := report.NewPrinter(failingWriter{}).Print(results)
		assert.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestLoadCases(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "cases.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := write(t, `
- name: accepts loopback
  input: 127.0.0.1
  want: true
- name: rejects empty
  input: ""
  want: false
- name: rejects leading zero
  input: "010.0.0.1"
`)
		cases, err := report.LoadCases(path)
		require.NoError(t, err)
		require.Len(t, cases, 3)
		assert.Equal(t, report.Case{Name: "accepts loopback", Input: "127.0.0.1", Want: true}, cases[0])
		assert.Equal(t, "", cases[1].Input)
		assert.False(t, cases[2].Want)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := report.LoadCases(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, report.ErrReadCases)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := report.LoadCases(write(t, "name: [unterminated"))
		assert.ErrorIs(t, err, report.ErrDecodeCases)
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := report.LoadCases(write(t, "[]"))
		assert.ErrorIs(t, err, report.ErrNoCases)
	})

	t.Run("unnamed case", func(t *testing.T) {
		_, err := report.LoadCases(write(t, "- input: 1.1.1.1\n  want: true\n"))
		assert.ErrorIs(t, err, report.ErrUnnamedCase)
	})
}
