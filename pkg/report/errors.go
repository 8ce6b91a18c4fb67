package report

import "errors"

var (
	ErrReadCases   = errors.New("failed to read cases file")
	ErrDecodeCases = errors.New("failed to decode cases file")
	ErrNoCases     = errors.New("cases file contains no cases")
	ErrUnnamedCase = errors.New("case has no name")
)
