package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")
)

// IPv4 rejection reasons, one per check, in the order the checks run.
// Each wraps ErrInvalidFormat.
var (
	ErrIPv4Empty           = ipv4Error("address is empty")
	ErrIPv4BoundaryDot     = ipv4Error("address starts or ends with a dot")
	ErrIPv4ConsecutiveDots = ipv4Error("address contains consecutive dots")
	ErrIPv4SegmentCount    = ipv4Error("address must have exactly 4 segments")
	ErrIPv4NonNumeric      = ipv4Error("segment is not a decimal number")
	ErrIPv4OutOfRange      = ipv4Error("segment is out of range 0-255")
	ErrIPv4LeadingZero     = ipv4Error("segment has a leading zero")
)

var ipv4Reasons = []error{
	ErrIPv4Empty,
	ErrIPv4BoundaryDot,
	ErrIPv4ConsecutiveDots,
	ErrIPv4SegmentCount,
	ErrIPv4NonNumeric,
	ErrIPv4OutOfRange,
	ErrIPv4LeadingZero,
}

type reasonError struct {
	msg string
}

func ipv4Error(msg string) error {
	return &reasonError{msg: msg}
}

func (e *reasonError) Error() string { return e.msg }

func (e *reasonError) Unwrap() error { return ErrInvalidFormat }

// ipv4Reason returns the text of the sentinel wrapped by err.
func ipv4Reason(err error) string {
	for _, reason := range ipv4Reasons {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}
	return err.Error()
}
