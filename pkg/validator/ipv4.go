package validator

import (
	"fmt"
	"strconv"
	"strings"
)

const ipv4Segments = 4

// IsIPv4 reports whether address is a well-formed dotted-decimal IPv4
// address: four dot-separated segments of ASCII digits, each in [0, 255],
// without leading zeros. It never panics and has no side effects.
func IsIPv4(address string) bool {
	return ValidateIPv4(address) == nil
}

// ValidateIPv4 applies the same checks as IsIPv4 and returns an error
// wrapping the sentinel of the first check that failed, or nil.
func ValidateIPv4(address string) error {
	if address == "" {
		return ErrIPv4Empty
	}

	if strings.HasPrefix(address, ".") || strings.HasSuffix(address, ".") {
		return ErrIPv4BoundaryDot
	}

	if strings.Contains(address, "..") {
		return ErrIPv4ConsecutiveDots
	}

	segments := strings.Split(address, ".")
	if len(segments) != ipv4Segments {
		return fmt.Errorf("%w: got %d", ErrIPv4SegmentCount, len(segments))
	}

	for i, segment := range segments {
		if !isDecimal(segment) {
			return fmt.Errorf("%w: segment %d %q", ErrIPv4NonNumeric, i+1, segment)
		}

		// All digits, so the only possible parse error is overflow.
		value, err := strconv.Atoi(segment)
		if err != nil || value < 0 || value > 255 {
			return fmt.Errorf("%w: segment %d %q", ErrIPv4OutOfRange, i+1, segment)
		}

		if len(segment) > 1 && segment[0] == '0' {
			return fmt.Errorf("%w: segment %d %q", ErrIPv4LeadingZero, i+1, segment)
		}
	}

	return nil
}

// isDecimal reports whether s is a non-empty run of ASCII digits.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidIPv4 validates that a string is a dotted-decimal IPv4 address.
// The failing check is exposed through the "reason" translation value.
func ValidIPv4(field, value string) Rule {
	err := ValidateIPv4(value)

	values := map[string]any{
		"field": field,
	}
	if err != nil {
		values["reason"] = ipv4Reason(err)
	}

	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid IPv4 address",
			TranslationKey:    "validation.ipv4",
			TranslationValues: values,
		},
	}
}
