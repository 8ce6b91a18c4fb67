// Package validator checks that text is a well-formed dotted-decimal IPv4
// address and plugs that check into a small rule-based validation API.
//
// IsIPv4 is the predicate. It accepts exactly four dot-separated segments,
// each made of ASCII digits, each in the range 0-255 and without a leading
// zero ("0" itself is fine). Shorthand forms ("192.168.1"), integer forms,
// octal or hex segments, signs, whitespace and IPv6 are all rejected. The
// function is pure: it never panics, keeps no state and is safe to call from
// any number of goroutines.
//
//	validator.IsIPv4("192.168.1.1")  // true
//	validator.IsIPv4("0192.168.1.1") // false
//
// ValidateIPv4 runs the same checks and reports which one failed first as an
// error wrapping one of the ErrIPv4* sentinels:
//
//	if err := validator.ValidateIPv4(input); errors.Is(err, validator.ErrIPv4LeadingZero) {
//	    // ...
//	}
//
// # Rules
//
// ValidIPv4 wraps the check in a Rule so it can be combined with other rules
// through Apply, which aggregates failures into ValidationErrors. Each
// ValidationError carries a translation key ("validation.ipv4") and the
// failing reason under the "reason" translation value.
//
//	err := validator.Apply(
//	    validator.ValidIPv4("gateway", gateway),
//	    validator.ValidIPv4("dns", dns),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Fields(), verrs.Get("dns"), ...
//	}
package validator
