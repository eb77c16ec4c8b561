// Package filtration: functional configuration for the numeric policy.
// Defaults are documented constants; WithX constructors are pure setters
// applied last-writer-wins by gatherOptions.
package filtration

// Numeric policy defaults — single source of truth for zero-value behavior.
const (
	// DefaultValidateValues toggles strict finite-value validation of the
	// scalar field. When enabled, NaN and -Inf are always rejected; +Inf is
	// rejected unless AllowInf is set.
	DefaultValidateValues = true

	// DefaultAllowInf permits +Inf scalar values as a "vertex never appears"
	// sentinel (masked vertices). NaN and -Inf remain rejected under
	// validation even when this mode is enabled.
	DefaultAllowInf = false
)

// Option mutates the builder options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported to prevent external mutation; Build accepts ...Option.
type options struct {
	validate bool // DefaultValidateValues
	allowInf bool // DefaultAllowInf
}

// WithNoValidate disables NaN/Inf validation of the scalar field.
// Use only when ingesting pre-sanitized data; invalid values propagate
// directly into edge weights.
func WithNoValidate() Option {
	return func(o *options) { o.validate = false }
}

// WithAllowInf permits +Inf field values as "vertex never appears" sentinels.
// NaN and -Inf are still rejected while validation is enabled.
func WithAllowInf() Option {
	return func(o *options) { o.allowInf = true }
}

// gatherOptions resolves setters against the documented defaults,
// last-writer-wins.
func gatherOptions(user ...Option) options {
	o := options{
		validate: DefaultValidateValues,
		allowInf: DefaultAllowInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
