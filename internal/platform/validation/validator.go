// Package validation checks decoded request payloads against struct tags.
package validation

// Validator returns the violated rules keyed by JSON field name, or nil when
// the value is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
