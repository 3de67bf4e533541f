// Package validation checks request payloads against their struct tags.
package validation

// Validator validates a struct and returns a map of field names to messages.
// A nil map means the struct is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
