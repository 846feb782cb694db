package model

// ValidationKind tags the variant of a validation rule. The set is closed so
// generators can check dialect support exhaustively.
type ValidationKind string

const (
	ValidationPresence  ValidationKind = "presence"
	ValidationLength    ValidationKind = "length"
	ValidationRange     ValidationKind = "range"
	ValidationFormat    ValidationKind = "format"
	ValidationInclusion ValidationKind = "inclusion"
	ValidationExclusion ValidationKind = "exclusion"
	ValidationEmail     ValidationKind = "email"
	ValidationCustom    ValidationKind = "custom"
)

// ValidationRule is the tagged union over validation variants. Only the
// parameters of the tagged variant are consulted; the rest stay zero.
//
// Rules may reference field names that do not exist on the model. The
// generator emits them as-is without cross-checking, matching the permissive
// behaviour of the server-side metadata extractors this package serves.
type ValidationRule struct {
	Kind  ValidationKind
	Field string

	// length (rune count) and range (numeric value) bounds.
	Min *float64
	Max *float64

	// format: regular expression source passed through verbatim.
	Pattern string

	// inclusion/exclusion value list.
	List []string

	// custom: the client-side validator type name plus extra configuration
	// emitted verbatim, keyed by option name.
	Type    string
	Options map[string]string
}

func PresenceValidation(field string) ValidationRule {
	return ValidationRule{Kind: ValidationPresence, Field: field}
}

// LengthValidation bounds the rune count of a field value. Either bound may
// be nil for "unbounded on that side".
func LengthValidation(field string, min, max *float64) ValidationRule {
	return ValidationRule{Kind: ValidationLength, Field: field, Min: min, Max: max}
}

// RangeValidation bounds the numeric value of a field.
func RangeValidation(field string, min, max *float64) ValidationRule {
	return ValidationRule{Kind: ValidationRange, Field: field, Min: min, Max: max}
}

// FormatValidation checks a field value against a regular expression. The
// pattern is emitted verbatim; its syntax is not validated here.
func FormatValidation(field, pattern string) ValidationRule {
	return ValidationRule{Kind: ValidationFormat, Field: field, Pattern: pattern}
}

func InclusionValidation(field string, list ...string) ValidationRule {
	return ValidationRule{Kind: ValidationInclusion, Field: field, List: list}
}

func ExclusionValidation(field string, list ...string) ValidationRule {
	return ValidationRule{Kind: ValidationExclusion, Field: field, List: list}
}

func EmailValidation(field string) ValidationRule {
	return ValidationRule{Kind: ValidationEmail, Field: field}
}

// CustomValidation references a validator type registered on the client.
// Option values are emitted verbatim, so callers quote string options
// themselves.
func CustomValidation(field, validatorType string, options map[string]string) ValidationRule {
	return ValidationRule{
		Kind:    ValidationCustom,
		Field:   field,
		Type:    validatorType,
		Options: options,
	}
}
