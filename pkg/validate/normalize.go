package validate

import "strings"

// NormalizePlate trims and uppercases a plate the way the form surfaces
// display it. Validation itself never mutates its input; normalization is an
// explicit caller-side step.
func NormalizePlate(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// NormalizeChassis trims and uppercases a chassis number for storage.
func NormalizeChassis(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// Normalize trims surrounding whitespace from a free-text field.
func Normalize(value string) string {
	return strings.TrimSpace(value)
}
