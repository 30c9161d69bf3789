package validate

import (
	"fmt"
	"strings"
)

// FieldError is a single failed rule: the field it concerns and the reason.
type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects every failed rule of a validation pass. Operations report
// all failures jointly, not just the first one, so the user can fix the whole
// form in one go.
type Errors []FieldError

func (ve Errors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any failure concerns the given field.
func (ve Errors) Has(field Field) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the failure messages in rule order.
func (ve Errors) Messages() []string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return msgs
}
