package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Pre-compiled patterns; compiled once, rules stay allocation-light.
var (
	// Three letters, a digit, one alphanumeric, two digits. Covers both the
	// Mercosul format (ABC1D23) and the legacy format (ABC1234).
	plateRegex = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

	// 17 VIN characters; I, O and Q are excluded to avoid confusion with 1 and 0.
	chassisRegex = regexp.MustCompile(`(?i)^[A-HJ-NPR-Z0-9]{17}$`)

	renavamRegex = regexp.MustCompile(`^[0-9]{11}$`)

	// Letters including the Latin-1 accented range, digits, space, hyphen, period.
	descriptiveRegex = regexp.MustCompile(`^[A-Za-zÀ-ÿ0-9\s\-.]{2,50}$`)
)

const (
	minYear = 1900

	plateMessage   = "must follow the Mercosul format (e.g. ABC1D23) or the legacy format (e.g. ABC1234)"
	chassisMessage = "must contain exactly 17 alphanumeric characters, excluding the letters I, O and Q"
	renavamMessage = "must contain exactly 11 numeric digits"
	lengthMessage  = "must be between 2 and 50 characters"
)

// Plate checks the license plate format. Matching is done against the
// uppercased value, so lowercase input passes; the argument itself is left
// untouched.
func Plate(value string) Result {
	return Result{
		Valid:   plateRegex.MatchString(strings.ToUpper(value)),
		Message: plateMessage,
	}
}

// Chassis checks the 17-character VIN, case-insensitively.
func Chassis(value string) Result {
	return Result{
		Valid:   chassisRegex.MatchString(value),
		Message: chassisMessage,
	}
}

// Renavam checks the 11-digit registration number.
func Renavam(value string) Result {
	return Result{
		Valid:   renavamRegex.MatchString(value),
		Message: renavamMessage,
	}
}

// Model checks the descriptive model field.
func Model(value string) Result {
	return descriptive(value)
}

// Make checks the descriptive make field.
func Make(value string) Result {
	return descriptive(value)
}

// descriptive matches 2-50 characters of letters (basic Latin plus the
// Latin-1 accented range), digits, spaces, hyphens and periods. Input is
// normalized to NFC first: some input methods deliver decomposed accents,
// which would otherwise fall outside the single-rune accented range.
func descriptive(value string) Result {
	return Result{
		Valid:   descriptiveRegex.MatchString(norm.NFC.String(value)),
		Message: lengthMessage,
	}
}

// Year checks the model year: the string must be exactly 4 characters long,
// parse as an integer, and fall between 1900 and next calendar year. The
// length check is intentionally stricter than the numeric range.
func Year(value string) Result {
	maxYear := time.Now().Year() + 1
	msg := fmt.Sprintf("must be a 4-digit year between %d and %d", minYear, maxYear)

	if len(value) != 4 {
		return Result{Valid: false, Message: msg}
	}
	y, err := strconv.Atoi(value)
	if err != nil {
		return Result{Valid: false, Message: msg}
	}
	return Result{Valid: y >= minYear && y <= maxYear, Message: msg}
}

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error FieldError
}

// FieldRule builds a Rule from the closed field registry. The field's rule
// runs once; verdict and message both come from the same Result.
func FieldRule(field Field, value string) Rule {
	res := Check(field, value)
	return Rule{
		Check: func() bool { return res.Valid },
		Error: FieldError{Field: field, Message: res.Message},
	}
}

// Apply runs every rule and accumulates all failures. It returns nil when
// everything passes, otherwise an Errors carrying one FieldError per failed
// rule, in rule order.
func Apply(rules ...Rule) error {
	var errs Errors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
