package validate_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vehiclekit/pkg/validate"
)

func TestPlate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"mercosul format", "ABC1D23", true},
		{"mercosul lowercase", "abc1d23", true},
		{"legacy format", "ABC1234", true},
		{"legacy lowercase", "abc1234", true},
		{"too short", "AB1234", false},
		{"too long", "ABCD1234", false},
		{"digits in letter block", "AB11D23", false},
		{"letter in trailing digits", "ABC1D2X", false},
		{"empty", "", false},
		{"whitespace only", "       ", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := validate.Plate(tt.value)
			assert.Equal(t, tt.valid, result.Valid)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestPlateDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	value := "abc1d23"
	_ = validate.Plate(value)
	assert.Equal(t, "abc1d23", value)
}

func TestChassis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"valid VIN", "1HGCM82633A004352", true},
		{"valid VIN lowercase", "1hgcm82633a004352", true},
		{"contains excluded I", "1HGCM82633A00435I", false},
		{"contains excluded O", "OHGCM82633A004352", false},
		{"contains excluded Q", "1HGCM82633Q004352", false},
		{"sixteen characters", "1HGCM82633A00435", false},
		{"eighteen characters", "1HGCM82633A0043522", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, validate.Chassis(tt.value).Valid)
		})
	}
}

func TestRenavam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"eleven digits", "12345678901", true},
		{"leading zeros preserved", "00000000001", true},
		{"ten digits", "1234567890", false},
		{"twelve digits", "123456789012", false},
		{"trailing letter", "1234567890A", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, validate.Renavam(tt.value).Valid)
		})
	}
}

func TestDescriptiveFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain model", "Uno Mille", true},
		{"accented make", "Citroën", true},
		{"digits and hyphen", "C4-Picasso 2.0", true},
		{"single character", "A", false},
		{"fifty characters", strings.Repeat("a", 50), true},
		{"fifty-one characters", strings.Repeat("a", 51), false},
		{"forbidden symbol", "Gol@2020", false},
		{"empty", "", false},
		{"decomposed accent normalizes", "Citroën", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, validate.Model(tt.value).Valid, "model")
			assert.Equal(t, tt.valid, validate.Make(tt.value).Valid, "make")
		})
	}
}

func TestYear(t *testing.T) {
	t.Parallel()

	current := time.Now().Year()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"current year", fmt.Sprintf("%d", current), true},
		{"next year", fmt.Sprintf("%d", current+1), true},
		{"year after next", fmt.Sprintf("%d", current+2), false},
		{"lower bound", "1900", true},
		{"below lower bound", "1899", false},
		{"two digits in range spirit", "99", false},
		{"padded six digits", "020000", false},
		{"not a number", "20a0", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := validate.Year(tt.value)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Contains(t, result.Message, "1900")
		})
	}
}

func TestCheckDispatch(t *testing.T) {
	t.Parallel()

	for _, field := range validate.Fields() {
		field := field
		t.Run(string(field), func(t *testing.T) {
			t.Parallel()
			result := validate.Check(field, "")
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Message)
		})
	}

	assert.False(t, validate.Check(validate.Field("bogus"), "x").Valid)
}

func TestFieldRuleMatchesCheck(t *testing.T) {
	t.Parallel()

	// Verdict and message of a built rule agree with a direct Check call for
	// the same field and value.
	for _, field := range validate.Fields() {
		for _, value := range []string{"", "ABC1D23", "2020", "Uno Mille"} {
			rule := validate.FieldRule(field, value)
			want := validate.Check(field, value)
			assert.Equal(t, want.Valid, rule.Check(), "field %s value %q", field, value)
			assert.Equal(t, field, rule.Error.Field)
			assert.Equal(t, want.Message, rule.Error.Message)
		}
	}
}

func TestApplyAccumulatesAllFailures(t *testing.T) {
	t.Parallel()

	err := validate.Apply(
		validate.FieldRule(validate.FieldPlate, "bad"),
		validate.FieldRule(validate.FieldChassis, "1HGCM82633A004352"),
		validate.FieldRule(validate.FieldModel, ""),
		validate.FieldRule(validate.FieldYear, "99"),
	)
	require.Error(t, err)

	var verrs validate.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 3)
	assert.True(t, verrs.Has(validate.FieldPlate))
	assert.True(t, verrs.Has(validate.FieldModel))
	assert.True(t, verrs.Has(validate.FieldYear))
	assert.False(t, verrs.Has(validate.FieldChassis))
	assert.Len(t, verrs.Messages(), 3)
}

func TestApplyPasses(t *testing.T) {
	t.Parallel()

	err := validate.Apply(
		validate.FieldRule(validate.FieldPlate, "ABC1D23"),
		validate.FieldRule(validate.FieldRenavam, "12345678901"),
	)
	assert.NoError(t, err)
}

func TestNormalizeHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ABC1D23", validate.NormalizePlate("  abc1d23 "))
	assert.Equal(t, "9BWZZZ377VT004251", validate.NormalizeChassis(" 9bwzzz377vt004251 "))
	assert.Equal(t, "Uno Mille", validate.Normalize("  Uno Mille  "))
}
