package validate

// Field identifies a validated vehicle record field. The set is closed: every
// field maps to exactly one rule in Check, and the compiler flags a missing
// case when a field is added.
type Field string

const (
	FieldPlate   Field = "plate"
	FieldChassis Field = "chassisNumber"
	FieldRenavam Field = "registrationNumber"
	FieldModel   Field = "model"
	FieldMake    Field = "make"
	FieldYear    Field = "year"
)

// Fields lists every validated field in form order.
func Fields() []Field {
	return []Field{FieldPlate, FieldChassis, FieldRenavam, FieldModel, FieldMake, FieldYear}
}

// Result is a single-field verdict: pass/fail plus the reason shown to the
// user when the value fails.
type Result struct {
	Valid   bool
	Message string
}

// Check runs the rule for a single field against a raw string.
func Check(field Field, value string) Result {
	switch field {
	case FieldPlate:
		return Plate(value)
	case FieldChassis:
		return Chassis(value)
	case FieldRenavam:
		return Renavam(value)
	case FieldModel:
		return Model(value)
	case FieldMake:
		return Make(value)
	case FieldYear:
		return Year(value)
	default:
		return Result{Valid: false, Message: "unknown field"}
	}
}
