package manager

import (
	"github.com/dmitrymomot/vehiclekit/pkg/validate"
	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// Input carries the user-editable fields of a vehicle record. Dates and ids
// are never part of it: checkin/checkout stamps belong to the lifecycle
// operations and the id belongs to the store.
type Input struct {
	Plate   string
	Chassis string
	Renavam string
	Model   string
	Make    string
	Year    string
}

// Validate runs every field through its rule and accumulates all failures.
func (in Input) Validate() error {
	return validate.Apply(
		validate.FieldRule(validate.FieldPlate, in.Plate),
		validate.FieldRule(validate.FieldChassis, in.Chassis),
		validate.FieldRule(validate.FieldRenavam, in.Renavam),
		validate.FieldRule(validate.FieldModel, in.Model),
		validate.FieldRule(validate.FieldMake, in.Make),
		validate.FieldRule(validate.FieldYear, in.Year),
	)
}

// record builds the descriptive part of a store record from normalized
// input. Partition and checkin fields are filled in by the caller.
func (in Input) record() vehicle.Record {
	return vehicle.Record{
		Plate:   validate.NormalizePlate(in.Plate),
		Chassis: validate.NormalizeChassis(in.Chassis),
		Renavam: validate.Normalize(in.Renavam),
		Model:   validate.Normalize(in.Model),
		Make:    validate.Normalize(in.Make),
		Year:    validate.Normalize(in.Year),
	}
}
