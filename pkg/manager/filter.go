package manager

import (
	"strings"

	"github.com/dmitrymomot/vehiclekit/pkg/validate"
	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// Filter restricts a listing. The zero value selects everything.
type Filter struct {
	// Partition restricts to the active or history half of the record set.
	// Empty means PartitionAll.
	Partition vehicle.Partition
	// Field, when set, limits the substring match to a single field.
	// When empty, Query is matched against every descriptive field.
	Field validate.Field
	// Query is a case-insensitive substring. Empty disables the text match.
	Query string
}

// Apply filters records in place-order: partition first, then the substring
// predicate. The store's natural order is preserved; nothing is re-sorted.
func (f Filter) Apply(records []vehicle.Record) []vehicle.Record {
	partition := f.Partition
	if partition == "" {
		partition = vehicle.PartitionAll
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]vehicle.Record, 0, len(records))
	for i := range records {
		r := &records[i]
		if !partition.Matches(r) {
			continue
		}
		if query != "" && !f.matches(r, query) {
			continue
		}
		out = append(out, *r)
	}
	return out
}

func (f Filter) matches(r *vehicle.Record, query string) bool {
	if f.Field != "" {
		return contains(fieldValue(r, f.Field), query)
	}
	for _, field := range validate.Fields() {
		if contains(fieldValue(r, field), query) {
			return true
		}
	}
	return false
}

func fieldValue(r *vehicle.Record, field validate.Field) string {
	switch field {
	case validate.FieldPlate:
		return r.Plate
	case validate.FieldChassis:
		return r.Chassis
	case validate.FieldRenavam:
		return r.Renavam
	case validate.FieldModel:
		return r.Model
	case validate.FieldMake:
		return r.Make
	case validate.FieldYear:
		return r.Year
	default:
		return ""
	}
}

func contains(value, query string) bool {
	return strings.Contains(strings.ToLower(value), query)
}
