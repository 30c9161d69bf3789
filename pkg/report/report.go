package report

import (
	"time"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// dateLayout renders timestamps the way the registry's paper forms do.
const dateLayout = "02/01/2006"

// Columns is the header row shared by every output format, in order.
var Columns = []string{"ID", "Plate", "Chassis", "Renavam", "Model", "Make", "Year", "Check-in", "Checkout"}

// Row flattens a record into the column layout.
func Row(r vehicle.Record) []string {
	return []string{
		r.ID.String(),
		r.Plate,
		r.Chassis,
		r.Renavam,
		r.Model,
		r.Make,
		r.Year,
		formatDate(r.CheckinDate),
		formatDatePtr(r.CheckoutDate),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
