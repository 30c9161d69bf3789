package report

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// ErrRenderCSV is returned when the CSV document cannot be written out.
var ErrRenderCSV = errors.New("failed to render CSV report")

// WriteCSV renders the record set as CSV with the shared column header.
func WriteCSV(w io.Writer, records []vehicle.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return errors.Join(ErrRenderCSV, err)
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return errors.Join(ErrRenderCSV, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Join(ErrRenderCSV, err)
	}
	return nil
}
