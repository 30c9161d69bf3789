package report

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// WriteText renders the record set as an aligned plain-text table, suitable
// for terminals and log attachments.
func WriteText(w io.Writer, records []vehicle.Record) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, r := range records {
		table.Append(Row(r))
	}
	table.Render()
	return nil
}
