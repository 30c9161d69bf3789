// Package report renders a vehicle record set as a tabular document.
//
// Three formats share one column layout (ID, Plate, Chassis, Renavam,
// Model, Make, Year, Check-in, Checkout):
//
//   - WritePDF renders a styled PDF table.
//   - WriteText renders an aligned plain-text table.
//   - WriteCSV renders RFC 4180 CSV.
//
// Dates are formatted DD/MM/YYYY; an open checkout renders as an empty
// cell. Label additionally produces a PNG QR code identifying a single
// vehicle, for printed asset tags.
package report
