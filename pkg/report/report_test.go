package report_test

import (
	"bytes"
	"encoding/csv"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vehiclekit/pkg/report"
	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

func sampleRecords() []vehicle.Record {
	checkout := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	return []vehicle.Record{
		{
			ID: "1", Plate: "ABC1D23", Chassis: "9BWZZZ377VT004251",
			Renavam: "12345678901", Model: "Uno Mille", Make: "Fiat", Year: "2019",
			CheckinDate: time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		},
		{
			ID: "2", Plate: "DEF4567", Chassis: "1HGBH41JXMN109186",
			Renavam: "98765432109", Model: "Gol 1.6", Make: "Volkswagen", Year: "2021",
			CheckinDate:  time.Date(2024, 2, 28, 14, 0, 0, 0, time.UTC),
			CheckoutDate: &checkout,
		},
	}
}

func TestRow(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	t.Run("formats dates and leaves open checkout empty", func(t *testing.T) {
		t.Parallel()
		row := report.Row(records[0])
		assert.Equal(t, []string{"1", "ABC1D23", "9BWZZZ377VT004251", "12345678901", "Uno Mille", "Fiat", "2019", "02/01/2024", ""}, row)
	})

	t.Run("renders checkout date when present", func(t *testing.T) {
		t.Parallel()
		row := report.Row(records[1])
		assert.Equal(t, "28/02/2024", row[7])
		assert.Equal(t, "15/03/2024", row[8])
	})
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, sampleRecords()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, report.Columns, rows[0])
	assert.Equal(t, "ABC1D23", rows[1][1])
	assert.Equal(t, "15/03/2024", rows[2][8])
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, sampleRecords()))

	out := buf.String()
	for _, column := range report.Columns {
		assert.Contains(t, out, column)
	}
	assert.Contains(t, out, "ABC1D23")
	assert.Contains(t, out, "Volkswagen")
	assert.Contains(t, out, "15/03/2024")
}

func TestWritePDF(t *testing.T) {
	t.Parallel()

	t.Run("produces a PDF document", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, report.WritePDF(&buf, sampleRecords()))
		assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
		assert.Greater(t, buf.Len(), 500)
	})

	t.Run("empty record set still renders the header", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, report.WritePDF(&buf, nil))
		assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
	})
}

func TestLabel(t *testing.T) {
	t.Parallel()

	t.Run("generates a decodable PNG", func(t *testing.T) {
		t.Parallel()
		data, err := report.Label(sampleRecords()[0], 256)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})

	t.Run("defaults the size", func(t *testing.T) {
		t.Parallel()
		data, err := report.Label(sampleRecords()[0], 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})

	t.Run("rejects a record without id", func(t *testing.T) {
		t.Parallel()
		_, err := report.Label(vehicle.Record{Plate: "ABC1D23"}, 256)
		assert.ErrorIs(t, err, report.ErrUnidentifiedRecord)
	})
}
