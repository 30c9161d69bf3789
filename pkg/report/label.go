package report

import (
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// Label generation errors
var (
	// ErrUnidentifiedRecord is returned when the record carries no id yet.
	ErrUnidentifiedRecord = errors.New("record has no id to encode")
	// ErrGenerateLabel is returned when the QR code cannot be generated.
	ErrGenerateLabel = errors.New("failed to generate label")
)

// defaultLabelSize is the edge length in pixels used when no size is given.
const defaultLabelSize = 256

// Label produces a PNG QR code identifying the vehicle for printed asset
// tags. The payload carries the id, plate, and chassis so a scan is useful
// even offline.
func Label(r vehicle.Record, size int) ([]byte, error) {
	if r.ID.IsZero() {
		return nil, ErrUnidentifiedRecord
	}
	if size <= 0 {
		size = defaultLabelSize
	}
	payload := fmt.Sprintf("vehicle:%s|plate:%s|chassis:%s", r.ID, r.Plate, r.Chassis)
	png, err := skipqrcode.Encode(payload, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerateLabel, err)
	}
	return png, nil
}
