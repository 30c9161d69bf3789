package logger

import "log/slog"

// Error records a single error under the key "error". Nil yields an empty
// attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Op records the lifecycle operation name under the key "op".
func Op(op string) slog.Attr {
	if op == "" {
		return slog.Attr{}
	}
	return slog.String("op", op)
}

// VehicleID records the record identifier under the key "vehicle_id".
func VehicleID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("vehicle_id", id)
}

// Plate records the license plate under the key "plate".
func Plate(plate string) slog.Attr {
	if plate == "" {
		return slog.Attr{}
	}
	return slog.String("plate", plate)
}

// RequestID records the correlation id under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
