// Package logger builds the application's slog.Logger and defines the shared
// log attribute vocabulary, so the same keys show up no matter which package
// emits a record: "vehicle_id", "plate", "op", "error", "request_id".
//
// The factory supports text output for development and JSON for log
// aggregation, with level and format loadable from the environment:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.NewFromConfig(cfg, logger.WithService("vehiclectl"))
package logger
