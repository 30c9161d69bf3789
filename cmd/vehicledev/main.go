// Command vehicledev runs an in-memory vehicle record store speaking the
// REST contract vehiclectl consumes. Intended for local development and
// demos; all data is lost on exit.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/vehiclekit/pkg/config"
	"github.com/dmitrymomot/vehiclekit/pkg/httpserver"
	"github.com/dmitrymomot/vehiclekit/pkg/logger"
	"github.com/dmitrymomot/vehiclekit/pkg/registrytest"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "vehicledev:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return err
	}
	log := logger.NewFromConfig(logCfg, logger.WithService("vehicledev"))

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	store := registrytest.New()
	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, store.Handler())
}
