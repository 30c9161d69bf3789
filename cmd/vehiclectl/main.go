// Command vehiclectl manages a vehicle check-in/check-out registry from the
// terminal. It talks to a REST record store (see cmd/vehicledev for a local
// one) and can export the current record set as PDF, text, or CSV.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/vehiclekit/pkg/config"
	"github.com/dmitrymomot/vehiclekit/pkg/logger"
	"github.com/dmitrymomot/vehiclekit/pkg/manager"
	"github.com/dmitrymomot/vehiclekit/pkg/registry"
)

const usage = `Usage: vehiclectl <command> [flags]

Commands:
  list      List vehicles (active, history, or all)
  add       Check a vehicle in
  update    Edit a vehicle's descriptive fields
  checkout  Stamp a vehicle's departure
  return    Clear a vehicle's departure stamp
  delete    Remove a vehicle permanently
  export    Export the record set as pdf, text, or csv
  label     Generate a printable QR label for a vehicle

Environment:
  REGISTRY_BASE_URL  Store root URL (default http://localhost:3000)
  REGISTRY_TIMEOUT   Request timeout (default 30s)
  LOG_LEVEL          debug, info, warn, error (default info)
  LOG_FORMAT         text or json (default text)

Run 'vehiclectl <command> -h' for command flags.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vehiclectl:", err)
		os.Exit(1)
	}
	defer app.close()

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]

	var runErr error
	switch cmd {
	case "list":
		runErr = app.list(ctx, args)
	case "add":
		runErr = app.add(ctx, args)
	case "update":
		runErr = app.update(ctx, args)
	case "checkout":
		runErr = app.checkout(ctx, args)
	case "return":
		runErr = app.returnVehicle(ctx, args)
	case "delete":
		runErr = app.delete(ctx, args)
	case "export":
		runErr = app.export(ctx, args)
	case "label":
		runErr = app.label(ctx, args)
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		fmt.Fprintf(os.Stderr, "vehiclectl: unknown command %q\n\n%s\n", cmd, usage)
		os.Exit(2)
	}

	if runErr != nil {
		reportError(runErr)
		os.Exit(1)
	}
}

// app wires the manager to the remote store once, for every subcommand.
type app struct {
	manager *manager.Manager
}

func newApp() (*app, error) {
	var cfg registry.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return nil, err
	}
	log := logger.NewFromConfig(logCfg, logger.WithService("vehiclectl"))

	client, err := registry.New(cfg, registry.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return &app{manager: manager.New(client, manager.WithLogger(log))}, nil
}

func (a *app) close() {
	a.manager.Close()
}

// reportError prints validation failures field by field; everything else is
// a single line.
func reportError(err error) {
	if manager.IsValidationFailure(err) {
		fmt.Fprintln(os.Stderr, "vehiclectl: invalid input:")
		for _, msg := range manager.ValidationMessages(err) {
			fmt.Fprintln(os.Stderr, "  -", msg)
		}
		return
	}
	fmt.Fprintln(os.Stderr, "vehiclectl:", err)
}
