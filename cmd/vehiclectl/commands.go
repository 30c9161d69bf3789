package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrymomot/vehiclekit/pkg/archive"
	"github.com/dmitrymomot/vehiclekit/pkg/config"
	"github.com/dmitrymomot/vehiclekit/pkg/manager"
	"github.com/dmitrymomot/vehiclekit/pkg/report"
	"github.com/dmitrymomot/vehiclekit/pkg/validate"
	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

func inputFlags(fs *flag.FlagSet) *manager.Input {
	in := &manager.Input{}
	fs.StringVar(&in.Plate, "plate", "", "license plate (ABC1D23 or ABC1234)")
	fs.StringVar(&in.Chassis, "chassis", "", "17-character chassis number")
	fs.StringVar(&in.Renavam, "renavam", "", "11-digit renavam")
	fs.StringVar(&in.Model, "model", "", "vehicle model")
	fs.StringVar(&in.Make, "make", "", "vehicle make")
	fs.StringVar(&in.Year, "year", "", "4-digit model year")
	return in
}

// parsePartition maps the -partition flag onto the closed partition set.
func parsePartition(value string) (vehicle.Partition, error) {
	switch p := vehicle.Partition(value); p {
	case vehicle.PartitionAll, vehicle.PartitionActive, vehicle.PartitionHistory:
		return p, nil
	default:
		return "", fmt.Errorf("unknown partition %q (want all, active, or history)", value)
	}
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	partition := fs.String("partition", "all", "all, active, or history")
	field := fs.String("field", "", "restrict -query to one field: plate, chassisNumber, registrationNumber, model, make, year")
	query := fs.String("query", "", "case-insensitive substring filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := parsePartition(*partition)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	records, err := a.manager.List(ctx, manager.Filter{
		Partition: p,
		Field:     validate.Field(*field),
		Query:     *query,
	})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no vehicles found")
		return nil
	}
	return report.WriteText(os.Stdout, records)
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	in := inputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	rec, err := a.manager.Create(ctx, *in)
	if err != nil {
		return err
	}
	fmt.Printf("checked in %s (id %s)\n", rec.Plate, rec.ID)
	return nil
}

func (a *app) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.String("id", "", "vehicle id")
	in := inputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("update: -id is required")
	}

	rec, err := a.manager.Update(ctx, vehicle.ID(*id), *in)
	if err != nil {
		return err
	}
	fmt.Printf("updated %s (id %s)\n", rec.Plate, rec.ID)
	return nil
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	id := fs.String("id", "", "vehicle id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("checkout: -id is required")
	}

	rec, err := a.manager.Checkout(ctx, vehicle.ID(*id))
	if err != nil {
		return err
	}
	fmt.Printf("checked out %s at %s\n", rec.Plate, rec.CheckoutDate.Format("02/01/2006 15:04"))
	return nil
}

func (a *app) returnVehicle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("return", flag.ExitOnError)
	id := fs.String("id", "", "vehicle id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("return: -id is required")
	}

	rec, err := a.manager.Return(ctx, vehicle.ID(*id))
	if err != nil {
		return err
	}
	fmt.Printf("returned %s\n", rec.Plate)
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "vehicle id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("delete: -id is required")
	}

	if err := a.manager.Delete(ctx, vehicle.ID(*id)); err != nil {
		return err
	}
	fmt.Printf("deleted vehicle %s\n", *id)
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "pdf", "pdf, text, or csv")
	partition := fs.String("partition", "all", "all, active, or history")
	out := fs.String("out", "", "output file (default: stdout for text/csv, timestamped file for pdf)")
	toArchive := fs.Bool("archive", false, "store the export in the configured archive instead")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := parsePartition(*partition)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	records, err := a.manager.List(ctx, manager.Filter{Partition: p})
	if err != nil {
		return err
	}

	doc, ext, err := render(*format, records)
	if err != nil {
		return err
	}

	if *toArchive {
		arc, err := openArchive(ctx)
		if err != nil {
			return err
		}
		location, err := arc.Store(ctx, archive.Name("vehicles", ext, time.Now()), doc)
		if err != nil {
			return err
		}
		fmt.Println("archived to", location)
		return nil
	}

	dst := *out
	if dst == "" && *format == "pdf" {
		dst = archive.Name("vehicles", ext, time.Now())
	}
	if dst == "" {
		_, err := os.Stdout.Write(doc)
		return err
	}
	if err := os.WriteFile(dst, doc, 0o644); err != nil {
		return err
	}
	fmt.Println("exported to", dst)
	return nil
}

func (a *app) label(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("label", flag.ExitOnError)
	id := fs.String("id", "", "vehicle id")
	size := fs.Int("size", 256, "label edge length in pixels")
	out := fs.String("out", "", "output PNG file (default <plate>.png)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("label: -id is required")
	}

	rec, err := a.manager.Find(ctx, vehicle.ID(*id))
	if err != nil {
		return err
	}

	png, err := report.Label(*rec, *size)
	if err != nil {
		return err
	}

	dst := *out
	if dst == "" {
		dst = rec.Plate + ".png"
	}
	if err := os.WriteFile(dst, png, 0o644); err != nil {
		return err
	}
	fmt.Println("label written to", dst)
	return nil
}

// render produces the document bytes and file extension for a format.
func render(format string, records []vehicle.Record) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "pdf":
		if err := report.WritePDF(&buf, records); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "pdf", nil
	case "text", "txt":
		if err := report.WriteText(&buf, records); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "txt", nil
	case "csv":
		if err := report.WriteCSV(&buf, records); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "csv", nil
	default:
		return nil, "", fmt.Errorf("export: unknown format %q (want pdf, text, or csv)", format)
	}
}

// openArchive picks S3 when a bucket is configured, local otherwise.
func openArchive(ctx context.Context) (archive.Archive, error) {
	var s3cfg archive.S3Config
	if err := config.Load(&s3cfg); err != nil {
		return nil, err
	}
	if s3cfg.Bucket != "" {
		return archive.NewS3(ctx, s3cfg)
	}

	var localCfg struct {
		Dir string `env:"ARCHIVE_DIR" envDefault:"reports"`
	}
	if err := config.Load(&localCfg); err != nil {
		return nil, err
	}
	return archive.NewLocal(localCfg.Dir)
}
