// Package archive persists generated reports under timestamped names.
//
// Two implementations of the Archive interface are provided: Local writes
// into a directory on disk, S3 uploads to Amazon S3 or an S3-compatible
// service (MinIO, DigitalOcean Spaces). Both return the location of the
// stored document so callers can print or log it.
//
//	arc, err := archive.NewLocal("/var/reports")
//	if err != nil {
//		// handle error
//	}
//	location, err := arc.Store(ctx, archive.Name("fleet", "pdf", time.Now()), data)
package archive
