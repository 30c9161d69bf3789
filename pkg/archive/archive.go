package archive

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Archive stores a generated document and reports where it landed. The
// returned location is a filesystem path or a URL depending on the backend.
type Archive interface {
	Store(ctx context.Context, name string, data []byte) (string, error)
}

// Name builds a timestamped document name, e.g. "fleet-20240315-093000.pdf".
func Name(prefix, extension string, at time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, at.UTC().Format("20060102-150405"), extension)
}

// validName rejects empty names and path traversal. Forward slashes are
// allowed so callers can shard the archive into subdirectories or prefixes.
func validName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, "..") {
		return false
	}
	return true
}
