package registry

import "time"

// Config holds the store connection settings, loadable from the environment
// via pkg/config.
type Config struct {
	// BaseURL is the store root; the /vehicles collection hangs off it.
	BaseURL string `env:"REGISTRY_BASE_URL" envDefault:"http://localhost:3000"`
	// Timeout bounds a single request round trip. The store contract has no
	// retry policy, so this is the only transport-level deadline.
	Timeout time.Duration `env:"REGISTRY_TIMEOUT" envDefault:"30s"`
}
