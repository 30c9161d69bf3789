// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
// Configuration types declare their sources with struct tags:
//
//	type AppConfig struct {
//		BaseURL string        `env:"REGISTRY_BASE_URL" envDefault:"http://localhost:3000"`
//		Timeout time.Duration `env:"REGISTRY_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// Load reads the process environment on every call; callers that want a
// single shared configuration hold on to the parsed struct themselves.
package config
