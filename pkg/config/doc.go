// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` in the working directory is loaded once if present;
//     LoadEnv loads explicit files and reports missing ones.
//   - Load parses the environment into any struct using `env` field tags.
//   - Each configuration type is parsed once and cached; ResetCache clears the
//     cache, which is mostly useful in tests.
//
// # Usage
//
//	type Config struct {
//	    Workers  int    `env:"JWTCRACK_WORKERS" envDefault:"10"`
//	    Potfile  string `env:"JWTCRACK_POTFILE"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig and can be tested with errors.Is. A
// failed Load is not cached, so a retry after fixing the environment works.
package config
