// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing `env` struct tags. Each struct type
// is parsed once and cached for the lifetime of the process; failed parses
// are not cached so a corrected environment can be loaded again.
//
// # Usage
//
//	type MatcherConfig struct {
//	    Params      []int  `env:"MATCHER_PARAMS" envSeparator:","`
//	    DefaultLang string `env:"MATCHER_DEFAULT_LANG" envDefault:"en"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatal(err)
//	}
//
//	var cfg MatcherConfig
//	config.MustLoad(&cfg)
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
//   - ErrConfigNotLoaded: the config was neither cached nor parsed.
//
// # Testing Helpers
//
// ResetCache clears every cached configuration so tests can reparse after
// changing the environment.
package config
