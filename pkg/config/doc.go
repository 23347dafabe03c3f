// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their variables with `env` and `envDefault`
// tags understood by github.com/caarlos0/env. Load parses a struct type once
// and caches the result, so packages can load the same config type
// independently without re-reading the environment:
//
//	type Config struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is read on first use via
// github.com/joho/godotenv. LoadEnv loads additional files explicitly.
// Variables already present in the process environment always take
// precedence over file values.
package config
