// Package config loads typed configuration from the environment.
//
// It combines github.com/joho/godotenv for optional .env files with
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config](
//		config.WithPrefix("VALDI_"),
//		config.WithEnvFiles(".env"),
//	)
//
// Variables already present in the process environment take precedence over
// values read from files, and earlier files take precedence over later ones.
// Missing files are skipped.
package config
