package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/jrsteele09/go-auth-cli/internal/errors"
)

// CLIConfig is the process-wide configuration read once at the orchestration
// boundary and threaded explicitly from there, instead of being consulted as
// ambient global state deep inside resolvers.
type CLIConfig struct {
	Environment    string `env:"AUTH_CLI_ENV"`
	TimeoutSeconds int    `env:"AUTH_CLI_TIMEOUT" envDefault:"120"`
}

func LoadCLIConfig() (CLIConfig, error) {
	var c CLIConfig
	if err := env.Parse(&c); err != nil {
		return CLIConfig{}, errors.Wrapf(err, "[LoadCLIConfig] parsing environment variables")
	}
	return c, nil
}
