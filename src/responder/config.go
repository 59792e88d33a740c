package responder

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment selects how much of a failure the outside world gets to see.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// Config is injected at construction; the responder never reads process-wide
// state at call time.
type Config struct {
	Environment Environment
	AppName     string
}

type envSettings struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	AppName     string `envconfig:"APP_NAME" default:"webscaffold"`
}

// GetConfig reads the responder settings from the environment. Anything that
// is not explicitly production or test counts as development.
func GetConfig() Config {
	var settings envSettings
	if err := envconfig.Process("", &settings); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}

	env := Environment(settings.Environment)
	switch env {
	case EnvProduction, EnvTest:
	default:
		env = EnvDevelopment
	}

	return Config{Environment: env, AppName: settings.AppName}
}
