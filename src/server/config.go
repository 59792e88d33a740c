package server

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"PORT" default:"9898"`

	// Durable failure log, written only in production.
	FailureLogPath string `envconfig:"FAILURE_LOG_PATH" default:"failures.log"`

	// Optional alerting endpoint; empty disables the webhook sink.
	FailureWebhookURL string `envconfig:"FAILURE_WEBHOOK_URL" default:""`

	AdminUser         string `envconfig:"ADMIN_USER" default:"admin"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" default:""`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}
