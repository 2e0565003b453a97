package server

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Schedule is an optional cron spec for unattended maintenance runs.
	Schedule string `mapstructure:"schedule" default:""`
}

// HasSchedule reports whether unattended runs are configured.
func (c Config) HasSchedule() bool {
	return c.Schedule != ""
}

// ValidateSchedule checks that the schedule, when set, is a standard
// five-field cron spec or a descriptor such as "@daily".
func (c Config) ValidateSchedule() error {
	if !c.HasSchedule() {
		return nil
	}
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	return nil
}
