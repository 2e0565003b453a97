package photos

import "errors"

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("photo service API key is required (set IMMICH_API_KEY)")

// Config holds configuration for the Photo Service client.
type Config struct {
	// APIKey is sent as the x-api-key header on every request.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the root URL of the Photo Service.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:2283"`
	// PageSize is the number of assets requested per search page.
	PageSize int `mapstructure:"page_size" default:"1000"`
	// TimeoutSeconds bounds connection setup and waiting for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerSecond paces outgoing requests. Zero disables pacing.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"0"`
}

// Validate reports configuration errors that must abort a run before any
// network activity.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
