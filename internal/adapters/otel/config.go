package otel

import "github.com/emiliopalmerini/cloudbill/internal/config"

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// ConfigFrom maps the CLOUDBILL_OTEL_* settings onto exporter options.
func ConfigFrom(c config.Otel) Config {
	return Config{
		Endpoint: c.Endpoint,
		Enabled:  c.Enabled,
		Insecure: c.Insecure,
	}
}
