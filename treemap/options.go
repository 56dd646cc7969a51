package treemap

import "log/slog"

// config holds the effective construction-time settings for a Map.
type config struct {
	name   string
	logger *slog.Logger
}

// Option is a function which modifies the map configuration. It's used by
// New so that the caller can easily attach a name or a logger.
type Option func(*config)

// WithName assigns a stable, human-chosen name to the map. Named maps report
// operation metrics labeled with this name; unnamed maps skip metric
// recording entirely.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger attaches a structured logger used for debug-level logs of
// structural operations. Without a logger the map is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
