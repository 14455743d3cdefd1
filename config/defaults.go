package config

import "time"

// DefaultBaseURL is the production endpoint of the LightX external API.
const DefaultBaseURL = "https://api.lightxeditor.com/external/api"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API:       DefaultAPIConfig(),
		Poll:      DefaultPollConfig(),
		Log:       DefaultLogConfig(),
		Metrics:   DefaultMetricsConfig(),
		Telemetry: DefaultTelemetryConfig(),
	}
}

// DefaultAPIConfig returns the default API settings.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:        DefaultBaseURL,
		APIKey:         "",
		RequestTimeout: 30 * time.Second,
		UploadTimeout:  120 * time.Second,
		RateLimitRPS:   0,
		RateLimitBurst: 1,
	}
}

// DefaultPollConfig returns the default polling budget: five status
// calls, three seconds apart.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		MaxAttempts: 5,
		Interval:    3 * time.Second,
	}
}

// DefaultLogConfig returns the default log settings.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "json",
		OutputPaths:      []string{"stdout"},
		EnableCaller:     true,
		EnableStacktrace: false,
	}
}

// DefaultMetricsConfig returns the default metrics settings.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   false,
		Namespace: "lightx",
	}
}

// DefaultTelemetryConfig returns the default telemetry settings.
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:      false,
		OTLPEndpoint: "localhost:4317",
		ServiceName:  "lightx-go",
		SampleRate:   0.1,
	}
}
