// Package lightx provides a top-level convenience entry point for the
// LightX image-editing API.
//
// Usage:
//
//	import "github.com/BaSui01/lightx-go"
//
//	client, err := lightx.New(lightx.WithAPIKey("..."))
//	client, err := lightx.New(lightx.WithConfigFile("lightx.yaml"))
//
// New wires the full stack from configuration: structured logging,
// optional Prometheus metrics and OpenTelemetry export, rate limiting
// and the API client itself. The heavier pieces stay in their own
// packages (api, editors, workflow, config); this package only
// assembles them.
package lightx

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BaSui01/lightx-go/api"
	"github.com/BaSui01/lightx-go/config"
	"github.com/BaSui01/lightx-go/internal/metrics"
	"github.com/BaSui01/lightx-go/internal/telemetry"
	"github.com/BaSui01/lightx-go/types"
	"github.com/BaSui01/lightx-go/workflow"
)

// Option configures the client created by [New].
type Option func(*options)

type options struct {
	cfg        *config.Config
	configPath string

	apiKey  string
	baseURL string

	pollAttempts int
	pollInterval time.Duration

	rateRPS   float64
	rateBurst int

	metricsNamespace string
	otlpEndpoint     string

	logger     *zap.Logger
	httpClient *http.Client
}

// WithConfig uses a fully prepared configuration, skipping the loader.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithConfigFile loads the configuration from a YAML file, with
// LIGHTX_* environment variables still applied on top.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configPath = path }
}

// WithAPIKey sets the LightX API key.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithBaseURL overrides the API base URL, e.g. for a staging host.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithPollPolicy overrides how often and how long order polling runs.
func WithPollPolicy(maxAttempts int, interval time.Duration) Option {
	return func(o *options) {
		o.pollAttempts = maxAttempts
		o.pollInterval = interval
	}
}

// WithRateLimit enables the client-side request limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.rateRPS = rps
		o.rateBurst = burst
	}
}

// WithMetrics enables the Prometheus collectors under the given
// namespace.
func WithMetrics(namespace string) Option {
	return func(o *options) { o.metricsNamespace = namespace }
}

// WithTelemetry enables OpenTelemetry export to the given OTLP gRPC
// endpoint.
func WithTelemetry(otlpEndpoint string) Option {
	return func(o *options) { o.otlpEndpoint = otlpEndpoint }
}

// WithLogger sets a custom zap logger instead of building one from the
// log configuration.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHTTPClient replaces the HTTP clients used for API calls and
// uploads.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// Client bundles the configured API client with the workflow runner
// and the observability plumbing built for it.
type Client struct {
	*api.Client

	runner     *workflow.Runner
	logger     *zap.Logger
	telemetry  *telemetry.Providers
	ownsLogger bool
}

// New assembles a ready-to-use client. Configuration is resolved in
// order: defaults, YAML file (WithConfigFile), LIGHTX_* environment,
// then the explicit options.
func New(opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cfg := o.cfg
	if cfg == nil {
		loader := config.NewLoader()
		if o.configPath != "" {
			loader = loader.WithConfigPath(o.configPath)
		}
		loaded, err := loader.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if o.apiKey != "" {
		cfg.API.APIKey = o.apiKey
	}
	if o.baseURL != "" {
		cfg.API.BaseURL = o.baseURL
	}
	if o.pollAttempts > 0 {
		cfg.Poll.MaxAttempts = o.pollAttempts
	}
	if o.pollInterval > 0 {
		cfg.Poll.Interval = o.pollInterval
	}
	if o.rateRPS > 0 {
		cfg.API.RateLimitRPS = o.rateRPS
		cfg.API.RateLimitBurst = o.rateBurst
	}
	if o.metricsNamespace != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Namespace = o.metricsNamespace
	}
	if o.otlpEndpoint != "" {
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.OTLPEndpoint = o.otlpEndpoint
	}

	if cfg.API.APIKey == "" {
		return nil, fmt.Errorf("api key is required: set LIGHTX_API_API_KEY or use WithAPIKey")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := o.logger
	ownsLogger := false
	if logger == nil {
		built, err := buildLogger(cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
		logger = built
		ownsLogger = true
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace, logger)
	}

	var providers *telemetry.Providers
	if cfg.Telemetry.Enabled {
		p, err := telemetry.Init(context.Background(), cfg.Telemetry, logger)
		if err != nil {
			logger.Warn("telemetry init failed, continuing without export", zap.Error(err))
		} else {
			providers = p
		}
	}

	var clientOpts []api.ClientOption
	if o.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(o.httpClient))
	}
	apiClient := api.NewClient(cfg, logger, collector, clientOpts...)

	return &Client{
		Client:     apiClient,
		runner:     workflow.NewRunner(apiClient, logger),
		logger:     logger,
		telemetry:  providers,
		ownsLogger: ownsLogger,
	}, nil
}

// Generate submits the request and waits for the order to finish, in
// one call. Use Submit and WaitForOrder separately when the order id
// should be handed off in between.
func (c *Client) Generate(ctx context.Context, req api.Request) (*types.Order, error) {
	sub, err := c.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.WaitForOrder(ctx, sub.Endpoint, sub.OrderID)
}

// Run uploads the assets, builds the feature payload from their URLs
// and drives the job to a terminal state. See workflow.Runner.
func (c *Client) Run(ctx context.Context, build workflow.BuildFunc, assets ...workflow.Asset) (*types.Order, error) {
	return c.runner.Run(ctx, build, assets...)
}

// Close flushes telemetry and the logger. Pass a context with a
// deadline to bound the exporter shutdown.
func (c *Client) Close(ctx context.Context) error {
	var err error
	if c.telemetry != nil {
		err = c.telemetry.Shutdown(ctx)
	}
	if c.ownsLogger {
		_ = c.logger.Sync()
	}
	return err
}

// buildLogger constructs a zap logger from the log configuration.
func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var encoderConfig zapcore.EncoderConfig
	encoding := "json"
	if cfg.Format == "console" {
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      encoding == "console",
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	var zapOpts []zap.Option
	if cfg.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}
	if cfg.EnableStacktrace {
		zapOpts = append(zapOpts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return zapConfig.Build(zapOpts...)
}
