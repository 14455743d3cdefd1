package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BaSui01/lightx-go/config"
	"github.com/BaSui01/lightx-go/internal/metrics"
	"github.com/BaSui01/lightx-go/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the LightX external API. It holds no mutable state
// and is safe for concurrent use.
type Client struct {
	cfg  config.APIConfig
	poll config.PollConfig

	httpClient *http.Client // JSON calls
	putClient  *http.Client // binary image PUT, longer timeout

	limiter   *rate.Limiter // nil when rate limiting is disabled
	collector *metrics.Collector
	logger    *zap.Logger
	tracer    trace.Tracer
}

// ClientOption customizes a Client beyond what config carries.
type ClientOption func(*Client)

// WithHTTPClient replaces both HTTP clients, e.g. to install a custom
// transport. The configured timeouts are not reapplied.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
		c.putClient = hc
	}
}

// NewClient creates a LightX API client. collector may be nil when
// metrics are disabled.
func NewClient(cfg *config.Config, logger *zap.Logger, collector *metrics.Collector, opts ...ClientOption) *Client {
	api := cfg.API
	if api.BaseURL == "" {
		api.BaseURL = config.DefaultBaseURL
	}
	if api.RequestTimeout == 0 {
		api.RequestTimeout = 30 * time.Second
	}
	if api.UploadTimeout == 0 {
		api.UploadTimeout = 120 * time.Second
	}

	poll := cfg.Poll
	if poll.MaxAttempts == 0 {
		poll.MaxAttempts = 5
	}
	if poll.Interval == 0 {
		poll.Interval = 3 * time.Second
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		cfg:        api,
		poll:       poll,
		httpClient: &http.Client{Timeout: api.RequestTimeout},
		putClient:  &http.Client{Timeout: api.UploadTimeout},
		collector:  collector,
		logger:     logger.With(zap.String("component", "lightx_client")),
		tracer:     otel.Tracer("github.com/BaSui01/lightx-go/api"),
	}

	if api.RateLimitRPS > 0 {
		burst := api.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(api.RateLimitRPS), burst)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PollBudget exposes the effective polling settings, mainly so callers
// can size their own deadlines around WaitForOrder.
func (c *Client) PollBudget() (attempts int, interval time.Duration) {
	return c.poll.MaxAttempts, c.poll.Interval
}

// postJSON sends an API call and decodes the envelope body into out.
// path is relative to the base URL ("v2/uploadImageUrl", "v1/order-status").
func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	body, _ := json.Marshal(payload)
	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.BaseURL, "/"), path)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return types.NewError(types.ErrValidation, "invalid request URL").
			WithCause(err).
			WithEndpoint(path)
	}
	c.buildHeaders(httpReq)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.record(path, 0, time.Since(start))
		return types.NewError(types.ErrRemote, "request failed").
			WithCause(err).
			WithRetryable(true).
			WithEndpoint(path)
	}
	defer closeBody(resp.Body)
	c.record(path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := readErrMsg(resp.Body)
		return mapHTTPError(resp.StatusCode, msg, path)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return types.NewError(types.ErrRemote, "malformed response envelope").
			WithCause(err).
			WithHTTPStatus(resp.StatusCode).
			WithEndpoint(path)
	}
	if env.StatusCode != appStatusOK {
		return types.NewError(types.ErrApplication, applicationMessage(env)).
			WithHTTPStatus(resp.StatusCode).
			WithEndpoint(path)
	}

	if out != nil {
		if err := json.Unmarshal(env.Body, out); err != nil {
			return types.NewError(types.ErrRemote, "malformed response body").
				WithCause(err).
				WithHTTPStatus(resp.StatusCode).
				WithEndpoint(path)
		}
	}

	return nil
}

// buildHeaders sets the auth and content headers on an API call.
func (c *Client) buildHeaders(r *http.Request) {
	r.Header.Set("x-api-key", c.cfg.APIKey)
	r.Header.Set("Content-Type", "application/json")
}

// wait blocks on the client-side rate limiter, if one is configured.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return types.NewError(types.ErrRemote, "rate limiter wait aborted").
			WithCause(err).
			WithRetryable(true)
	}
	return nil
}

// record feeds the metrics collector, when metrics are enabled.
func (c *Client) record(endpoint string, status int, d time.Duration) {
	if c.collector != nil {
		c.collector.RecordAPIRequest(endpoint, status, d)
	}
}
