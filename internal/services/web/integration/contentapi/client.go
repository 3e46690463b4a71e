package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName       = "github.com/pleromasprings/website/internal/services/web/integration/contentapi"
	maxResponseBytes = 4 << 20
	defaultTimeout   = 5 * time.Second
)

// Observer records upstream call outcomes.
type Observer interface {
	ObserveUpstream(endpoint string, outcome string, duration time.Duration)
}

// Client calls the content API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	observer   Observer
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithObserver attaches an upstream metrics observer.
func WithObserver(observer Observer) Option {
	return func(c *Client) { c.observer = observer }
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer(tracerName)
		}
	}
}

// New builds a client for the API rooted at baseURL. Requests time out after
// timeout; a non-positive timeout uses five seconds.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("content api url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse content api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("content api url must be http or https: %q", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("content api url must include a host: %q", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	parsed.RawQuery = ""
	parsed.Fragment = ""
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer(tracerName),
		propagator: otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// MediaBase returns the API origin, which relative media paths resolve
// against.
func (c *Client) MediaBase() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.Scheme + "://" + c.baseURL.Host
}

func (c *Client) endpointURL(path string, query url.Values) string {
	target := *c.baseURL
	target.Path = c.baseURL.Path + path
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	return target.String()
}

// do performs one request and returns the response body of a 2xx answer.
// Other answers become typed errors.
func (c *Client) do(ctx context.Context, endpoint string, method string, path string, query url.Values, body any) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "contentapi."+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", c.baseURL.Path+path),
	)

	started := time.Now()
	payload, status, err := c.roundTrip(ctx, method, path, query, body)
	outcome := outcomeFor(status, err)
	if c.observer != nil {
		c.observer.ObserveUpstream(endpoint, outcome, time.Since(started))
	}
	if status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, mapError(endpoint, status, payload, err)
	}
	if status < 200 || status > 299 {
		span.SetStatus(codes.Error, outcome)
		return nil, mapError(endpoint, status, payload, nil)
	}
	return payload, nil
}

func (c *Client) roundTrip(ctx context.Context, method string, path string, query url.Values, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL(path, query), reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.propagator != nil {
		c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return payload, resp.StatusCode, nil
}

func outcomeFor(status int, err error) string {
	switch {
	case err != nil && status == 0:
		return "transport_error"
	case err != nil:
		return "read_error"
	case status >= 200 && status <= 299:
		return "ok"
	case status >= 500:
		return "server_error"
	default:
		return "client_error"
	}
}

func (c *Client) get(ctx context.Context, endpoint string, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, endpoint, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, endpoint string, path string, body any) error {
	_, err := c.do(ctx, endpoint, http.MethodPost, path, nil, body)
	return err
}
