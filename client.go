package xlautomaten

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Version is the library version reported in the User-Agent header.
const Version = "0.1.0"

// DefaultBaseURL is the production API root used when no base URL is
// configured.
const DefaultBaseURL = "https://xlapi.xl-automaten.com/v1/"

const tracerName = "github.com/zebreus/xl-automaten-api"

// Doer is the transport capability the client requires. *http.Client
// satisfies it. The transport owns timeouts, proxying, and any
// resilience policy; the library issues exactly one attempt per call.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the XL Automaten API. All methods are safe for
// concurrent use; the client holds no mutable state between calls.
//
// A Client without a token can only call Login. Use WithToken (the
// option or the method) to bind the bearer token for everything else.
type Client struct {
	baseURL    string
	token      string
	httpClient Doer
	logger     *slog.Logger
	userAgent  string
	validate   *validator.Validate
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithBaseURL overrides the API root. A trailing slash is appended if
// missing so endpoint fragments can be concatenated directly.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithHTTPClient injects the transport. Defaults to http.DefaultClient.
func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger sets the logger for request diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client with the given options applied over the
// defaults (production base URL, http.DefaultClient, slog.Default()).
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
		userAgent:  "xl-automaten-api/" + Version,
		validate:   newWireValidator(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of the client bound to the given token.
// Intended for use with the token obtained from Login.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// errorBody matches the conventional error payload the API sends on
// non-2xx responses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do is the single I/O chokepoint. It builds the request, executes it
// through the injected transport, decodes the response, maps failures
// to the error taxonomy, and validates the decoded shape when out is a
// wire struct (or slice of wire structs).
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "HTTP "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("url.path", endpoint),
		))
	defer span.End()

	req, err := c.newRequest(ctx, method, endpoint, body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.ErrorContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer c.closeBody(ctx, resp)

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("reading response from %s %s: %w", method, endpoint, err)
	}

	if err := c.checkStatus(ctx, method, endpoint, resp.StatusCode, raw, span); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		schemaErr := &SchemaError{Endpoint: endpoint, Err: err}
		span.SetStatus(codes.Error, schemaErr.Error())
		return schemaErr
	}
	if err := c.checkShape(out); err != nil {
		schemaErr := &SchemaError{Endpoint: endpoint, Err: err}
		span.SetStatus(codes.Error, schemaErr.Error())
		c.logger.ErrorContext(ctx, "response shape mismatch",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Any("error", err),
		)
		return schemaErr
	}

	c.logger.DebugContext(ctx, "request completed",
		slog.String("method", method),
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}

// newRequest assembles the http.Request. Bodies are serialized only for
// POST/PUT; GET/DELETE never send one.
func (c *Client) newRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	var reqBody io.Reader = http.NoBody
	if body != nil && (method == http.MethodPost || method == http.MethodPut) {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", method, endpoint, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, endpoint, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// checkStatus turns the raw response into the error taxonomy: a body
// that is not JSON becomes a DecodeError, a non-2xx status becomes an
// APIError carrying the extracted message.
func (c *Client) checkStatus(ctx context.Context, method, endpoint string, status int, raw []byte, span trace.Span) error {
	if !json.Valid(raw) {
		decodeErr := &DecodeError{StatusCode: status}
		span.SetStatus(codes.Error, decodeErr.Error())
		c.logger.ErrorContext(ctx, "response is not JSON",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Int("status", status),
		)
		return decodeErr
	}

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: status, Message: extractErrorMessage(raw)}
	span.SetStatus(codes.Error, apiErr.Message)
	c.logger.ErrorContext(ctx, "unexpected status",
		slog.String("method", method),
		slog.String("endpoint", endpoint),
		slog.Int("status", status),
		slog.String("message", apiErr.Message),
	)
	return apiErr
}

// extractErrorMessage pulls a human-readable message from an error
// response body, preferring the "error" field over "message" and
// falling back to the compacted body.
func extractErrorMessage(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Error != "" {
			return eb.Error
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err == nil {
		return compact.String()
	}
	return string(raw)
}

// closeBody closes an HTTP response body and logs on failure.
func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.Any("error", err),
		)
	}
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out)
}

func (c *Client) del(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out)
}
