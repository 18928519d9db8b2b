// Package apiclient talks to the content API on behalf of the site.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"folio/internal/logger"
)

// DefaultBaseURL is used when Options.BaseURL is empty.
const DefaultBaseURL = "http://localhost:8000/api/v1"

const maxErrorBody = 64 << 10

// ErrInvalidContact is matched by errors returned when the API rejects a contact form.
var ErrInvalidContact = errors.New("invalid contact submission")

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	StatusCode int
	Endpoint   string
	// Code and Message come from the API error envelope when present.
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

type clientIPKey struct{}

// WithClientIP attaches the address of the visitor a request is made for.
// It is sent as X-Forwarded-For so the API rate limits visitors, not the site.
func WithClientIP(ctx context.Context, ip string) context.Context {
	if ip == "" {
		return ctx
	}
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func clientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// ContactError carries the API's reasons for rejecting a contact form.
type ContactError struct {
	Message string
	Fields  map[string]string
}

func (e *ContactError) Error() string { return "contact rejected: " + e.Message }

func (e *ContactError) Is(target error) bool { return target == ErrInvalidContact }

// Options configure a Client.
type Options struct {
	// BaseURL is the API root including the version prefix; a trailing slash is ignored.
	BaseURL string
	// Timeout bounds each request when HTTPClient is nil.
	Timeout time.Duration
	// Fallback substitutes built-in defaults for the endpoints that have one when a fetch fails.
	Fallback   bool
	HTTPClient *http.Client
	Logger     logger.Logger
}

// Client is a content API client. It is safe for concurrent use.
type Client struct {
	base     string
	http     *http.Client
	fallback bool
	log      logger.Logger
}

// New creates a Client. Requests are traced through an otelhttp transport unless HTTPClient is given.
func New(o Options) *Client {
	base := strings.TrimRight(o.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := o.HTTPClient
	if hc == nil {
		timeout := o.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	log := o.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		base:     base,
		http:     hc,
		fallback: o.Fallback,
		log:      log.With(logger.String("component", "apiclient")),
	}
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) url(endpoint string, q url.Values) string {
	u := c.base + endpoint
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, dst any) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.url(endpoint, q), nil)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, endpoint)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("GET %s: decode: %w", endpoint, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, u string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if ip := clientIP(ctx); ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	return req, nil
}

type apiErrorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func readErrorBody(resp *http.Response) apiErrorBody {
	var body apiErrorBody
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(b, &body)
	return body
}

func statusError(resp *http.Response, endpoint string) *StatusError {
	body := readErrorBody(resp)
	return &StatusError{
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
		Code:       body.Error.Code,
		Message:    body.Error.Message,
	}
}

// fetch GETs endpoint into a T. When the client is in fallback mode and def is non-nil,
// failures return def() instead of the error.
func fetch[T any](ctx context.Context, c *Client, endpoint string, q url.Values, def func() T) (T, error) {
	var out T
	err := c.get(ctx, endpoint, q, &out)
	if err == nil {
		return out, nil
	}
	if c.fallback && def != nil && ctx.Err() == nil {
		c.log.Warn("api_fallback_used",
			logger.String("endpoint", endpoint),
			logger.Error(err),
		)
		return def(), nil
	}
	var zero T
	return zero, err
}

func (c *Client) post(ctx context.Context, endpoint string, body, dst any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("POST %s: encode: %w", endpoint, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.url(endpoint, nil), bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("POST %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		eb := readErrorBody(resp)
		return &ContactError{Message: eb.Error.Message, Fields: eb.Error.Fields}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, endpoint)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("POST %s: decode: %w", endpoint, err)
	}
	return nil
}

// Join runs fns concurrently and returns the first error after all have finished.
// The context passed to fns is canceled as soon as one fails.
func Join(ctx context.Context, fns ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		g.Go(func() error { return fn(gctx) })
	}
	return g.Wait()
}
