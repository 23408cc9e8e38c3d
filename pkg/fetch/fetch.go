// Package fetch downloads markup input over HTTP with retries.
//
// Certificate verification is on unless Options.Insecure is set. Building an
// insecure client logs a warning.
package fetch

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/logging"
)

// MaxBodyBytes caps how much of a response body Fetch will read
const MaxBodyBytes = 8 << 20

// Options configures a Client
type Options struct {
	Timeout  time.Duration
	RetryMax int
	// Insecure disables TLS certificate verification
	Insecure bool

	// RetryWaitMin and RetryWaitMax bound the backoff between attempts.
	// Zero keeps the retryablehttp defaults.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client fetches text documents
type Client struct {
	http     *retryablehttp.Client
	insecure bool
}

// NewClient builds a Client on a pooled transport
func NewClient(opts Options) *Client {
	logger := logging.GetLogger("fetch")

	transport := cleanhttp.DefaultPooledTransport()
	if opts.Insecure {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 -- explicit opt-in
		}
		logger.Warn().Msg("TLS certificate verification is disabled for fetched input")
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}
	rc.RetryMax = opts.RetryMax
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}
	rc.Logger = leveledLogger{logger: logger}

	return &Client{http: rc, insecure: opts.Insecure}
}

// Insecure reports whether certificate verification is disabled
func (c *Client) Insecure() bool {
	return c.insecure
}

// Fetch GETs url and returns the body as a string. Non-2xx responses are errors.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid url %q", url)
	}
	req.Header.Set("Accept", "text/plain, text/*;q=0.9, */*;q=0.5")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFetch, "GET %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Newf(errors.ErrFetch, "GET %s: %s", url, resp.Status).
			WithDetail("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFetch, "reading body of %s", url)
	}
	if len(body) > MaxBodyBytes {
		return "", errors.Newf(errors.ErrFetch, "GET %s: body exceeds %d bytes", url, MaxBodyBytes)
	}
	return string(body), nil
}

// leveledLogger routes retryablehttp logs into zerolog
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

