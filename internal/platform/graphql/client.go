package graphql

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/logger"
	"mastoshim/internal/platform/metrics"
	pnet "mastoshim/internal/platform/net"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUA        = "mastoshim"
	defaultMaxRetry  = 3
	defaultRetryBase = 200 * time.Millisecond
	maxResponseBytes = 8 << 20
)

// Config configures the Client
type Config struct {
	Endpoint   string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// Client posts queries to the platform and decodes the response
type Client struct {
	http *http.Client
	cfg  Config
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client with defaults filled in
func NewClient(c Config) *Client {
	if c.UserAgent == "" {
		c.UserAgent = defaultUA
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	} else if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetry
	}
	if c.RetryBase <= 0 {
		c.RetryBase = defaultRetryBase
	}
	return &Client{
		http: &http.Client{Timeout: c.Timeout},
		cfg:  c,
		log:  *logger.Named("graphql"),
		now:  time.Now,
	}
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// retryable marks a failure worth another attempt
type retryable struct{ err error }

func (r retryable) Error() string { return r.err.Error() }
func (r retryable) Unwrap() error { return r.err }

// Do posts the query with the caller's bearer token and request id.
// Transport failures and 5xx responses of queries are retried with exponential backoff;
// mutations are sent once since the platform may have applied one that timed out
func (c *Client) Do(ctx context.Context, operation, query string, vars map[string]any) Result {
	body, err := sonic.Marshal(request{Query: query, OperationName: operation, Variables: vars})
	if err != nil {
		return Result{Err: perr.Wrapf(err, perr.ErrorCodeUnknown, "graphql encode %s", operation)}
	}

	reqID := pnet.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	retries := c.cfg.MaxRetries
	if IsMutation(query) {
		retries = 0
	}

	start := c.now()
	attempts := 0
	policy := backoff.WithContext(
		backoff.WithMaxRetries(c.backoffPolicy(), uint64(retries)),
		ctx,
	)
	res, err := backoff.RetryNotifyWithData(func() (Result, error) {
		attempts++
		return c.once(ctx, body, reqID)
	}, policy, func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Str("operation", operation).Dur("retry_in", wait).Int("attempt", attempts).Msg("graphql transient error retrying")
	})

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
		var r retryable
		if errors.As(err, &r) {
			err = perr.Wrapf(r.err, perr.ErrorCodeUnavailable, "graphql %s", operation)
		}
		res = Result{Err: err}
	case len(res.Errors) > 0 && res.Data == nil:
		outcome = "errors"
	case len(res.Errors) > 0:
		outcome = "partial"
	}
	metrics.ObserveGraphQL(operation, outcome, c.now().Sub(start))

	c.log.Debug().
		Str("operation", operation).
		Str("request_id", reqID).
		Str("outcome", outcome).
		Int("attempts", attempts).
		Dur("latency", c.now().Sub(start)).
		Msg("graphql call")
	return res
}

func (c *Client) backoffPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.RetryBase
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 0
	return b
}

func (c *Client) once(ctx context.Context, body []byte, reqID string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, backoff.Permanent(perr.Wrapf(err, perr.ErrorCodeUnknown, "graphql new request failed"))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("X-Request-ID", reqID)
	if tok := pnet.Token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, backoff.Permanent(ctx.Err())
		}
		return Result{}, retryable{err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, retryable{err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return Result{}, backoff.Permanent(perr.Unauthorizedf("platform rejected credentials"))
	case resp.StatusCode >= 500:
		return Result{}, retryable{fmt.Errorf("platform status %d", resp.StatusCode)}
	}

	var out Result
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return Result{}, backoff.Permanent(perr.Wrapf(err, perr.ErrorCodeUnavailable, "graphql decode status %d", resp.StatusCode))
	}
	if out.Data == nil && len(out.Errors) == 0 {
		return Result{}, backoff.Permanent(perr.Newf(perr.ErrorCodeUnknown, "graphql empty response status %d", resp.StatusCode))
	}
	return out, nil
}

// IsMutation reports whether the document's first operation is a mutation; leading comments are skipped
func IsMutation(query string) bool {
	s := query
	for {
		s = strings.TrimLeft(s, " \t\r\n,\ufeff")
		if !strings.HasPrefix(s, "#") {
			break
		}
		nl := strings.IndexByte(s, '\n')
		if nl < 0 {
			return false
		}
		s = s[nl+1:]
	}
	const kw = "mutation"
	if !strings.HasPrefix(s, kw) {
		return false
	}
	rest := s[len(kw):]
	if rest == "" {
		return true
	}
	c := rest[0]
	return !(c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z')
}
