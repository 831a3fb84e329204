// Package rest writes Mastodon REST responses from platform GraphQL results
//
// Bodies are bare entities, errors are {"error": "..."}; diagnostics ride along under
// "details" unless the environment is production
package rest

import (
	stdhttp "net/http"
	"net/url"
	"reflect"
	"strings"

	"mastoshim/internal/core/pagination"
	"mastoshim/internal/platform/graphql"
	"mastoshim/internal/platform/logger"
	"mastoshim/internal/platform/metrics"
	pnet "mastoshim/internal/platform/net"

	"github.com/bytedance/sonic"
)

// fallbackBody is written when the chosen body cannot be encoded
const fallbackBody = `{"error":"Internal server error"}`

// marshal is swapped in tests
var marshal = sonic.Marshal

// Config is built once at startup
type Config struct {
	// Env is the deployment environment; "production" and "prod" hide details
	Env string
}

// Production reports whether diagnostics are withheld
func (c Config) Production() bool {
	e := strings.ToLower(strings.TrimSpace(c.Env))
	return e == "production" || e == "prod"
}

// ErrorResponse is the Mastodon error body
type ErrorResponse struct {
	Error   string `json:"error" example:"Not found"`
	Details any    `json:"details,omitempty"`
}

// Transform shapes extracted data; a nil result means the entity did not map
type Transform func(data any) any

// Adapter writes responses
type Adapter struct {
	cfg Config
	log *logger.Logger
}

// New creates an Adapter
func New(cfg Config) *Adapter {
	return &Adapter{cfg: cfg, log: logger.Named("rest")}
}

// Return applies the GraphQL result decision table and writes the response
//
// transport error                    -> classified error
// data and errors, key extracts      -> 200, errors logged at warn
// data and errors, nothing extracts  -> errors as the failure
// data only                          -> 200 with extracted data, a single key unwraps whatever its name
// errors only                        -> errors as the failure
// anything else                      -> 500 tagged unexpected
func (a *Adapter) Return(w stdhttp.ResponseWriter, r *stdhttp.Request, key string, res graphql.Result, transform Transform) {
	if res.Err != nil {
		a.Error(w, r, res.Err)
		return
	}
	if res.Data != nil {
		if v, ok := extract(res.Data, key); ok {
			out := apply(transform, v)
			if isNil(out) {
				if len(res.Errors) > 0 {
					a.Error(w, r, res.Errors)
					return
				}
				a.Error(w, r, Reason("not_found"))
				return
			}
			if len(res.Errors) > 0 {
				logger.C(r.Context()).Warn().
					Str("key", key).
					Interface("errors", []graphql.Error(res.Errors)).
					Msg("partial graphql result")
			}
			a.Write(w, r, stdhttp.StatusOK, out)
			return
		}
		if len(res.Errors) > 0 {
			a.Error(w, r, res.Errors)
			return
		}
		a.Error(w, r, Reason("not_found"))
		return
	}
	if len(res.Errors) > 0 {
		a.Error(w, r, res.Errors)
		return
	}
	a.Error(w, r, ErrUnexpected)
}

// extract reads key from data; a single entry map unwraps regardless of its key
func extract(data map[string]any, key string) (any, bool) {
	if v, ok := data[key]; ok && v != nil {
		return v, true
	}
	if len(data) == 1 {
		for _, v := range data {
			if v != nil {
				return v, true
			}
		}
	}
	return nil, false
}

func apply(t Transform, v any) any {
	if t == nil {
		return v
	}
	return t(v)
}

// isNil treats typed nil maps and pointers as nil; nil slices stay lists
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

// Error classifies err and writes the Mastodon error body
func (a *Adapter) Error(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	c := Classify(err)
	body := ErrorResponse{Error: c.Message}
	if !a.cfg.Production() {
		body.Details = c.Details
	}
	if c.Status >= 500 {
		logger.C(r.Context()).Error().Err(err).Int("status", c.Status).Msg("request failed")
	} else {
		logger.C(r.Context()).Debug().Err(err).Int("status", c.Status).Msg("request rejected")
	}
	a.Write(w, r, c.Status, body)
}

// Write encodes body as JSON with status; an encoding failure writes a fixed 500
func (a *Adapter) Write(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, body any) {
	if rv := reflect.ValueOf(body); body != nil && rv.Kind() == reflect.Slice && rv.IsNil() {
		body = []any{}
	}
	buf, err := marshal(body)
	if err != nil {
		a.log.Error().Err(err).Str("request_id", pnet.RequestID(r.Context())).Msg("response encoding failed")
		status = stdhttp.StatusInternalServerError
		buf = []byte(fallbackBody)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
	metrics.RESTResponse(status)
}

// WriteList writes a page of items with its Link header
func (a *Adapter) WriteList(w stdhttp.ResponseWriter, r *stdhttp.Request, items any, info pagination.PageInfo) {
	if link := pagination.LinkHeader(requestURL(r), info); link != "" {
		w.Header().Set("Link", link)
	}
	a.Write(w, r, stdhttp.StatusOK, items)
}

// NoContent writes an empty JSON object, the Mastodon reply for bodiless success
func (a *Adapter) NoContent(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	a.Write(w, r, stdhttp.StatusOK, map[string]any{})
}

// requestURL rebuilds the absolute URL the client called
func requestURL(r *stdhttp.Request) *url.URL {
	u := *r.URL
	if u.Host == "" {
		u.Host = r.Host
	}
	if u.Scheme == "" {
		u.Scheme = "http"
		if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
			u.Scheme = "https"
		}
	}
	return &u
}
