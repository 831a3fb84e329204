// Package graphql is the transport to the platform's GraphQL endpoint
package graphql

import (
	"context"
	"strings"

	"mastoshim/internal/core/fields"
)

// Error is one entry of a GraphQL errors array
type Error struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns extensions.code or a code inferred from the message
func (e Error) Code() string {
	if c := fields.String(e.Extensions["code"]); c != "" {
		return strings.ToLower(c)
	}
	if c := fields.String(e.Extensions["status"]); c != "" {
		return c
	}
	msg := strings.ToLower(e.Message)
	switch {
	case strings.Contains(msg, "not found"), strings.Contains(msg, "does not exist"):
		return "not_found"
	case strings.Contains(msg, "unauthenticated"), strings.Contains(msg, "not authenticated"), strings.Contains(msg, "log in"):
		return "unauthenticated"
	}
	return ""
}

// Errors is a non empty GraphQL errors array
type Errors []Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "graphql: no errors"
	}
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// Result is one GraphQL response: data, errors, both, or a transport failure in Err
type Result struct {
	Data   map[string]any `json:"data"`
	Errors Errors         `json:"errors,omitempty"`
	Err    error          `json:"-"`
}

// Executor runs a query as the caller identified on ctx
type Executor interface {
	Do(ctx context.Context, operation, query string, vars map[string]any) Result
}

// ExecutorFunc adapts a function to Executor
type ExecutorFunc func(ctx context.Context, operation, query string, vars map[string]any) Result

// Do calls f
func (f ExecutorFunc) Do(ctx context.Context, operation, query string, vars map[string]any) Result {
	return f(ctx, operation, query, vars)
}
