// Package testkit holds fakes and assertions shared by package tests
package testkit

import (
	"context"
	"sync"

	"mastoshim/internal/platform/graphql"
)

// GraphQLCall is one recorded operation
type GraphQLCall struct {
	Operation string
	Vars      map[string]any
}

// FakeGraphQL answers operations by name and records every call
// unknown operations answer with a GraphQL error so tests notice unplanned queries
type FakeGraphQL struct {
	mu      sync.Mutex
	results map[string]graphql.Result
	calls   []GraphQLCall
}

// NewFakeGraphQL returns a fake with no canned results
func NewFakeGraphQL() *FakeGraphQL {
	return &FakeGraphQL{results: map[string]graphql.Result{}}
}

// On sets the result for operation and returns f for chaining
func (f *FakeGraphQL) On(operation string, res graphql.Result) *FakeGraphQL {
	f.mu.Lock()
	f.results[operation] = res
	f.mu.Unlock()
	return f
}

// OnData answers operation with data only
func (f *FakeGraphQL) OnData(operation string, data map[string]any) *FakeGraphQL {
	return f.On(operation, graphql.Result{Data: data})
}

// Do implements graphql.Executor
func (f *FakeGraphQL) Do(_ context.Context, operation, _ string, vars map[string]any) graphql.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, GraphQLCall{Operation: operation, Vars: vars})
	if res, ok := f.results[operation]; ok {
		return res
	}
	return graphql.Result{Errors: graphql.Errors{{Message: "unexpected operation " + operation}}}
}

// Calls returns the recorded calls to operation, or every call when operation is empty
func (f *FakeGraphQL) Calls(operation string) []GraphQLCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []GraphQLCall
	for _, c := range f.calls {
		if operation == "" || c.Operation == operation {
			out = append(out, c)
		}
	}
	return out
}
