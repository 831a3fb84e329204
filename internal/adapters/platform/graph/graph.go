// Package graph holds the platform GraphQL operations the Mastodon routes run
//
// Operations are assembled from shared fragments so every route asks for the fields the
// mappers read, and nothing the platform has to resolve lazily
package graph

import (
	"context"
	"regexp"
	"strings"

	"mastoshim/internal/platform/graphql"
)

// Op is one named GraphQL document
type Op struct {
	Name  string
	Query string
}

// Do runs the operation as the caller on ctx
func (o Op) Do(ctx context.Context, gql graphql.Executor, vars map[string]any) graphql.Result {
	return gql.Do(ctx, o.Name, o.Query, vars)
}

var spread = regexp.MustCompile(`\.\.\.\s*([A-Z][A-Za-z]+)`)

// op appends every fragment the body spreads, transitively, in a stable order
func op(name, body string) Op {
	var b strings.Builder
	b.WriteString(body)
	seen := map[string]bool{}
	pending := []string{body}
	for len(pending) > 0 {
		src := pending[0]
		pending = pending[1:]
		for _, m := range spread.FindAllStringSubmatch(src, -1) {
			frag := m[1]
			def, ok := fragments[frag]
			if !ok || seen[frag] {
				continue
			}
			seen[frag] = true
			b.WriteString("\n")
			b.WriteString(def)
			pending = append(pending, def)
		}
	}
	return Op{Name: name, Query: b.String()}
}
