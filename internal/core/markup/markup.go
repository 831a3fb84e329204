// Package markup turns user supplied bodies into the sanitized HTML Mastodon clients render
package markup

import (
	"bytes"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultCacheSize is used when New is given a non positive size
const DefaultCacheSize = 2048

// Renderer converts Markdown to sanitized HTML and memoises results
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	cache  *lru.Cache[string, string]
}

// New builds a renderer with an LRU of cacheSize entries
func New(cacheSize int) *Renderer {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		// only fails on a non positive size
		panic(err)
	}

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a", "span")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: policy,
		cache:  cache,
	}
}

// HTML renders src; input that already looks like HTML is only sanitized
func (r *Renderer) HTML(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	if out, ok := r.cache.Get(src); ok {
		return out
	}

	var out string
	if strings.HasPrefix(src, "<") {
		out = r.policy.Sanitize(src)
	} else {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(src), &buf); err != nil {
			out = r.policy.Sanitize("<p>" + src + "</p>")
		} else {
			out = strings.TrimSpace(r.policy.Sanitize(buf.String()))
		}
	}
	r.cache.Add(src, out)
	return out
}

// Text strips all markup, used for plain text fallbacks
func Text(src string) string {
	return strings.TrimSpace(bluemonday.StrictPolicy().Sanitize(src))
}
