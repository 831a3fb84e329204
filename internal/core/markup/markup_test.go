package markup

import (
	"strings"
	"testing"
)

func TestHTML_Markdown(t *testing.T) {
	t.Parallel()

	r := New(8)
	got := r.HTML("hello **world**\nsecond line")
	for _, want := range []string{"<strong>world</strong>", "<br", "<p>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
}

func TestHTML_LinkifyAndSanitize(t *testing.T) {
	t.Parallel()

	r := New(8)
	got := r.HTML("see https://example.com now <script>alert(1)</script>")
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Fatalf("linkify: %q", got)
	}
	if strings.Contains(got, "<script") {
		t.Fatalf("script survived: %q", got)
	}

	html := r.HTML(`<p onclick="x()">hi <a href="https://a.example">a</a></p>`)
	if strings.Contains(html, "onclick") || !strings.Contains(html, "hi") {
		t.Fatalf("html input: %q", html)
	}
}

func TestHTML_EmptyAndCached(t *testing.T) {
	t.Parallel()

	r := New(0)
	if r.HTML("   ") != "" {
		t.Fatal("blank input should render empty")
	}
	first := r.HTML("*x*")
	if r.cache.Len() != 1 {
		t.Fatalf("cache len %d", r.cache.Len())
	}
	if second := r.HTML("*x*"); second != first {
		t.Fatalf("cached render differs: %q vs %q", first, second)
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	if got := Text("<p>a <b>b</b></p>"); got != "a b" {
		t.Fatalf("got %q", got)
	}
}

func TestFirstLink(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, in, want string
	}{
		{"none", "<p>plain</p>", ""},
		{"external", `<p><a href="https://example.com/x">x</a></p>`, "https://example.com/x"},
		{"skips mention", `<a class="u-url mention" href="https://h/@a">@a</a> <a href="https://e.org">e</a>`, "https://e.org"},
		{"skips hashtag", `<a href="https://h/tags/go" rel="tag">#go</a>`, ""},
		{"skips relative", `<a href="/local">l</a>`, ""},
	}
	for _, c := range cases {
		if got := FirstLink(c.in); got != c.want {
			t.Errorf("%s: got %q want %q", c.name, got, c.want)
		}
	}
}
