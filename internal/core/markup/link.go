package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstLink returns the first external http(s) link in an HTML fragment
// mention and hashtag anchors are skipped
func FirstLink(fragment string) string {
	if !strings.Contains(fragment, "<a") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return true
		}
		class, _ := s.Attr("class")
		rel, _ := s.Attr("rel")
		if strings.Contains(class, "mention") || strings.Contains(class, "hashtag") || strings.Contains(rel, "tag") {
			return true
		}
		if strings.HasPrefix(strings.TrimSpace(s.Text()), "#") || strings.HasPrefix(strings.TrimSpace(s.Text()), "@") {
			return true
		}
		found = href
		return false
	})
	return found
}
