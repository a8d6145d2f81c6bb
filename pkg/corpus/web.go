/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: web.go
Description: HTTP document source. Fetches pages with a plain HTTP client
and extracts their text content through CSS selectors, one document per
page. Handles static pages; script-rendered sites go through the browser
source instead.
*/

package corpus

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// WebSource fetches documents over plain HTTP.
type WebSource struct {
	name     string
	urls     []string
	selector string
	client   *http.Client
}

// NewWebSource creates a web source over the given URLs. selector picks the
// elements whose text forms the document; "" extracts paragraph text.
func NewWebSource(name string, urls []string, selector string) *WebSource {
	if selector == "" {
		selector = "p"
	}
	return &WebSource{
		name:     name,
		urls:     urls,
		selector: selector,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the source name.
func (s *WebSource) Name() string {
	return s.name
}

// Description returns a human-readable description of the source.
func (s *WebSource) Description() string {
	return fmt.Sprintf("HTTP fetch of %d URLs, selector %q", len(s.urls), s.selector)
}

// Fetch downloads every URL and extracts its text. A failing URL fails the
// whole fetch: partial corpora from half-reachable sites are worse than a
// retry.
func (s *WebSource) Fetch(ctx context.Context) ([]*Document, error) {
	documents := make([]*Document, 0, len(s.urls))
	for _, url := range s.urls {
		doc, err := s.fetchOne(ctx, url)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			documents = append(documents, doc)
		}
	}
	return documents, nil
}

func (s *WebSource) fetchOne(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}

	page, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	text := extractText(page, s.selector)
	if text == "" {
		return nil, nil
	}

	doc := NewDocument(text, s.name)
	doc.URL = url
	return doc, nil
}

// extractText joins the trimmed text of every selected element, one block
// per line.
func extractText(page *goquery.Document, selector string) string {
	var blocks []string
	page.Find(selector).Each(func(i int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return strings.Join(blocks, "\n")
}
