/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: browser.go
Description: Browser-rendered document source using chromedp. Drives a
headless Chrome to render script-heavy pages, captures the settled DOM,
and extracts text through the same selector extraction as the HTTP source.
*/

package corpus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// BrowserSource fetches documents by rendering pages in headless Chrome.
// Start launches the browser; Stop must be called to release it.
type BrowserSource struct {
	name     string
	urls     []string
	selector string
	settle   time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	alloc  context.CancelFunc
}

// NewBrowserSource creates a browser source over the given URLs. selector
// picks the rendered elements whose text forms the document; "" extracts
// paragraph text.
func NewBrowserSource(name string, urls []string, selector string) *BrowserSource {
	if selector == "" {
		selector = "p"
	}
	return &BrowserSource{
		name:     name,
		urls:     urls,
		selector: selector,
		settle:   2 * time.Second,
	}
}

// Name returns the source name.
func (s *BrowserSource) Name() string {
	return s.name
}

// Description returns a human-readable description of the source.
func (s *BrowserSource) Description() string {
	return fmt.Sprintf("Browser-rendered fetch of %d URLs, selector %q", len(s.urls), s.selector)
}

// Start launches the headless browser
func (s *BrowserSource) Start(ctx context.Context) error {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	s.ctx = browserCtx
	s.cancel = browserCancel
	s.alloc = allocCancel

	// Bring the browser up before the first navigation
	if err := chromedp.Run(s.ctx); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	return nil
}

// Stop closes the browser
func (s *BrowserSource) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.alloc != nil {
		s.alloc()
	}
	return nil
}

// SetSettleTime sets how long rendering may settle after navigation before
// the DOM is captured.
func (s *BrowserSource) SetSettleTime(d time.Duration) {
	s.settle = d
}

// Fetch renders every URL and extracts text from the settled DOM.
func (s *BrowserSource) Fetch(ctx context.Context) ([]*Document, error) {
	if s.ctx == nil {
		return nil, fmt.Errorf("browser source %q not started", s.name)
	}

	documents := make([]*Document, 0, len(s.urls))
	for _, url := range s.urls {
		if err := ctx.Err(); err != nil {
			return documents, err
		}

		var dom string
		err := chromedp.Run(s.ctx,
			chromedp.Navigate(url),
			chromedp.Sleep(s.settle),
			chromedp.OuterHTML("html", &dom),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", url, err)
		}

		page, err := goquery.NewDocumentFromReader(strings.NewReader(dom))
		if err != nil {
			return nil, fmt.Errorf("failed to parse rendered %s: %w", url, err)
		}

		text := extractText(page, s.selector)
		if text == "" {
			continue
		}

		doc := NewDocument(text, s.name)
		doc.URL = url
		documents = append(documents, doc)
	}
	return documents, nil
}
