// Package extractor pulls the readable article out of a saved HTML page.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

// ErrNoContent is returned when a page has no readable text.
var ErrNoContent = errors.New("no readable content found")

// Article is the readable part of a page.
type Article struct {
	Title    string
	Byline   string
	SiteName string
	Text     string
}

// FromHTML extracts the article from r. pageURL resolves relative links and
// may be empty.
func FromHTML(r io.Reader, pageURL string) (Article, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return Article{}, fmt.Errorf("invalid page URL: %w", err)
	}

	parsed, err := readability.FromReader(r, u)
	if err != nil {
		return Article{}, fmt.Errorf("parse content: %w", err)
	}

	text := strings.TrimSpace(parsed.TextContent)
	if text == "" {
		return Article{}, ErrNoContent
	}

	return Article{
		Title:    parsed.Title,
		Byline:   parsed.Byline,
		SiteName: parsed.SiteName,
		Text:     text,
	}, nil
}
