// Package normalizer reduces scraped text to clean ASCII suitable for topic modeling.
package normalizer

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// DefaultPattern removes URLs followed by whitespace and any character that
// is not a letter, digit, whitespace, currency symbol or one of . , ! " ' - : ;
const DefaultPattern = `http(.*?)\s|[^a-zA-Z0-9\s.,!"'\-:;\p{Sc}]`

// SlugPattern keeps letters and digits only.
const SlugPattern = `[^a-zA-Z0-9]`

var (
	defaultCleaner = &Cleaner{
		policy:  stripPolicy(),
		pattern: regexp.MustCompile(DefaultPattern),
	}
	slugPattern = regexp.MustCompile(SlugPattern)
)

// stripPolicy removes every tag but keeps the text inside it, including
// script and style bodies that StrictPolicy would drop.
func stripPolicy() *bluemonday.Policy {
	return bluemonday.StrictPolicy().
		AllowUnsafe(true).
		AllowElementsContent("script", "style")
}

// Cleaner runs the cleaning pipeline with a configurable noise pattern.
// A Cleaner holds no mutable state and may be shared.
type Cleaner struct {
	policy  *bluemonday.Policy
	pattern *regexp.Regexp
}

// NewCleaner creates a cleaner whose noise pattern is pattern. An empty
// pattern selects DefaultPattern.
func NewCleaner(pattern string) (*Cleaner, error) {
	if pattern == "" {
		return defaultCleaner, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid clean pattern: %w", err)
	}

	return &Cleaner{
		policy:  defaultCleaner.policy,
		pattern: re,
	}, nil
}

// Default returns the cleaner using DefaultPattern.
func Default() *Cleaner {
	return defaultCleaner
}

// Pattern returns the noise pattern source.
func (c *Cleaner) Pattern() string {
	return c.pattern.String()
}

// Clean reduces text with the cleaner's own pattern.
func (c *Cleaner) Clean(text string) string {
	return c.CleanPattern(text, c.pattern)
}

// CleanPattern reduces text with pattern in place of the cleaner's own.
// The steps run in this order; later steps rely on the earlier ones.
func (c *Cleaner) CleanPattern(text string, pattern *regexp.Regexp) string {
	// 1. Drop every tag, keep the text.
	s := c.policy.Sanitize(text)

	// 2. &lt; &eacute; &#8212; and friends.
	s = html.UnescapeString(s)

	// 3. Closest ASCII.
	s = transliterate(s)

	// 4. Residual noise.
	s = pattern.ReplaceAllString(s, " ")

	// 5. Printable ASCII only.
	s = strings.Map(keepPrintable, s)

	// 6. One space between words.
	s = strings.Join(strings.Fields(s), " ")

	// 7. Stray space before a period left by tag stripping.
	return strings.ReplaceAll(s, " .", ".")
}

// Clean reduces text with DefaultPattern.
func Clean(text string) string {
	return defaultCleaner.Clean(text)
}

// Slugify returns a lowercase, hyphenated, alphanumeric form of text that is
// safe as a filename component or URL segment.
func Slugify(text string) string {
	s := defaultCleaner.CleanPattern(text, slugPattern)

	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}

// transliterate composes combining marks first so "é" maps like "é".
func transliterate(s string) string {
	return unidecode.Unidecode(norm.NFC.String(s))
}

func keepPrintable(r rune) rune {
	switch {
	case r >= 0x20 && r <= 0x7e:
		return r
	case r == '\t', r == '\n', r == '\r', r == '\v', r == '\f':
		return r
	default:
		return -1
	}
}
