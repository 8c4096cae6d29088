package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head><title>Cafe bombing kills three</title></head>
<body>
<nav><a href="/">Home</a> | <a href="/world">World</a></nav>
<article>
<h1>Cafe bombing kills three</h1>
<p>A bomb exploded in a crowded cafe on Tuesday morning, killing three people and wounding at least a dozen others, according to local officials who spoke at the scene.</p>
<p>Witnesses described a loud blast followed by smoke pouring from the building, as emergency crews rushed to evacuate nearby shops and apartments along the busy street.</p>
<p>Police said the investigation was ongoing and that no group had yet claimed responsibility for the attack, which came days before a planned national holiday.</p>
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

func TestFromHTML(t *testing.T) {
	article, err := FromHTML(strings.NewReader(page), "https://news.example.com/world/cafe")
	require.NoError(t, err)

	assert.Contains(t, article.Title, "Cafe bombing")
	assert.Contains(t, article.Text, "A bomb exploded in a crowded cafe")
	assert.Contains(t, article.Text, "no group had yet claimed responsibility")
}

func TestFromHTML_EmptyURL(t *testing.T) {
	_, err := FromHTML(strings.NewReader(page), "")
	assert.NoError(t, err)
}

func TestFromHTML_InvalidURL(t *testing.T) {
	_, err := FromHTML(strings.NewReader(page), "://missing-scheme")
	assert.ErrorContains(t, err, "invalid page URL")
}
