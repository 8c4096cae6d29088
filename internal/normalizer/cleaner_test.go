package normalizer

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	printableASCII = regexp.MustCompile(`^[\x20-\x7e]*$`)
	slugShape      = regexp.MustCompile(`^[a-z0-9-]*$`)
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Markup, entities and URL",
			input: "<p>Caf&eacute; bombing kills 3 people http://x.co/abc more text .</p>",
			want:  "Cafe bombing kills 3 people more text.",
		},
		{
			name:  "Whitespace collapse",
			input: "  Hello,   world!\n\tNew   line  ",
			want:  "Hello, world! New line",
		},
		{
			name:  "Tags removed without spacing",
			input: "one<br/>two <b>three</b>",
			want:  "onetwo three",
		},
		{
			name:  "Escaped markup decoded after stripping",
			input: "&lt;script&gt;alert(1)&lt;/script&gt;",
			want:  "script alert 1 script",
		},
		{
			name:  "Script text kept",
			input: "<div><script>var x = 1;</script>Body</div>",
			want:  "var x 1;Body",
		},
		{
			name:  "Style text kept",
			input: "<style>p{color:red}</style>Text",
			want:  "p color:red Text",
		},
		{
			name:  "Ampersand is noise",
			input: "Tom &amp; Jerry",
			want:  "Tom Jerry",
		},
		{
			name:  "Currency kept",
			input: "Cost $5 & more",
			want:  "Cost $5 more",
		},
		{
			name:  "Allowed punctuation kept",
			input: `He said: "don't-stop"; ok.`,
			want:  `He said: "don't-stop"; ok.`,
		},
		{
			name:  "Space before period removed",
			input: "End of sentence . Next",
			want:  "End of sentence. Next",
		},
		{
			name:  "Space before comma kept",
			input: "a , b",
			want:  "a , b",
		},
		{
			name:  "Decomposed accent",
			input: "cafe\u0301",
			want:  "cafe",
		},
		{
			name:  "Empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestClean_EmDashAndURL(t *testing.T) {
	got := Clean("<p>Caf&eacute; bombing kills 3 people&mdash;http://x.co/abc more text</p>")

	assert.Regexp(t, printableASCII, got)
	assert.Contains(t, got, "Cafe bombing kills 3 people")
	assert.Contains(t, got, "more text")
	assert.NotContains(t, got, "http")
	assert.NotContains(t, got, "x.co")
}

func TestClean_OutputInvariants(t *testing.T) {
	inputs := []string{
		"Ærøskøbing Straße naïve 日本語 😀",
		"<div><script>var x = 1;</script>Body &copy; 2020</div>",
		"tabs\tand\nnewlines\r\nand\x00nulls\x7f",
		"Ünïcödé – “quotes” — dashes … ellipsis",
		"http://only-a-url.com ",
		"... . . .",
	}

	for _, in := range inputs {
		got := Clean(in)

		assert.Regexp(t, printableASCII, got, "input %q", in)
		assert.NotContains(t, got, "  ", "input %q", in)
		assert.Equal(t, got, Clean(got), "not idempotent for %q", in)
	}
}

func TestClean_AlreadyClean(t *testing.T) {
	for _, in := range []string{
		"Already clean text.",
		"Numbers 1, 2 and 3: done!",
		"",
	} {
		assert.Equal(t, in, Clean(in))
	}
}

func TestNewCleaner(t *testing.T) {
	c, err := NewCleaner(`\d`)
	require.NoError(t, err)

	assert.Equal(t, `\d`, c.Pattern())
	assert.Equal(t, "abc def", c.Clean("abc 123 def"))
	// The custom pattern replaces the default, so punctuation survives.
	assert.Equal(t, "a#b", c.Clean("a#b"))
}

func TestNewCleaner_EmptyUsesDefault(t *testing.T) {
	c, err := NewCleaner("")
	require.NoError(t, err)

	assert.Same(t, Default(), c)
	assert.Equal(t, DefaultPattern, c.Pattern())
}

func TestNewCleaner_InvalidPattern(t *testing.T) {
	_, err := NewCleaner(`([`)
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Café: Bombing Kills 3!", want: "cafe-bombing-kills-3"},
		{input: "café bomb", want: "cafe-bomb"},
		{input: "  Multiple   Spaces  ", want: "multiple-spaces"},
		{input: "a/b\\c", want: "a-b-c"},
		{input: "<em>Tagged</em> term", want: "tagged-term"},
		{input: "!!!", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Shape(t *testing.T) {
	for _, in := range []string{
		"",
		".,;:!?",
		"Mixed Ελληνικά русский 中文 text",
		"emoji 🚀 launch",
		"tab\tseparated\nlines",
		"--already-slugged--",
	} {
		assert.Regexp(t, slugShape, Slugify(in), "input %q", in)
	}
}
