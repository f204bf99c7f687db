package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/newgrounds"
	"github.com/fwojciec/newgrounds/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements newgrounds.Converter at compile time.
var _ newgrounds.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Thanks for listening!</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Thanks for listening!", md)
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Licensed under <a href="https://creativecommons.org/licenses/by-nc/3.0/">CC BY-NC</a>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[CC BY-NC](https://creativecommons.org/licenses/by-nc/3.0/)")
	})

	t.Run("resolves relative links against the domain", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="/audio/listen/123">my other track</a>.</p>`

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://www.newgrounds.com"))
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[my other track](https://www.newgrounds.com/audio/listen/123)")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li><li>Third</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "- Third")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Bold</strong> and <em>italic</em> text.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Use</th><th>Allowed</th></tr></thead>
<tbody><tr><td>Games</td><td>Yes</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Games")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, newgrounds.EINVALID, newgrounds.ErrorCode(err))
	})
}
