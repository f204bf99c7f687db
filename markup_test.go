package newgrounds_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/newgrounds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkup(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs links and line breaks", func(t *testing.T) {
		t.Parallel()

		html := `<p>Hello <a href="https://x.com">link</a></p><p>World<br>line</p>`

		got := newgrounds.ConvertMarkup(html)

		assert.Equal(t, "Hello [link](https://x.com)\n\nWorld  \nline", got)
	})

	t.Run("converts definition lists", func(t *testing.T) {
		t.Parallel()

		got := newgrounds.ConvertMarkup(`<dl><dt>Term</dt><dd class="x">Definition</dd></dl>`)

		assert.Equal(t, "* **Term**\n  Definition", got)
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		got := newgrounds.ConvertMarkup(`<ul class="list"><li>One</li><li>Two</li></ul>`)

		assert.Equal(t, "* One\n* Two", got)
	})

	t.Run("unwraps a superscript asterisk", func(t *testing.T) {
		t.Parallel()

		got := newgrounds.ConvertMarkup(`Free use<sup>*</sup>`)

		assert.Equal(t, "Free use*", got)
	})

	t.Run("keeps other superscripts", func(t *testing.T) {
		t.Parallel()

		got := newgrounds.ConvertMarkup(`E=mc<sup>2</sup>`)

		assert.Equal(t, "E=mc<sup>2</sup>", got)
	})

	t.Run("keeps self-closing line breaks as hard breaks", func(t *testing.T) {
		t.Parallel()

		got := newgrounds.ConvertMarkup(`one<br/>two<BR />three`)

		assert.Equal(t, "one  \ntwo  \nthree", got)
	})

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, newgrounds.ConvertMarkup(""))
	})
}

func TestCleanupMarkup(t *testing.T) {
	t.Parallel()

	t.Run("collapses blank line runs and trims the ends", func(t *testing.T) {
		t.Parallel()

		got := newgrounds.CleanupMarkup("\n\n  \nfirst\n\n\n \t\nsecond\n\n")

		assert.Equal(t, "first\n\nsecond", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"\n\n\n",
			"a\n\n\nb",
			"  lead\ntrail  ",
			"\r\n\r\nx\r\n\r\n",
			"* **Term**\n  Definition\n\n",
			"line  \nnext",
		}
		for _, in := range inputs {
			once := newgrounds.CleanupMarkup(in)
			assert.Equal(t, once, newgrounds.CleanupMarkup(once), "input %q", in)
		}
	})
}

func TestMarkupConverter(t *testing.T) {
	t.Parallel()

	var conv newgrounds.Converter = newgrounds.NewMarkupConverter()

	got, err := conv.Convert(`<p>Hi</p>`)

	require.NoError(t, err)
	assert.Equal(t, "Hi", got)
}

func FuzzCleanupMarkup(f *testing.F) {
	f.Add("")
	f.Add("a\n\n\nb")
	f.Add("\n \n x \n\n")
	f.Add("\r\n\r\n")

	f.Fuzz(func(t *testing.T, s string) {
		once := newgrounds.CleanupMarkup(s)
		if twice := newgrounds.CleanupMarkup(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", s, once, twice)
		}
		if strings.Contains(once, "\n\n\n") {
			t.Fatalf("blank line run survived: %q", once)
		}
	})
}

func FuzzConvertMarkup(f *testing.F) {
	f.Add(`<p>Hello <a href="https://x.com">link</a></p>`)
	f.Add(`<dl><dt>a</dt><dd>b</dd></dl><ul><li>c</li></ul>`)

	f.Fuzz(func(t *testing.T, s string) {
		out := newgrounds.ConvertMarkup(s)
		if newgrounds.CleanupMarkup(out) != out {
			t.Fatalf("output not clean: %q", out)
		}
	})
}
