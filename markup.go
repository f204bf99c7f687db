package newgrounds

import (
	"regexp"
	"strings"
)

// rewrite is a single text-rewrite pass.
type rewrite struct {
	pattern *regexp.Regexp
	repl    string
}

// Block passes run first: they match literal tag boundaries only, which
// would no longer be present once inline rewrites have produced text.
var blockRewrites = []rewrite{
	{regexp.MustCompile(`(?is)<p>(.*?)</p>`), "\n${1}\n"},
	{regexp.MustCompile(`(?i)<dl>|</dl>`), "\n"},
	{regexp.MustCompile(`(?is)<dt>(.*?)</dt>`), "* **${1}**\n"},
	{regexp.MustCompile(`(?is)<dd[^>]*?>(.*?)</dd>`), "  ${1}\n"},
	{regexp.MustCompile(`(?i)<ul[^>]*?>|</ul>`), "\n"},
	{regexp.MustCompile(`(?is)<li[^>]*?>(.*?)</li>`), "* ${1}\n"},
}

var inlineRewrites = []rewrite{
	{regexp.MustCompile(`(?is)<a[^>]*?href="(.*?)"[^>]*?>(.*?)</a>`), "[${2}](${1})"},
	{regexp.MustCompile(`(?i)<sup>\*</sup>`), "*"},
	{regexp.MustCompile(`(?is)<sup>(.*?)</sup>`), "<sup>${1}</sup>"},
}

// Line breaks become a markdown hard break: two spaces and a newline.
var breakRewrite = rewrite{regexp.MustCompile(`(?i)<br\s*/?>`), "  \n"}

// ConvertMarkup turns a rich HTML fragment into lightly marked-up text
// using ordered rewrite passes rather than an HTML parser.
func ConvertMarkup(html string) string {
	s := html
	for _, r := range blockRewrites {
		s = r.pattern.ReplaceAllString(s, r.repl)
	}
	for _, r := range inlineRewrites {
		s = r.pattern.ReplaceAllString(s, r.repl)
	}
	s = breakRewrite.pattern.ReplaceAllString(s, breakRewrite.repl)
	return CleanupMarkup(s)
}

// CleanupMarkup drops blank lines at the start and end, collapses runs of
// blank lines into one and trims the result.
// Lines holding only whitespace count as blank. CleanupMarkup is
// idempotent.
func CleanupMarkup(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// Ensure MarkupConverter implements Converter at compile time.
var _ Converter = (*MarkupConverter)(nil)

// MarkupConverter is the default Converter, backed by ConvertMarkup.
type MarkupConverter struct{}

// NewMarkupConverter creates a new MarkupConverter.
func NewMarkupConverter() *MarkupConverter {
	return &MarkupConverter{}
}

// Convert implements Converter. It never fails.
func (c *MarkupConverter) Convert(html string) (string, error) {
	return ConvertMarkup(html), nil
}
