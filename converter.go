package newgrounds

// Converter converts a rich HTML fragment into lightly marked-up text.
type Converter interface {
	Convert(html string) (string, error)
}
