package mock

import "github.com/fwojciec/newgrounds"

var _ newgrounds.Converter = (*Converter)(nil)

// Converter is a mock implementation of newgrounds.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
