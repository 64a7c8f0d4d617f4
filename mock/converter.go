package mock

import "rmguide"

var _ rmguide.Converter = (*Converter)(nil)

// Converter is a mock implementation of rmguide.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
