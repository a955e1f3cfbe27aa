package webrequest

import "errors"

// RedactionCoordinate is one axis-aligned rectangle to black out. The
// origin is the page's top-left corner with Y increasing downward, as
// produced by the document analysis frontend.
type RedactionCoordinate struct {
	PageIndex int     `json:"pageIndex"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Text      string  `json:"text,omitempty"`
	Category  string  `json:"category,omitempty"`
}

// Validate checks a single coordinate. It is plain Go rather than rule
// objects because the coordinates arrive inside a form field, not a JSON
// body bound per-field.
func (r RedactionCoordinate) Validate() error {
	switch {
	case r.PageIndex < 0:
		return errors.New("pageIndex must not be negative")
	case r.X < 0 || r.Y < 0:
		return errors.New("x and y must not be negative")
	case r.Width <= 0:
		return errors.New("width must be greater than 0")
	case r.Height <= 0:
		return errors.New("height must be greater than 0")
	}
	return nil
}
