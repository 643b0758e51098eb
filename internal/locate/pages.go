package locate

import (
	"fmt"
	"strings"
)

// PhotoPage is one page of site photos.
type PhotoPage struct {
	PageNumber int

	// Photos holds opaque file references; nil when none were attached.
	Photos   []string
	Comments string
}

// NewPhotoPage returns an empty page numbered 1.
func NewPhotoPage() *PhotoPage {
	return &PhotoPage{PageNumber: 1}
}

// HasContent reports whether the page has photos or comments.
func (p *PhotoPage) HasContent() bool {
	return len(p.Photos) > 0 || p.Comments != ""
}

// DrawingFormat is the paper size of a locate drawing.
type DrawingFormat string

const (
	FormatNormal DrawingFormat = "normal"
	FormatLarge  DrawingFormat = "large"
)

// ParseDrawingFormat parses "normal" or "large" (case-insensitive).
func ParseDrawingFormat(s string) (DrawingFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return FormatNormal, nil
	case "large":
		return FormatLarge, nil
	default:
		return "", fmt.Errorf("invalid drawing format: %q (expected normal or large)", s)
	}
}

// Drawing is a locate drawing page.
type Drawing struct {
	PageNumber int
	Format     DrawingFormat

	// File is an opaque reference owned by the document renderer.
	File  string
	Title string
}

// NewDrawing returns a normal-format drawing numbered 1.
func NewDrawing() *Drawing {
	return &Drawing{PageNumber: 1, Format: FormatNormal}
}

// IsLargeFormat reports whether the drawing prints at 11x17.
func (d *Drawing) IsLargeFormat() bool {
	return d.Format == FormatLarge
}

// FormatLabel returns the paper-size label shown to the renderer.
func (d *Drawing) FormatLabel() string {
	if d.IsLargeFormat() {
		return "Large Format (11x17)"
	}
	return "Normal (Letter/A4)"
}
