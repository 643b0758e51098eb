// Package output turns a locate report into the text a caller asked for:
// which part of the report to render, and how to end its lines.
package output

import (
	"fmt"
	"strings"
)

// Section selects which part of the report to render.
type Section string

const (
	// SectionCombined is the narrative report (notes, utilities, hydrovac,
	// recommendations)
	SectionCombined Section = "combined"

	// SectionBilling is the aligned billing-details block
	SectionBilling Section = "billing"

	// SectionAll is the billing block followed by the combined report
	SectionAll Section = "all"
)

// ParseSection parses a section string into a Section value.
// Accepts: "combined", "billing", "all" (case-insensitive)
func ParseSection(s string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "combined":
		return SectionCombined, nil
	case "billing":
		return SectionBilling, nil
	case "all":
		return SectionAll, nil
	default:
		return "", fmt.Errorf("invalid section: %q (expected combined, billing, or all)", s)
	}
}

// String returns the string representation of the section.
func (s Section) String() string {
	return string(s)
}

// LineEnding is the separator that replaces the report's "\r".
type LineEnding string

const (
	// LineEndingCR keeps the report exactly as formatted
	LineEndingCR LineEnding = "cr"

	// LineEndingLF converts separators to "\n" for terminals and files
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF converts separators to "\r\n"
	LineEndingCRLF LineEnding = "crlf"
)

// ParseLineEnding parses a line ending string.
// Accepts: "cr", "lf", "crlf" (case-insensitive)
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cr":
		return LineEndingCR, nil
	case "lf":
		return LineEndingLF, nil
	case "crlf":
		return LineEndingCRLF, nil
	default:
		return "", fmt.Errorf("invalid line ending: %q (expected cr, lf, or crlf)", s)
	}
}

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	return string(le)
}

// Sequence returns the characters written for each separator.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	default:
		return "\r"
	}
}

// Format is the encoding used for structured listings such as page lists.
type Format string

const (
	// FormatYAML is the default listing format
	FormatYAML Format = "yaml"

	// FormatJSON is the JSON listing format
	FormatJSON Format = "json"
)

// ParseFormat parses a format string into a Format value.
// Accepts: "yaml", "json" (case-insensitive)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %q (expected yaml or json)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// DefaultSection is the section rendered when none is specified.
const DefaultSection = SectionAll

// DefaultLineEnding is the line ending used when none is specified.
const DefaultLineEnding = LineEndingLF
