package output

import (
	"io"
	"strings"

	"github.com/quadralocate/qlr/internal/locate"
)

// Convert replaces every "\r" separator in text with the line ending's
// sequence.
func Convert(text string, le LineEnding) string {
	if le == LineEndingCR || le == "" {
		return text
	}
	return strings.ReplaceAll(text, locate.LineSep, le.Sequence())
}

// RenderRaw returns the requested part of the report with the core's
// separators untouched. SectionAll joins the billing block and the combined
// report with a section break, dropping whichever is empty.
func RenderRaw(r *locate.LocateReport, s Section) string {
	switch s {
	case SectionCombined:
		return r.FormatCombinedReport()
	case SectionBilling:
		return r.FormatBillingDetails()
	default:
		var parts []string
		if billing := r.FormatBillingDetails(); billing != "" {
			parts = append(parts, billing)
		}
		if combined := r.FormatCombinedReport(); combined != "" {
			parts = append(parts, combined)
		}
		return strings.Join(parts, locate.SectionSep)
	}
}

// Render returns the requested part of the report using le between lines.
func Render(r *locate.LocateReport, s Section, le LineEnding) string {
	return Convert(RenderRaw(r, s), le)
}

// WriteReport writes the rendered report to w, ending with a final line
// ending unless the output is raw or empty.
func WriteReport(w io.Writer, r *locate.LocateReport, s Section, le LineEnding) error {
	text := Render(r, s, le)
	if text != "" && le != LineEndingCR {
		text += le.Sequence()
	}
	_, err := io.WriteString(w, text)
	return err
}
