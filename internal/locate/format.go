// Package locate holds the utility locate report model and the pure
// formatting functions that turn it into plain-text report sections.
//
// Every formatter in this package is a read-only walk over an in-memory
// LocateReport. Missing or empty values contribute nothing to the output;
// no formatter returns an error.
//
// Rendered text uses "\r" between lines of a section and "\r\r" between
// sections. Consumers translate these separators for their target medium.
package locate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// LineSep separates lines inside a section.
	LineSep = "\r"

	// SectionSep separates sections (a blank line).
	SectionSep = LineSep + LineSep

	// HeaderWidth is the column where billing-detail content starts.
	HeaderWidth = 18
)

// FormatNumber rounds n to two decimals and strips trailing zeros and a
// trailing decimal point: 2.50 -> "2.5", 2.00 -> "2".
func FormatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	rounded := math.RoundToEven(n*100) / 100
	s := strconv.FormatFloat(rounded, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// OxfordJoin joins items with commas and a final "and", using a serial
// comma when there are three or more items.
func OxfordJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// TimeOfDay is a start or end time as entered in the field. It is either
// absent (the zero value), a clock time, or free text.
type TimeOfDay struct {
	present bool
	isClock bool
	hour    int
	minute  int
	text    string
}

// ClockTime returns a structured time of day.
func ClockTime(hour, minute int) TimeOfDay {
	return TimeOfDay{present: true, isClock: true, hour: hour, minute: minute}
}

// TimeText returns a free-form time of day such as "0930", "14:15" or "9am".
// An empty string is treated as absent.
func TimeText(s string) TimeOfDay {
	if s == "" {
		return TimeOfDay{}
	}
	return TimeOfDay{present: true, text: s}
}

// IsZero reports whether no time was recorded.
func (t TimeOfDay) IsZero() bool {
	return !t.present
}

// Clock returns the hour and minute of a structured time.
// ok is false for free text and absent values.
func (t TimeOfDay) Clock() (hour, minute int, ok bool) {
	return t.hour, t.minute, t.present && t.isClock
}

// Text returns the raw free-form value, or "" for clock and absent values.
func (t TimeOfDay) Text() string {
	if t.isClock {
		return ""
	}
	return t.text
}

// FormatTime12Hour renders t as a 12-hour clock time ("9:30 am").
//
// Free text that already mentions am/pm is passed through (lowercased,
// trimmed) without further normalization, so "9AM" becomes "9am". Digit
// strings with an optional colon are split into hour and minute, the last two
// digits being minutes. Text that cannot be parsed is returned as-is after
// the same trim and lowercase.
func FormatTime12Hour(t TimeOfDay) string {
	if !t.present {
		return ""
	}
	if t.isClock {
		return clock12(t.hour, t.minute)
	}

	s := strings.ToLower(strings.TrimSpace(t.text))
	if strings.Contains(s, "am") || strings.Contains(s, "pm") {
		return s
	}

	digits := strings.TrimSpace(strings.ReplaceAll(s, ":", ""))
	var hour, minute int
	var err error
	if len(digits) <= 2 {
		hour, err = strconv.Atoi(digits)
		if err != nil {
			return s
		}
	} else {
		hour, err = strconv.Atoi(digits[:len(digits)-2])
		if err != nil {
			return s
		}
		minute, err = strconv.Atoi(digits[len(digits)-2:])
		if err != nil {
			return s
		}
	}
	return clock12(hour, minute)
}

func clock12(hour, minute int) string {
	switch {
	case hour == 0 || hour == 24:
		return fmt.Sprintf("12:%02d am", minute)
	case hour < 12:
		return fmt.Sprintf("%d:%02d am", hour, minute)
	case hour == 12:
		return fmt.Sprintf("12:%02d pm", minute)
	default:
		return fmt.Sprintf("%d:%02d pm", hour-12, minute)
	}
}

// FormatTotalsLine renders hour totals as "EM = 3; GPR = 3.5; Travel = 0.5",
// skipping hour types with no time.
func FormatTotalsLine(h Hours) string {
	var parts []string
	for _, ht := range HourTypes {
		if v := h.Get(ht); v > 0 {
			parts = append(parts, fmt.Sprintf("%s = %s", ht.Label(), FormatNumber(v)))
		}
	}
	return strings.Join(parts, "; ")
}

// MakeLine pads "HEADER:" to HeaderWidth and appends content.
// Empty content yields an empty line.
func MakeLine(header, content string) string {
	if content == "" {
		return ""
	}
	s := header + ":"
	if pad := HeaderWidth - len(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s + content
}

// MakeContinuationLine indents content to the billing content column.
func MakeContinuationLine(content string) string {
	if content == "" {
		return ""
	}
	return strings.Repeat(" ", HeaderWidth) + content
}
