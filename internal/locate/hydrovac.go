package locate

import (
	"fmt"
	"strings"
)

// HydrovacReason is one of the standard reasons for recommending hydrovac
// exposure.
type HydrovacReason string

const (
	ReasonObstructions    HydrovacReason = "obstructions"
	ReasonUnlocated       HydrovacReason = "unlocated"
	ReasonDeepUtilities   HydrovacReason = "deep_utilities"
	ReasonNoDocumentation HydrovacReason = "no_documentation"
)

// HydrovacReasonOrder lists the standard reasons in sentence order.
var HydrovacReasonOrder = []HydrovacReason{
	ReasonObstructions,
	ReasonUnlocated,
	ReasonDeepUtilities,
	ReasonNoDocumentation,
}

// Text returns the checklist wording.
func (r HydrovacReason) Text() string {
	switch r {
	case ReasonObstructions:
		return "Obstructions in scan area"
	case ReasonUnlocated:
		return "Unlocated utilities in area"
	case ReasonDeepUtilities:
		return "Possible utilities in area deeper than the scan capabilities due to geophysical subsurface conditions"
	case ReasonNoDocumentation:
		return "No BC One Call/Site Plans/As-Builts for the area"
	default:
		return string(r)
	}
}

// ParseHydrovacReason parses a reason id.
func ParseHydrovacReason(s string) (HydrovacReason, error) {
	for _, r := range HydrovacReasonOrder {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid hydrovac reason: %q", s)
}

// HydrovacReasons records which standard reasons were checked.
type HydrovacReasons struct {
	Obstructions    bool
	Unlocated       bool
	DeepUtilities   bool
	NoDocumentation bool
}

// Selected reports whether r is checked.
func (hr HydrovacReasons) Selected(r HydrovacReason) bool {
	switch r {
	case ReasonObstructions:
		return hr.Obstructions
	case ReasonUnlocated:
		return hr.Unlocated
	case ReasonDeepUtilities:
		return hr.DeepUtilities
	case ReasonNoDocumentation:
		return hr.NoDocumentation
	default:
		return false
	}
}

// Set checks or unchecks r. Unknown reasons are ignored.
func (hr *HydrovacReasons) Set(r HydrovacReason, on bool) {
	switch r {
	case ReasonObstructions:
		hr.Obstructions = on
	case ReasonUnlocated:
		hr.Unlocated = on
	case ReasonDeepUtilities:
		hr.DeepUtilities = on
	case ReasonNoDocumentation:
		hr.NoDocumentation = on
	}
}

// HydrovacRecommendation is the optional hydrovac exposure recommendation.
type HydrovacRecommendation struct {
	Recommended bool
	Reasons     HydrovacReasons
	CustomNotes string
}

// NewHydrovacRecommendation returns an unset recommendation.
func NewHydrovacRecommendation() *HydrovacRecommendation {
	return &HydrovacRecommendation{}
}

// SelectedReasons returns the lowercased text of each checked reason.
func (h *HydrovacRecommendation) SelectedReasons() []string {
	var selected []string
	for _, r := range HydrovacReasonOrder {
		if h.Reasons.Selected(r) {
			selected = append(selected, strings.ToLower(r.Text()))
		}
	}
	return selected
}

// FormatSection renders the HYDROVAC RECOMMENDED block, or "" when hydrovac
// was not recommended.
func (h *HydrovacRecommendation) FormatSection() string {
	if !h.Recommended {
		return ""
	}

	var b strings.Builder
	b.WriteString("HYDROVAC RECOMMENDED:" + LineSep)
	if selected := h.SelectedReasons(); len(selected) > 0 {
		b.WriteString("Hydrovac exposure is recommended due to: " + OxfordJoin(selected) + ".")
	} else {
		b.WriteString("Hydrovac exposure is recommended.")
	}
	if h.CustomNotes != "" {
		b.WriteString(LineSep + h.CustomNotes)
	}
	return b.String()
}
