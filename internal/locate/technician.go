package locate

import (
	"fmt"
	"strings"
)

// HourType is a billing category for technician time.
type HourType string

const (
	HourEM          HourType = "em"
	HourGPR         HourType = "gpr"
	HourTravel      HourType = "travel"
	HourSurvey      HourType = "survey"
	HourConcreteGPR HourType = "concrete_gpr"
	HourStandby     HourType = "standby"
)

// HourTypes lists hour types in billing order.
var HourTypes = []HourType{HourEM, HourGPR, HourTravel, HourSurvey, HourConcreteGPR, HourStandby}

// Label returns the short billing label.
func (ht HourType) Label() string {
	switch ht {
	case HourEM:
		return "EM"
	case HourGPR:
		return "GPR"
	case HourTravel:
		return "Travel"
	case HourSurvey:
		return "Survey"
	case HourConcreteGPR:
		return "Conc. GPR"
	case HourStandby:
		return "Standby"
	default:
		return string(ht)
	}
}

// ParseHourType parses an hour type id.
func ParseHourType(s string) (HourType, error) {
	for _, ht := range HourTypes {
		if string(ht) == s {
			return ht, nil
		}
	}
	return "", fmt.Errorf("invalid hour type: %q", s)
}

// Hours holds time per hour type. All six values are always present and
// default to zero.
type Hours struct {
	EM          float64
	GPR         float64
	Travel      float64
	Survey      float64
	ConcreteGPR float64
	Standby     float64
}

// Get returns the hours recorded for ht.
func (h Hours) Get(ht HourType) float64 {
	switch ht {
	case HourEM:
		return h.EM
	case HourGPR:
		return h.GPR
	case HourTravel:
		return h.Travel
	case HourSurvey:
		return h.Survey
	case HourConcreteGPR:
		return h.ConcreteGPR
	case HourStandby:
		return h.Standby
	default:
		return 0
	}
}

// Set records v hours for ht. Unknown hour types are ignored.
func (h *Hours) Set(ht HourType, v float64) {
	switch ht {
	case HourEM:
		h.EM = v
	case HourGPR:
		h.GPR = v
	case HourTravel:
		h.Travel = v
	case HourSurvey:
		h.Survey = v
	case HourConcreteGPR:
		h.ConcreteGPR = v
	case HourStandby:
		h.Standby = v
	}
}

// Add returns the per-type sum of h and other.
func (h Hours) Add(other Hours) Hours {
	var sum Hours
	for _, ht := range HourTypes {
		sum.Set(ht, h.Get(ht)+other.Get(ht))
	}
	return sum
}

// Total returns the sum across all hour types.
func (h Hours) Total() float64 {
	var total float64
	for _, ht := range HourTypes {
		total += h.Get(ht)
	}
	return total
}

// Technician is one person's time on a work day.
type Technician struct {
	Name  string
	Hours Hours
}

// NewTechnician returns a technician with zero hours.
func NewTechnician(name string) *Technician {
	return &Technician{Name: name}
}

// DisplayName returns the name, or "Unknown" when none was entered.
func (t *Technician) DisplayName() string {
	if t.Name == "" {
		return "Unknown"
	}
	return t.Name
}

// HasAnyHours reports whether any hour type is positive.
func (t *Technician) HasAnyHours() bool {
	for _, ht := range HourTypes {
		if t.Hours.Get(ht) > 0 {
			return true
		}
	}
	return false
}

// TotalHours returns the technician's hours across all types.
func (t *Technician) TotalHours() float64 {
	return t.Hours.Total()
}

// FormatHoursLine renders e.g. "EM = 2; GPR = 1.5; Travel = 0.5".
func (t *Technician) FormatHoursLine() string {
	var parts []string
	for _, ht := range HourTypes {
		if v := t.Hours.Get(ht); v > 0 {
			parts = append(parts, fmt.Sprintf("%s = %s", ht.Label(), FormatNumber(v)))
		}
	}
	return strings.Join(parts, "; ")
}

// FormatTechLine renders "Name: hours", or just the name with no hours.
func (t *Technician) FormatTechLine() string {
	name := t.DisplayName()
	if hours := t.FormatHoursLine(); hours != "" {
		return name + ": " + hours
	}
	return name
}
