package locate

import (
	"fmt"
	"strings"
)

// LocateMethod identifies how a utility was (or was not) located.
type LocateMethod string

const (
	MethodEM         LocateMethod = "em"
	MethodGPR        LocateMethod = "gpr"
	MethodVisual     LocateMethod = "visual"
	MethodNotLocated LocateMethod = "not_located"
	MethodNotInArea  LocateMethod = "not_in_area"
)

// AllMethods is the full method set, in display order.
var AllMethods = []LocateMethod{MethodEM, MethodGPR, MethodVisual, MethodNotLocated, MethodNotInArea}

// Label returns the text used in utility headers.
func (m LocateMethod) Label() string {
	switch m {
	case MethodEM:
		return "Located with EM"
	case MethodGPR:
		return "Located with GPR"
	case MethodVisual:
		return "Located visually"
	case MethodNotLocated:
		return "Not located"
	case MethodNotInArea:
		return "Not in proposed work area"
	default:
		return string(m)
	}
}

// ParseLocateMethod parses a method id.
func ParseLocateMethod(s string) (LocateMethod, error) {
	for _, m := range AllMethods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid locate method: %q", s)
}

// LocateMethods records which methods were selected for one utility.
type LocateMethods struct {
	EM         bool
	GPR        bool
	Visual     bool
	NotLocated bool
	NotInArea  bool
}

// Selected reports whether m is checked.
func (lm LocateMethods) Selected(m LocateMethod) bool {
	switch m {
	case MethodEM:
		return lm.EM
	case MethodGPR:
		return lm.GPR
	case MethodVisual:
		return lm.Visual
	case MethodNotLocated:
		return lm.NotLocated
	case MethodNotInArea:
		return lm.NotInArea
	default:
		return false
	}
}

// Set checks or unchecks m. Unknown methods are ignored.
func (lm *LocateMethods) Set(m LocateMethod, on bool) {
	switch m {
	case MethodEM:
		lm.EM = on
	case MethodGPR:
		lm.GPR = on
	case MethodVisual:
		lm.Visual = on
	case MethodNotLocated:
		lm.NotLocated = on
	case MethodNotInArea:
		lm.NotInArea = on
	}
}

// UtilityType is one utility category on the locate matrix.
type UtilityType struct {
	Key         UtilityCategory
	DisplayName string

	// AvailableMethods restricts which entries of Methods are meaningful.
	AvailableMethods []LocateMethod
	Methods          LocateMethods
	Summary          string
}

// NewUtilityType returns a utility offering every locate method.
func NewUtilityType(key UtilityCategory, displayName string) *UtilityType {
	return &UtilityType{
		Key:              key,
		DisplayName:      displayName,
		AvailableMethods: append([]LocateMethod(nil), AllMethods...),
	}
}

// HasAnyMethod reports whether an available method is selected.
func (u *UtilityType) HasAnyMethod() bool {
	for _, m := range u.AvailableMethods {
		if u.Methods.Selected(m) {
			return true
		}
	}
	return false
}

// ShouldDisplay reports whether the utility gets a report section.
func (u *UtilityType) ShouldDisplay() bool {
	return u.HasAnyMethod() || u.Summary != ""
}

// MethodLabels returns labels for the selected available methods.
func (u *UtilityType) MethodLabels() []string {
	var labels []string
	for _, m := range u.AvailableMethods {
		if u.Methods.Selected(m) {
			labels = append(labels, m.Label())
		}
	}
	return labels
}

// FormatHeader returns e.g. "ELECTRICAL (Located with EM, Located with GPR)".
func (u *UtilityType) FormatHeader() string {
	header := strings.ToUpper(u.DisplayName)
	if labels := u.MethodLabels(); len(labels) > 0 {
		header += " (" + strings.Join(labels, ", ") + ")"
	}
	return header
}

// FormatSection returns the header and summary, or "" when nothing was recorded.
func (u *UtilityType) FormatSection() string {
	if !u.ShouldDisplay() {
		return ""
	}
	header := u.FormatHeader()
	if u.Summary != "" {
		return header + ":" + LineSep + u.Summary
	}
	return header + ":"
}

// UtilityCategory is a fixed utility category id.
type UtilityCategory string

const (
	CategoryElectrical     UtilityCategory = "electrical"
	CategoryCommunications UtilityCategory = "communications"
	CategoryGas            UtilityCategory = "gas"
	CategoryWater          UtilityCategory = "water"
	CategoryStorm          UtilityCategory = "storm"
	CategorySanitary       UtilityCategory = "sanitary"
	CategoryDitch          UtilityCategory = "ditch"
	CategoryUnknown        UtilityCategory = "unknown"
)

// UtilityCategories lists every category in report order.
var UtilityCategories = []UtilityCategory{
	CategoryElectrical,
	CategoryCommunications,
	CategoryGas,
	CategoryWater,
	CategoryStorm,
	CategorySanitary,
	CategoryDitch,
	CategoryUnknown,
}

// DisplayName returns the section title for the category.
func (c UtilityCategory) DisplayName() string {
	switch c {
	case CategoryElectrical:
		return "Electrical"
	case CategoryCommunications:
		return "Communications"
	case CategoryGas:
		return "Gas / Pipeline"
	case CategoryWater:
		return "Water"
	case CategoryStorm:
		return "Storm"
	case CategorySanitary:
		return "Sanitary"
	case CategoryDitch:
		return "Ditch"
	case CategoryUnknown:
		return "Unknown / Other"
	default:
		return string(c)
	}
}

// ParseUtilityCategory parses a category id.
func ParseUtilityCategory(s string) (UtilityCategory, error) {
	for _, c := range UtilityCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid utility category: %q", s)
}

// UtilityMatrix holds one UtilityType per category.
type UtilityMatrix struct {
	Electrical     *UtilityType
	Communications *UtilityType
	Gas            *UtilityType
	Water          *UtilityType
	Storm          *UtilityType
	Sanitary       *UtilityType
	Ditch          *UtilityType
	Unknown        *UtilityType
}

// NewUtilityMatrix builds every category. Ditches can only be checked
// visually or marked not located.
func NewUtilityMatrix() *UtilityMatrix {
	m := &UtilityMatrix{}
	for _, c := range UtilityCategories {
		u := NewUtilityType(c, c.DisplayName())
		if c == CategoryDitch {
			u.AvailableMethods = []LocateMethod{MethodVisual, MethodNotLocated}
		}
		m.set(c, u)
	}
	return m
}

func (m *UtilityMatrix) set(c UtilityCategory, u *UtilityType) {
	switch c {
	case CategoryElectrical:
		m.Electrical = u
	case CategoryCommunications:
		m.Communications = u
	case CategoryGas:
		m.Gas = u
	case CategoryWater:
		m.Water = u
	case CategoryStorm:
		m.Storm = u
	case CategorySanitary:
		m.Sanitary = u
	case CategoryDitch:
		m.Ditch = u
	case CategoryUnknown:
		m.Unknown = u
	}
}

// Get returns the utility for c, or nil for an unknown category.
func (m *UtilityMatrix) Get(c UtilityCategory) *UtilityType {
	switch c {
	case CategoryElectrical:
		return m.Electrical
	case CategoryCommunications:
		return m.Communications
	case CategoryGas:
		return m.Gas
	case CategoryWater:
		return m.Water
	case CategoryStorm:
		return m.Storm
	case CategorySanitary:
		return m.Sanitary
	case CategoryDitch:
		return m.Ditch
	case CategoryUnknown:
		return m.Unknown
	default:
		return nil
	}
}

// All returns every utility in report order.
func (m *UtilityMatrix) All() []*UtilityType {
	all := make([]*UtilityType, 0, len(UtilityCategories))
	for _, c := range UtilityCategories {
		if u := m.Get(c); u != nil {
			all = append(all, u)
		}
	}
	return all
}

// ActiveUtilities returns the utilities that should appear in the report,
// in report order.
func (m *UtilityMatrix) ActiveUtilities() []*UtilityType {
	var active []*UtilityType
	for _, u := range m.All() {
		if u.ShouldDisplay() {
			active = append(active, u)
		}
	}
	return active
}
