package locate

import (
	"fmt"
	"strings"
)

// BC1Provider says who supplied the BC 1 Call ticket. The zero value means
// no provider was chosen.
type BC1Provider string

const (
	ProviderUnset  BC1Provider = ""
	ProviderNone   BC1Provider = "None"
	ProviderClient BC1Provider = "Client"
	ProviderQuadra BC1Provider = "Quadra"
)

// ParseBC1Provider parses a provider name. The empty string is unset.
func ParseBC1Provider(s string) (BC1Provider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ProviderUnset, nil
	case "none":
		return ProviderNone, nil
	case "client":
		return ProviderClient, nil
	case "quadra":
		return ProviderQuadra, nil
	default:
		return "", fmt.Errorf("invalid BC 1 provider: %q (expected None, Client, or Quadra)", s)
	}
}

// attribution returns the parenthetical suffix for a call number.
func (p BC1Provider) attribution() string {
	switch p {
	case ProviderClient:
		return "Provided by Client"
	case ProviderQuadra:
		return "Provided by Quadra"
	default:
		return ""
	}
}

// PropertyType classifies the land the work was on. The zero value means
// not recorded.
type PropertyType string

const (
	PropertyUnset   PropertyType = ""
	PropertyPrivate PropertyType = "Private"
	PropertyPublic  PropertyType = "Public"
	PropertyBoth    PropertyType = "Both"
)

// ParsePropertyType parses a property type. The empty string is unset.
func ParsePropertyType(s string) (PropertyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PropertyUnset, nil
	case "private":
		return PropertyPrivate, nil
	case "public":
		return PropertyPublic, nil
	case "both":
		return PropertyBoth, nil
	default:
		return "", fmt.Errorf("invalid property type: %q (expected Private, Public, or Both)", s)
	}
}

// Description returns the billing text, or "" when unset.
func (p PropertyType) Description() string {
	switch p {
	case PropertyPrivate:
		return "Private property"
	case PropertyPublic:
		return "Public property"
	case PropertyBoth:
		return "Public and private property"
	default:
		return ""
	}
}

// DocCategory is a kind of utility record the technician expects on site.
type DocCategory string

const (
	DocHydro     DocCategory = "hydro"
	DocComm      DocCategory = "comm"
	DocGas       DocCategory = "gas"
	DocMunicipal DocCategory = "municipal"
	DocPipeline  DocCategory = "pipeline"
	DocAsBuilts  DocCategory = "asbuilts"
)

// DocCategories lists document categories in sentence order.
var DocCategories = []DocCategory{DocHydro, DocComm, DocGas, DocMunicipal, DocPipeline, DocAsBuilts}

// Label returns the name used in the missing-documentation sentence.
func (c DocCategory) Label() string {
	switch c {
	case DocHydro:
		return "BC Hydro"
	case DocComm:
		return "Communications"
	case DocGas:
		return "Fortis"
	case DocMunicipal:
		return "Municipal"
	case DocPipeline:
		return "Pipeline"
	case DocAsBuilts:
		return "As-builts"
	default:
		return string(c)
	}
}

// ParseDocCategory parses a document category id.
func ParseDocCategory(s string) (DocCategory, error) {
	for _, c := range DocCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid document category: %q", s)
}

// MissingDocs marks which documents were missing on site.
type MissingDocs struct {
	Hydro     bool
	Comm      bool
	Gas       bool
	Municipal bool
	Pipeline  bool
	AsBuilts  bool
}

// Missing reports whether c was marked missing.
func (m MissingDocs) Missing(c DocCategory) bool {
	switch c {
	case DocHydro:
		return m.Hydro
	case DocComm:
		return m.Comm
	case DocGas:
		return m.Gas
	case DocMunicipal:
		return m.Municipal
	case DocPipeline:
		return m.Pipeline
	case DocAsBuilts:
		return m.AsBuilts
	default:
		return false
	}
}

// Set marks c missing or present. Unknown categories are ignored.
func (m *MissingDocs) Set(c DocCategory, missing bool) {
	switch c {
	case DocHydro:
		m.Hydro = missing
	case DocComm:
		m.Comm = missing
	case DocGas:
		m.Gas = missing
	case DocMunicipal:
		m.Municipal = missing
	case DocPipeline:
		m.Pipeline = missing
	case DocAsBuilts:
		m.AsBuilts = missing
	}
}

// SupplementalField is one supplemental billing item.
type SupplementalField string

const (
	SuppParking        SupplementalField = "parking"
	SuppTrafficControl SupplementalField = "traffic_control"
	SuppPermits        SupplementalField = "permits"
	SuppDesktop        SupplementalField = "desktop"
	SuppCAD            SupplementalField = "cad"
	SuppCoring         SupplementalField = "coring"
	SuppVapourProbes   SupplementalField = "vapour_probes"
	SuppCamera         SupplementalField = "camera"
	SuppDataProcessing SupplementalField = "data_processing"
	SuppOrientation    SupplementalField = "orientation"
	SuppSketch         SupplementalField = "sketch"
	SuppKms            SupplementalField = "kms"
	SuppLOA            SupplementalField = "loa"
)

// SupplementalFields lists supplemental items in billing order.
var SupplementalFields = []SupplementalField{
	SuppParking, SuppTrafficControl, SuppPermits, SuppDesktop, SuppCAD,
	SuppCoring, SuppVapourProbes, SuppCamera, SuppDataProcessing,
	SuppOrientation, SuppSketch, SuppKms, SuppLOA,
}

// Label returns the billing label.
func (f SupplementalField) Label() string {
	switch f {
	case SuppParking:
		return "Parking"
	case SuppTrafficControl:
		return "Traffic control"
	case SuppPermits:
		return "Permitting"
	case SuppDesktop:
		return "Desktop review"
	case SuppCAD:
		return "AutoCAD"
	case SuppCoring:
		return "Coring"
	case SuppVapourProbes:
		return "Vapour probes"
	case SuppCamera:
		return "Camera inspection"
	case SuppDataProcessing:
		return "Data processing"
	case SuppOrientation:
		return "Orientation Time"
	case SuppSketch:
		return "Report Drafting"
	case SuppKms:
		return "Kilometres"
	case SuppLOA:
		return "LOA"
	default:
		return string(f)
	}
}

// ParseSupplementalField parses a supplemental item id such as "kms".
func ParseSupplementalField(s string) (SupplementalField, error) {
	for _, f := range SupplementalFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid supplemental field: %q", s)
}

// Supplemental holds supplemental charges as entered. Values are free text
// ("2", "45 km"); an empty value is not billed.
type Supplemental struct {
	Parking        string
	TrafficControl string
	Permits        string
	Desktop        string
	CAD            string
	Coring         string
	VapourProbes   string
	Camera         string
	DataProcessing string
	Orientation    string
	Sketch         string
	Kms            string
	LOA            string
}

// Value returns the entered value for f.
func (s Supplemental) Value(f SupplementalField) string {
	switch f {
	case SuppParking:
		return s.Parking
	case SuppTrafficControl:
		return s.TrafficControl
	case SuppPermits:
		return s.Permits
	case SuppDesktop:
		return s.Desktop
	case SuppCAD:
		return s.CAD
	case SuppCoring:
		return s.Coring
	case SuppVapourProbes:
		return s.VapourProbes
	case SuppCamera:
		return s.Camera
	case SuppDataProcessing:
		return s.DataProcessing
	case SuppOrientation:
		return s.Orientation
	case SuppSketch:
		return s.Sketch
	case SuppKms:
		return s.Kms
	case SuppLOA:
		return s.LOA
	default:
		return ""
	}
}

// Set records v for f. Unknown fields are ignored.
func (s *Supplemental) Set(f SupplementalField, v string) {
	switch f {
	case SuppParking:
		s.Parking = v
	case SuppTrafficControl:
		s.TrafficControl = v
	case SuppPermits:
		s.Permits = v
	case SuppDesktop:
		s.Desktop = v
	case SuppCAD:
		s.CAD = v
	case SuppCoring:
		s.Coring = v
	case SuppVapourProbes:
		s.VapourProbes = v
	case SuppCamera:
		s.Camera = v
	case SuppDataProcessing:
		s.DataProcessing = v
	case SuppOrientation:
		s.Orientation = v
	case SuppSketch:
		s.Sketch = v
	case SuppKms:
		s.Kms = v
	case SuppLOA:
		s.LOA = v
	}
}

// MaterialField is one material left on site.
type MaterialField string

const (
	MatPinFlags MaterialField = "pin_flags"
	MatLathe24  MaterialField = "lathe_24"
	MatLathe48  MaterialField = "lathe_48"
)

// MaterialFields lists materials in billing order.
var MaterialFields = []MaterialField{MatPinFlags, MatLathe24, MatLathe48}

// Label returns the billing label.
func (f MaterialField) Label() string {
	switch f {
	case MatPinFlags:
		return "Pin flags"
	case MatLathe24:
		return `Lathe 24"`
	case MatLathe48:
		return `Lathe 48"`
	default:
		return string(f)
	}
}

// ParseMaterialField parses a material id such as "pin_flags".
func ParseMaterialField(s string) (MaterialField, error) {
	for _, f := range MaterialFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid material field: %q", s)
}

// Materials holds material quantities as entered.
type Materials struct {
	PinFlags string
	Lathe24  string
	Lathe48  string
}

// Value returns the entered quantity for f.
func (m Materials) Value(f MaterialField) string {
	switch f {
	case MatPinFlags:
		return m.PinFlags
	case MatLathe24:
		return m.Lathe24
	case MatLathe48:
		return m.Lathe48
	default:
		return ""
	}
}

// Set records quantity v for f. Unknown fields are ignored.
func (m *Materials) Set(f MaterialField, v string) {
	switch f {
	case MatPinFlags:
		m.PinFlags = v
	case MatLathe24:
		m.Lathe24 = v
	case MatLathe48:
		m.Lathe48 = v
	}
}
