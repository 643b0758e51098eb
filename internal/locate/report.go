package locate

import (
	"strings"
)

// SiteConditionsHeader is the title of the site conditions section.
const SiteConditionsHeader = "SITE CONDITIONS (Obstructions, inaccessible areas, changes to scope etc.)"

const missingDocsBoilerplate = " documentation missing on site. It is the responsibility " +
	"of the Ground Disturber, prior to ground disturbance, to obtain and " +
	"review said documentation."

// LocateReport is the root of a locate report. It owns every sub-structure;
// NewLocateReport builds them all up front. Use NewLocateReport; the zero
// value is not ready to format.
type LocateReport struct {
	Utilities   *UtilityMatrix
	Job         *MultiDayJob
	Hydrovac    *HydrovacRecommendation
	MissingDocs MissingDocs
	PhotoPages  []*PhotoPage
	Drawings    []*Drawing

	BC1Provider     BC1Provider
	BC1Number       string
	PropertyType    PropertyType
	Recommendations string
	TravelNotes     string
	SiteConditions  string
	Supplemental    Supplemental
	Materials       Materials

	NumPhotoPages int
	NumDrawings   int

	// RevisionNumber is tracked by the caller; formatting never reads it.
	RevisionNumber int
}

// NewLocateReport returns an empty report with all fixed structures in place.
func NewLocateReport() *LocateReport {
	return &LocateReport{
		Utilities:     NewUtilityMatrix(),
		Job:           NewMultiDayJob(),
		Hydrovac:      NewHydrovacRecommendation(),
		PhotoPages:    make([]*PhotoPage, 0),
		Drawings:      make([]*Drawing, 0),
		NumPhotoPages: 1,
		NumDrawings:   1,
	}
}

// AddPhotoPage appends a photo page numbered after the existing ones.
func (r *LocateReport) AddPhotoPage() *PhotoPage {
	p := NewPhotoPage()
	p.PageNumber = len(r.PhotoPages) + 1
	r.PhotoPages = append(r.PhotoPages, p)
	return p
}

// AddDrawing appends a drawing numbered after the existing ones.
func (r *LocateReport) AddDrawing() *Drawing {
	d := NewDrawing()
	d.PageNumber = len(r.Drawings) + 1
	r.Drawings = append(r.Drawings, d)
	return d
}

// ContentPages returns the photo pages that have photos or comments.
func (r *LocateReport) ContentPages() []*PhotoPage {
	var pages []*PhotoPage
	for _, p := range r.PhotoPages {
		if p.HasContent() {
			pages = append(pages, p)
		}
	}
	return pages
}

// FormatBC1Display renders the BC 1 Call reference with its attribution.
func (r *LocateReport) FormatBC1Display() string {
	if r.BC1Provider == ProviderNone {
		return "No BC 1 Call completed"
	}

	attribution := r.BC1Provider.attribution()
	switch {
	case r.BC1Number == "" && attribution == "":
		return ""
	case r.BC1Number == "":
		return attribution
	case attribution == "":
		return r.BC1Number
	default:
		return r.BC1Number + " (" + attribution + ")"
	}
}

// FormatMissingDocsSentence warns about documents missing on site, or
// returns "" when nothing is missing.
func (r *LocateReport) FormatMissingDocsSentence() string {
	var missing []string
	for _, c := range DocCategories {
		if r.MissingDocs.Missing(c) {
			missing = append(missing, c.Label())
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return OxfordJoin(missing) + missingDocsBoilerplate
}

// FormatRecommendations renders the RECOMMENDATIONS block, appending the
// missing-documentation sentence after a blank line.
func (r *LocateReport) FormatRecommendations() string {
	reco := r.Recommendations
	if sentence := r.FormatMissingDocsSentence(); sentence != "" {
		if reco != "" {
			reco += SectionSep + sentence
		} else {
			reco = sentence
		}
	}
	if reco == "" {
		return ""
	}
	return "RECOMMENDATIONS:" + LineSep + reco
}

// FormatSupplemental renders "Parking = 2; Kilometres = 45" for each
// supplemental item entered.
func (r *LocateReport) FormatSupplemental() string {
	var items []string
	for _, f := range SupplementalFields {
		if v := r.Supplemental.Value(f); v != "" {
			items = append(items, f.Label()+" = "+v)
		}
	}
	return strings.Join(items, "; ")
}

// FormatMaterials renders "Pin flags x20; Lathe 24\" x4".
func (r *LocateReport) FormatMaterials() string {
	var items []string
	for _, f := range MaterialFields {
		if v := r.Materials.Value(f); v != "" {
			items = append(items, f.Label()+" x"+v)
		}
	}
	return strings.Join(items, "; ")
}

// FormatPropertyType renders the property type, or "" when unset.
func (r *LocateReport) FormatPropertyType() string {
	return r.PropertyType.Description()
}

// FormatBillingDetails renders the aligned billing block. Sections with no
// content are left out.
func (r *LocateReport) FormatBillingDetails() string {
	var lines []string

	if v := r.Job.FormatTimeOnSite(); v != "" {
		lines = append(lines, MakeLine("TIME ON SITE", v))
	}

	if v := r.Job.FormatTypeTime(); v != "" {
		typeTime := strings.Split(v, LineSep)
		lines = append(lines, MakeLine("TYPE/TIME", typeTime[0]))
		for _, extra := range typeTime[1:] {
			lines = append(lines, MakeContinuationLine(extra))
		}
	}

	if v := r.FormatSupplemental(); v != "" {
		lines = append(lines, MakeLine("SUPPLEMENTAL", v))
	}

	if v := r.FormatMaterials(); v != "" {
		lines = append(lines, MakeLine("MATERIALS", v))
	}

	if v := r.FormatPropertyType(); v != "" {
		lines = append(lines, MakeLine("PROPERTY TYPE", v))
	}

	return strings.Join(lines, LineSep)
}

// FormatCombinedReport renders the narrative report: travel notes, site
// conditions, each active utility, the hydrovac recommendation and the
// recommendations, skipping empty sections.
func (r *LocateReport) FormatCombinedReport() string {
	var sections []string

	if r.TravelNotes != "" {
		sections = append(sections, "TRAVEL NOTES:"+LineSep+r.TravelNotes)
	}

	if r.SiteConditions != "" {
		sections = append(sections, SiteConditionsHeader+":"+LineSep+r.SiteConditions)
	}

	for _, u := range r.Utilities.ActiveUtilities() {
		if s := u.FormatSection(); s != "" {
			sections = append(sections, s)
		}
	}

	if s := r.Hydrovac.FormatSection(); s != "" {
		sections = append(sections, s)
	}

	if s := r.FormatRecommendations(); s != "" {
		sections = append(sections, s)
	}

	return strings.Join(sections, SectionSep)
}
