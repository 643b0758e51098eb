package output

import (
	"github.com/quadralocate/qlr/internal/locate"
)

// PagesOutput lists the photo pages and drawings attached to a report,
// as handed to whatever builds the final document.
type PagesOutput struct {
	// PhotoPages are every photo page in page order
	PhotoPages []*PhotoPageOutput `yaml:"photo_pages" json:"photo_pages"`

	// ContentPages are the page numbers that have photos or comments
	// Example: [1, 3]
	ContentPages []int `yaml:"content_pages" json:"content_pages"`

	// Drawings are every drawing in page order
	Drawings []*DrawingOutput `yaml:"drawings" json:"drawings"`
}

// PhotoPageOutput represents one photo page.
type PhotoPageOutput struct {
	Page     int      `yaml:"page" json:"page"`
	Photos   []string `yaml:"photos,omitempty" json:"photos,omitempty"`
	Comments string   `yaml:"comments,omitempty" json:"comments,omitempty"`

	// HasContent is false for pages that will be skipped
	HasContent bool `yaml:"has_content" json:"has_content"`
}

// DrawingOutput represents one drawing page.
type DrawingOutput struct {
	Page   int    `yaml:"page" json:"page"`
	Format string `yaml:"format" json:"format"`

	// Label is the paper-size label
	// Example: "Large Format (11x17)"
	Label string `yaml:"label" json:"label"`
	Large bool   `yaml:"large" json:"large"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	File  string `yaml:"file,omitempty" json:"file,omitempty"`
}

// NewPagesOutput builds the page listing for a report.
func NewPagesOutput(r *locate.LocateReport) *PagesOutput {
	out := &PagesOutput{
		PhotoPages:   make([]*PhotoPageOutput, 0, len(r.PhotoPages)),
		ContentPages: make([]int, 0),
		Drawings:     make([]*DrawingOutput, 0, len(r.Drawings)),
	}

	for _, p := range r.PhotoPages {
		out.PhotoPages = append(out.PhotoPages, &PhotoPageOutput{
			Page:       p.PageNumber,
			Photos:     p.Photos,
			Comments:   p.Comments,
			HasContent: p.HasContent(),
		})
	}
	for _, p := range r.ContentPages() {
		out.ContentPages = append(out.ContentPages, p.PageNumber)
	}
	for _, d := range r.Drawings {
		out.Drawings = append(out.Drawings, &DrawingOutput{
			Page:   d.PageNumber,
			Format: string(d.Format),
			Label:  d.FormatLabel(),
			Large:  d.IsLargeFormat(),
			Title:  d.Title,
			File:   d.File,
		})
	}

	return out
}

// SummaryOutput is the short digest printed after a report is checked.
type SummaryOutput struct {
	// Utilities are the display names of utilities that will be reported
	Utilities []string `yaml:"utilities" json:"utilities"`

	// MultiDay is true when the job spans more than one work day
	MultiDay bool `yaml:"multi_day" json:"multi_day"`
	WorkDays int  `yaml:"work_days" json:"work_days"`

	// Technicians lists combined hours per technician in first-seen order
	Technicians []*TechnicianOutput `yaml:"technicians" json:"technicians"`

	// TotalHours is the sum of every technician's hours, formatted
	// Example: "9.5"
	TotalHours string `yaml:"total_hours" json:"total_hours"`

	HydrovacRecommended bool `yaml:"hydrovac_recommended" json:"hydrovac_recommended"`
	ContentPages        int  `yaml:"content_pages" json:"content_pages"`
	Drawings            int  `yaml:"drawings" json:"drawings"`
}

// TechnicianOutput is one technician's combined hours.
type TechnicianOutput struct {
	Name  string `yaml:"name" json:"name"`
	Hours string `yaml:"hours" json:"hours"`
}

// NewSummaryOutput builds the digest for a report.
func NewSummaryOutput(r *locate.LocateReport) *SummaryOutput {
	out := &SummaryOutput{
		Utilities:           make([]string, 0),
		MultiDay:            r.Job.IsMultiDay,
		WorkDays:            len(r.Job.WorkDays),
		Technicians:         make([]*TechnicianOutput, 0),
		HydrovacRecommended: r.Hydrovac.Recommended,
		ContentPages:        len(r.ContentPages()),
		Drawings:            len(r.Drawings),
	}

	for _, u := range r.Utilities.ActiveUtilities() {
		out.Utilities = append(out.Utilities, u.DisplayName)
	}

	for _, t := range r.Job.AllTechnicians() {
		out.Technicians = append(out.Technicians, &TechnicianOutput{
			Name:  t.Name,
			Hours: locate.FormatNumber(t.Hours.Total()),
		})
	}
	out.TotalHours = locate.FormatNumber(r.Job.CombinedTotals().Total())

	return out
}
