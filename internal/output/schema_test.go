package output

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quadralocate/qlr/internal/locate"
)

func TestNewPagesOutput(t *testing.T) {
	r := locate.NewLocateReport()
	first := r.AddPhotoPage()
	first.Photos = []string{"IMG_0001.jpg"}
	r.AddPhotoPage()
	third := r.AddPhotoPage()
	third.Comments = "North side of lot"

	r.AddDrawing().Title = "Site plan"
	large := r.AddDrawing()
	large.Format = locate.FormatLarge

	got := NewPagesOutput(r)
	want := &PagesOutput{
		PhotoPages: []*PhotoPageOutput{
			{Page: 1, Photos: []string{"IMG_0001.jpg"}, HasContent: true},
			{Page: 2},
			{Page: 3, Comments: "North side of lot", HasContent: true},
		},
		ContentPages: []int{1, 3},
		Drawings: []*DrawingOutput{
			{Page: 1, Format: "normal", Label: "Normal (Letter/A4)", Title: "Site plan"},
			{Page: 2, Format: "large", Label: "Large Format (11x17)", Large: true},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewPagesOutput() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPagesOutputEmpty(t *testing.T) {
	got := NewPagesOutput(locate.NewLocateReport())

	text, err := NewJSONFormatter().Format(got)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "{\n  \"photo_pages\": [],\n  \"content_pages\": [],\n  \"drawings\": []\n}\n"
	if text != want {
		t.Errorf("empty listing = %q, want %q", text, want)
	}
}

func TestNewSummaryOutput(t *testing.T) {
	r := locate.NewLocateReport()
	r.Job.IsMultiDay = true

	day1 := r.Job.AddWorkDay()
	day1.AddTechnician("Alex").Hours.EM = 2
	day1.AddTechnician("Sam").Hours.GPR = 1.5

	day2 := r.Job.AddWorkDay()
	day2.AddTechnician("Alex").Hours.Travel = 0.5

	r.Utilities.Get(locate.CategoryGas).Methods.EM = true
	r.Hydrovac.Recommended = true
	r.AddPhotoPage().Comments = "Meter"
	r.AddDrawing()

	got := NewSummaryOutput(r)
	want := &SummaryOutput{
		Utilities: []string{"Gas / Pipeline"},
		MultiDay:  true,
		WorkDays:  2,
		Technicians: []*TechnicianOutput{
			{Name: "Alex", Hours: "2.5"},
			{Name: "Sam", Hours: "1.5"},
		},
		TotalHours:          "4",
		HydrovacRecommended: true,
		ContentPages:        1,
		Drawings:            1,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewSummaryOutput() mismatch (-want +got):\n%s", diff)
	}
}
