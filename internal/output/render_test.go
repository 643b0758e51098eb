package output

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quadralocate/qlr/internal/locate"
)

func sampleReport() *locate.LocateReport {
	r := locate.NewLocateReport()
	day := r.Job.AddWorkDay()
	day.StartTime = locate.ClockTime(9, 30)
	day.EndTime = locate.ClockTime(16, 15)
	day.AddTechnician("Alex").Hours.EM = 2
	r.TravelNotes = "Drove from Kelowna."
	return r
}

func TestConvert(t *testing.T) {
	text := "A:\rline\r\rB:"

	tests := []struct {
		ending LineEnding
		want   string
	}{
		{LineEndingCR, "A:\rline\r\rB:"},
		{LineEndingLF, "A:\nline\n\nB:"},
		{LineEndingCRLF, "A:\r\nline\r\n\r\nB:"},
		{"", "A:\rline\r\rB:"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ending), func(t *testing.T) {
			if got := Convert(text, tt.ending); got != tt.want {
				t.Errorf("Convert(%q, %q) = %q, want %q", text, tt.ending, got, tt.want)
			}
		})
	}
}

func TestRenderRaw(t *testing.T) {
	billing := "TIME ON SITE:     9:30 am to 4:15 pm\rTYPE/TIME:        Alex: EM = 2"
	combined := "TRAVEL NOTES:\rDrove from Kelowna."

	tests := []struct {
		section Section
		want    string
	}{
		{SectionBilling, billing},
		{SectionCombined, combined},
		{SectionAll, billing + "\r\r" + combined},
	}

	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			got := RenderRaw(sampleReport(), tt.section)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RenderRaw(%s) mismatch (-want +got):\n%s", tt.section, diff)
			}
		})
	}
}

func TestRenderAllSkipsEmptyPart(t *testing.T) {
	r := locate.NewLocateReport()
	r.TravelNotes = "Gate code 1234."

	got := Render(r, SectionAll, LineEndingLF)
	if got != "TRAVEL NOTES:\nGate code 1234." {
		t.Errorf("Render() = %q", got)
	}

	if got := Render(locate.NewLocateReport(), SectionAll, LineEndingLF); got != "" {
		t.Errorf("empty report should render empty, got %q", got)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleReport(), SectionCombined, LineEndingLF); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if got := buf.String(); got != "TRAVEL NOTES:\nDrove from Kelowna.\n" {
		t.Errorf("WriteReport() wrote %q", got)
	}

	buf.Reset()
	if err := WriteReport(&buf, sampleReport(), SectionCombined, LineEndingCR); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if got := buf.String(); got != "TRAVEL NOTES:\rDrove from Kelowna." {
		t.Errorf("raw output should not gain a trailing separator, got %q", got)
	}
}
