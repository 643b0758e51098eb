package locate

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTechnician_Hours(t *testing.T) {
	tech := NewTechnician("Alice")
	if tech.HasAnyHours() {
		t.Error("new technician should have no hours")
	}
	if got := tech.FormatTechLine(); got != "Alice" {
		t.Errorf("FormatTechLine() = %q, want Alice", got)
	}

	tech.Hours = Hours{EM: 2, GPR: 1.5, Travel: 0.5, Standby: 0.25}
	if !tech.HasAnyHours() {
		t.Error("HasAnyHours() = false")
	}
	if got := tech.TotalHours(); got != 4.25 {
		t.Errorf("TotalHours() = %v, want 4.25", got)
	}
	if got, want := tech.FormatHoursLine(), "EM = 2; GPR = 1.5; Travel = 0.5; Standby = 0.25"; got != want {
		t.Errorf("FormatHoursLine() = %q, want %q", got, want)
	}
	if got, want := tech.FormatTechLine(), "Alice: EM = 2; GPR = 1.5; Travel = 0.5; Standby = 0.25"; got != want {
		t.Errorf("FormatTechLine() = %q, want %q", got, want)
	}
}

func TestTechnician_UnnamedAndNegative(t *testing.T) {
	tech := &Technician{Hours: Hours{ConcreteGPR: 3}}
	if got, want := tech.FormatTechLine(), "Unknown: Conc. GPR = 3"; got != want {
		t.Errorf("FormatTechLine() = %q, want %q", got, want)
	}

	// Negative hours are not rejected, they just never print.
	tech = &Technician{Name: "Bob", Hours: Hours{EM: -1}}
	if tech.HasAnyHours() {
		t.Error("negative hours should not count")
	}
	if got := tech.FormatTechLine(); got != "Bob" {
		t.Errorf("FormatTechLine() = %q, want Bob", got)
	}
}

func TestHours_SetGet(t *testing.T) {
	var h Hours
	for i, ht := range HourTypes {
		h.Set(ht, float64(i+1))
	}
	for i, ht := range HourTypes {
		if got := h.Get(ht); got != float64(i+1) {
			t.Errorf("Get(%s) = %v, want %v", ht, got, i+1)
		}
	}
	if got := h.Total(); got != 21 {
		t.Errorf("Total() = %v, want 21", got)
	}
	h.Set(HourType("overtime"), 5)
	if got := h.Get(HourType("overtime")); got != 0 {
		t.Errorf("Get(overtime) = %v, want 0", got)
	}
}

func TestWorkDay_FormatTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		start TimeOfDay
		end   TimeOfDay
		want  string
	}{
		{"both", TimeText("0930"), TimeText("1615"), "9:30 am to 4:15 pm"},
		{"start only", ClockTime(8, 0), TimeOfDay{}, "from 8:00 am"},
		{"end only", TimeOfDay{}, TimeText("17:00"), "to 5:00 pm"},
		{"neither", TimeOfDay{}, TimeOfDay{}, ""},
		{"free text", TimeText("8am"), TimeText("noon"), "8am to noon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewWorkDay()
			d.StartTime = tt.start
			d.EndTime = tt.end
			if got := d.FormatTimeRange(); got != tt.want {
				t.Errorf("FormatTimeRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWorkDay_HoursByType(t *testing.T) {
	d := NewWorkDay()
	d.AddTechnician("Alice").Hours = Hours{EM: 2, Travel: 1}
	d.AddTechnician("Bob").Hours = Hours{EM: 1.5, GPR: 2}

	want := Hours{EM: 3.5, GPR: 2, Travel: 1}
	if diff := cmp.Diff(want, d.HoursByType()); diff != "" {
		t.Errorf("HoursByType() mismatch (-want +got):\n%s", diff)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTwoDayJob() *MultiDayJob {
	job := NewMultiDayJob()
	job.IsMultiDay = true

	d1 := job.AddWorkDay()
	d1.Date = date(2024, time.January, 5)
	d1.StartTime = TimeText("0800")
	d1.EndTime = TimeText("1600")
	d1.AddTechnician("Alice").Hours = Hours{EM: 2}
	d1.AddTechnician("Bob").Hours = Hours{EM: 1, GPR: 1}

	d2 := job.AddWorkDay()
	d2.Date = date(2024, time.January, 6)
	d2.StartTime = ClockTime(9, 0)
	d2.AddTechnician("Alice").Hours = Hours{EM: 1.5, Travel: 0.5}

	return job
}

func TestMultiDayJob_AllTechnicians(t *testing.T) {
	job := newTwoDayJob()
	job.WorkDays[1].AddTechnician("").Hours = Hours{Survey: 1}

	want := []TechnicianTotals{
		{Name: "Alice", Hours: Hours{EM: 3.5, Travel: 0.5}},
		{Name: "Bob", Hours: Hours{EM: 1, GPR: 1}},
		{Name: "Unknown", Hours: Hours{Survey: 1}},
	}
	if diff := cmp.Diff(want, job.AllTechnicians()); diff != "" {
		t.Errorf("AllTechnicians() mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiDayJob_CombinedTotals(t *testing.T) {
	want := Hours{EM: 4.5, GPR: 1, Travel: 0.5}
	if diff := cmp.Diff(want, newTwoDayJob().CombinedTotals()); diff != "" {
		t.Errorf("CombinedTotals() mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiDayJob_FormatTimeOnSite(t *testing.T) {
	job := newTwoDayJob()
	want := "Day (1/5/24): 8:00 am to 4:00 pm\rDay (1/6/24): from 9:00 am"
	if got := job.FormatTimeOnSite(); got != want {
		t.Errorf("FormatTimeOnSite() = %q, want %q", got, want)
	}

	job.WorkDays[1].Date = time.Time{}
	want = "Day (1/5/24): 8:00 am to 4:00 pm\rDay (Unknown): from 9:00 am"
	if got := job.FormatTimeOnSite(); got != want {
		t.Errorf("FormatTimeOnSite() missing date = %q, want %q", got, want)
	}
}

func TestMultiDayJob_FormatTypeTime_MultiDay(t *testing.T) {
	want := strings.Join([]string{
		"Day (1/5/24): Alice: EM = 2 | Bob: EM = 1; GPR = 1",
		"Day (1/6/24): Alice: EM = 1.5; Travel = 0.5",
		"",
		"TOTALS:",
		"  Alice: EM = 3.5; Travel = 0.5",
		"  Bob: EM = 1; GPR = 1",
		"  Combined: EM = 4.5; GPR = 1; Travel = 0.5",
	}, "\r")

	if got := newTwoDayJob().FormatTypeTime(); got != want {
		t.Errorf("FormatTypeTime() =\n%q\nwant\n%q", got, want)
	}
}

func TestMultiDayJob_FormatTypeTime_SkipsIdleDays(t *testing.T) {
	job := newTwoDayJob()
	idle := job.AddWorkDay()
	idle.Date = date(2024, time.January, 7)
	idle.AddTechnician("Carol")

	got := job.FormatTypeTime()
	if strings.Contains(got, "1/7/24") {
		t.Errorf("idle day should be skipped, got %q", got)
	}
	// Carol has no hours so gets no TOTALS line either.
	if strings.Contains(got, "Carol") {
		t.Errorf("technician without hours should not appear, got %q", got)
	}
}

func TestMultiDayJob_SingleDayPath(t *testing.T) {
	job := newTwoDayJob()
	job.IsMultiDay = false

	if got, want := job.FormatTimeOnSite(), "8:00 am to 4:00 pm"; got != want {
		t.Errorf("FormatTimeOnSite() = %q, want %q", got, want)
	}

	want := "Alice: EM = 2\rBob: EM = 1; GPR = 1\rTotal: EM = 3; GPR = 1"
	if got := job.FormatTypeTime(); got != want {
		t.Errorf("FormatTypeTime() = %q, want %q", got, want)
	}
}

func TestMultiDayJob_MultiDayFlagWithOneDay(t *testing.T) {
	job := NewMultiDayJob()
	job.IsMultiDay = true
	d := job.AddWorkDay()
	d.Date = date(2024, time.March, 2)
	d.StartTime = TimeText("1000")
	d.AddTechnician("Alice").Hours = Hours{GPR: 3}

	if got, want := job.FormatTimeOnSite(), "from 10:00 am"; got != want {
		t.Errorf("FormatTimeOnSite() = %q, want %q", got, want)
	}
	// One technician: no Total line.
	if got, want := job.FormatTypeTime(), "Alice: GPR = 3"; got != want {
		t.Errorf("FormatTypeTime() = %q, want %q", got, want)
	}
}

func TestMultiDayJob_Empty(t *testing.T) {
	job := NewMultiDayJob()
	if got := job.FormatTimeOnSite(); got != "" {
		t.Errorf("FormatTimeOnSite() = %q, want empty", got)
	}
	if got := job.FormatTypeTime(); got != "" {
		t.Errorf("FormatTypeTime() = %q, want empty", got)
	}
	if got := job.AllTechnicians(); len(got) != 0 {
		t.Errorf("AllTechnicians() = %v, want none", got)
	}
}
