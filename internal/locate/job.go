package locate

import (
	"strings"
	"time"
)

// ShortDateLayout renders work-day dates as M/D/YY.
const ShortDateLayout = "1/2/06"

// WorkDay is one day on site.
type WorkDay struct {
	StartTime TimeOfDay
	EndTime   TimeOfDay

	// Date is the zero time when not recorded.
	Date        time.Time
	Technicians []*Technician
}

// NewWorkDay returns a day with no technicians.
func NewWorkDay() *WorkDay {
	return &WorkDay{Technicians: make([]*Technician, 0)}
}

// AddTechnician appends a technician and returns it for filling in.
func (d *WorkDay) AddTechnician(name string) *Technician {
	t := NewTechnician(name)
	d.Technicians = append(d.Technicians, t)
	return t
}

// FormatTimeRange renders "9:30 am to 4:15 pm", "from 9:30 am", "to 4:15 pm"
// or "" depending on which ends were recorded.
func (d *WorkDay) FormatTimeRange() string {
	start := FormatTime12Hour(d.StartTime)
	end := FormatTime12Hour(d.EndTime)

	switch {
	case start != "" && end != "":
		return start + " to " + end
	case start != "":
		return "from " + start
	case end != "":
		return "to " + end
	default:
		return ""
	}
}

// HoursByType sums every technician's hours for the day.
func (d *WorkDay) HoursByType() Hours {
	var totals Hours
	for _, t := range d.Technicians {
		totals = totals.Add(t.Hours)
	}
	return totals
}

// ShortDate renders the date for day lines, or "Unknown".
func (d *WorkDay) ShortDate() string {
	if d.Date.IsZero() {
		return "Unknown"
	}
	return d.Date.Format(ShortDateLayout)
}

func (d *WorkDay) activeTechnicians() []*Technician {
	var active []*Technician
	for _, t := range d.Technicians {
		if t.HasAnyHours() {
			active = append(active, t)
		}
	}
	return active
}

// TechnicianTotals is one technician's time summed over every day.
type TechnicianTotals struct {
	Name  string
	Hours Hours
}

// MultiDayJob is the set of work days for the job.
type MultiDayJob struct {
	IsMultiDay bool
	WorkDays   []*WorkDay
}

// NewMultiDayJob returns a single-day job with no days yet.
func NewMultiDayJob() *MultiDayJob {
	return &MultiDayJob{WorkDays: make([]*WorkDay, 0)}
}

// AddWorkDay appends a day and returns it for filling in.
func (j *MultiDayJob) AddWorkDay() *WorkDay {
	d := NewWorkDay()
	j.WorkDays = append(j.WorkDays, d)
	return d
}

// singleDay reports whether formatting uses the first day only.
func (j *MultiDayJob) singleDay() bool {
	return !j.IsMultiDay || len(j.WorkDays) <= 1
}

// AllTechnicians merges technicians by name across days, summing their
// hours. Results keep first-seen order; unnamed technicians are grouped
// under "Unknown".
func (j *MultiDayJob) AllTechnicians() []TechnicianTotals {
	var merged []TechnicianTotals
	index := make(map[string]int)
	for _, d := range j.WorkDays {
		for _, t := range d.Technicians {
			name := t.DisplayName()
			i, ok := index[name]
			if !ok {
				i = len(merged)
				index[name] = i
				merged = append(merged, TechnicianTotals{Name: name})
			}
			merged[i].Hours = merged[i].Hours.Add(t.Hours)
		}
	}
	return merged
}

// CombinedTotals sums hours across all days and technicians.
func (j *MultiDayJob) CombinedTotals() Hours {
	var totals Hours
	for _, d := range j.WorkDays {
		totals = totals.Add(d.HoursByType())
	}
	return totals
}

// FormatTimeOnSite renders the TIME ON SITE content.
func (j *MultiDayJob) FormatTimeOnSite() string {
	if j.singleDay() {
		if len(j.WorkDays) == 0 {
			return ""
		}
		return j.WorkDays[0].FormatTimeRange()
	}

	lines := make([]string, 0, len(j.WorkDays))
	for _, d := range j.WorkDays {
		lines = append(lines, "Day ("+d.ShortDate()+"): "+d.FormatTimeRange())
	}
	return strings.Join(lines, LineSep)
}

// FormatTypeTime renders the TYPE/TIME content.
//
// A single day lists each technician with hours, plus a Total line when two
// or more technicians worked. Multiple days get one line per day followed
// by per-technician and combined TOTALS.
func (j *MultiDayJob) FormatTypeTime() string {
	var lines []string

	if j.singleDay() {
		if len(j.WorkDays) == 0 {
			return ""
		}
		day := j.WorkDays[0]
		active := day.activeTechnicians()
		for _, t := range active {
			lines = append(lines, t.FormatTechLine())
		}
		if len(active) >= 2 {
			if total := FormatTotalsLine(day.HoursByType()); total != "" {
				lines = append(lines, "Total: "+total)
			}
		}
		return strings.Join(lines, LineSep)
	}

	for _, d := range j.WorkDays {
		var parts []string
		for _, t := range d.activeTechnicians() {
			parts = append(parts, t.FormatTechLine())
		}
		if len(parts) > 0 {
			lines = append(lines, "Day ("+d.ShortDate()+"): "+strings.Join(parts, " | "))
		}
	}

	if techs := j.AllTechnicians(); len(techs) > 0 {
		lines = append(lines, "", "TOTALS:")
		for _, t := range techs {
			if total := FormatTotalsLine(t.Hours); total != "" {
				lines = append(lines, "  "+t.Name+": "+total)
			}
		}
		if combined := FormatTotalsLine(j.CombinedTotals()); combined != "" {
			lines = append(lines, "  Combined: "+combined)
		}
	}

	return strings.Join(lines, LineSep)
}
