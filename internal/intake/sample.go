package intake

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sample returns a filled-in two-day job sheet that exercises every section
// of the report.
func Sample() *Document {
	photoPages := 2
	drawings := 1

	return &Document{
		BC1Provider:     "Quadra",
		BC1Number:       "20241015-0042",
		PropertyType:    "Both",
		Recommendations: "Hand expose all utilities within 1 m of the proposed excavation.",
		TravelNotes:     "Site access through the rear lane. Gate code 4821.",
		SiteConditions:  "Parked vehicles along the north fence limited GPR coverage.",
		NumPhotoPages:   &photoPages,
		NumDrawings:     &drawings,
		RevisionNumber:  0,
		Utilities: map[string]UtilityDoc{
			"electrical": {
				Methods: []string{"em", "gpr"},
				Summary: "Primary service enters from the pole at the northwest corner.",
			},
			"gas": {
				Methods: []string{"em"},
				Summary: "Service line runs from the meter on the east wall to the lane.",
			},
			"water": {
				Methods: []string{"not_located"},
				Summary: "Curb stop found; service line could not be traced.",
			},
			"ditch": {
				Methods: []string{"visual"},
			},
		},
		Job: JobDoc{
			IsMultiDay: true,
			WorkDays: []WorkDayDoc{
				{
					Date:      "2024-10-15",
					StartTime: ClockDoc(9, 30),
					EndTime:   ClockDoc(16, 15),
					Technicians: []TechnicianDoc{
						{Name: "Jordan Lee", Hours: map[string]float64{"em": 3, "gpr": 3.5, "travel": 0.5}},
						{Name: "Sam Patel", Hours: map[string]float64{"gpr": 4}},
					},
				},
				{
					Date:      "2024-10-16",
					StartTime: TimeDoc{Text: "0800"},
					EndTime:   TimeDoc{Text: "1130"},
					Technicians: []TechnicianDoc{
						{Name: "Jordan Lee", Hours: map[string]float64{"em": 2, "standby": 1}},
					},
				},
			},
		},
		Hydrovac: HydrovacDoc{
			Recommended: true,
			Reasons:     []string{"obstructions", "deep_utilities"},
			CustomNotes: "Daylight the gas service at both crossings.",
		},
		MissingDocs: []string{"municipal", "asbuilts"},
		PhotoPages: []PhotoPageDoc{
			{Photos: []string{"photos/north-fence.jpg", "photos/meter.jpg"}, Comments: "North fence line and gas meter."},
			{Comments: "Lane crossing, looking east."},
		},
		Drawings: []DrawingDoc{
			{Format: "large", File: "drawings/site-plan.pdf", Title: "Site plan"},
		},
		Extra: map[string]interface{}{
			"supp_parking":  "2",
			"supp_kms":      "45",
			"mat_pin_flags": "20",
			"mat_lathe_24":  "4",
		},
	}
}

// SampleYAML returns Sample encoded as YAML.
func SampleYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Sample()); err != nil {
		return nil, fmt.Errorf("encoding sample: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding sample: %w", err)
	}
	return buf.Bytes(), nil
}
