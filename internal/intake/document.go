// Package intake reads job sheets, the YAML, JSON or JSON5 documents that
// field crews fill in, and builds a locate report from them.
package intake

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Prefixes of the flat supplemental and material keys.
const (
	SupplementalPrefix = "supp_"
	MaterialPrefix     = "mat_"
)

// DateLayout is the layout of work-day dates in a job sheet.
const DateLayout = "2006-01-02"

// Document is a job sheet as written on disk.
//
// Supplemental charges and materials are flat keys ("supp_kms: 45",
// "mat_pin_flags: 20") and are collected in Extra together with any keys the
// sheet has that this tool does not know.
type Document struct {
	BC1Provider     string `yaml:"bc1_provider,omitempty" validate:"omitempty,oneof=None Client Quadra"`
	BC1Number       string `yaml:"bc1_number,omitempty"`
	PropertyType    string `yaml:"property_type,omitempty" validate:"omitempty,oneof=Private Public Both"`
	Recommendations string `yaml:"recommendations,omitempty"`
	TravelNotes     string `yaml:"travel_notes,omitempty"`
	SiteConditions  string `yaml:"site_conditions,omitempty"`

	// NumPhotoPages and NumDrawings keep the report defaults when nil
	NumPhotoPages  *int `yaml:"num_photo_pages,omitempty" validate:"omitempty,gte=0"`
	NumDrawings    *int `yaml:"num_drawings,omitempty" validate:"omitempty,gte=0"`
	RevisionNumber int  `yaml:"revision_number,omitempty" validate:"gte=0"`

	Utilities   map[string]UtilityDoc `yaml:"utilities,omitempty" validate:"dive"`
	Job         JobDoc                `yaml:"job,omitempty"`
	Hydrovac    HydrovacDoc           `yaml:"hydrovac,omitempty"`
	MissingDocs IDSet                 `yaml:"missing_docs,omitempty"`
	PhotoPages  []PhotoPageDoc        `yaml:"photo_pages,omitempty" validate:"dive"`
	Drawings    []DrawingDoc          `yaml:"drawings,omitempty" validate:"dive"`

	Extra map[string]interface{} `yaml:",inline"`
}

// UtilityDoc is one utility category's entry.
type UtilityDoc struct {
	Methods IDSet  `yaml:"methods,omitempty"`
	Summary string `yaml:"summary,omitempty"`
}

// JobDoc holds the work days.
type JobDoc struct {
	IsMultiDay bool         `yaml:"is_multi_day,omitempty"`
	WorkDays   []WorkDayDoc `yaml:"work_days,omitempty" validate:"dive"`
}

// WorkDayDoc is one day on site.
type WorkDayDoc struct {
	Date        string          `yaml:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime   TimeDoc         `yaml:"start_time,omitempty"`
	EndTime     TimeDoc         `yaml:"end_time,omitempty"`
	Technicians []TechnicianDoc `yaml:"technicians,omitempty" validate:"dive"`
}

// TechnicianDoc is one technician's hours keyed by hour type id.
type TechnicianDoc struct {
	Name  string             `yaml:"name,omitempty"`
	Hours map[string]float64 `yaml:"hours,omitempty" validate:"dive,gte=0"`
}

// HydrovacDoc is the hydrovac recommendation.
type HydrovacDoc struct {
	Recommended bool   `yaml:"recommended,omitempty"`
	Reasons     IDSet  `yaml:"reasons,omitempty"`
	CustomNotes string `yaml:"custom_notes,omitempty"`
}

// PhotoPageDoc is one photo page. Page defaults to its position.
type PhotoPageDoc struct {
	Page     int      `yaml:"page,omitempty" validate:"omitempty,gte=1"`
	Photos   []string `yaml:"photos,omitempty"`
	Comments string   `yaml:"comments,omitempty"`
}

// DrawingDoc is one drawing. Page defaults to its position, Format to normal.
type DrawingDoc struct {
	Page   int    `yaml:"page,omitempty" validate:"omitempty,gte=1"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=normal large"`
	File   string `yaml:"file,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// TimeDoc is a time of day in a job sheet. A scalar ("0930", "2:15 pm") is
// kept as text; a mapping with hour and minute is a clock time.
type TimeDoc struct {
	Text   string
	Hour   int `validate:"gte=0,lte=24"`
	Minute int `validate:"gte=0,lte=59"`

	clock bool
}

// ClockDoc returns a clock-time TimeDoc.
func ClockDoc(hour, minute int) TimeDoc {
	return TimeDoc{Hour: hour, Minute: minute, clock: true}
}

// IsClock reports whether the time was given as hour and minute.
func (t TimeDoc) IsClock() bool {
	return t.clock
}

// IsZero reports whether no time was given. yaml.v3 uses it for omitempty.
func (t TimeDoc) IsZero() bool {
	return !t.clock && t.Text == ""
}

type clockFields struct {
	Hour   int `yaml:"hour"`
	Minute int `yaml:"minute"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TimeDoc) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*t = TimeDoc{}
			return nil
		}
		*t = TimeDoc{Text: value.Value}
		return nil
	case yaml.MappingNode:
		var c clockFields
		if err := value.Decode(&c); err != nil {
			return err
		}
		*t = ClockDoc(c.Hour, c.Minute)
		return nil
	default:
		return fmt.Errorf("line %d: time must be text or a mapping with hour and minute", value.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (t TimeDoc) MarshalYAML() (interface{}, error) {
	if t.clock {
		return clockFields{Hour: t.Hour, Minute: t.Minute}, nil
	}
	return t.Text, nil
}

// IDSet is a set of checkbox ids such as locate methods or hydrovac reasons.
// A sheet may list the selected ids ("[em, gpr]") or map every id to a
// boolean ("{em: true, gpr: false}"); only ids mapped to true are kept, in
// sheet order.
type IDSet []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *IDSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*s = nil
			return nil
		}
		return fmt.Errorf("line %d: expected a list of ids or a mapping of id to true/false", value.Line)
	case yaml.SequenceNode:
		var ids []string
		if err := value.Decode(&ids); err != nil {
			return err
		}
		*s = ids
		return nil
	case yaml.MappingNode:
		ids := make([]string, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			if val.Tag == "!!null" {
				continue
			}
			var on bool
			if err := val.Decode(&on); err != nil {
				return fmt.Errorf("line %d: %s must be true or false", val.Line, key.Value)
			}
			if on {
				ids = append(ids, key.Value)
			}
		}
		*s = ids
		return nil
	default:
		return fmt.Errorf("line %d: expected a list of ids or a mapping of id to true/false", value.Line)
	}
}
