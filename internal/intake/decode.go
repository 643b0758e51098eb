package intake

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/quadralocate/qlr/internal/locate"
)

// Sentinel errors for job sheet decoding.
var (
	// ErrInvalidDocument is returned when a job sheet cannot be parsed or
	// fails validation
	ErrInvalidDocument = errors.New("invalid job sheet")

	// ErrUnsupportedFormat is returned for an unknown sheet format or extension
	ErrUnsupportedFormat = errors.New("unsupported job sheet format")
)

// Format is the encoding of a job sheet.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSON5 Format = "json5"
)

// ParseFormat parses "yaml", "json" or "json5" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "json5":
		return FormatJSON5, nil
	default:
		return "", fmt.Errorf("%w: %q (expected yaml, json, or json5)", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Decoder turns job sheets into locate reports.
type Decoder struct {
	// Logger receives debug messages about ignored keys; nil discards them
	Logger *zap.Logger

	// Lenient skips struct validation. Enum values are still parsed.
	Lenient bool

	validate *validator.Validate
}

// NewDecoder creates a decoder. A nil logger is replaced with a no-op logger.
func NewDecoder(logger *zap.Logger, lenient bool) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Decoder{Logger: logger, Lenient: lenient, validate: v}
}

// DecodeFile reads path and decodes it using the format implied by its
// extension.
func (d *Decoder) DecodeFile(path string) (*locate.LocateReport, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job sheet: %w", err)
	}

	report, err := d.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return report, nil
}

// Decode parses, validates and builds a report from data.
func (d *Decoder) Decode(data []byte, format Format) (*locate.LocateReport, error) {
	doc, err := d.Parse(data, format)
	if err != nil {
		return nil, err
	}
	return d.Build(doc)
}

// Parse reads data into a Document and validates it unless the decoder is
// lenient.
func (d *Decoder) Parse(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML
	case FormatJSON5:
		converted, err := json5ToYAML(data)
		if err != nil {
			return nil, err
		}
		data = converted
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	doc := &Document{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}

	if !d.Lenient {
		if err := d.Validate(doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Validate checks doc against its struct tags.
func (d *Decoder) Validate(doc *Document) error {
	err := d.validate.Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Document.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date, got %q", field, fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func json5ToYAML(data []byte) ([]byte, error) {
	var v interface{}
	if err := json5.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return out, nil
}

// Build creates a report from an already parsed document. Unknown ids are
// skipped with a debug log; malformed enum values and dates are errors.
func (d *Decoder) Build(doc *Document) (*locate.LocateReport, error) {
	r := locate.NewLocateReport()

	provider, err := locate.ParseBC1Provider(doc.BC1Provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	r.BC1Provider = provider
	r.BC1Number = doc.BC1Number

	pt, err := locate.ParsePropertyType(doc.PropertyType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	r.PropertyType = pt

	r.Recommendations = doc.Recommendations
	r.TravelNotes = doc.TravelNotes
	r.SiteConditions = doc.SiteConditions
	r.RevisionNumber = doc.RevisionNumber
	if doc.NumPhotoPages != nil {
		r.NumPhotoPages = *doc.NumPhotoPages
	}
	if doc.NumDrawings != nil {
		r.NumDrawings = *doc.NumDrawings
	}

	d.buildUtilities(r, doc.Utilities)

	if err := d.buildJob(r, doc.Job); err != nil {
		return nil, err
	}

	r.Hydrovac.Recommended = doc.Hydrovac.Recommended
	r.Hydrovac.CustomNotes = doc.Hydrovac.CustomNotes
	for _, id := range doc.Hydrovac.Reasons {
		reason, err := locate.ParseHydrovacReason(id)
		if err != nil {
			d.Logger.Debug("Ignoring hydrovac reason", zap.String("reason", id))
			continue
		}
		r.Hydrovac.Reasons.Set(reason, true)
	}

	for _, id := range doc.MissingDocs {
		c, err := locate.ParseDocCategory(id)
		if err != nil {
			d.Logger.Debug("Ignoring document category", zap.String("category", id))
			continue
		}
		r.MissingDocs.Set(c, true)
	}

	for _, pd := range doc.PhotoPages {
		p := r.AddPhotoPage()
		if pd.Page != 0 {
			p.PageNumber = pd.Page
		}
		p.Photos = pd.Photos
		p.Comments = pd.Comments
	}

	for _, dd := range doc.Drawings {
		dr := r.AddDrawing()
		if dd.Page != 0 {
			dr.PageNumber = dd.Page
		}
		if dd.Format != "" {
			f, err := locate.ParseDrawingFormat(dd.Format)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
			dr.Format = f
		}
		dr.File = dd.File
		dr.Title = dd.Title
	}

	if err := d.buildExtra(r, doc.Extra); err != nil {
		return nil, err
	}

	return r, nil
}

func (d *Decoder) buildUtilities(r *locate.LocateReport, utilities map[string]UtilityDoc) {
	for _, key := range sortedKeys(utilities) {
		cat, err := locate.ParseUtilityCategory(key)
		if err != nil {
			d.Logger.Debug("Ignoring utility category", zap.String("category", key))
			continue
		}

		u := r.Utilities.Get(cat)
		entry := utilities[key]
		for _, id := range entry.Methods {
			m, err := locate.ParseLocateMethod(id)
			if err != nil {
				d.Logger.Debug("Ignoring locate method",
					zap.String("category", key),
					zap.String("method", id))
				continue
			}
			u.Methods.Set(m, true)
		}
		u.Summary = entry.Summary
	}
}

func (d *Decoder) buildJob(r *locate.LocateReport, job JobDoc) error {
	r.Job.IsMultiDay = job.IsMultiDay

	for i, wd := range job.WorkDays {
		day := r.Job.AddWorkDay()

		if wd.Date != "" {
			date, err := time.Parse(DateLayout, wd.Date)
			if err != nil {
				return fmt.Errorf("%w: work day %d: date %q is not YYYY-MM-DD", ErrInvalidDocument, i+1, wd.Date)
			}
			day.Date = date
		}
		day.StartTime = wd.StartTime.timeOfDay()
		day.EndTime = wd.EndTime.timeOfDay()

		for _, td := range wd.Technicians {
			tech := day.AddTechnician(td.Name)
			for _, id := range sortedKeys(td.Hours) {
				ht, err := locate.ParseHourType(id)
				if err != nil {
					d.Logger.Debug("Ignoring hour type",
						zap.String("technician", td.Name),
						zap.String("type", id))
					continue
				}
				tech.Hours.Set(ht, td.Hours[id])
			}
		}
	}
	return nil
}

func (d *Decoder) buildExtra(r *locate.LocateReport, extra map[string]interface{}) error {
	for _, key := range sortedKeys(extra) {
		switch {
		case strings.HasPrefix(key, SupplementalPrefix):
			f, err := locate.ParseSupplementalField(strings.TrimPrefix(key, SupplementalPrefix))
			if err != nil {
				d.Logger.Debug("Ignoring supplemental field", zap.String("key", key))
				continue
			}
			v, err := scalarText(key, extra[key])
			if err != nil {
				return err
			}
			r.Supplemental.Set(f, v)

		case strings.HasPrefix(key, MaterialPrefix):
			f, err := locate.ParseMaterialField(strings.TrimPrefix(key, MaterialPrefix))
			if err != nil {
				d.Logger.Debug("Ignoring material field", zap.String("key", key))
				continue
			}
			v, err := scalarText(key, extra[key])
			if err != nil {
				return err
			}
			r.Materials.Set(f, v)

		default:
			d.Logger.Debug("Ignoring unknown key", zap.String("key", key))
		}
	}
	return nil
}

// scalarText renders a supplemental or material value. Zero numbers and
// null come back empty so they are not billed.
func scalarText(key string, v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(val), nil
	case int:
		if val == 0 {
			return "", nil
		}
		return strconv.Itoa(val), nil
	case float64:
		if val == 0 {
			return "", nil
		}
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s must be text or a number", ErrInvalidDocument, key)
	}
}

func (t TimeDoc) timeOfDay() locate.TimeOfDay {
	if t.clock {
		return locate.ClockTime(t.Hour, t.Minute)
	}
	return locate.TimeText(t.Text)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
