package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestGetFormatterYAML tests that GetFormatter returns a YAML formatter
func TestGetFormatterYAML(t *testing.T) {
	formatter, err := GetFormatter(FormatYAML)
	if err != nil {
		t.Fatalf("GetFormatter(FormatYAML) failed: %v", err)
	}

	_, ok := formatter.(*YAMLFormatter)
	if !ok {
		t.Errorf("expected *YAMLFormatter, got %T", formatter)
	}
}

// TestGetFormatterJSON tests that GetFormatter returns a JSON formatter
func TestGetFormatterJSON(t *testing.T) {
	formatter, err := GetFormatter(FormatJSON)
	if err != nil {
		t.Fatalf("GetFormatter(FormatJSON) failed: %v", err)
	}

	_, ok := formatter.(*JSONFormatter)
	if !ok {
		t.Errorf("expected *JSONFormatter, got %T", formatter)
	}
}

// TestGetFormatterInvalid tests that GetFormatter returns error for invalid format
func TestGetFormatterInvalid(t *testing.T) {
	_, err := GetFormatter(Format("invalid"))
	if err == nil {
		t.Error("GetFormatter should return error for invalid format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"cgf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		input   string
		want    Section
		wantErr bool
	}{
		{"combined", SectionCombined, false},
		{"Billing", SectionBilling, false},
		{"ALL", SectionAll, false},
		{"summary", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSection(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLineEnding(t *testing.T) {
	tests := []struct {
		input   string
		want    LineEnding
		wantSeq string
		wantErr bool
	}{
		{"cr", LineEndingCR, "\r", false},
		{"LF", LineEndingLF, "\n", false},
		{"crlf", LineEndingCRLF, "\r\n", false},
		{"newline", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLineEnding(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLineEnding(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLineEnding(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !tt.wantErr && got.Sequence() != tt.wantSeq {
				t.Errorf("%s.Sequence() = %q, want %q", got, got.Sequence(), tt.wantSeq)
			}
		})
	}
}

// TestFormatString tests the String() methods
func TestFormatString(t *testing.T) {
	if FormatJSON.String() != "json" {
		t.Errorf("FormatJSON.String() = %q", FormatJSON.String())
	}
	if SectionBilling.String() != "billing" {
		t.Errorf("SectionBilling.String() = %q", SectionBilling.String())
	}
	if LineEndingCRLF.String() != "crlf" {
		t.Errorf("LineEndingCRLF.String() = %q", LineEndingCRLF.String())
	}
}

func TestYAMLFormatter(t *testing.T) {
	out := &TechnicianOutput{Name: "Alex", Hours: "3.5"}

	text, err := NewYAMLFormatter().Format(out)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(text, "name: Alex") {
		t.Errorf("expected name key in YAML, got:\n%s", text)
	}

	var decoded TechnicianOutput
	if err := yaml.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("failed to unmarshal YAML: %v", err)
	}
	if decoded.Hours != "3.5" {
		t.Errorf("expected hours=3.5, got %s", decoded.Hours)
	}
}

func TestJSONFormatter(t *testing.T) {
	out := &DrawingOutput{Page: 2, Format: "large", Label: "Large Format (11x17)"}

	var buf bytes.Buffer
	if err := NewJSONFormatter().FormatToWriter(&buf, out); err != nil {
		t.Fatalf("FormatToWriter() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if decoded["page"] != float64(2) {
		t.Errorf("expected page=2, got %v", decoded["page"])
	}
	if _, ok := decoded["title"]; ok {
		t.Error("empty title should be omitted")
	}
}
