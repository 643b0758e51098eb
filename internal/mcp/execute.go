package mcp

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/quadralocate/qlr/internal/intake"
	"github.com/quadralocate/qlr/internal/locate"
	"github.com/quadralocate/qlr/internal/output"
)

func (s *Server) decodeSheet(sheet, format string) (*locate.LocateReport, error) {
	if sheet == "" {
		return nil, fmt.Errorf("sheet parameter is required")
	}

	f := intake.FormatYAML
	if format != "" {
		parsed, err := intake.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		f = parsed
	}

	report, err := s.decoder.Decode([]byte(sheet), f)
	if err != nil {
		s.logger.Debug("Rejected job sheet", zap.String("format", string(f)), zap.Error(err))
		return nil, err
	}
	return report, nil
}

// executeRender decodes a sheet and renders the requested report part.
func (s *Server) executeRender(sheet, format, section, lineEnding string) (string, error) {
	sec := s.section
	if section != "" {
		parsed, err := output.ParseSection(section)
		if err != nil {
			return "", err
		}
		sec = parsed
	}

	le := s.lineEnding
	if lineEnding != "" {
		parsed, err := output.ParseLineEnding(lineEnding)
		if err != nil {
			return "", err
		}
		le = parsed
	}

	report, err := s.decodeSheet(sheet, format)
	if err != nil {
		return "", err
	}

	return output.Render(report, sec, le), nil
}

// executePages decodes a sheet and lists its pages as YAML.
func (s *Server) executePages(sheet, format string) (string, error) {
	report, err := s.decodeSheet(sheet, format)
	if err != nil {
		return "", err
	}

	return output.NewYAMLFormatter().Format(output.NewPagesOutput(report))
}
