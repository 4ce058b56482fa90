package services

import (
	"fmt"

	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driving"
	"github.com/custodia-labs/jc/internal/logger"
)

// Ensure AboutService implements the interface.
var _ driving.AboutService = (*AboutService)(nil)

// AboutService builds the introspection report from converter descriptors.
// It never calls Convert.
type AboutService struct {
	tool     domain.ToolInfo
	registry *ConverterRegistry
}

// NewAboutService creates an AboutService for the given tool identity.
func NewAboutService(tool domain.ToolInfo, registry *ConverterRegistry) *AboutService {
	return &AboutService{tool: tool, registry: registry}
}

// Report builds the about document in registry order.
// An entry without a descriptor aborts the report.
func (s *AboutService) Report() (*domain.AboutReport, error) {
	entries := s.registry.Entries()
	report := &domain.AboutReport{
		Name:        s.tool.Name,
		Version:     s.tool.Version,
		Description: s.tool.Description,
		Author:      s.tool.Author,
		AuthorEmail: s.tool.AuthorEmail,
		Parsers:     make([]domain.ConverterInfo, 0, s.registry.Len()),
	}
	for _, e := range entries {
		d := e.Converter.Descriptor()
		if d == nil {
			return nil, fmt.Errorf("registry entry %s: %w", e.Flag, domain.ErrMissingDescriptor)
		}
		report.Parsers = append(report.Parsers, d.Info())
	}
	return report, nil
}

// Usage lists flag and description pairs for the help text.
// Entries without a descriptor are left out; Report is where they fail.
func (s *AboutService) Usage() []domain.UsageEntry {
	entries := s.registry.Entries()
	usage := make([]domain.UsageEntry, 0, len(entries))
	for _, e := range entries {
		d := e.Converter.Descriptor()
		if d == nil {
			logger.Debug("No descriptor for %s, omitted from usage", e.Flag)
			continue
		}
		usage = append(usage, domain.UsageEntry{Flag: e.Flag, Description: d.Description})
	}
	return usage
}
