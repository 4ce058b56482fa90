package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jc/internal/core/domain"
)

var testTool = domain.ToolInfo{
	Name:        "jc",
	Version:     "1.6.1",
	Description: "JSON CLI output utility",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
}

func TestAboutService_Report(t *testing.T) {
	r, _ := newTestRegistry("ls", "arp", "df")
	svc := NewAboutService(testTool, r)

	report, err := svc.Report()
	require.NoError(t, err)

	assert.Equal(t, "jc", report.Name)
	assert.Equal(t, "1.6.1", report.Version)
	require.Len(t, report.Parsers, 3)
	assert.Equal(t, "ls", report.Parsers[0].Name)
	assert.Equal(t, "arp", report.Parsers[1].Name)
	assert.Equal(t, "df", report.Parsers[2].Name)
	assert.Equal(t, []string{"linux"}, report.Parsers[0].Compatible)
}

func TestAboutService_ReportDoesNotConvert(t *testing.T) {
	r, mocks := newTestRegistry("ls", "df")
	svc := NewAboutService(testTool, r)

	_, err := svc.Report()
	require.NoError(t, err)

	for _, m := range mocks {
		assert.Zero(t, m.calls)
	}
}

func TestAboutService_ReportJSONKeys(t *testing.T) {
	r, _ := newTestRegistry("ls")
	report, err := NewAboutService(testTool, r).Report()
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"name", "version", "description", "author", "author_email", "parsers"} {
		assert.Contains(t, decoded, key)
	}
	parser := decoded["parsers"].([]any)[0].(map[string]any)
	for _, key := range []string{"name", "version", "description", "author", "author_email", "compatible", "details"} {
		assert.Contains(t, parser, key)
	}
}

func TestAboutService_MissingDescriptorIsFatal(t *testing.T) {
	r, mocks := newTestRegistry("ls", "df")
	mocks["df"].desc = nil
	svc := NewAboutService(testTool, r)

	report, err := svc.Report()

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrMissingDescriptor)
	assert.Contains(t, err.Error(), "--df")
}

func TestAboutService_Usage(t *testing.T) {
	r, mocks := newTestRegistry("ls", "df", "w")
	mocks["df"].desc = nil
	svc := NewAboutService(testTool, r)

	usage := svc.Usage()

	assert.Equal(t, []domain.UsageEntry{
		{Flag: "--ls", Description: "ls command parser"},
		{Flag: "--w", Description: "w command parser"},
	}, usage)
}
