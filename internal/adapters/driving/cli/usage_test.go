package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/jc/internal/core/domain"
)

func TestPrintUsage(t *testing.T) {
	buf := new(bytes.Buffer)
	entries := []domain.UsageEntry{
		{Flag: "--ls", Description: "ls command parser"},
		{Flag: "--uptime", Description: "uptime command parser"},
	}

	printUsage(buf, "missing piped data", entries)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "jc:     missing piped data\n\nUsage:  jc PARSER [OPTIONS]\n"))
	assert.Contains(t, out, "            --ls            ls command parser\n")
	assert.Contains(t, out, "            --uptime        uptime command parser\n")
	assert.Contains(t, out, "            -r              raw JSON output\n")
	assert.Contains(t, out, "ls -al | jc --ls -p")
}

func TestPadFlag(t *testing.T) {
	tests := []struct {
		flag     string
		expected string
	}{
		{"--w", "--w             "},
		{"--systemctl", "--systemctl     "},
		{"--a-very-long-flag", "--a-very-long-flag "},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.expected, padFlag(tt.flag))
		})
	}
}
