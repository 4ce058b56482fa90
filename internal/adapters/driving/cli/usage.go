package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/jc/internal/core/domain"
)

const (
	usageIndent = "            "
	flagColumn  = 16
)

// printUsage writes the help text headed by message.
func printUsage(w io.Writer, message string, entries []domain.UsageEntry) {
	var b strings.Builder

	fmt.Fprintf(&b, "jc:     %s\n\n", message)
	b.WriteString("Usage:  jc PARSER [OPTIONS]\n\n")

	b.WriteString("Parsers:\n")
	for _, e := range entries {
		b.WriteString(usageIndent)
		b.WriteString(padFlag(e.Flag))
		b.WriteString(e.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("Options:\n")
	b.WriteString(usageIndent + "-a              about jc\n")
	b.WriteString(usageIndent + "-d              debug - show trace messages\n")
	b.WriteString(usageIndent + "-p              pretty print output\n")
	b.WriteString(usageIndent + "-q              quiet - suppress warnings\n")
	b.WriteString(usageIndent + "-r              raw JSON output\n\n")

	b.WriteString("Example:\n")
	b.WriteString(usageIndent + "ls -al | jc --ls -p\n\n")

	_, _ = io.WriteString(w, b.String())
}

// padFlag pads a flag to the description column. Long flags get one space.
func padFlag(flag string) string {
	if len(flag) >= flagColumn {
		return flag + " "
	}
	return flag + strings.Repeat(" ", flagColumn-len(flag))
}
