package systemctl

import (
	"regexp"
	"strings"
)

// footer matches the summary printed after a systemctl listing,
// e.g. "3 jobs listed." or "Pass --all to see loaded but inactive sockets, too."
var footer = regexp.MustCompile(`^(\d+ .*listed\.|Pass --all .*|No jobs running\.)$`)

// tableRows returns the rows after the header, stopping at the footer.
func tableRows(lines []string) []string {
	var rows []string
	for _, line := range lines {
		if footer.MatchString(strings.TrimSpace(line)) {
			break
		}
		rows = append(rows, line)
	}
	return rows
}
