package cli

import (
	"github.com/custodia-labs/jc/internal/core/domain"
)

// version is set at build time with -ldflags.
var version = "1.6.1"

// Tool returns the identity reported by the about option.
func Tool() domain.ToolInfo {
	return domain.ToolInfo{
		Name:        "jc",
		Version:     version,
		Description: "jc cli",
		Author:      "Kelly Brazil",
		AuthorEmail: "kellyjonbrazil@gmail.com",
	}
}
