package systemctl

import (
	"context"
	"strings"

	"github.com/custodia-labs/jc/internal/converters/textutil"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

var _ driven.Converter = (*Sockets)(nil)

var socketsDescriptor = &domain.ConverterDescriptor{
	Name:        "systemctl_ls",
	Version:     "1.0",
	Description: "systemctl list-sockets command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
}

// Sockets handles systemctl list-sockets output.
type Sockets struct{}

// NewSockets creates a new systemctl list-sockets converter.
func NewSockets() *Sockets {
	return &Sockets{}
}

// Descriptor returns the converter metadata.
func (c *Sockets) Descriptor() *domain.ConverterDescriptor {
	return socketsDescriptor
}

// Convert parses the socket table by column position, since a LISTEN
// address such as "audit 1" may contain a space.
func (c *Sockets) Convert(_ context.Context, data string, _ domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("systemctl_ls", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "LISTEN") {
		return domain.Result{}, textutil.Unparsable("systemctl_ls", "missing LISTEN header")
	}
	return domain.Many(textutil.ColumnTable(lines[0], tableRows(lines[1:]))), nil
}
