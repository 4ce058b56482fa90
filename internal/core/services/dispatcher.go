package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
	"github.com/custodia-labs/jc/internal/core/ports/driving"
	"github.com/custodia-labs/jc/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.Dispatcher = (*Dispatcher)(nil)

// Dispatcher resolves the converter for an invocation and runs it in
// about, debug or normal mode.
type Dispatcher struct {
	registry *ConverterRegistry
	about    driving.AboutService
	host     domain.OSFamily
}

// NewDispatcher creates a Dispatcher over the registry.
func NewDispatcher(registry *ConverterRegistry, about driving.AboutService) *Dispatcher {
	return &Dispatcher{registry: registry, about: about, host: domain.HostOS()}
}

// Dispatch runs one invocation to a terminal outcome.
//
// The about option wins over everything and never reads input. Otherwise an
// interactive input or an argument list with no registered flag is rejected
// before input is read. In debug mode converter errors are returned as-is and
// panics are not recovered; in normal mode both become Outcome.Failure.
func (d *Dispatcher) Dispatch(ctx context.Context, req driving.Request) (domain.Outcome, error) {
	if req.Options.About {
		logger.Debug("About mode, skipping input")
		report, err := d.about.Report()
		if err != nil {
			return domain.Outcome{}, fmt.Errorf("building about report: %w", err)
		}
		return domain.Succeeded("", report), nil
	}

	if req.Input == nil {
		return domain.Outcome{}, fmt.Errorf("no input source: %w", domain.ErrInvalidInput)
	}
	if req.Input.Interactive() {
		return domain.Outcome{}, domain.ErrInteractiveInput
	}

	entry, ok := d.registry.Match(req.Args)
	if !ok {
		logger.Debug("No registered flag in %v; known flags: %v", req.Args, d.registry.Flags())
		return domain.Outcome{}, domain.ErrNoConverter
	}
	name := converterName(entry)
	logger.Debug("Selected converter %s for flag %s", name, entry.Flag)

	data, err := req.Input.ReadAll()
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("Read %d bytes of input", len(data))

	opts := req.Options.ConvertOptions()
	if desc := entry.Converter.Descriptor(); desc != nil && !opts.Quiet && !desc.SupportsOS(d.host) {
		logger.Warn("%s parser not compatible with your OS (%s)", name, d.host)
	}

	if req.Options.Debug {
		result, err := entry.Converter.Convert(ctx, data, opts)
		if err != nil {
			return domain.Outcome{}, err
		}
		logger.Debug("Converter %s produced %d records", name, result.Len())
		return domain.Succeeded(name, result), nil
	}

	return isolate(ctx, name, entry.Converter, data, opts), nil
}

// isolate runs the converter inside the failure-isolation boundary.
// Any error or panic is captured as a failed outcome naming the converter.
func isolate(ctx context.Context, name string, c driven.Converter, data string, opts domain.ConvertOptions) (outcome domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = domain.Failed(name, fmt.Errorf("%w: %v", domain.ErrConverterPanic, r))
		}
	}()

	result, err := c.Convert(ctx, data, opts)
	if err != nil {
		return domain.Failed(name, err)
	}
	return domain.Succeeded(name, result)
}

// converterName returns the descriptor name, falling back to the flag
// without its leading dashes.
func converterName(e Entry) string {
	if d := e.Converter.Descriptor(); d != nil && d.Name != "" {
		return d.Name
	}
	return strings.TrimLeft(e.Flag, "-")
}

// IsSelectionError reports whether err means no converter was run because
// the invocation itself was unusable.
func IsSelectionError(err error) bool {
	return errors.Is(err, domain.ErrNoConverter) || errors.Is(err, domain.ErrInteractiveInput)
}
