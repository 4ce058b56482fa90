// Package cli provides the jc command-line entry point.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jc/internal/adapters/driving/output"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driving"
	"github.com/custodia-labs/jc/internal/core/services"
	"github.com/custodia-labs/jc/internal/logger"
)

// OptionDefaults turns on options configured outside the command line.
type OptionDefaults interface {
	Apply(opts *domain.InvocationOptions)
	Path() string
}

// Config holds the services the root command runs against.
type Config struct {
	Dispatcher driving.Dispatcher
	About      driving.AboutService
	Defaults   OptionDefaults
	Gate       *output.Gate
}

// cliConfig holds the current configuration.
var cliConfig *Config

// SetConfig sets the configuration for the root command.
func SetConfig(config *Config) {
	cliConfig = config
}

// exitError carries a non-zero exit status for an error already reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var rootCmd = &cobra.Command{
	Use:   "jc PARSER [OPTIONS]",
	Short: "Convert command output to JSON",
	Long: `jc converts the output of common command-line tools into JSON.

Pipe the output of a command into jc and select the matching parser:

  ls -al | jc --ls -p`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	return execute(rootCmd)
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	logger.SetOutput(cmd.ErrOrStderr())
	logger.Error("%v", err)
	return 1
}

func runRoot(cmd *cobra.Command, args []string) error {
	if cliConfig == nil || cliConfig.Dispatcher == nil {
		return errors.New("dispatcher not configured")
	}

	opts := domain.ParseOptions(args)
	if cliConfig.Defaults != nil {
		cliConfig.Defaults.Apply(&opts)
	}

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(opts.Debug)
	logger.Section("jc")
	logger.Debug("Arguments: %v", args)
	if cliConfig.Defaults != nil {
		logger.Info("Config defaults from %s", cliConfig.Defaults.Path())
	}

	gate := cliConfig.Gate
	if gate == nil {
		gate = &output.Gate{}
	}

	req := driving.Request{
		Args:    args,
		Options: opts,
		Input:   newStdinInput(cmd.InOrStdin()),
	}

	outcome, err := cliConfig.Dispatcher.Dispatch(context.Background(), req)
	switch {
	case err == nil:
	case services.IsSelectionError(err):
		printUsage(cmd.ErrOrStderr(), err.Error(), usageEntries())
		return &exitError{code: 1}
	case opts.Debug:
		// Surface the failure with the runtime's trace.
		panic(err)
	default:
		return err
	}

	if outcome.Failure != nil {
		logger.Error("%s", outcome.Failure.Message())
		return &exitError{code: 1}
	}

	formatter := output.NewFormatter(cmd.OutOrStdout(), gate)
	if err := formatter.Write(outcome.Value, opts.Pretty); err != nil {
		if opts.Debug {
			panic(err)
		}
		name := outcome.Converter
		if name == "" {
			name = "about"
		}
		failure := domain.Failed(name, err).Failure
		logger.Debug("Write failed: %v", failure)
		logger.Error("%s", failure.Message())
		return &exitError{code: 1}
	}
	return nil
}

func usageEntries() []domain.UsageEntry {
	if cliConfig == nil || cliConfig.About == nil {
		return nil
	}
	return cliConfig.About.Usage()
}
