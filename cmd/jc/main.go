// Command jc converts the output of command-line tools into JSON.
package main

import (
	"os"

	"github.com/custodia-labs/jc/internal/adapters/driven/config/file"
	"github.com/custodia-labs/jc/internal/adapters/driving/cli"
	"github.com/custodia-labs/jc/internal/adapters/driving/output"
	"github.com/custodia-labs/jc/internal/converters"
	"github.com/custodia-labs/jc/internal/core/services"
	"github.com/custodia-labs/jc/internal/logger"
)

func main() {
	gate := &output.Gate{}
	stop := cli.WatchSignals(gate, os.Exit)

	registry, err := converters.NewRegistry()
	if err != nil {
		logger.Error("building parser registry: %v", err)
		os.Exit(1)
	}
	about := services.NewAboutService(cli.Tool(), registry)

	config := &cli.Config{
		Dispatcher: services.NewDispatcher(registry, about),
		About:      about,
		Gate:       gate,
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("ignoring config file: %v", err)
	} else {
		config.Defaults = store
	}

	cli.SetConfig(config)

	code := cli.Execute()
	stop()
	os.Exit(code)
}
