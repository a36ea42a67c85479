package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/run/internal/adapters/examplescripts"
	"github.com/AntonioJCosta/run/internal/adapters/oscommand"
	"github.com/AntonioJCosta/run/internal/config"
	"github.com/AntonioJCosta/run/internal/core/services/dispatch"
	"github.com/AntonioJCosta/run/internal/core/services/scriptregistry"
	"github.com/AntonioJCosta/run/internal/handlers/cli"
	"github.com/AntonioJCosta/run/internal/handlers/ui"
	"github.com/AntonioJCosta/run/internal/repositories/projectfs"
	"github.com/charmbracelet/log"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, wire)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var exitErr *cli.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
}

// wire builds the services from flags, settings and the working directory.
func wire(flags cli.GlobalFlags) (cli.Services, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return cli.Services{}, err
	}
	ui.DisableColor(flags.NoColor || cfg.NoColor)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "run",
		Level:  log.WarnLevel,
	})
	if flags.Verbose || cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	executor, err := oscommand.NewExecutor(cfg.Runtime, cfg.Shell)
	if err != nil {
		return cli.Services{}, err
	}
	logger.Debug("configuration loaded", "run_file", cfg.RunFile, "runtime", cfg.Runtime)

	files := projectfs.NewProjectFiles("")
	registrySvc := scriptregistry.NewService(files, examplescripts.NewYAMLProvider(), cfg.RunFile, logger)
	dispatchSvc := dispatch.NewService(files, executor, ui.NewReporter(os.Stdout), dispatch.Options{
		MarkerFile: cfg.MarkerFile,
		BinDir:     cfg.BinDir,
	}, logger)

	return cli.Services{Registry: registrySvc, Dispatch: dispatchSvc}, nil
}
