package cli

import (
	"fmt"

	"github.com/AntonioJCosta/run/internal/core/ports"
	"github.com/spf13/cobra"
)

// GlobalFlags are resolved before any service is built.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
}

// Services are the driving ports the root command calls into.
type Services struct {
	Registry ports.ScriptRegistryService
	Dispatch ports.DispatchService
}

// Wiring builds the services once flags are parsed.
type Wiring func(flags GlobalFlags) (Services, error)

// ExitCodeError carries a script's non-zero exit code up to main.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("script exited with code %d", e.Code)
}

func NewRootCommand(version string, wire Wiring) *cobra.Command {
	var (
		flags  GlobalFlags
		doInit bool
		force  bool
	)

	rootCmd := &cobra.Command{
		Use:   "run [name | alias]",
		Short: "Run is a tool to manage and execute your scripts.",
		Long: `Run reads the scripts in run.yaml and executes one of them by name or by
the first character of its name. Without arguments it lists every script.
Use --init to generate run.yaml from package.json, deno.json or an example.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return fmt.Errorf("services not initialized")
			}
			services, err := wire(flags)
			if err != nil {
				return err
			}

			switch {
			case doInit:
				if len(args) > 0 {
					return fmt.Errorf("--init does not take a script name")
				}
				return runInitCmd(cmd, services.Registry, force)
			case len(args) == 1:
				return runScriptCmd(cmd, args[0], services)
			default:
				return runListCmd(cmd, services.Registry)
			}
		},
	}

	rootCmd.Flags().BoolVarP(&doInit, "init", "i", false, "Generate run.yaml from package.json, deno.json or an example.")
	rootCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing run.yaml when used with --init.")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "Path to a settings file (default .runrc.yaml if present).")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output.")

	return rootCmd
}
