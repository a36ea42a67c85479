package cli

import (
	"github.com/spf13/cobra"
)

// runScriptCmd runs the script named or aliased by token. A non-zero exit
// is returned as an ExitCodeError so main can forward it.
func runScriptCmd(cmd *cobra.Command, token string, services Services) error {
	reg, err := services.Registry.Load()
	if err != nil {
		return err
	}

	outcome, err := services.Dispatch.Run(cmd.Context(), reg, token)
	if err != nil {
		return err
	}
	if outcome.ExitCode != 0 {
		return &ExitCodeError{Code: outcome.ExitCode}
	}
	return nil
}
